package timeline

import "github.com/firmdesk/firmdesk/internal/errorutil"

var (
	ErrNotFound               = errorutil.New("timeline not found")
	ErrInvalidFrequency       = errorutil.New("invalid frequency")
	ErrFrequencyNotConfigured = errorutil.New("please configure the frequency settings properly")
	ErrInvalidDateRange       = errorutil.New("end date cannot be earlier than start date")
	ErrInvalidStatus          = errorutil.New("invalid timeline status")
	ErrNoClients              = errorutil.New("at least one client is required")
)
