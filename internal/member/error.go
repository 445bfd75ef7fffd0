package member

import "github.com/firmdesk/firmdesk/internal/errorutil"

var (
	ErrNotFound      = errorutil.New("team member not found")
	ErrAlreadyExists = errorutil.New("a team member with this email already exists")
)
