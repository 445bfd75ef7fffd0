package role

import "github.com/firmdesk/firmdesk/internal/errorutil"

var (
	ErrNotFound          = errorutil.New("role not found")
	ErrInvalidPermission = errorutil.New("unknown permission")
)
