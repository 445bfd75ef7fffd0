package branch

import "github.com/firmdesk/firmdesk/internal/errorutil"

var (
	ErrNotFound      = errorutil.New("branch not found")
	ErrAlreadyExists = errorutil.New("a branch with this code already exists")
)
