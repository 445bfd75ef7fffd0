package activity

import "github.com/firmdesk/firmdesk/internal/errorutil"

var ErrNotFound = errorutil.New("activity not found")
