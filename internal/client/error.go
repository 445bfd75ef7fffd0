package client

import "github.com/firmdesk/firmdesk/internal/errorutil"

var (
	ErrNotFound      = errorutil.New("client not found")
	ErrGroupNotFound = errorutil.New("client group not found")
	ErrInvalidStatus = errorutil.New("invalid client status")
)
