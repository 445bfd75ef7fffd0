// Package errorutil provides constructors for the sentinel errors domain
// packages declare in their error.go files.
package errorutil

import (
	"errors"
	"fmt"
)

func New(msg string) error {
	return errors.New(msg)
}

// Format works like fmt.Errorf, so sentinels can be wrapped with %w.
func Format(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}
