// Package errorz defines the error kinds shared by the store, repositories
// and handlers. Callers discriminate with errors.Is.
package errorz

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrStorage    = errors.New("storage failure")
)

// Storagef wraps an underlying read/write error as an ErrStorage.
func Storagef(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrStorage)
}
