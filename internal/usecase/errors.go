package usecase

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced book or session does not exist.
// An already-ended session hit by End is reported the same way.
var ErrNotFound = errors.New("record not found")

// ValidationError reports caller-fixable bad input for a single field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Message)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
