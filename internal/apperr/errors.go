package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound covers both a missing resource and a resource owned by a
// different user. Lookups are scoped to the caller, so the two cases are
// indistinguishable on purpose.
var ErrNotFound = errors.New("resource not found")

var ErrUnauthenticated = errors.New("authentication required")

type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func Validation(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
