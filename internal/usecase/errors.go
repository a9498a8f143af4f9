package usecase

import (
	"errors"
	"fmt"
)

// ErrValidation matches every input validation failure, whatever the
// aggregate.
var ErrValidation = errors.New("validation failed")

// ValidationError carries the reason an input was rejected. It matches both
// its aggregate sentinel (e.g. ErrInvalidLaborEntry) and ErrValidation.
type ValidationError struct {
	Sentinel error
	Reason   string
}

func (e *ValidationError) Error() string {
	return e.Sentinel.Error() + ": " + e.Reason
}

func (e *ValidationError) Unwrap() []error {
	return []error{e.Sentinel, ErrValidation}
}

func invalid(sentinel error, format string, args ...any) error {
	return &ValidationError{Sentinel: sentinel, Reason: fmt.Sprintf(format, args...)}
}
