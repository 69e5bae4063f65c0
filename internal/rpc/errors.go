package rpc

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError through errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrUnknownMethod is returned by Build for a method id it does not know.
	ErrUnknownMethod = errors.New("unknown method")
)

// ValidationError reports the first argument that failed its shape check.
type ValidationError struct {
	Method string // remote method id, e.g. "eth_getBalance"
	Field  string // argument name, e.g. "address" or "topics[1]"
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", e.Method, e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrValidation) match any validation failure.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(method, field, reason string) error {
	return &ValidationError{Method: method, Field: field, Reason: reason}
}
