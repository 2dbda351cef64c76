package field

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a validation failure.
type ErrorKind string

const (
	InvalidType   ErrorKind = "invalid type"
	InvalidFormat ErrorKind = "invalid format"
	OutOfRange    ErrorKind = "out of range"
)

// Sentinels for errors.Is matching on the failure kind.
var (
	ErrInvalidType   = errors.New("field: invalid type")
	ErrInvalidFormat = errors.New("field: invalid format")
	ErrOutOfRange    = errors.New("field: out of range")
)

// ValidationError describes exactly one violated rule.
type ValidationError struct {
	Field string
	Kind  ErrorKind
	Msg   string
}

func newError(f Kind, k ErrorKind, format string, args ...any) *ValidationError {
	return &ValidationError{Field: string(f), Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// NewValidationError builds a ValidationError for a rule enforced outside
// this package, such as a record's required name.
func NewValidationError(f string, k ErrorKind, msg string) *ValidationError {
	return &ValidationError{Field: f, Kind: k, Msg: msg}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Field, e.Kind, e.Msg)
}

// Is matches the sentinel for the error's kind.
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrInvalidType:
		return e.Kind == InvalidType
	case ErrInvalidFormat:
		return e.Kind == InvalidFormat
	case ErrOutOfRange:
		return e.Kind == OutOfRange
	}
	return false
}
