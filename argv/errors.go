package argv

import (
	"errors"
	"strings"
)

// ErrorType represents error categories reported by the argv package.
type ErrorType string

const (
	ErrorTypeOutOfMemory     ErrorType = "out_of_memory"
	ErrorTypeInvalidValue    ErrorType = "invalid_value"
	ErrorTypeMissingValue    ErrorType = "missing_value"
	ErrorTypeUnknownOption   ErrorType = "unknown_option"
	ErrorTypeInvalidArgument ErrorType = "invalid_argument"
)

// ErrOutOfMemory is returned (wrapped in an *Error) when the allocator
// cannot provide the token arena.
var ErrOutOfMemory = errors.New("argv: out of memory")

// Error is the error type returned by this package.
type Error struct {
	Type        ErrorType
	Message     string
	Option      string // Offending option or token, when there is one
	Suggestions []string
	Cause       error
}

// NewError creates a new Error with the given type and message
func NewError(typ ErrorType, message string) *Error {
	return &Error{Type: typ, Message: message}
}

func (e *Error) Error() string {
	if len(e.Suggestions) == 0 {
		return e.Message
	}
	var b strings.Builder
	b.WriteString(e.Message)
	for _, s := range e.Suggestions {
		b.WriteString("\n  ")
		b.WriteString(s)
	}
	return b.String()
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e *Error) Unwrap() error { return e.Cause }

// WithSuggestion adds a suggestion to the error
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithCause sets the underlying cause of the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithOption records the option or token the error refers to
func (e *Error) WithOption(option string) *Error {
	e.Option = option
	return e
}

// IsType reports whether err is an *Error of the given type.
func IsType(err error, typ ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == typ
}

// contractf panics with a contract-violation message. Contract violations
// are programmer errors and are never returned as values.
func contractf(msg string) {
	panic("argv: " + msg)
}
