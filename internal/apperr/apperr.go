// Package apperr classifies recoverable failures so callers can match them
// with errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a recoverable failure surfaced to the caller.
type Kind int

const (
	// InvalidInput covers text that could not be parsed or is out of range.
	InvalidInput Kind = iota + 1
	// NoSelection means an operation needed highlighted text and found none.
	NoSelection
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case NoSelection:
		return "no selection"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is checks.
var (
	ErrInvalidInput = &Error{Kind: InvalidInput}
	ErrNoSelection  = &Error{Kind: NoSelection}
)

// Error carries a Kind, the operation that failed and an optional cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Invalid returns an InvalidInput error for op.
func Invalid(op, format string, args ...any) error {
	return &Error{Kind: InvalidInput, Op: op, Err: fmt.Errorf(format, args...)}
}

// NoSelectionFor returns a NoSelection error for op.
func NoSelectionFor(op string) error {
	return &Error{Kind: NoSelection, Op: op}
}

// KindOf reports the Kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
