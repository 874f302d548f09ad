package pushdown

import (
	"errors"
	"fmt"
)

// ErrResourceExhausted matches every *ResourceExhaustionError through errors.Is.
var ErrResourceExhausted = errors.New("pushdown: resource exhausted")

// ResourceExhaustionError is returned when a search outgrows one of the configured bounds.
type ResourceExhaustionError struct {
	// Limit is "depth" or "stack".
	Limit string
	Bound int
}

func (e *ResourceExhaustionError) Error() string {
	return fmt.Sprintf("pushdown: %s limit of %d exceeded", e.Limit, e.Bound)
}

func (e *ResourceExhaustionError) Unwrap() error {
	return ErrResourceExhausted
}

// UnknownSymbolError reports a transition using a stack symbol outside the stack alphabet.
type UnknownSymbolError struct {
	Symbol rune
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("pushdown: unknown stack symbol %q", e.Symbol)
}
