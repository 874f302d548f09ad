package desc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnexpectedEOF is the cause of a SyntaxError raised when the input ends inside a description.
var ErrUnexpectedEOF = errors.New("desc: unexpected end of input")

// SyntaxError locates a problem in a text description.
type SyntaxError struct {
	Cause      error
	SourceName string
	Line       int
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	if e.SourceName != "" {
		fmt.Fprintf(&b, "%v: ", e.SourceName)
	}
	if e.Line != 0 {
		fmt.Fprintf(&b, "line %v: ", e.Line)
	}
	fmt.Fprintf(&b, "error: %v", e.Cause)
	return b.String()
}

func (e *SyntaxError) Unwrap() error {
	return e.Cause
}
