package automaton

import (
	"errors"
	"fmt"
)

var (
	// ErrNoInitialState is returned by transformations of an automaton whose
	// initial state was never set.
	ErrNoInitialState = errors.New("automaton: initial state is not set")

	// ErrTooComplexToDeterminize is returned when subset construction would
	// produce more states than the work limit allows.
	ErrTooComplexToDeterminize = errors.New("automaton: determinize work limit exceeded")
)

// UnknownStateError reports a reference to a state that was never declared.
type UnknownStateError struct {
	Op    string
	State int
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("automaton: %s: unknown state %d", e.Op, e.State)
}
