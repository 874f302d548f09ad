package automaton

import "slices"

// RunAutomaton is a deterministic automaton compiled into a dense transition table, for answering
// many queries against the same language.
type RunAutomaton struct {
	alphabet []rune
	size     int
	initial  int

	// transitions[state*len(alphabet)+class] is the next state, or -1.
	transitions []int
	accept      []bool

	epsilonString string
}

// NewRunAutomaton compiles a. Nondeterministic automata are determinized first (see Minimize for
// the meaning of determinizeWorkLimit).
func NewRunAutomaton(a *Automaton, determinizeWorkLimit int) (*RunAutomaton, error) {
	if a.initial < 0 {
		return nil, ErrNoInitialState
	}
	if !a.IsDeterministic() {
		var err error
		if a.HasEpsilonTransitions() {
			if a, err = RemoveEpsilon(a); err != nil {
				return nil, err
			}
		}
		if a, err = Determinize(a, determinizeWorkLimit); err != nil {
			return nil, err
		}
	}

	states := a.States()
	index := make(map[int]int, len(states))
	for i, s := range states {
		index[s] = i
	}
	initial, _ := a.Initial()

	alphabet := a.Alphabet()
	r := &RunAutomaton{
		alphabet:      alphabet,
		size:          len(states),
		initial:       index[initial],
		transitions:   make([]int, len(states)*len(alphabet)),
		accept:        make([]bool, len(states)),
		epsilonString: a.epsilonString,
	}
	for i, s := range states {
		r.accept[i] = a.IsFinal(s)
		for c, sym := range alphabet {
			dest, ok := a.Step(s, sym)
			if !ok {
				r.transitions[i*len(alphabet)+c] = -1
				continue
			}
			r.transitions[i*len(alphabet)+c] = index[dest]
		}
	}
	return r, nil
}

// Size returns the number of states.
func (r *RunAutomaton) Size() int {
	return r.size
}

// Initial returns the dense id of the initial state.
func (r *RunAutomaton) Initial() int {
	return r.initial
}

// IsAccept returns true if state is an accept state.
func (r *RunAutomaton) IsAccept(state int) bool {
	return r.accept[state]
}

// Step returns the state reached from state on sym, or -1.
func (r *RunAutomaton) Step(state int, sym rune) int {
	c, found := slices.BinarySearch(r.alphabet, sym)
	if !found {
		return -1
	}
	return r.transitions[state*len(r.alphabet)+c]
}

// Run returns true if s is accepted.
func (r *RunAutomaton) Run(s string) bool {
	if s == r.epsilonString {
		return r.accept[r.initial]
	}
	p := r.initial
	for _, sym := range s {
		p = r.Step(p, sym)
		if p == -1 {
			return false
		}
	}
	return r.accept[p]
}
