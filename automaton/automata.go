package automaton

// Automata builds small automata, mostly useful as building blocks and fixtures.
type Automata struct {
	opts []Option
}

// NewAutomata returns a factory whose automata are created with opts.
func NewAutomata(opts ...Option) *Automata {
	return &Automata{opts: opts}
}

// MakeEmpty
// Returns a new (deterministic) automaton with the empty language.
func (f *Automata) MakeEmpty() *Automaton {
	a := NewAutomaton(f.opts...)
	a.AddState(0)
	_ = a.SetInitial(0)
	return a
}

// MakeEmptyString
// Returns a new (deterministic) automaton that accepts only the empty string.
func (f *Automata) MakeEmptyString() *Automaton {
	a := f.MakeEmpty()
	_ = a.AddFinal(0)
	return a
}

// MakeString
// Returns a new (deterministic) automaton that accepts exactly s.
func (f *Automata) MakeString(s string) (*Automaton, error) {
	a := f.MakeEmpty()
	state := 0
	for _, sym := range s {
		a.AddState(state + 1)
		if err := a.AddTransition(state, state+1, sym); err != nil {
			return nil, err
		}
		state++
	}
	if err := a.AddFinal(state); err != nil {
		return nil, err
	}
	return a, nil
}

// MakeAnyString
// Returns a new (deterministic) automaton that accepts all strings over alphabet.
func (f *Automata) MakeAnyString(alphabet string) (*Automaton, error) {
	a := f.MakeEmptyString()
	for _, sym := range alphabet {
		if err := a.AddTransition(0, 0, sym); err != nil {
			return nil, err
		}
	}
	return a, nil
}
