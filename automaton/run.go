package automaton

// Run Returns true if the deterministic automaton a accepts s, following Step from the initial state.
// For automata with nondeterminism or epsilon moves use Accept.
func Run(a *Automaton, s string) bool {
	state, ok := a.Initial()
	if !ok {
		return false
	}
	if s == a.epsilonString {
		return a.IsFinal(state)
	}

	for _, v := range s {
		nextState, ok := a.Step(state, v)
		if !ok {
			return false
		}
		state = nextState
	}
	return a.IsFinal(state)
}
