package automaton

import "github.com/bits-and-blooms/bitset"

// RemoveEpsilon Returns an automaton without epsilon transitions that accepts the same language.
// For every state s and every state c in the epsilon closure of s, each non-epsilon move of c is copied
// to s; s becomes final when its closure holds a final state. State ids are preserved.
func RemoveEpsilon(a *Automaton) (*Automaton, error) {
	result := newLike(a)
	for _, s := range a.ids {
		result.AddState(s)
	}
	if a.initial >= 0 {
		if err := result.SetInitial(a.ids[a.initial]); err != nil {
			return nil, err
		}
	}

	for i, s := range a.ids {
		closure := epsilonClosure(a, i)
		if closure.IntersectionCardinality(a.finals) > 0 {
			if err := result.AddFinal(s); err != nil {
				return nil, err
			}
		}
		for c, ok := closure.NextSet(0); ok; c, ok = closure.NextSet(c + 1) {
			for to, labels := range a.transitions[int(c)] {
				for sym := range labels {
					if sym == a.epsilon {
						continue
					}
					if err := result.AddTransition(s, a.ids[to], sym); err != nil {
						return nil, err
					}
				}
			}
		}
	}
	return result, nil
}

// epsilonClosure returns the indexes reachable from index s through epsilon moves only, s included.
func epsilonClosure(a *Automaton, s int) *bitset.BitSet {
	closure := bitset.New(uint(a.NumStates()))
	closure.Set(uint(s))
	workList := []int{s}
	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]
		for dest, labels := range a.transitions[state] {
			if _, ok := labels[a.epsilon]; !ok {
				continue
			}
			if !closure.Test(uint(dest)) {
				closure.Set(uint(dest))
				workList = append(workList, dest)
			}
		}
	}
	return closure
}

// getLiveStatesFromInitial returns the indexes of the states reachable from the initial state.
func getLiveStatesFromInitial(a *Automaton) *bitset.BitSet {
	live := bitset.New(uint(a.NumStates()))
	if a.initial < 0 {
		return live
	}
	live.Set(uint(a.initial))
	workList := []int{a.initial}

	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for dest := range a.transitions[s] {
			if !live.Test(uint(dest)) {
				live.Set(uint(dest))
				workList = append(workList, dest)
			}
		}
	}
	return live
}

// RemoveUnreachable Returns a copy of a without the states that cannot be reached from the initial
// state, and without every transition touching them. State ids are preserved.
func RemoveUnreachable(a *Automaton) (*Automaton, error) {
	if a.initial < 0 {
		return nil, ErrNoInitialState
	}
	live := getLiveStatesFromInitial(a)

	result := newLike(a)
	for _, i := range members(live) {
		s := a.ids[i]
		result.AddState(s)
		if a.finals.Test(uint(i)) {
			if err := result.AddFinal(s); err != nil {
				return nil, err
			}
		}
	}
	if err := result.SetInitial(a.ids[a.initial]); err != nil {
		return nil, err
	}

	for _, i := range members(live) {
		for to, labels := range a.transitions[i] {
			// to is live whenever i is.
			for sym := range labels {
				if err := result.AddTransition(a.ids[i], a.ids[to], sym); err != nil {
					return nil, err
				}
			}
		}
	}
	return result, nil
}

// IsEmpty Returns true if the given automaton accepts no strings.
func IsEmpty(a *Automaton) bool {
	if a.initial < 0 {
		return true
	}
	if a.finals.Test(uint(a.initial)) {
		return false
	}
	live := getLiveStatesFromInitial(a)
	return live.IntersectionCardinality(a.finals) == 0
}
