package automaton

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// DefaultDeterminizeWorkLimit bounds the number of DFA states subset construction may create.
const DefaultDeterminizeWorkLimit = 10000

// Determinize Determinizes the given automaton with the subset construction.
// Worst case complexity: exponential in number of states.
//
// Sets of states are discovered breadth-first starting from {initial}; each new set receives the next
// integer id, so the initial state of the result is always 0. A set is final when it contains a final
// state of a. Transitions are added only once every reachable set has an id.
//
// Epsilon transitions are not folded in: the epsilon symbol is treated like any other label. Call
// RemoveEpsilon first if a has epsilon moves.
//
// workLimit is the maximum number of DFA states to create; ErrTooComplexToDeterminize is returned
// when more would be needed. A non-positive limit disables the check.
func Determinize(a *Automaton, workLimit int) (*Automaton, error) {
	if a.initial < 0 {
		return nil, ErrNoInitialState
	}

	succ := a.successors()
	n := uint(a.NumStates())

	first := bitset.New(n)
	first.Set(uint(a.initial))
	start := NewStateSet(first)

	ids := NewHashMap[int](WithCapacity(16))
	ids.Set(start, 0)

	// subsets doubles as the BFS queue: ids are handed out in the order sets are dequeued.
	subsets := []*StateSet{start}
	moves := make([]map[rune]int, 0)

	for next := 0; next < len(subsets); next++ {
		current := subsets[next]

		union := make(map[rune]*bitset.BitSet)
		for _, s := range current.GetArray() {
			for sym, dests := range succ[s] {
				u, ok := union[sym]
				if !ok {
					u = bitset.New(n)
					union[sym] = u
				}
				u.InPlaceUnion(dests)
			}
		}

		syms := make([]rune, 0, len(union))
		for sym := range union {
			syms = append(syms, sym)
		}
		slices.Sort(syms)

		step := make(map[rune]int, len(syms))
		for _, sym := range syms {
			target := NewStateSet(union[sym])
			id, seen := ids.Get(target)
			if !seen {
				if workLimit > 0 && len(subsets) >= workLimit {
					return nil, ErrTooComplexToDeterminize
				}
				id = len(subsets)
				ids.Set(target, id)
				subsets = append(subsets, target)
			}
			step[sym] = id
		}
		moves = append(moves, step)
	}

	dfa := newLike(a)
	for id, set := range subsets {
		dfa.AddState(id)
		if set.Intersects(a.finals) {
			if err := dfa.AddFinal(id); err != nil {
				return nil, err
			}
		}
	}
	if err := dfa.SetInitial(0); err != nil {
		return nil, err
	}

	for source, step := range moves {
		for sym, dest := range step {
			if err := dfa.AddTransition(source, dest, sym); err != nil {
				return nil, err
			}
		}
	}

	return dfa, nil
}
