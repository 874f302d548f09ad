package automaton

import "github.com/bits-and-blooms/bitset"

// Minimize
// Minimizes (and determinizes if not already deterministic) the given automaton using Hopcroft's algorithm.
//
// Two passes run on the deterministic automaton: states unreachable from the initial state are removed,
// then the states are partitioned into blocks of indistinguishable states, starting from {final,
// non-final}. Every block becomes one state of the result. Result ids are handed out breadth-first from
// the initial block over symbols in ascending order, so minimizing twice yields an identical automaton.
//
// A nondeterministic input has its epsilon moves removed and is determinized first, with
// determinizeWorkLimit as for Determinize.
//
// A missing transition is not completed with a sink state. A state whose move leads into a dead
// non-final state therefore stays apart from one that has no move at all, so a partial DFA may keep
// more states than its language needs. Complete the automaton first when that matters.
func Minimize(a *Automaton, determinizeWorkLimit int) (*Automaton, error) {
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

	reachable, err := RemoveUnreachable(a)
	if err != nil {
		return nil, err
	}
	return collapse(reachable, refine(reachable))
}

// refine computes the coarsest partition of a's state indexes that separates final from non-final
// states and is stable under every symbol. a must be deterministic. Only explicit transitions split
// blocks; no sink state is assumed.
func refine(a *Automaton) []*bitset.BitSet {
	n := uint(a.NumStates())
	alphabet := a.Alphabet()

	// pred[sym][dest] holds the indexes moving to dest on sym.
	pred := make(map[rune]map[int]*bitset.BitSet, len(alphabet))
	for source, byDest := range a.transitions {
		for dest, labels := range byDest {
			for sym := range labels {
				bySym, ok := pred[sym]
				if !ok {
					bySym = make(map[int]*bitset.BitSet)
					pred[sym] = bySym
				}
				p, ok := bySym[dest]
				if !ok {
					p = bitset.New(n)
					bySym[dest] = p
				}
				p.Set(uint(source))
			}
		}
	}

	finals := bitset.New(n)
	nonFinals := bitset.New(n)
	for i := 0; i < a.NumStates(); i++ {
		if a.finals.Test(uint(i)) {
			finals.Set(uint(i))
		} else {
			nonFinals.Set(uint(i))
		}
	}

	var blocks []*bitset.BitSet
	var queued []bool
	var workList []int
	enqueue := func(i int) {
		workList = append(workList, i)
		queued[i] = true
	}
	for _, b := range []*bitset.BitSet{finals, nonFinals} {
		if b.Any() {
			blocks = append(blocks, b)
			queued = append(queued, false)
			enqueue(len(blocks) - 1)
		}
	}

	for len(workList) > 0 {
		idx := workList[0]
		workList = workList[1:]
		queued[idx] = false
		splitter := blocks[idx].Clone()

		for _, sym := range alphabet {
			inbound := bitset.New(n)
			for d, ok := splitter.NextSet(0); ok; d, ok = splitter.NextSet(d + 1) {
				if p, found := pred[sym][int(d)]; found {
					inbound.InPlaceUnion(p)
				}
			}
			if inbound.None() {
				continue
			}

			for i, count := 0, len(blocks); i < count; i++ {
				inter := blocks[i].Intersection(inbound)
				if inter.None() {
					continue
				}
				diff := blocks[i].Difference(inbound)
				if diff.None() {
					continue
				}

				blocks[i] = inter
				blocks = append(blocks, diff)
				queued = append(queued, false)
				j := len(blocks) - 1

				switch {
				case queued[i]:
					// i stays queued for its first half; the second half joins it.
					enqueue(j)
				case inter.Count() <= diff.Count():
					enqueue(i)
				default:
					enqueue(j)
				}
			}
		}
	}
	return blocks
}

// collapse builds the quotient automaton of a by blocks.
func collapse(a *Automaton, blocks []*bitset.BitSet) (*Automaton, error) {
	blockOf := make(map[int]int, a.NumStates())
	for i, b := range blocks {
		for s, ok := b.NextSet(0); ok; s, ok = b.NextSet(s + 1) {
			blockOf[int(s)] = i
		}
	}

	representative := func(block int) int {
		s, _ := blocks[block].NextSet(0)
		return int(s)
	}

	alphabet := a.Alphabet()
	ids := map[int]int{blockOf[a.initial]: 0}
	order := []int{blockOf[a.initial]}
	for k := 0; k < len(order); k++ {
		rep := representative(order[k])
		for _, sym := range alphabet {
			dest := a.step(rep, sym)
			if dest < 0 {
				continue
			}
			if _, ok := ids[blockOf[dest]]; !ok {
				ids[blockOf[dest]] = len(order)
				order = append(order, blockOf[dest])
			}
		}
	}

	result := newLike(a)
	for id, block := range order {
		result.AddState(id)
		if a.finals.Test(uint(representative(block))) {
			if err := result.AddFinal(id); err != nil {
				return nil, err
			}
		}
	}
	if err := result.SetInitial(0); err != nil {
		return nil, err
	}

	for id, block := range order {
		rep := representative(block)
		for _, sym := range alphabet {
			dest := a.step(rep, sym)
			if dest < 0 {
				continue
			}
			if err := result.AddTransition(id, ids[blockOf[dest]], sym); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}
