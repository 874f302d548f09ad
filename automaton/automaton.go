package automaton

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Automaton Represents a finite automaton over integer states and rune symbols. States must be declared
// with AddState before any transition, initial or final designation refers to them. Transitions are kept
// grouped by source state, then by destination state, as sets of labels; adding the same transition
// twice has no effect. One symbol, the epsilon symbol, labels moves that consume no input, and one
// input text, the epsilon string, stands for the empty input.
//
// The same type serves DFAs, NFAs and NFAs with epsilon moves; IsDeterministic tells which one a
// value currently is. Transformations (Determinize, RemoveEpsilon, RemoveUnreachable, Minimize)
// return new values and never modify their argument.
//
// State ids are arbitrary ints. Internally every state gets a dense index in declaration order, and
// all scratch sets of the algorithms are indexed by it.
type Automaton struct {
	// ids[i] is the state with index i; index is the inverse.
	ids   []int
	index map[int]int

	// by index
	finals *bitset.BitSet

	// source -> destination -> labels, by index
	transitions map[int]map[int]map[rune]struct{}

	// index of the initial state, -1 while unset
	initial       int
	epsilon       rune
	epsilonString string
}

func NewAutomaton(opts ...Option) *Automaton {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Automaton{
		index:         make(map[int]int),
		finals:        bitset.New(0),
		transitions:   make(map[int]map[int]map[rune]struct{}),
		initial:       -1,
		epsilon:       o.epsilon,
		epsilonString: o.epsilonString,
	}
}

// newLike returns an empty automaton with the same epsilon configuration as a.
func newLike(a *Automaton) *Automaton {
	return NewAutomaton(WithEpsilon(a.epsilon), WithEpsilonString(a.epsilonString))
}

// AddState Declares state s. Declaring an existing state is a no-op.
func (a *Automaton) AddState(s int) {
	if _, ok := a.index[s]; ok {
		return
	}
	a.index[s] = len(a.ids)
	a.ids = append(a.ids, s)
}

// HasState Returns true if s was declared.
func (a *Automaton) HasState(s int) bool {
	_, ok := a.index[s]
	return ok
}

// AddTransition Adds a transition from source to dest labelled sym. Both states must exist.
func (a *Automaton) AddTransition(source, dest int, sym rune) error {
	from, ok := a.index[source]
	if !ok {
		return &UnknownStateError{Op: "add transition", State: source}
	}
	to, ok := a.index[dest]
	if !ok {
		return &UnknownStateError{Op: "add transition", State: dest}
	}

	byDest, ok := a.transitions[from]
	if !ok {
		byDest = make(map[int]map[rune]struct{})
		a.transitions[from] = byDest
	}
	labels, ok := byDest[to]
	if !ok {
		labels = make(map[rune]struct{})
		byDest[to] = labels
	}
	labels[sym] = struct{}{}
	return nil
}

// SetInitial Makes s the initial state.
func (a *Automaton) SetInitial(s int) error {
	i, ok := a.index[s]
	if !ok {
		return &UnknownStateError{Op: "set initial", State: s}
	}
	a.initial = i
	return nil
}

// AddFinal Marks s as a final (accept) state.
func (a *Automaton) AddFinal(s int) error {
	i, ok := a.index[s]
	if !ok {
		return &UnknownStateError{Op: "add final", State: s}
	}
	a.finals.Set(uint(i))
	return nil
}

// Initial Returns the initial state; false if none was set.
func (a *Automaton) Initial() (int, bool) {
	if a.initial < 0 {
		return 0, false
	}
	return a.ids[a.initial], true
}

// IsFinal Returns true if s is a final state.
func (a *Automaton) IsFinal(s int) bool {
	i, ok := a.index[s]
	return ok && a.finals.Test(uint(i))
}

func (a *Automaton) Epsilon() rune {
	return a.epsilon
}

func (a *Automaton) EpsilonString() string {
	return a.epsilonString
}

// NumStates How many states this automaton has.
func (a *Automaton) NumStates() int {
	return len(a.ids)
}

// NumTransitions How many (source, dest, label) triples this automaton has.
func (a *Automaton) NumTransitions() int {
	n := 0
	for _, byDest := range a.transitions {
		for _, labels := range byDest {
			n += len(labels)
		}
	}
	return n
}

// States Returns all states in ascending order.
func (a *Automaton) States() []int {
	out := slices.Clone(a.ids)
	slices.Sort(out)
	return out
}

// Finals Returns the final states in ascending order.
func (a *Automaton) Finals() []int {
	return a.idsOf(a.finals)
}

// Destinations Returns, in ascending order, the states reachable from source by a single transition.
func (a *Automaton) Destinations(source int) []int {
	from, ok := a.index[source]
	if !ok {
		return []int{}
	}
	byDest := a.transitions[from]
	dests := make([]int, 0, len(byDest))
	for to := range byDest {
		dests = append(dests, a.ids[to])
	}
	slices.Sort(dests)
	return dests
}

// Labels Returns the sorted labels of the transitions from source to dest.
func (a *Automaton) Labels(source, dest int) []rune {
	from, ok := a.index[source]
	if !ok {
		return []rune{}
	}
	to, ok := a.index[dest]
	if !ok {
		return []rune{}
	}
	return sortedRunes(a.transitions[from][to])
}

// hasLabel reports whether the states with indexes from and to are joined by sym.
func (a *Automaton) hasLabel(from, to int, sym rune) bool {
	_, ok := a.transitions[from][to][sym]
	return ok
}

// Alphabet Returns every symbol used by a transition, epsilon excluded, in ascending order.
func (a *Automaton) Alphabet() []rune {
	set := make(map[rune]struct{})
	for _, byDest := range a.transitions {
		for _, labels := range byDest {
			for sym := range labels {
				if sym != a.epsilon {
					set[sym] = struct{}{}
				}
			}
		}
	}
	return sortedRunes(set)
}

// HasEpsilonTransitions Returns true if some transition is labelled with the epsilon symbol.
func (a *Automaton) HasEpsilonTransitions() bool {
	for _, byDest := range a.transitions {
		for _, labels := range byDest {
			if _, ok := labels[a.epsilon]; ok {
				return true
			}
		}
	}
	return false
}

// IsDeterministic Returns true if this automaton has no epsilon transitions and, for every state,
// at most one transition for each label.
func (a *Automaton) IsDeterministic() bool {
	for _, byDest := range a.transitions {
		seen := make(map[rune]struct{})
		for _, labels := range byDest {
			for sym := range labels {
				if sym == a.epsilon {
					return false
				}
				if _, dup := seen[sym]; dup {
					return false
				}
				seen[sym] = struct{}{}
			}
		}
	}
	return true
}

// Step Performs lookup in transitions, assuming determinism.
//
// Returns: destination state, false if no matching outgoing transition. When the automaton is not
// deterministic the smallest matching destination is returned.
func (a *Automaton) Step(state int, label rune) (int, bool) {
	from, ok := a.index[state]
	if !ok {
		return 0, false
	}
	for _, dest := range a.Destinations(state) {
		if a.hasLabel(from, a.index[dest], label) {
			return dest, true
		}
	}
	return 0, false
}

// step is Step over indexes for deterministic automata: -1 if there is no move.
func (a *Automaton) step(from int, label rune) int {
	for to, labels := range a.transitions[from] {
		if _, ok := labels[label]; ok {
			return to
		}
	}
	return -1
}

// successors groups the transitions leaving every state by label: index -> label -> destinations.
func (a *Automaton) successors() []map[rune]*bitset.BitSet {
	n := uint(a.NumStates())
	succ := make([]map[rune]*bitset.BitSet, a.NumStates())
	for from, byDest := range a.transitions {
		bySym := make(map[rune]*bitset.BitSet)
		for to, labels := range byDest {
			for sym := range labels {
				dests, ok := bySym[sym]
				if !ok {
					dests = bitset.New(n)
					bySym[sym] = dests
				}
				dests.Set(uint(to))
			}
		}
		succ[from] = bySym
	}
	return succ
}

// idsOf translates a set of indexes into the sorted ids of their states.
func (a *Automaton) idsOf(b *bitset.BitSet) []int {
	out := make([]int, 0, b.Count())
	for _, i := range members(b) {
		out = append(out, a.ids[i])
	}
	slices.Sort(out)
	return out
}

func members(b *bitset.BitSet) []int {
	out := make([]int, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

func sortedRunes(set map[rune]struct{}) []rune {
	out := make([]rune, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}
