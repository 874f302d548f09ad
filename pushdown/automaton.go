// Package pushdown simulates nondeterministic pushdown automata by backtracking search.
package pushdown

import (
	"slices"

	"github.com/bits-and-blooms/bitset"

	"github.com/geange/langrec/automaton"
)

// Transition moves from From to To when Match is the next input symbol (or the lambda symbol) and
// Pop is on top of the stack (or the lambda symbol). Pop is removed and then Push is pushed in
// order, so its last symbol ends on top.
type Transition struct {
	From, To int
	Match    rune
	Pop      rune
	Push     []rune
}

func (t Transition) equal(o Transition) bool {
	return t.From == o.From && t.To == o.To && t.Match == o.Match && t.Pop == o.Pop && slices.Equal(t.Push, o.Push)
}

// Automaton is a pushdown automaton. The stack is empty when a run starts. State ids are arbitrary
// ints.
type Automaton struct {
	// ids[i] is the state with index i; index is the inverse.
	ids   []int
	index map[int]int

	// by index
	finals *bitset.BitSet

	// index of the initial state, -1 while unset
	initial int

	stackSymbols map[rune]struct{}

	// transitions[from][to] in the order they were added
	transitions map[int]map[int][]Transition

	opts options
}

// NewAutomaton creates an empty pushdown automaton.
func NewAutomaton(opts ...Option) *Automaton {
	o := options{
		lambda:   DefaultLambda,
		maxDepth: DefaultMaxDepth,
		maxStack: DefaultMaxStack,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Automaton{
		index:        map[int]int{},
		finals:       bitset.New(0),
		initial:      -1,
		stackSymbols: map[rune]struct{}{},
		transitions:  map[int]map[int][]Transition{},
		opts:         o,
	}
}

// AddState declares s. Declaring an existing state is a no-op.
func (p *Automaton) AddState(s int) {
	if _, ok := p.index[s]; ok {
		return
	}
	p.index[s] = len(p.ids)
	p.ids = append(p.ids, s)
}

func (p *Automaton) hasState(s int) bool {
	_, ok := p.index[s]
	return ok
}

// SetInitial makes s the initial state.
func (p *Automaton) SetInitial(s int) error {
	i, ok := p.index[s]
	if !ok {
		return &automaton.UnknownStateError{Op: "set initial", State: s}
	}
	p.initial = i
	return nil
}

// AddFinal marks s as final.
func (p *Automaton) AddFinal(s int) error {
	i, ok := p.index[s]
	if !ok {
		return &automaton.UnknownStateError{Op: "add final", State: s}
	}
	p.finals.Set(uint(i))
	return nil
}

// AddStackSymbol declares sym as a stack symbol. The lambda symbol is never a stack symbol.
func (p *Automaton) AddStackSymbol(sym rune) {
	if sym != p.opts.lambda {
		p.stackSymbols[sym] = struct{}{}
	}
}

// AddTransition adds t after checking its states and stack symbols. Adding the same transition twice
// has no effect.
func (p *Automaton) AddTransition(t Transition) error {
	for _, s := range []int{t.From, t.To} {
		if !p.hasState(s) {
			return &automaton.UnknownStateError{Op: "add transition", State: s}
		}
	}
	if t.Pop != p.opts.lambda {
		if _, ok := p.stackSymbols[t.Pop]; !ok {
			return &UnknownSymbolError{Symbol: t.Pop}
		}
	}
	for _, sym := range t.Push {
		if _, ok := p.stackSymbols[sym]; !ok {
			return &UnknownSymbolError{Symbol: sym}
		}
	}

	byDest, ok := p.transitions[t.From]
	if !ok {
		byDest = map[int][]Transition{}
		p.transitions[t.From] = byDest
	}
	for _, existing := range byDest[t.To] {
		if existing.equal(t) {
			return nil
		}
	}
	t.Push = slices.Clone(t.Push)
	byDest[t.To] = append(byDest[t.To], t)
	return nil
}

// Initial returns the initial state; false if unset.
func (p *Automaton) Initial() (int, bool) {
	if p.initial < 0 {
		return 0, false
	}
	return p.ids[p.initial], true
}

// IsFinal reports whether s is final.
func (p *Automaton) IsFinal(s int) bool {
	i, ok := p.index[s]
	return ok && p.finals.Test(uint(i))
}

// Lambda returns the lambda symbol.
func (p *Automaton) Lambda() rune {
	return p.opts.lambda
}

// States returns the states in ascending order.
func (p *Automaton) States() []int {
	out := slices.Clone(p.ids)
	slices.Sort(out)
	return out
}

// Finals returns the final states in ascending order.
func (p *Automaton) Finals() []int {
	out := make([]int, 0, p.finals.Count())
	for i, ok := p.finals.NextSet(0); ok; i, ok = p.finals.NextSet(i + 1) {
		out = append(out, p.ids[i])
	}
	slices.Sort(out)
	return out
}

// StackSymbols returns the stack alphabet in ascending order.
func (p *Automaton) StackSymbols() []rune {
	out := make([]rune, 0, len(p.stackSymbols))
	for sym := range p.stackSymbols {
		out = append(out, sym)
	}
	slices.Sort(out)
	return out
}

// Transitions returns every transition ordered by source, then destination, then insertion.
func (p *Automaton) Transitions() []Transition {
	var out []Transition
	for _, from := range sortedKeys(p.transitions) {
		byDest := p.transitions[from]
		for _, to := range sortedKeys(byDest) {
			out = append(out, byDest[to]...)
		}
	}
	return out
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
