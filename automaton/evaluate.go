package automaton

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Accept Returns true if a accepts input. The automaton may be nondeterministic and may have epsilon
// transitions. If input equals the epsilon string the answer is whether the initial state is final.
func Accept(a *Automaton, input string) bool {
	return AcceptWithPath(a, input) != nil
}

// AcceptWithPath Returns the first accepting execution found for input as the sequence of visited states,
// initial state first, or nil if input is rejected.
func AcceptWithPath(a *Automaton, input string) []int {
	paths := evaluate(a, input, true)
	if len(paths) == 0 {
		return nil
	}
	return paths[0]
}

// AcceptWithPaths Returns every distinct accepting execution for input; an empty result means rejection.
// The order of the paths follows ascending destination states at every branch.
func AcceptWithPaths(a *Automaton, input string) [][]int {
	return evaluate(a, input, false)
}

func evaluate(a *Automaton, input string, firstOnly bool) [][]int {
	if a.initial < 0 {
		return nil
	}
	if input == a.epsilonString {
		if a.finals.Test(uint(a.initial)) {
			return [][]int{{a.ids[a.initial]}}
		}
		return nil
	}

	s := newPathSearch(a, []rune(input), firstOnly)
	s.visit(a.initial, 0)
	return s.found
}

// pathSearch holds the state of one depth-first acceptance search.
type pathSearch struct {
	a         *Automaton
	input     []rune
	firstOnly bool

	// adj[i] holds the destinations of the state with index i, ordered by ascending id.
	adj [][]int

	// state ids
	path []int

	// chains[pos] holds the indexes entered by epsilon moves in the current chain at position pos.
	// It is empty whenever the search arrives at pos by consuming a symbol.
	chains []*bitset.BitSet

	seen  map[string]struct{}
	found [][]int
}

func newPathSearch(a *Automaton, input []rune, firstOnly bool) *pathSearch {
	adj := make([][]int, a.NumStates())
	for from, byDest := range a.transitions {
		for to := range byDest {
			adj[from] = append(adj[from], to)
		}
		slices.SortFunc(adj[from], func(x, y int) int { return cmp.Compare(a.ids[x], a.ids[y]) })
	}
	chains := make([]*bitset.BitSet, len(input)+1)
	for i := range chains {
		chains[i] = bitset.New(uint(a.NumStates()))
	}
	return &pathSearch{
		a:         a,
		input:     input,
		firstOnly: firstOnly,
		adj:       adj,
		path:      []int{a.ids[a.initial]},
		chains:    chains,
		seen:      make(map[string]struct{}),
	}
}

// visit explores every execution continuing from the state with index state at input position pos.
// It returns true once the search should stop.
func (s *pathSearch) visit(state, pos int) bool {
	if pos == len(s.input) && s.a.finals.Test(uint(state)) {
		s.record()
		return s.firstOnly
	}

	for _, dest := range s.adj[state] {
		if s.a.hasLabel(state, dest, s.a.epsilon) && !s.chains[pos].Test(uint(dest)) {
			s.chains[pos].Set(uint(dest))
			s.path = append(s.path, s.a.ids[dest])
			stop := s.visit(dest, pos)
			s.path = s.path[:len(s.path)-1]
			s.chains[pos].Clear(uint(dest))
			if stop {
				return true
			}
		}

		if pos < len(s.input) && s.input[pos] != s.a.epsilon && s.a.hasLabel(state, dest, s.input[pos]) {
			s.path = append(s.path, s.a.ids[dest])
			stop := s.visit(dest, pos+1)
			s.path = s.path[:len(s.path)-1]
			if stop {
				return true
			}
		}
	}
	return false
}

func (s *pathSearch) record() {
	var key strings.Builder
	for _, state := range s.path {
		key.WriteString(strconv.Itoa(state))
		key.WriteByte(' ')
	}
	if _, dup := s.seen[key.String()]; dup {
		return
	}
	s.seen[key.String()] = struct{}{}
	s.found = append(s.found, append([]int(nil), s.path...))
}
