package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// endsWithAB accepts the strings over {a, b} ending in "ab".
func endsWithAB(t *testing.T) *Automaton {
	return newTestAutomaton(t, []int{0, 1, 2},
		[]edge{{0, 0, 'a'}, {0, 1, 'a'}, {0, 0, 'b'}, {1, 2, 'b'}}, 0, []int{2})
}

func TestDeterminize(t *testing.T) {
	dfa, err := Determinize(endsWithAB(t), DefaultDeterminizeWorkLimit)
	require.NoError(t, err)

	assert.True(t, dfa.IsDeterministic())
	initial, _ := dfa.Initial()
	assert.Equal(t, 0, initial)
	// {0} -> 0, {0,1} -> 1, {0,2} -> 2
	want := newTestAutomaton(t, []int{0, 1, 2},
		[]edge{{0, 1, 'a'}, {0, 0, 'b'}, {1, 1, 'a'}, {1, 2, 'b'}, {2, 1, 'a'}, {2, 0, 'b'}}, 0, []int{2})
	assert.Equal(t, structure(want), structure(dfa))
}

func TestDeterminize_SameLanguage(t *testing.T) {
	tests := []struct {
		name   string
		states []int
		edges  []edge
		finals []int
	}{
		{
			name:   "ends with ab",
			states: []int{0, 1, 2},
			edges:  []edge{{0, 0, 'a'}, {0, 1, 'a'}, {0, 0, 'b'}, {1, 2, 'b'}},
			finals: []int{2},
		},
		{
			name:   "third from last is a",
			states: []int{0, 1, 2, 3},
			edges: []edge{
				{0, 0, 'a'}, {0, 0, 'b'}, {0, 1, 'a'},
				{1, 2, 'a'}, {1, 2, 'b'}, {2, 3, 'a'}, {2, 3, 'b'},
			},
			finals: []int{3},
		},
		{
			name:   "partial with dead ends",
			states: []int{0, 1, 2, 3},
			edges:  []edge{{0, 1, 'a'}, {0, 2, 'a'}, {1, 3, 'b'}, {2, 2, 'a'}},
			finals: []int{0, 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nfa := newTestAutomaton(t, tt.states, tt.edges, 0, tt.finals)
			dfa, err := Determinize(nfa, DefaultDeterminizeWorkLimit)
			require.NoError(t, err)
			require.True(t, dfa.IsDeterministic())

			for _, w := range words("ab", 6) {
				assert.Equal(t, Accept(nfa, w), Run(dfa, w), "input %q", w)
			}
		})
	}
}

func TestDeterminize_SubsetIdsFollowDiscovery(t *testing.T) {
	// Sets reachable on the smaller symbol are numbered first.
	nfa := newTestAutomaton(t, []int{0, 1, 2, 3},
		[]edge{{0, 3, 'b'}, {0, 1, 'a'}, {0, 2, 'a'}}, 0, []int{3})
	dfa, err := Determinize(nfa, 0)
	require.NoError(t, err)

	onA, _ := dfa.Step(0, 'a')
	onB, _ := dfa.Step(0, 'b')
	assert.Equal(t, 1, onA)
	assert.Equal(t, 2, onB)
	assert.Equal(t, []int{2}, dfa.Finals())
}

func TestDeterminize_Errors(t *testing.T) {
	_, err := Determinize(NewAutomaton(), DefaultDeterminizeWorkLimit)
	assert.ErrorIs(t, err, ErrNoInitialState)

	_, err = Determinize(endsWithAB(t), 2)
	assert.ErrorIs(t, err, ErrTooComplexToDeterminize)

	_, err = Determinize(endsWithAB(t), 3)
	assert.NoError(t, err)
}

func TestDeterminize_EpsilonIsOrdinary(t *testing.T) {
	a := newTestAutomaton(t, []int{0, 1}, []edge{{0, 1, '0'}}, 0, []int{1})
	dfa, err := Determinize(a, DefaultDeterminizeWorkLimit)
	require.NoError(t, err)

	dest, ok := dfa.Step(0, '0')
	assert.True(t, ok)
	assert.Equal(t, 1, dest)
	assert.Equal(t, 2, dfa.NumStates())
}

func TestDeterminize_SparseStateIDs(t *testing.T) {
	// endsWithAB with ids -3, 40000000 and 9.
	nfa := newTestAutomaton(t, []int{-3, 40_000_000, 9},
		[]edge{{-3, -3, 'a'}, {-3, 40_000_000, 'a'}, {-3, -3, 'b'}, {40_000_000, 9, 'b'}}, -3, []int{9})

	dfa, err := Determinize(nfa, DefaultDeterminizeWorkLimit)
	require.NoError(t, err)
	dense, err := Determinize(endsWithAB(t), DefaultDeterminizeWorkLimit)
	require.NoError(t, err)
	assert.Equal(t, structure(dense), structure(dfa))
}
