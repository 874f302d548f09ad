package automaton

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcceptWithPaths(t *testing.T) {
	// 0 -a-> 1, 1 -b-> 1, final {1}
	nfa := newTestAutomaton(t, []int{0, 1}, []edge{{0, 1, 'a'}, {1, 1, 'b'}}, 0, []int{1})

	assert.Equal(t, [][]int{{0, 1, 1}}, AcceptWithPaths(nfa, "ab"))
	assert.Equal(t, []int{0, 1, 1, 1}, AcceptWithPath(nfa, "abb"))
	assert.True(t, Accept(nfa, "a"))
	assert.False(t, Accept(nfa, "ba"))
	assert.Empty(t, AcceptWithPaths(nfa, "ba"))
	assert.Nil(t, AcceptWithPath(nfa, ""))
}

func TestAcceptWithPaths_Branches(t *testing.T) {
	nfa := newTestAutomaton(t, []int{0, 1, 2, 3},
		[]edge{{0, 2, 'a'}, {0, 1, 'a'}, {1, 3, 'b'}, {2, 3, 'b'}}, 0, []int{3})

	assert.Equal(t, [][]int{{0, 1, 3}, {0, 2, 3}}, AcceptWithPaths(nfa, "ab"))
	assert.Equal(t, []int{0, 1, 3}, AcceptWithPath(nfa, "ab"))
}

func TestAccept_EpsilonString(t *testing.T) {
	tests := []struct {
		name   string
		finals []int
		want   bool
	}{
		{"initial final", []int{0}, true},
		{"only reachable by epsilon", []int{1}, false},
		{"no finals", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAutomaton(t, []int{0, 1}, []edge{{0, 1, '0'}}, 0, tt.finals)
			assert.Equal(t, tt.want, Accept(a, "-"))
			if tt.want {
				assert.Equal(t, [][]int{{0}}, AcceptWithPaths(a, "-"))
			}
		})
	}

	custom := newTestAutomaton(t, []int{0}, nil, 0, []int{0}, WithEpsilonString("eps"))
	assert.True(t, Accept(custom, "eps"))
	assert.False(t, Accept(custom, "-"))
}

func TestAccept_EpsilonMoves(t *testing.T) {
	t.Run("chain to final", func(t *testing.T) {
		a := newTestAutomaton(t, []int{0, 1, 2}, []edge{{0, 1, 'a'}, {1, 2, '0'}}, 0, []int{2})
		assert.Equal(t, [][]int{{0, 1, 2}}, AcceptWithPaths(a, "a"))
		assert.True(t, Accept(a, "a"))
		assert.False(t, Accept(a, ""))
	})

	t.Run("two state cycle", func(t *testing.T) {
		a := newTestAutomaton(t, []int{0, 1, 2},
			[]edge{{0, 1, '0'}, {1, 0, '0'}, {1, 2, 'a'}}, 0, []int{2})
		assert.Equal(t, [][]int{{0, 1, 2}}, AcceptWithPaths(a, "a"))
		assert.False(t, Accept(a, "aa"))
		assert.False(t, Accept(a, ""))
	})

	t.Run("three state cycle", func(t *testing.T) {
		a := newTestAutomaton(t, []int{0, 1, 2, 3},
			[]edge{{0, 1, '0'}, {1, 2, '0'}, {2, 0, '0'}, {2, 3, 'a'}, {3, 3, 'a'}}, 0, []int{3})
		assert.True(t, Accept(a, "a"))
		assert.True(t, Accept(a, "aaa"))
		assert.False(t, Accept(a, "b"))
		assert.Equal(t, []int{0, 1, 2, 3}, AcceptWithPath(a, "a"))
	})

	t.Run("self loop", func(t *testing.T) {
		a := newTestAutomaton(t, []int{0}, []edge{{0, 0, '0'}}, 0, nil)
		assert.False(t, Accept(a, ""))
		assert.False(t, Accept(a, "0"))
	})

	t.Run("epsilon symbol in input is never consumed", func(t *testing.T) {
		a := newTestAutomaton(t, []int{0, 1}, []edge{{0, 1, '0'}}, 0, []int{1})
		assert.False(t, Accept(a, "0"))
		assert.True(t, Accept(a, ""))
	})
}

func TestAccept_NoInitialState(t *testing.T) {
	a := NewAutomaton()
	a.AddState(0)
	assert.False(t, Accept(a, ""))
	assert.False(t, Accept(a, "-"))
}

func TestAccept_Repeatable(t *testing.T) {
	a := newTestAutomaton(t, []int{0, 1, 2},
		[]edge{{0, 0, 'a'}, {0, 0, 'b'}, {0, 1, 'a'}, {1, 2, 'b'}, {1, 1, '0'}}, 0, []int{2})

	first := AcceptWithPaths(a, "aab")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, AcceptWithPaths(a, "aab"))
	}
}

func TestAccept_AgreesWithEpsilonFree(t *testing.T) {
	a := newTestAutomaton(t, []int{0, 1, 2, 3, 4},
		[]edge{
			{0, 1, '0'}, {0, 3, '0'},
			{1, 2, 'a'}, {2, 1, '0'}, {2, 2, 'b'},
			{3, 4, 'b'}, {4, 3, 'a'}, {4, 0, '0'},
		}, 0, []int{2, 4})

	free, err := RemoveEpsilon(a)
	assert.NoError(t, err)
	assert.False(t, free.HasEpsilonTransitions())

	for _, w := range words("ab", 5) {
		assert.Equal(t, Accept(a, w), Accept(free, w), "input %q", w)
	}
}

func TestAccept_SparseStateIDs(t *testing.T) {
	a := newTestAutomaton(t, []int{0, 50_000_000}, []edge{{0, 0, 'a'}, {0, 50_000_000, 'b'}}, 0, []int{0})

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	accepted := Accept(a, strings.Repeat("a", 200))
	runtime.ReadMemStats(&after)

	assert.True(t, accepted)
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(16<<20))
	assert.Equal(t, [][]int{{0, 0, 0}}, AcceptWithPaths(a, "aa"))
	assert.False(t, Accept(a, "ab"))
}

func TestAccept_NegativeStateIDs(t *testing.T) {
	a := newTestAutomaton(t, []int{-1, 0, -7},
		[]edge{{-1, 0, 'a'}, {-1, -7, 'a'}, {0, -7, '0'}, {-7, -7, 'b'}}, -1, []int{-7})

	assert.Equal(t, [][]int{{-1, -7}, {-1, 0, -7}}, AcceptWithPaths(a, "a"))
	assert.Equal(t, []int{-1, -7, -7}, AcceptWithPath(a, "ab"))
	assert.False(t, Accept(a, "-"))
	assert.False(t, Accept(a, "b"))
}
