package automaton

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type edge struct {
	from, to int
	sym      rune
}

func newTestAutomaton(t *testing.T, states []int, edges []edge, initial int, finals []int, opts ...Option) *Automaton {
	t.Helper()
	a := NewAutomaton(opts...)
	for _, s := range states {
		a.AddState(s)
	}
	for _, e := range edges {
		require.NoError(t, a.AddTransition(e.from, e.to, e.sym))
	}
	require.NoError(t, a.SetInitial(initial))
	for _, f := range finals {
		require.NoError(t, a.AddFinal(f))
	}
	return a
}

// words returns every string over alphabet of length at most maxLen, the empty string included.
func words(alphabet string, maxLen int) []string {
	out := []string{""}
	level := []string{""}
	for n := 0; n < maxLen; n++ {
		var next []string
		for _, w := range level {
			for _, c := range alphabet {
				next = append(next, w+string(c))
			}
		}
		out = append(out, next...)
		level = next
	}
	return out
}

// structure renders a canonical description of a for comparisons.
func structure(a *Automaton) string {
	var b strings.Builder
	initial, _ := a.Initial()
	fmt.Fprintf(&b, "states=%v initial=%d finals=%v\n", a.States(), initial, a.Finals())
	for _, s := range a.States() {
		for _, d := range a.Destinations(s) {
			fmt.Fprintf(&b, "%d -> %d %q\n", s, d, string(a.Labels(s, d)))
		}
	}
	return b.String()
}
