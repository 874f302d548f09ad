package cyk

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Table is the triangular CYK table of one input. Cell (length, start) holds the nonterminals
// deriving the substring of the given length beginning at start.
type Table struct {
	input   []rune
	symbols []rune

	// cells[length][start], length from 1.
	cells [][]*bitset.BitSet
}

// Table fills the CYK table of input bottom-up. Cells of length one come from the unit rules;
// longer cells combine every split of the substring through the binary rules.
func (g *Grammar) Table(input string) *Table {
	in := []rune(input)
	n := len(in)
	width := uint(len(g.symbols))

	t := &Table{
		input:   in,
		symbols: slices.Clone(g.symbols),
		cells:   make([][]*bitset.BitSet, n+1),
	}
	for length := 1; length <= n; length++ {
		t.cells[length] = make([]*bitset.BitSet, n-length+1)
		for start := range t.cells[length] {
			t.cells[length][start] = bitset.New(width)
		}
	}

	for i, sym := range in {
		if sources, ok := g.unit[sym]; ok {
			t.cells[1][i].InPlaceUnion(sources)
		}
	}

	for length := 2; length <= n; length++ {
		for start := 0; start+length <= n; start++ {
			cell := t.cells[length][start]
			for split := 1; split < length; split++ {
				left := t.cells[split][start]
				right := t.cells[length-split][start+split]
				if left.None() || right.None() {
					continue
				}
				for l, ok := left.NextSet(0); ok; l, ok = left.NextSet(l + 1) {
					for r, ok := right.NextSet(0); ok; r, ok = right.NextSet(r + 1) {
						if sources, found := g.binary[pair{l, r}]; found {
							cell.InPlaceUnion(sources)
						}
					}
				}
			}
		}
	}
	return t
}

// Len returns the length of the input, in symbols.
func (t *Table) Len() int {
	return len(t.input)
}

// Input returns the input the table was built for.
func (t *Table) Input() string {
	return string(t.input)
}

// Cell returns the nonterminals deriving the substring of the given length at start, in ascending
// order. Coordinates outside the table yield nil.
func (t *Table) Cell(length, start int) []rune {
	if length < 1 || length > len(t.input) || start < 0 || start+length > len(t.input) {
		return nil
	}
	cell := t.cells[length][start]
	out := make([]rune, 0, cell.Count())
	for id, ok := cell.NextSet(0); ok; id, ok = cell.NextSet(id + 1) {
		out = append(out, t.symbols[id])
	}
	slices.Sort(out)
	return out
}
