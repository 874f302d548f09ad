// Package cyk recognizes strings of a context-free grammar in Chomsky Normal Form
// with the Cocke-Younger-Kasami algorithm.
package cyk

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// RuleKind distinguishes the two rule shapes allowed in Chomsky Normal Form. The numeric values
// match the rule kinds of the text description format.
type RuleKind int

const (
	// Binary is a rule A -> B C.
	Binary RuleKind = 0
	// Unit is a rule A -> a, with a a terminal.
	Unit RuleKind = 1
)

func (k RuleKind) String() string {
	switch k {
	case Binary:
		return "binary"
	case Unit:
		return "unit"
	}
	return "invalid"
}

// Rule is a production Source -> Targets. Binary rules have two nonterminal targets, unit rules
// a single terminal.
type Rule struct {
	Kind    RuleKind
	Source  rune
	Targets []rune
}

type pair struct {
	left, right uint
}

// Grammar stores a rule set in Chomsky Normal Form. Nonterminals are numbered in the order they are
// first seen; the sets of sources deriving a terminal or a pair of nonterminals are kept as bitsets
// over those numbers.
type Grammar struct {
	start rune

	// symbolIds maps a nonterminal to its id
	symbolIds map[rune]uint
	// symbols maps an id back to the nonterminal
	symbols []rune

	// unit[t] holds the sources of the rules X -> t.
	unit map[rune]*bitset.BitSet
	// binary[(B, C)] holds the sources of the rules X -> B C.
	binary map[pair]*bitset.BitSet

	rules []Rule
}

// NewGrammar creates an empty grammar whose start symbol is start.
func NewGrammar(start rune) *Grammar {
	g := &Grammar{
		start:     start,
		symbolIds: map[rune]uint{},
		unit:      map[rune]*bitset.BitSet{},
		binary:    map[pair]*bitset.BitSet{},
	}
	g.symbolId(start)
	return g
}

// symbolId returns the id of s, declaring it when unknown.
func (g *Grammar) symbolId(s rune) uint {
	if id, ok := g.symbolIds[s]; ok {
		return id
	}
	id := uint(len(g.symbols))
	g.symbolIds[s] = id
	g.symbols = append(g.symbols, s)
	return id
}

// AddSymbol declares the nonterminal s. Declaring a symbol twice has no effect.
func (g *Grammar) AddSymbol(s rune) {
	g.symbolId(s)
}

// AddRule adds a rule of the given kind. Binary rules take exactly two targets and unit rules
// exactly one; anything else is a *MalformedRuleError. Undeclared nonterminals are declared on
// the way. Adding a rule twice has no effect.
func (g *Grammar) AddRule(kind RuleKind, source rune, targets ...rune) error {
	switch kind {
	case Binary:
		if len(targets) != 2 {
			return &MalformedRuleError{Kind: kind, Source: source, Reason: "binary rule needs two targets"}
		}
		return g.AddBinaryRule(source, targets[0], targets[1])
	case Unit:
		if len(targets) != 1 {
			return &MalformedRuleError{Kind: kind, Source: source, Reason: "unit rule needs one target"}
		}
		return g.AddUnitRule(source, targets[0])
	}
	return &MalformedRuleError{Kind: kind, Source: source, Reason: "unknown rule kind"}
}

// AddUnitRule adds source -> terminal.
func (g *Grammar) AddUnitRule(source, terminal rune) error {
	id := g.symbolId(source)
	sources, ok := g.unit[terminal]
	if !ok {
		sources = bitset.New(0)
		g.unit[terminal] = sources
	}
	if !sources.Test(id) {
		sources.Set(id)
		g.rules = append(g.rules, Rule{Kind: Unit, Source: source, Targets: []rune{terminal}})
	}
	return nil
}

// AddBinaryRule adds source -> left right.
func (g *Grammar) AddBinaryRule(source, left, right rune) error {
	id := g.symbolId(source)
	key := pair{g.symbolId(left), g.symbolId(right)}
	sources, ok := g.binary[key]
	if !ok {
		sources = bitset.New(0)
		g.binary[key] = sources
	}
	if !sources.Test(id) {
		sources.Set(id)
		g.rules = append(g.rules, Rule{Kind: Binary, Source: source, Targets: []rune{left, right}})
	}
	return nil
}

// Start returns the start symbol.
func (g *Grammar) Start() rune {
	return g.start
}

// Symbols returns the nonterminals in ascending order.
func (g *Grammar) Symbols() []rune {
	out := slices.Clone(g.symbols)
	slices.Sort(out)
	return out
}

// UnitRules returns the unit rules in the order they were added.
func (g *Grammar) UnitRules() []Rule {
	return g.rulesOf(Unit)
}

// BinaryRules returns the binary rules in the order they were added.
func (g *Grammar) BinaryRules() []Rule {
	return g.rulesOf(Binary)
}

func (g *Grammar) rulesOf(kind RuleKind) []Rule {
	var out []Rule
	for _, r := range g.rules {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

// Accept reports whether the start symbol derives input. The empty string is never accepted, as a
// grammar in Chomsky Normal Form has no rule for it.
func (g *Grammar) Accept(input string) bool {
	t := g.Table(input)
	n := t.Len()
	if n == 0 {
		return false
	}
	return t.cells[n][0].Test(g.symbolIds[g.start])
}
