package desc

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/geange/langrec/automaton"
	"github.com/geange/langrec/cyk"
	"github.com/geange/langrec/pushdown"
)

// Kinds of Document.
const (
	KindFA  = "fa"
	KindCNF = "cnf"
	KindPDA = "pda"
)

// Document is the YAML form of a description and its queries. Symbols are written as one
// character strings; push sequences and CNF rule targets as strings of symbols.
//
//	kind: fa
//	states: [0, 1]
//	initial: 0
//	finals: [1]
//	transitions:
//	  - {from: 0, to: 1, symbol: a}
//	  - {from: 1, to: 1, symbol: b}
//	queries: [ab, ba]
type Document struct {
	Kind string `yaml:"kind"`

	// fa
	Epsilon       string         `yaml:"epsilon,omitempty"`
	EpsilonString string         `yaml:"epsilon_string,omitempty"`
	Transitions   []FATransition `yaml:"transitions,omitempty"`

	// fa and pda
	States  []int `yaml:"states,omitempty"`
	Initial int   `yaml:"initial"`
	Finals  []int `yaml:"finals,omitempty"`

	// cnf
	Start   string    `yaml:"start,omitempty"`
	Symbols []string  `yaml:"symbols,omitempty"`
	Rules   []CNFRule `yaml:"rules,omitempty"`

	// pda
	Lambda         string          `yaml:"lambda,omitempty"`
	Stack          string          `yaml:"stack,omitempty"`
	PDATransitions []PDATransition `yaml:"moves,omitempty"`

	Queries []string `yaml:"queries,omitempty"`
}

type FATransition struct {
	From   int    `yaml:"from"`
	To     int    `yaml:"to"`
	Symbol string `yaml:"symbol"`
}

type CNFRule struct {
	// Kind is "binary" or "unit".
	Kind    string `yaml:"kind"`
	Source  string `yaml:"source"`
	Targets string `yaml:"targets"`
}

type PDATransition struct {
	From  int    `yaml:"from"`
	To    int    `yaml:"to"`
	Match string `yaml:"match"`
	Pop   string `yaml:"pop"`
	Push  string `yaml:"push,omitempty"`
}

// DecodeYAML decodes one Document from r. Unknown fields are rejected.
func DecodeYAML(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("desc: %w", err)
	}
	switch doc.Kind {
	case KindFA, KindCNF, KindPDA:
	default:
		return nil, fmt.Errorf("desc: unknown document kind %q", doc.Kind)
	}
	return &doc, nil
}

// EncodeYAML writes doc to w.
func EncodeYAML(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func symbolOf(field, s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("desc: %s: expected a single character symbol, got %q", field, s)
	}
	return runes[0], nil
}

func (d *Document) expect(kind string) error {
	if d.Kind != kind {
		return fmt.Errorf("desc: document of kind %q is not %q", d.Kind, kind)
	}
	return nil
}

// Automaton builds the finite automaton of a document of kind fa.
func (d *Document) Automaton() (*automaton.Automaton, error) {
	if err := d.expect(KindFA); err != nil {
		return nil, err
	}

	var opts []automaton.Option
	if d.Epsilon != "" {
		eps, err := symbolOf("epsilon", d.Epsilon)
		if err != nil {
			return nil, err
		}
		opts = append(opts, automaton.WithEpsilon(eps))
	}
	if d.EpsilonString != "" {
		opts = append(opts, automaton.WithEpsilonString(d.EpsilonString))
	}

	a := automaton.NewAutomaton(opts...)
	for _, s := range d.States {
		a.AddState(s)
	}
	for i, t := range d.Transitions {
		sym, err := symbolOf(fmt.Sprintf("transitions[%d]", i), t.Symbol)
		if err != nil {
			return nil, err
		}
		if err := a.AddTransition(t.From, t.To, sym); err != nil {
			return nil, fmt.Errorf("desc: transitions[%d]: %w", i, err)
		}
	}
	if err := a.SetInitial(d.Initial); err != nil {
		return nil, fmt.Errorf("desc: initial: %w", err)
	}
	for _, f := range d.Finals {
		if err := a.AddFinal(f); err != nil {
			return nil, fmt.Errorf("desc: finals: %w", err)
		}
	}
	return a, nil
}

// Grammar builds the grammar of a document of kind cnf. The start symbol defaults to S.
func (d *Document) Grammar() (*cyk.Grammar, error) {
	if err := d.expect(KindCNF); err != nil {
		return nil, err
	}

	start := 'S'
	if d.Start != "" {
		var err error
		if start, err = symbolOf("start", d.Start); err != nil {
			return nil, err
		}
	}
	g := cyk.NewGrammar(start)
	for i, s := range d.Symbols {
		sym, err := symbolOf(fmt.Sprintf("symbols[%d]", i), s)
		if err != nil {
			return nil, err
		}
		g.AddSymbol(sym)
	}

	for i, rule := range d.Rules {
		field := fmt.Sprintf("rules[%d]", i)
		source, err := symbolOf(field, rule.Source)
		if err != nil {
			return nil, err
		}
		kind := cyk.RuleKind(-1)
		switch rule.Kind {
		case cyk.Binary.String():
			kind = cyk.Binary
		case cyk.Unit.String():
			kind = cyk.Unit
		}
		if err := g.AddRule(kind, source, []rune(rule.Targets)...); err != nil {
			return nil, fmt.Errorf("desc: %s: %w", field, err)
		}
	}
	return g, nil
}

// Pushdown builds the pushdown automaton of a document of kind pda.
func (d *Document) Pushdown(opts ...pushdown.Option) (*pushdown.Automaton, error) {
	if err := d.expect(KindPDA); err != nil {
		return nil, err
	}

	if d.Lambda != "" {
		lambda, err := symbolOf("lambda", d.Lambda)
		if err != nil {
			return nil, err
		}
		opts = append([]pushdown.Option{pushdown.WithLambda(lambda)}, opts...)
	}

	p := pushdown.NewAutomaton(opts...)
	for _, s := range d.States {
		p.AddState(s)
	}
	if err := p.SetInitial(d.Initial); err != nil {
		return nil, fmt.Errorf("desc: initial: %w", err)
	}
	for _, f := range d.Finals {
		if err := p.AddFinal(f); err != nil {
			return nil, fmt.Errorf("desc: finals: %w", err)
		}
	}
	for _, sym := range d.Stack {
		p.AddStackSymbol(sym)
	}

	for i, t := range d.PDATransitions {
		field := fmt.Sprintf("moves[%d]", i)
		match, err := symbolOf(field+".match", t.Match)
		if err != nil {
			return nil, err
		}
		pop, err := symbolOf(field+".pop", t.Pop)
		if err != nil {
			return nil, err
		}
		err = p.AddTransition(pushdown.Transition{From: t.From, To: t.To, Match: match, Pop: pop, Push: []rune(t.Push)})
		if err != nil {
			return nil, fmt.Errorf("desc: %s: %w", field, err)
		}
	}
	return p, nil
}
