// Package desc reads automata, grammars, pushdown automata and query lists from their text and
// YAML descriptions.
//
// The text format is a stream of whitespace separated tokens. Counts come before the items they
// announce. State ids are integers and symbols are single characters.
//
//	finite automaton:  n s1..sn  m (src dst sym)*m  initial  k f1..fk
//	CNF grammar:       n sym1..symn  m (kind src targets)*m   kind 0 = binary (2 targets), 1 = unit (1 target)
//	pushdown:          n s1..sn  initial  k f1..fk  n sym1..symn  m (src dst match pop p push1..pushp)*m
//	queries:           n word1..wordn
package desc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/geange/langrec/automaton"
	"github.com/geange/langrec/cyk"
	"github.com/geange/langrec/pushdown"
)

// Reader reads descriptions one after the other from the same stream, the way a description file
// is followed by its queries.
type Reader struct {
	s      *bufio.Scanner
	name   string
	line   int
	fields []string
}

// NewReader returns a Reader over r. name, when not empty, prefixes error messages.
func NewReader(r io.Reader, name string) *Reader {
	return &Reader{
		s:    bufio.NewScanner(r),
		name: name,
	}
}

func (r *Reader) errorf(format string, a ...any) error {
	return &SyntaxError{Cause: fmt.Errorf(format, a...), SourceName: r.name, Line: r.line}
}

func (r *Reader) wrap(err error) error {
	return &SyntaxError{Cause: err, SourceName: r.name, Line: r.line}
}

// atEOF skips blank lines and reports whether the input is exhausted.
func (r *Reader) atEOF() (bool, error) {
	for len(r.fields) == 0 {
		if !r.s.Scan() {
			if err := r.s.Err(); err != nil {
				return false, err
			}
			return true, nil
		}
		r.line++
		r.fields = strings.Fields(r.s.Text())
	}
	return false, nil
}

func (r *Reader) token() (string, error) {
	eof, err := r.atEOF()
	if err != nil {
		return "", err
	}
	if eof {
		return "", r.wrap(ErrUnexpectedEOF)
	}
	tok := r.fields[0]
	r.fields = r.fields[1:]
	return tok, nil
}

func (r *Reader) integer() (int, error) {
	tok, err := r.token()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, r.errorf("expected an integer, got %q", tok)
	}
	return n, nil
}

func (r *Reader) count() (int, error) {
	n, err := r.integer()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, r.errorf("negative count %d", n)
	}
	return n, nil
}

func (r *Reader) symbol() (rune, error) {
	tok, err := r.token()
	if err != nil {
		return 0, err
	}
	runes := []rune(tok)
	if len(runes) != 1 {
		return 0, r.errorf("expected a single character symbol, got %q", tok)
	}
	return runes[0], nil
}

// ReadAutomaton reads a finite automaton: its states, its transitions, the initial state and the
// final states.
func (r *Reader) ReadAutomaton(opts ...automaton.Option) (*automaton.Automaton, error) {
	a := automaton.NewAutomaton(opts...)

	n, err := r.count()
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		s, err := r.integer()
		if err != nil {
			return nil, err
		}
		a.AddState(s)
	}

	m, err := r.count()
	if err != nil {
		return nil, err
	}
	for i := 0; i < m; i++ {
		src, err := r.integer()
		if err != nil {
			return nil, err
		}
		dst, err := r.integer()
		if err != nil {
			return nil, err
		}
		sym, err := r.symbol()
		if err != nil {
			return nil, err
		}
		if err := a.AddTransition(src, dst, sym); err != nil {
			return nil, r.wrap(err)
		}
	}

	initial, err := r.integer()
	if err != nil {
		return nil, err
	}
	if err := a.SetInitial(initial); err != nil {
		return nil, r.wrap(err)
	}

	k, err := r.count()
	if err != nil {
		return nil, err
	}
	for i := 0; i < k; i++ {
		f, err := r.integer()
		if err != nil {
			return nil, err
		}
		if err := a.AddFinal(f); err != nil {
			return nil, r.wrap(err)
		}
	}
	return a, nil
}

// ReadGrammar reads a grammar in Chomsky Normal Form whose start symbol is start. A rule kind
// other than 0 or 1 yields a *cyk.MalformedRuleError inside the SyntaxError.
func (r *Reader) ReadGrammar(start rune) (*cyk.Grammar, error) {
	g := cyk.NewGrammar(start)

	n, err := r.count()
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		sym, err := r.symbol()
		if err != nil {
			return nil, err
		}
		g.AddSymbol(sym)
	}

	m, err := r.count()
	if err != nil {
		return nil, err
	}
	for i := 0; i < m; i++ {
		kind, err := r.integer()
		if err != nil {
			return nil, err
		}
		source, err := r.symbol()
		if err != nil {
			return nil, err
		}

		var targets int
		switch cyk.RuleKind(kind) {
		case cyk.Binary:
			targets = 2
		case cyk.Unit:
			targets = 1
		default:
			return nil, r.wrap(&cyk.MalformedRuleError{Kind: cyk.RuleKind(kind), Source: source, Reason: "unknown rule kind"})
		}
		dests := make([]rune, targets)
		for j := range dests {
			if dests[j], err = r.symbol(); err != nil {
				return nil, err
			}
		}
		if err := g.AddRule(cyk.RuleKind(kind), source, dests...); err != nil {
			return nil, r.wrap(err)
		}
	}
	return g, nil
}

// ReadPushdown reads a pushdown automaton: states, initial state, final states, stack alphabet and
// transitions.
func (r *Reader) ReadPushdown(opts ...pushdown.Option) (*pushdown.Automaton, error) {
	p := pushdown.NewAutomaton(opts...)

	n, err := r.count()
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		s, err := r.integer()
		if err != nil {
			return nil, err
		}
		p.AddState(s)
	}

	initial, err := r.integer()
	if err != nil {
		return nil, err
	}
	if err := p.SetInitial(initial); err != nil {
		return nil, r.wrap(err)
	}

	k, err := r.count()
	if err != nil {
		return nil, err
	}
	for i := 0; i < k; i++ {
		f, err := r.integer()
		if err != nil {
			return nil, err
		}
		if err := p.AddFinal(f); err != nil {
			return nil, r.wrap(err)
		}
	}

	symbols, err := r.count()
	if err != nil {
		return nil, err
	}
	for i := 0; i < symbols; i++ {
		sym, err := r.symbol()
		if err != nil {
			return nil, err
		}
		p.AddStackSymbol(sym)
	}

	m, err := r.count()
	if err != nil {
		return nil, err
	}
	for i := 0; i < m; i++ {
		var t pushdown.Transition
		if t.From, err = r.integer(); err != nil {
			return nil, err
		}
		if t.To, err = r.integer(); err != nil {
			return nil, err
		}
		if t.Match, err = r.symbol(); err != nil {
			return nil, err
		}
		if t.Pop, err = r.symbol(); err != nil {
			return nil, err
		}
		pushes, err := r.count()
		if err != nil {
			return nil, err
		}
		t.Push = make([]rune, pushes)
		for j := range t.Push {
			if t.Push[j], err = r.symbol(); err != nil {
				return nil, err
			}
		}
		if err := p.AddTransition(t); err != nil {
			return nil, r.wrap(err)
		}
	}
	return p, nil
}

// ReadQueries reads a count followed by that many words. It returns no words and no error when the
// input is already exhausted.
func (r *Reader) ReadQueries() ([]string, error) {
	eof, err := r.atEOF()
	if err != nil {
		return nil, err
	}
	if eof {
		return nil, nil
	}

	n, err := r.count()
	if err != nil {
		return nil, err
	}
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		w, err := r.token()
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, nil
}
