package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/geange/langrec/automaton"
	"github.com/geange/langrec/cyk"
	"github.com/geange/langrec/desc"
	"github.com/geange/langrec/pushdown"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

func isYAML(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return true
	}
	return *rootFlags.format == formatYAML
}

func epsilonSymbol() (rune, error) {
	runes := []rune(*rootFlags.epsilon)
	if len(runes) != 1 {
		return 0, fmt.Errorf("--epsilon must be a single character, got %q", *rootFlags.epsilon)
	}
	return runes[0], nil
}

// openDescription opens path and calls read with a text Reader or a decoded YAML document.
func openDescription(path string, read func(r *desc.Reader, doc *desc.Document) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open the description file %s: %w", path, err)
	}
	defer f.Close()

	if isYAML(path) {
		doc, err := desc.DecodeYAML(f)
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", path, err)
		}
		return read(nil, doc)
	}
	return read(desc.NewReader(f, path), nil)
}

func loadAutomaton(path string) (*automaton.Automaton, []string, error) {
	eps, err := epsilonSymbol()
	if err != nil {
		return nil, nil, err
	}
	opts := []automaton.Option{
		automaton.WithEpsilon(eps),
		automaton.WithEpsilonString(*rootFlags.epsilonString),
	}

	var a *automaton.Automaton
	var queries []string
	err = openDescription(path, func(r *desc.Reader, doc *desc.Document) error {
		var err error
		if doc != nil {
			if a, err = doc.Automaton(); err != nil {
				return err
			}
			queries = doc.Queries
			return nil
		}
		if a, err = r.ReadAutomaton(opts...); err != nil {
			return err
		}
		queries, err = r.ReadQueries()
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	log.WithFields(logrus.Fields{
		"file":        path,
		"kind":        "fa",
		"states":      a.NumStates(),
		"transitions": a.NumTransitions(),
		"queries":     len(queries),
	}).Debug("loaded automaton")
	return a, queries, nil
}

func loadGrammar(path string, start rune) (*cyk.Grammar, []string, error) {
	var g *cyk.Grammar
	var queries []string
	err := openDescription(path, func(r *desc.Reader, doc *desc.Document) error {
		var err error
		if doc != nil {
			if g, err = doc.Grammar(); err != nil {
				return err
			}
			queries = doc.Queries
			return nil
		}
		if g, err = r.ReadGrammar(start); err != nil {
			return err
		}
		queries, err = r.ReadQueries()
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	log.WithFields(logrus.Fields{
		"file":    path,
		"kind":    "cnf",
		"start":   string(g.Start()),
		"rules":   len(g.UnitRules()) + len(g.BinaryRules()),
		"queries": len(queries),
	}).Debug("loaded grammar")
	return g, queries, nil
}

// loadPushdown reads a pushdown automaton. The --epsilon flag sets the lambda symbol of text
// descriptions; YAML documents carry their own.
func loadPushdown(path string, opts ...pushdown.Option) (*pushdown.Automaton, []string, error) {
	lambda, err := epsilonSymbol()
	if err != nil {
		return nil, nil, err
	}
	textOpts := append([]pushdown.Option{pushdown.WithLambda(lambda)}, opts...)

	var p *pushdown.Automaton
	var queries []string
	err = openDescription(path, func(r *desc.Reader, doc *desc.Document) error {
		var err error
		if doc != nil {
			if p, err = doc.Pushdown(opts...); err != nil {
				return err
			}
			queries = doc.Queries
			return nil
		}
		if p, err = r.ReadPushdown(textOpts...); err != nil {
			return err
		}
		queries, err = r.ReadQueries()
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	log.WithFields(logrus.Fields{
		"file":        path,
		"kind":        "pda",
		"states":      len(p.States()),
		"transitions": len(p.Transitions()),
		"queries":     len(queries),
	}).Debug("loaded pushdown automaton")
	return p, queries, nil
}

// queriesOf returns the words given on the command line, or the queries of the description when
// there are none.
func queriesOf(args, fromFile []string) []string {
	if len(args) > 0 {
		return args
	}
	return fromFile
}
