package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/geange/langrec/automaton"
	"github.com/geange/langrec/report"
)

var determinizeFlags = struct {
	file      *string
	workLimit *int
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "determinize [words...]",
		Short:   "Convert a nondeterministic automaton into a DFA by subset construction",
		Example: `  langrec determinize -f nfa.txt aab`,
		RunE:    runDeterminize,
	}
	determinizeFlags.file = cmd.Flags().StringP("file", "f", "", "automaton description file")
	determinizeFlags.workLimit = cmd.Flags().Int("work-limit", automaton.DefaultDeterminizeWorkLimit, "maximum number of DFA states to create (0 for no limit)")
	_ = cmd.MarkFlagRequired("file")
	rootCmd.AddCommand(cmd)
}

func runDeterminize(cmd *cobra.Command, args []string) error {
	nfa, queries, err := loadAutomaton(*determinizeFlags.file)
	if err != nil {
		return err
	}

	dfa, err := determinize(nfa, *determinizeFlags.workLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "DFA:")
	if err := report.Automaton(out, dfa); err != nil {
		return err
	}

	words := queriesOf(args, queries)
	r, err := automaton.NewRunAutomaton(dfa, *determinizeFlags.workLimit)
	if err != nil {
		return err
	}
	results := make([]report.Result, 0, len(words))
	for _, w := range words {
		accepted := r.Run(w)
		if accepted != automaton.Accept(nfa, w) {
			log.WithField("input", w).Warn("automata disagree")
		}
		results = append(results, report.Result{Input: w, Accepted: accepted})
	}
	return report.Results(out, results)
}

// determinize removes epsilon moves when there are any, then runs subset construction.
func determinize(nfa *automaton.Automaton, workLimit int) (*automaton.Automaton, error) {
	if nfa.HasEpsilonTransitions() {
		log.Debug("removing epsilon transitions")
		var err error
		if nfa, err = automaton.RemoveEpsilon(nfa); err != nil {
			return nil, err
		}
	}
	dfa, err := automaton.Determinize(nfa, workLimit)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"states": dfa.NumStates(), "transitions": dfa.NumTransitions()}).Debug("determinized")
	return dfa, nil
}
