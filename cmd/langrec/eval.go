package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/geange/langrec/automaton"
	"github.com/geange/langrec/report"
)

var evalFlags = struct {
	file     *string
	allPaths *bool
	show     *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "eval [words...]",
		Short: "Evaluate words on a finite automaton and print witness paths",
		Example: `  langrec eval -f nfa.txt ab ba
  langrec eval -f lnfa.yaml --all-paths`,
		RunE: runEval,
	}
	evalFlags.file = cmd.Flags().StringP("file", "f", "", "automaton description file")
	evalFlags.allPaths = cmd.Flags().Bool("all-paths", false, "print every accepting path instead of the first one")
	evalFlags.show = cmd.Flags().Bool("show", false, "print the automaton before the verdicts")
	_ = cmd.MarkFlagRequired("file")
	rootCmd.AddCommand(cmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	a, queries, err := loadAutomaton(*evalFlags.file)
	if err != nil {
		return err
	}
	if *evalFlags.show {
		if err := report.Automaton(cmd.OutOrStdout(), a); err != nil {
			return err
		}
	}
	return report.Results(cmd.OutOrStdout(), evaluateWords(a, queriesOf(args, queries), *evalFlags.allPaths))
}

// evaluateWords runs the acceptance search for every word.
func evaluateWords(a *automaton.Automaton, words []string, allPaths bool) []report.Result {
	results := make([]report.Result, 0, len(words))
	for _, w := range words {
		var paths [][]int
		if allPaths {
			paths = automaton.AcceptWithPaths(a, w)
		} else if path := automaton.AcceptWithPath(a, w); path != nil {
			paths = [][]int{path}
		}
		log.WithFields(logrus.Fields{"input": w, "paths": len(paths)}).Debug("evaluated")
		results = append(results, report.Result{Input: w, Accepted: len(paths) > 0, Paths: paths})
	}
	return results
}
