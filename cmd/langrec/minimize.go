package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/geange/langrec/automaton"
	"github.com/geange/langrec/report"
)

var minimizeFlags = struct {
	file *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "minimize [words...]",
		Short:   "Minimize a DFA with Hopcroft's algorithm",
		Example: `  langrec minimize -f dfa.txt`,
		RunE:    runMinimize,
	}
	minimizeFlags.file = cmd.Flags().StringP("file", "f", "", "automaton description file")
	_ = cmd.MarkFlagRequired("file")
	rootCmd.AddCommand(cmd)
}

func runMinimize(cmd *cobra.Command, args []string) error {
	a, queries, err := loadAutomaton(*minimizeFlags.file)
	if err != nil {
		return err
	}
	if !a.IsDeterministic() {
		log.Warn("the automaton is not deterministic; it is determinized first")
	}

	m, err := automaton.Minimize(a, automaton.DefaultDeterminizeWorkLimit)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"before": a.NumStates(), "after": m.NumStates()}).Debug("minimized")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Before:")
	if err := report.Automaton(out, a); err != nil {
		return err
	}
	fmt.Fprintln(out, "After:")
	if err := report.Automaton(out, m); err != nil {
		return err
	}

	words := queriesOf(args, queries)
	if len(words) == 0 {
		return nil
	}
	r, err := automaton.NewRunAutomaton(m, automaton.DefaultDeterminizeWorkLimit)
	if err != nil {
		return err
	}
	results := make([]report.Result, 0, len(words))
	for _, w := range words {
		results = append(results, report.Result{Input: w, Accepted: r.Run(w)})
	}
	return report.Results(out, results)
}
