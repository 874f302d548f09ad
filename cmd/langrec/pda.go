package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/geange/langrec/pushdown"
	"github.com/geange/langrec/report"
)

var pdaFlags = struct {
	file     *string
	maxDepth *int
	maxStack *int
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "pda [words...]",
		Short:   "Evaluate words on a pushdown automaton",
		Example: `  langrec pda -f pda.txt "(())" "(()"`,
		RunE:    runPDA,
	}
	pdaFlags.file = cmd.Flags().StringP("file", "f", "", "pushdown automaton description file")
	pdaFlags.maxDepth = cmd.Flags().Int("max-depth", pushdown.DefaultMaxDepth, "maximum number of moves along one execution (0 for no limit)")
	pdaFlags.maxStack = cmd.Flags().Int("max-stack", pushdown.DefaultMaxStack, "maximum stack height (0 for no limit)")
	_ = cmd.MarkFlagRequired("file")
	rootCmd.AddCommand(cmd)
}

func pdaLimits() []pushdown.Option {
	return []pushdown.Option{
		pushdown.WithMaxDepth(*pdaFlags.maxDepth),
		pushdown.WithMaxStack(*pdaFlags.maxStack),
	}
}

func runPDA(cmd *cobra.Command, args []string) error {
	p, queries, err := loadPushdown(*pdaFlags.file, pdaLimits()...)
	if err != nil {
		return err
	}

	words := queriesOf(args, queries)
	results := make([]report.Result, 0, len(words))
	for _, w := range words {
		accepted, err := acceptPDA(p, w)
		if err != nil {
			return err
		}
		results = append(results, report.Result{Input: w, Accepted: accepted})
	}
	return report.Results(cmd.OutOrStdout(), results)
}

// acceptPDA runs the pushdown search. The empty-string query text is answered as the empty input.
func acceptPDA(p *pushdown.Automaton, w string) (bool, error) {
	input := w
	if input == *rootFlags.epsilonString {
		input = ""
	}
	accepted, err := p.Accept(input)
	if err != nil {
		log.WithFields(logrus.Fields{"input": w}).WithError(err).Warn("search aborted")
		return false, err
	}
	return accepted, nil
}
