package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geange/langrec/cyk"
	"github.com/geange/langrec/report"
)

var cykFlags = struct {
	file  *string
	start *string
	table *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "cyk [words...]",
		Short:   "Test words against a grammar in Chomsky Normal Form",
		Example: `  langrec cyk -f cnf.txt --start S --table aabb`,
		RunE:    runCYK,
	}
	cykFlags.file = cmd.Flags().StringP("file", "f", "", "grammar description file")
	cykFlags.start = cmd.Flags().String("start", "S", "start symbol of text descriptions")
	cykFlags.table = cmd.Flags().Bool("table", false, "print the CYK table of every word")
	_ = cmd.MarkFlagRequired("file")
	rootCmd.AddCommand(cmd)
}

func startSymbol() (rune, error) {
	runes := []rune(*cykFlags.start)
	if len(runes) != 1 {
		return 0, fmt.Errorf("--start must be a single character, got %q", *cykFlags.start)
	}
	return runes[0], nil
}

func runCYK(cmd *cobra.Command, args []string) error {
	start, err := startSymbol()
	if err != nil {
		return err
	}
	g, queries, err := loadGrammar(*cykFlags.file, start)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	words := queriesOf(args, queries)
	results := make([]report.Result, 0, len(words))
	for _, w := range words {
		if *cykFlags.table && w != "" {
			fmt.Fprintf(out, "%s:\n", w)
			if err := report.CYKTable(out, g.Table(w)); err != nil {
				return err
			}
		}
		results = append(results, report.Result{Input: w, Accepted: acceptCYK(g, w)})
	}
	return report.Results(out, results)
}

// acceptCYK runs the CYK recognizer. The empty-string query text is answered as the empty input.
func acceptCYK(g *cyk.Grammar, w string) bool {
	if w == *rootFlags.epsilonString {
		w = ""
	}
	return g.Accept(w)
}
