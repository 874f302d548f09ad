package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var rootFlags = struct {
	format        *string
	epsilon       *string
	epsilonString *string
	verbose       *bool
}{}

var rootCmd = &cobra.Command{
	Use:   "langrec",
	Short: "Recognize strings with finite automata, CNF grammars and pushdown automata",
	Long: `langrec reads automata and grammars from text or YAML descriptions and answers membership queries:
- eval, determinize and minimize work on finite automata, with or without epsilon moves.
- cyk tests strings against a grammar in Chomsky Normal Form.
- pda simulates a pushdown automaton.
- interactive asks for strings and a recognizer in a loop.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetOutput(os.Stderr)
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		log.SetLevel(logrus.WarnLevel)
		if *rootFlags.verbose {
			log.SetLevel(logrus.DebugLevel)
		}
		switch *rootFlags.format {
		case formatText, formatYAML:
		default:
			return fmt.Errorf("unknown format %q (want %s or %s)", *rootFlags.format, formatText, formatYAML)
		}
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	rootFlags.format = flags.String("format", formatText, "description format: text or yaml (files ending in .yaml or .yml are always read as yaml)")
	rootFlags.epsilon = flags.String("epsilon", "0", "symbol labelling epsilon (lambda) moves in text descriptions")
	rootFlags.epsilonString = flags.String("epsilon-string", "-", "query text standing for the empty string")
	rootFlags.verbose = flags.BoolP("verbose", "v", false, "log debug information to stderr")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
