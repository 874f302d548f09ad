package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/geange/langrec/cyk"
	"github.com/geange/langrec/pushdown"
)

var interactiveFlags = struct {
	cnf   *string
	pda   *string
	start *string
}{}

const (
	menuCYK      = "Evaluate a string with CYK"
	menuPushdown = "Evaluate a string with the pushdown automaton"
	menuExit     = "exit"
)

func init() {
	cmd := &cobra.Command{
		Use:     "interactive",
		Short:   "Pick a recognizer and test strings from a menu",
		Example: `  langrec interactive --cnf cnf.txt --pda pda.txt`,
		RunE:    runInteractive,
	}
	interactiveFlags.cnf = cmd.Flags().String("cnf", "", "grammar description file")
	interactiveFlags.pda = cmd.Flags().String("pda", "", "pushdown automaton description file")
	interactiveFlags.start = cmd.Flags().String("start", "S", "start symbol of text grammar descriptions")
	rootCmd.AddCommand(cmd)
}

// session holds the recognizers the menu can choose from.
type session struct {
	grammar *cyk.Grammar
	pda     *pushdown.Automaton
}

func (s *session) items() []string {
	var items []string
	if s.grammar != nil {
		items = append(items, menuCYK)
	}
	if s.pda != nil {
		items = append(items, menuPushdown)
	}
	return append(items, menuExit)
}

// evaluate answers one string with the recognizer named by choice.
func (s *session) evaluate(choice, input string) (bool, error) {
	switch choice {
	case menuCYK:
		return acceptCYK(s.grammar, input), nil
	case menuPushdown:
		return acceptPDA(s.pda, input)
	}
	return false, fmt.Errorf("unknown menu entry %q", choice)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	if *interactiveFlags.cnf == "" && *interactiveFlags.pda == "" {
		return errors.New("give a grammar with --cnf, a pushdown automaton with --pda, or both")
	}

	var s session
	if *interactiveFlags.cnf != "" {
		runes := []rune(*interactiveFlags.start)
		if len(runes) != 1 {
			return fmt.Errorf("--start must be a single character, got %q", *interactiveFlags.start)
		}
		g, _, err := loadGrammar(*interactiveFlags.cnf, runes[0])
		if err != nil {
			return err
		}
		s.grammar = g
	}
	if *interactiveFlags.pda != "" {
		p, _, err := loadPushdown(*interactiveFlags.pda)
		if err != nil {
			return err
		}
		s.pda = p
	}
	return s.loop(cmd.OutOrStdout())
}

func (s *session) loop(out io.Writer) error {
	accepted := promptui.Styler(promptui.FGGreen)
	rejected := promptui.Styler(promptui.FGRed)

	for {
		menu := promptui.Select{
			Label: "Operation",
			Items: s.items(),
		}
		_, choice, err := menu.Run()
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if choice == menuExit {
			return nil
		}

		prompt := promptui.Prompt{Label: "String"}
		input, err := prompt.Run()
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return nil
		}
		if err != nil {
			return err
		}

		ok, err := s.evaluate(choice, input)
		switch {
		case err != nil:
			fmt.Fprintln(out, rejected(err.Error()))
		case ok:
			fmt.Fprintln(out, accepted(input+": accepted"))
		default:
			fmt.Fprintln(out, rejected(input+": rejected"))
		}
	}
}
