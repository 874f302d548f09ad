// Package report renders automata, grammars and query verdicts as text tables.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/geange/langrec/automaton"
	"github.com/geange/langrec/cyk"
	"github.com/geange/langrec/pushdown"
)

// Result is the verdict of one query. Paths holds the witness executions of an accepted query and
// is empty for a rejected one.
type Result struct {
	Input    string
	Accepted bool
	Paths    [][]int
}

func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}

func joinRunes(values []rune, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, sep)
}

func initialOf(s int, ok bool) string {
	if !ok {
		return "-"
	}
	return strconv.Itoa(s)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Automaton writes the states of a followed by its transitions, one row per label.
func Automaton(w io.Writer, a *automaton.Automaton) error {
	fmt.Fprintf(w, "states: %s\n", joinInts(a.States(), " "))
	fmt.Fprintf(w, "initial: %s\n", initialOf(a.Initial()))
	fmt.Fprintf(w, "finals: %s\n", orDash(joinInts(a.Finals(), " ")))

	table := tablewriter.NewWriter(w)
	table.Header([]string{"From", "Symbol", "To"})
	for _, s := range a.States() {
		for _, d := range a.Destinations(s) {
			for _, sym := range a.Labels(s, d) {
				if err := table.Append([]string{strconv.Itoa(s), string(sym), strconv.Itoa(d)}); err != nil {
					return err
				}
			}
		}
	}
	return table.Render()
}

// Grammar writes the start symbol, the nonterminals and every rule of g.
func Grammar(w io.Writer, g *cyk.Grammar) error {
	fmt.Fprintf(w, "start: %c\n", g.Start())
	fmt.Fprintf(w, "symbols: %s\n", joinRunes(g.Symbols(), " "))

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Kind", "Rule"})
	for _, rules := range [][]cyk.Rule{g.BinaryRules(), g.UnitRules()} {
		for _, r := range rules {
			rule := fmt.Sprintf("%c -> %s", r.Source, joinRunes(r.Targets, " "))
			if err := table.Append([]string{r.Kind.String(), rule}); err != nil {
				return err
			}
		}
	}
	return table.Render()
}

// Pushdown writes the states, the stack alphabet and the transitions of p.
func Pushdown(w io.Writer, p *pushdown.Automaton) error {
	fmt.Fprintf(w, "states: %s\n", joinInts(p.States(), " "))
	fmt.Fprintf(w, "initial: %s\n", initialOf(p.Initial()))
	fmt.Fprintf(w, "finals: %s\n", orDash(joinInts(p.Finals(), " ")))
	fmt.Fprintf(w, "stack: %s\n", orDash(joinRunes(p.StackSymbols(), " ")))

	table := tablewriter.NewWriter(w)
	table.Header([]string{"From", "To", "Match", "Pop", "Push"})
	for _, t := range p.Transitions() {
		row := []string{
			strconv.Itoa(t.From),
			strconv.Itoa(t.To),
			string(t.Match),
			string(t.Pop),
			orDash(string(t.Push)),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// CYKTable writes t with the longest substrings on top. The column of a cell is the offset where its
// substring starts.
func CYKTable(w io.Writer, t *cyk.Table) error {
	input := []rune(t.Input())
	header := make([]string, 0, len(input)+1)
	header = append(header, "Length")
	for _, sym := range input {
		header = append(header, string(sym))
	}

	// Headers are input symbols; keep their case.
	table := tablewriter.NewTable(w, tablewriter.WithHeaderAutoFormat(tw.Off))
	table.Header(header)
	for length := len(input); length >= 1; length-- {
		row := make([]string, 0, len(input)+1)
		row = append(row, strconv.Itoa(length))
		for start := range input {
			if start+length > len(input) {
				row = append(row, "")
				continue
			}
			row = append(row, orDash(joinRunes(t.Cell(length, start), ",")))
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// Results writes one row per witness path, or a single row for a query without paths.
func Results(w io.Writer, results []Result) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Input", "Verdict", "Path"})
	for _, r := range results {
		verdict := "rejected"
		if r.Accepted {
			verdict = "accepted"
		}
		if len(r.Paths) == 0 {
			if err := table.Append([]string{r.Input, verdict, "-"}); err != nil {
				return err
			}
			continue
		}
		for _, path := range r.Paths {
			if err := table.Append([]string{r.Input, verdict, joinInts(path, " -> ")}); err != nil {
				return err
			}
		}
	}
	return table.Render()
}
