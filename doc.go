// Package langrec is a formal-language recognition engine.
//
// It is organized in sub-packages:
//
//	automaton/   finite automata (DFA, NFA, epsilon-NFA), acceptance search,
//	             subset construction and Hopcroft minimization
//	cyk/         Chomsky-Normal-Form grammars and the CYK recognizer
//	pushdown/    pushdown automata and backtracking acceptance
//	desc/        text and YAML descriptions of automata, grammars and queries
//	report/      table rendering of automata, grammars and verdicts
//
// The langrec command in cmd/langrec wires them together.
package langrec
