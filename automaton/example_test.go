package automaton_test

import (
	"fmt"

	"github.com/geange/langrec/automaton"
)

func ExampleAcceptWithPaths() {
	a := automaton.NewAutomaton()
	a.AddState(0)
	a.AddState(1)
	_ = a.AddTransition(0, 1, 'a')
	_ = a.AddTransition(1, 1, 'b')
	_ = a.SetInitial(0)
	_ = a.AddFinal(1)

	fmt.Println(automaton.AcceptWithPaths(a, "ab"))
	fmt.Println(automaton.Accept(a, "ba"))
	// Output:
	// [[0 1 1]]
	// false
}

func ExampleMinimize() {
	a, _ := automaton.NewAutomata().MakeAnyString("xy")
	a.AddState(1)
	_ = a.AddTransition(0, 1, 'z')
	_ = a.AddTransition(1, 0, 'z')
	_ = a.AddTransition(1, 1, 'x')
	_ = a.AddTransition(1, 1, 'y')
	_ = a.AddFinal(1)

	m, err := automaton.Minimize(a, automaton.DefaultDeterminizeWorkLimit)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m.NumStates(), m.Alphabet())
	// Output:
	// 1 [120 121 122]
}
