package cyk_test

import (
	"fmt"

	"github.com/geange/langrec/cyk"
)

func ExampleGrammar_Accept() {
	g := cyk.NewGrammar('S')
	_ = g.AddRule(cyk.Binary, 'S', 'A', 'B')
	_ = g.AddRule(cyk.Unit, 'A', 'a')
	_ = g.AddRule(cyk.Unit, 'B', 'b')

	fmt.Println(g.Accept("ab"), g.Accept("ba"), g.Accept("a"))
	// Output: true false false
}
