package pushdown

import "github.com/geange/langrec/automaton"

// Accept reports whether p accepts input: some execution consumes the whole input and stops in a
// final state, whatever is left on the stack.
//
// The search is depth first over (state, position, stack). A lambda move whose destination is the
// state that started the current unbroken chain of lambda moves is skipped. Other lambda cycles are
// cut by the depth and stack bounds. A cut branch is abandoned and the search goes on with its
// siblings; only when no execution accepts and some branch was cut does Accept return a
// *ResourceExhaustionError, for the first bound that was hit.
func (p *Automaton) Accept(input string) (bool, error) {
	initial, ok := p.Initial()
	if !ok {
		return false, automaton.ErrNoInitialState
	}
	s := &search{
		p:     p,
		input: []rune(input),
		dests: make(map[int][]int, len(p.transitions)),
	}
	for from, byDest := range p.transitions {
		s.dests[from] = sortedKeys(byDest)
	}
	if s.visit(initial, 0, false, 0) {
		return true, nil
	}
	if s.exhausted != nil {
		return false, s.exhausted
	}
	return false, nil
}

type search struct {
	p     *Automaton
	input []rune
	dests map[int][]int

	stack []rune
	depth int

	// first bound hit by a cut branch
	exhausted *ResourceExhaustionError
}

func (s *search) cut(limit string, bound int) {
	if s.exhausted == nil {
		s.exhausted = &ResourceExhaustionError{Limit: limit, Bound: bound}
	}
}

// visit explores the executions continuing from state at position pos. origin is the state that
// started the current lambda chain and is only meaningful when previousIsLambda holds.
func (s *search) visit(state, pos int, previousIsLambda bool, origin int) bool {
	if pos == len(s.input) && s.p.IsFinal(state) {
		return true
	}

	lambda := s.p.opts.lambda
	if bound := s.p.opts.maxDepth; bound > 0 && s.depth >= bound {
		s.cut("depth", bound)
		return false
	}
	s.depth++
	defer func() { s.depth-- }()

	for _, dest := range s.dests[state] {
		for _, t := range s.p.transitions[state][dest] {
			lambdaMove := t.Match == lambda
			if lambdaMove && previousIsLambda && dest == origin {
				continue
			}
			if !lambdaMove && (pos == len(s.input) || s.input[pos] != t.Match) {
				continue
			}
			popping := t.Pop != lambda
			if popping && (len(s.stack) == 0 || s.stack[len(s.stack)-1] != t.Pop) {
				continue
			}

			if popping {
				s.stack = s.stack[:len(s.stack)-1]
			}
			s.stack = append(s.stack, t.Push...)

			var accepted bool
			if bound := s.p.opts.maxStack; bound > 0 && len(s.stack) > bound {
				s.cut("stack", bound)
			} else if lambdaMove {
				chainOrigin := origin
				if !previousIsLambda {
					chainOrigin = state
				}
				accepted = s.visit(dest, pos, true, chainOrigin)
			} else {
				accepted = s.visit(dest, pos+1, false, 0)
			}

			s.stack = s.stack[:len(s.stack)-len(t.Push)]
			if popping {
				s.stack = append(s.stack, t.Pop)
			}
			if accepted {
				return true
			}
		}
	}
	return false
}
