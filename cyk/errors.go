package cyk

import "fmt"

// MalformedRuleError reports a rule that is not in Chomsky Normal Form.
type MalformedRuleError struct {
	Kind   RuleKind
	Source rune
	Reason string
}

func (e *MalformedRuleError) Error() string {
	return fmt.Sprintf("cyk: malformed rule of kind %d for %q: %s", int(e.Kind), e.Source, e.Reason)
}
