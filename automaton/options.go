package automaton

const (
	// DefaultEpsilon labels transitions that consume no input.
	DefaultEpsilon = '0'
	// DefaultEpsilonString is the query text that stands for the empty input.
	DefaultEpsilonString = "-"
)

type options struct {
	epsilon       rune
	epsilonString string
}

// Option configures an Automaton at construction time.
type Option func(*options)

func defaultOptions() options {
	return options{
		epsilon:       DefaultEpsilon,
		epsilonString: DefaultEpsilonString,
	}
}

// WithEpsilon sets the symbol that labels epsilon transitions.
func WithEpsilon(epsilon rune) Option {
	return func(o *options) {
		o.epsilon = epsilon
	}
}

// WithEpsilonString sets the input text that denotes the empty string.
func WithEpsilonString(s string) Option {
	return func(o *options) {
		o.epsilonString = s
	}
}
