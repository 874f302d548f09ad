package pushdown

const (
	// DefaultLambda labels moves that consume no input and stack operations that touch nothing.
	DefaultLambda = '0'
	// DefaultMaxDepth bounds the length of an explored execution.
	DefaultMaxDepth = 10000
	// DefaultMaxStack bounds the number of symbols on the stack.
	DefaultMaxStack = 10000
)

type options struct {
	lambda   rune
	maxDepth int
	maxStack int
}

// Option configures an Automaton at construction time.
type Option func(*options)

// WithLambda sets the symbol standing for "no input" in Match and "no pop" in Pop.
func WithLambda(lambda rune) Option {
	return func(o *options) {
		o.lambda = lambda
	}
}

// WithMaxDepth bounds the number of moves along one execution. Zero or less disables the bound.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithMaxStack bounds the stack height. Zero or less disables the bound.
func WithMaxStack(size int) Option {
	return func(o *options) {
		o.maxStack = size
	}
}
