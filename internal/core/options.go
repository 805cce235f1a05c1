package core

// composeConfig holds the optional knobs for a Compose run. The zero value
// explores the full reachable state space with no bound, matching the
// original model checker's default behavior.
type composeConfig struct {
	maxStates int
}

// Option configures a Compose call. Following the teacher's functional
// options idiom, zero, one or many Options may be passed; later Options
// override earlier ones.
type Option func(*composeConfig)

// WithMaxStates bounds exploration to at most n states. If the bound is
// reached before the reachable state space closes, Compose returns the
// partial LTS explored so far (with Truncated set to true) alongside
// ErrMaxStatesExceeded. n <= 0 means unbounded, matching the zero value.
func WithMaxStates(n int) Option {
	return func(c *composeConfig) {
		c.maxStates = n
	}
}
