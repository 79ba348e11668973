package sp2basic

// Config carries the parameters specific to the basic SP2 driver (the
// shared scalar knobs — epsilon, idempotency tolerance, worker count,
// debug — live in ellpsp2cfg.Config).
type Config struct {
	// NOcc is the target number of occupied states (trace target).
	NOcc float64

	// MinIter is the minimum number of iterations before the
	// error-history stopping rule is allowed to fire.
	MinIter int

	// MaxIter is the hard iteration ceiling.
	MaxIter int
}

// Option configures a Config.
type Option func(*Config)

// WithNOcc sets the target occupied-state count.
func WithNOcc(n float64) Option {
	return func(c *Config) { c.NOcc = n }
}

// WithMinIter sets the minimum iteration count.
func WithMinIter(n int) Option {
	return func(c *Config) { c.MinIter = n }
}

// WithMaxIter sets the maximum iteration count.
func WithMaxIter(n int) Option {
	return func(c *Config) { c.MaxIter = n }
}

// New builds a Config with default bounds (min_iter=25, max_iter=100)
// overridden by the supplied options. NOcc has no meaningful default and
// should always be set by the caller via WithNOcc.
func New(opts ...Option) Config {
	c := Config{
		NOcc:    0,
		MinIter: 25,
		MaxIter: 100,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
