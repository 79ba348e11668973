package sp2implicit

// Config carries the parameters specific to the implicit recursion driver
// (shared scalar knobs live in ellpsp2cfg.Config).
type Config struct {
	// NOcc is the target trace of the (pre-doubling) density matrix.
	NOcc float64

	// MinIter is the minimum number of outer recursion levels before the
	// error-history stopping rule is allowed to fire.
	MinIter int

	// MaxIter is the hard outer-recursion ceiling.
	MaxIter int

	// CGMaxIter bounds the inner conjugate-gradient solve.
	CGMaxIter int

	// CGTol is the squared-residual convergence criterion for CG.
	CGTol float64
}

// Option configures a Config.
type Option func(*Config)

func WithNOcc(n float64) Option     { return func(c *Config) { c.NOcc = n } }
func WithMinIter(n int) Option      { return func(c *Config) { c.MinIter = n } }
func WithMaxIter(n int) Option      { return func(c *Config) { c.MaxIter = n } }
func WithCGMaxIter(n int) Option    { return func(c *Config) { c.CGMaxIter = n } }
func WithCGTol(tol float64) Option  { return func(c *Config) { c.CGTol = tol } }

// New builds a Config with default bounds (min_iter=25, max_iter=100,
// cg_max_iter=100) overridden by the supplied options. NOcc has no
// meaningful default and should always be set via WithNOcc.
func New(opts ...Option) Config {
	c := Config{
		NOcc:      0,
		MinIter:   25,
		MaxIter:   100,
		CGMaxIter: 100,
		CGTol:     1e-10,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
