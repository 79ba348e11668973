package sp2fermi

// Config carries the parameters specific to the finite-temperature
// SP2-Fermi driver (shared scalar knobs live in ellpsp2cfg.Config).
type Config struct {
	// NOcc is the target trace of the (pre-doubling) density matrix.
	NOcc float64

	// TScale is the Gershgorin bound scale factor s: h1 = s*eMin,
	// hN = s*eMax.
	TScale float64

	// NSteps is the fixed polynomial recursion depth per outer step
	// (and the length of the sign list sigma).
	NSteps int

	// MaxOuterSteps bounds both the mu-search during initialization and
	// the main driver's outer loop.
	MaxOuterSteps int

	// ThetaOcc is the occupation error limit.
	ThetaOcc float64

	// ThetaTr is the trace limit guarding division by a near-zero
	// secondary-operator trace.
	ThetaTr float64

	// InitialMu seeds the chemical-potential search; zero means "derive
	// it from the Gershgorin midpoint".
	InitialMu float64
}

// Option configures a Config.
type Option func(*Config)

func WithNOcc(n float64) Option          { return func(c *Config) { c.NOcc = n } }
func WithTScale(s float64) Option        { return func(c *Config) { c.TScale = s } }
func WithNSteps(n int) Option            { return func(c *Config) { c.NSteps = n } }
func WithMaxOuterSteps(n int) Option     { return func(c *Config) { c.MaxOuterSteps = n } }
func WithThetaOcc(theta float64) Option  { return func(c *Config) { c.ThetaOcc = theta } }
func WithThetaTr(theta float64) Option   { return func(c *Config) { c.ThetaTr = theta } }
func WithInitialMu(mu float64) Option    { return func(c *Config) { c.InitialMu = mu } }

// New builds a Config with default bounds (n_steps=18, theta_occ=1e-9,
// theta_tr=1e-12) overridden by the supplied options. NOcc has no
// meaningful default and should always be set via WithNOcc.
func New(opts ...Option) Config {
	c := Config{
		NOcc:          0,
		TScale:        1.0,
		NSteps:        18,
		MaxOuterSteps: 100,
		ThetaOcc:      1e-9,
		ThetaTr:       1e-12,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
