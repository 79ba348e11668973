// Package ellpsp2cfg threads solver-wide configuration (epsilon,
// idempotency tolerance, debug flag, worker count) through an explicit
// value rather than global mutable state, using the functional-options
// pattern (WithEpsilon, WithWorkers, ...).
package ellpsp2cfg

import "runtime"

// Config carries the scalar knobs every primitive and driver in this
// module needs. A zero Config is not valid; build one with New.
type Config struct {
	// Epsilon is the drop threshold: off-diagonal entries with magnitude
	// <= Epsilon are not stored after a primitive runs.
	Epsilon float64

	// IdemTol is the SP2 basic loop's idempotency tolerance (tau).
	IdemTol float64

	// Workers is the number of goroutines row-parallel primitives use.
	Workers int

	// Debug enables perf timers/counters and verbose driver logging.
	Debug bool
}

// Option configures a Config.
type Option func(*Config)

// WithEpsilon sets the drop threshold.
func WithEpsilon(eps float64) Option {
	return func(c *Config) { c.Epsilon = eps }
}

// WithIdemTol sets the SP2 idempotency tolerance.
func WithIdemTol(tol float64) Option {
	return func(c *Config) { c.IdemTol = tol }
}

// WithWorkers sets the row-parallel worker count. Values <= 0 mean
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *Config) { c.Workers = n }
}

// WithDebug toggles perf instrumentation and verbose logging.
func WithDebug(d bool) Option {
	return func(c *Config) { c.Debug = d }
}

// New builds a Config with the package defaults overridden by the
// supplied options.
//
// Defaults: Epsilon=1e-5, IdemTol=1e-14, Workers=GOMAXPROCS, Debug=false.
func New(opts ...Option) Config {
	c := Config{
		Epsilon: 1e-5,
		IdemTol: 1e-14,
		Workers: runtime.GOMAXPROCS(0),
		Debug:   false,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
