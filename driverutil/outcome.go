// Package driverutil defines the shared result shape every SP2 driver
// (sp2basic, sp2fermi, sp2implicit) returns: a best-effort density matrix
// plus any recoverable warnings, so non-convergence surfaces as a tagged
// outcome rather than discarding the best-effort result.
package driverutil

import "github.com/latticeqc/sp2core/ellpsp2"

// Outcome is the result of running an SP2 driver to completion or to its
// iteration cap, whichever comes first.
type Outcome struct {
	// Rho is the best-effort density matrix produced by the driver. It is
	// always non-nil, even when Warnings is non-empty.
	Rho *ellpsp2.Matrix

	// Iterations is the number of outer-loop iterations the driver ran.
	Iterations int

	// Warnings holds recoverable non-convergence / degenerate-scaling
	// errors; nil means the driver converged cleanly.
	Warnings []error
}

// Converged reports whether the driver produced no warnings.
func (o Outcome) Converged() bool { return len(o.Warnings) == 0 }
