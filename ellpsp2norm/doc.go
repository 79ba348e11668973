// Package ellpsp2norm implements the two Hamiltonian normalizers: the
// basic variant (X0 = (eMax*I - H)/(eMax-eMin), spectrum in [0,1]) used by
// the zero-temperature SP2 driver, and the Fermi variant
// (X0 = ((hN-mu)*I - H)/(hN-h1)) used by the finite-temperature driver.
package ellpsp2norm

import (
	"github.com/latticeqc/sp2core/ellpsp2"
	"github.com/latticeqc/sp2core/ellpsp2err"
	"github.com/latticeqc/sp2core/rowpool"
	"github.com/latticeqc/sp2core/sp2math"
)

// Bounds holds the Gershgorin enclosing interval of a Hamiltonian.
type Bounds struct {
	EMin, EMax float64
}

// GershgorinBounds computes the Gershgorin interval of h.
func GershgorinBounds(pool *rowpool.Pool, h *ellpsp2.Matrix) Bounds {
	eMin, eMax := sp2math.Gershgorin(pool, h)
	return Bounds{EMin: eMin, EMax: eMax}
}

// Basic normalizes rho in place from the Gershgorin bounds of the
// Hamiltonian it was copied from: rho <- (eMax*I - rho)/(eMax-eMin). The
// caller is expected to have already copied H into rho (ScaleAddIdentity
// is in-place by contract).
func Basic(pool *rowpool.Pool, eps float64, rho *ellpsp2.Matrix, b Bounds) error {
	delta := b.EMax - b.EMin
	if delta == 0 {
		return ellpsp2err.ErrDegenerateScaling
	}
	alpha := -1.0 / delta
	beta := b.EMax / delta
	return sp2math.ScaleAddIdentity(pool, eps, rho, alpha, beta)
}

// Fermi normalizes rho in place using scaled Gershgorin bounds h1, hN and
// the current chemical potential mu: rho <- ((hN-mu)*I - rho)/(hN-h1).
func Fermi(pool *rowpool.Pool, eps float64, rho *ellpsp2.Matrix, h1, hN, mu float64) error {
	delta := hN - h1
	if delta == 0 {
		return ellpsp2err.ErrDegenerateScaling
	}
	alpha := -1.0 / delta
	beta := (hN - mu) / delta
	return sp2math.ScaleAddIdentity(pool, eps, rho, alpha, beta)
}
