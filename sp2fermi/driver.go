package sp2fermi

import (
	"math"

	"github.com/latticeqc/sp2core/driverutil"
	"github.com/latticeqc/sp2core/ellpsp2"
	"github.com/latticeqc/sp2core/ellpsp2cfg"
	"github.com/latticeqc/sp2core/ellpsp2err"
	"github.com/latticeqc/sp2core/ellpsp2norm"
	"github.com/latticeqc/sp2core/rowpool"
	"github.com/latticeqc/sp2core/sp2math"
)

// FermiSentinelBeta is returned in place of an inverse temperature
// estimate when tr((I-rho)*rho) is too small to divide by safely.
const FermiSentinelBeta = -1000

// initResult holds what the initialization phase fixes before the main
// driver runs: the sign list, the chemical potential, and the
// inverse-temperature estimate.
type initResult struct {
	sigma []int
	mu    float64
	beta  float64
}

// applyStep advances rho (and, when tracking is non-nil, the secondary
// operator x1) by one sigma-indexed polynomial step.
func applyStep(pool *rowpool.Pool, eps float64, sign int, rho, x2, x1, scratch *ellpsp2.Matrix) error {
	if x1 != nil {
		if err := sp2math.Multiply(pool, eps, rho, x1, scratch, 1, 0); err != nil {
			return err
		}
		if err := sp2math.Multiply(pool, eps, x1, rho, scratch, 1, 1); err != nil {
			return err
		}
		if sign > 0 {
			if err := sp2math.Add(pool, eps, x1, scratch, 2, -1); err != nil {
				return err
			}
		} else {
			if err := sp2math.Add(pool, eps, x1, scratch, 0, 1); err != nil {
				return err
			}
		}
	}
	if sign > 0 {
		return sp2math.Add(pool, eps, rho, x2, 2, -1)
	}
	return x2.CopyInto(rho)
}

// runInit fixes sigma, mu, and beta by a nested search: an outer
// chemical-potential correction loop around an inner fixed-depth
// polynomial recursion. rho, x2, x1, and scratch are working matrices of
// the shape of h.
func runInit(pool *rowpool.Pool, cfg ellpsp2cfg.Config, fc Config, h, rho, x2, x1, scratch *ellpsp2.Matrix) (initResult, error) {
	eMin, eMax := sp2math.Gershgorin(pool, h)
	h1 := fc.TScale * eMin
	hN := fc.TScale * eMax
	mu := fc.InitialMu
	if mu == 0 {
		mu = 0.5 * (eMax + eMin)
	}

	identity, err := ellpsp2.Identity(h.N(), h.M())
	if err != nil {
		return initResult{}, err
	}
	denom := hN - h1

	sigma := make([]int, fc.NSteps)
	first := true

	for outer := 0; outer < fc.MaxOuterSteps; outer++ {
		if err := h.CopyInto(rho); err != nil {
			return initResult{}, err
		}
		if err := ellpsp2norm.Fermi(pool, cfg.Epsilon, rho, h1, hN, mu); err != nil {
			return initResult{}, err
		}

		if err := identity.CopyInto(x1); err != nil {
			return initResult{}, err
		}
		sp2math.ScaleInplace(pool, x1, -1.0/denom)

		for i := 0; i < fc.NSteps; i++ {
			trX, trX2, err := sp2math.MultiplyX2(pool, cfg.Epsilon, rho, x2)
			if err != nil {
				return initResult{}, err
			}
			if first {
				if math.Abs(trX2-fc.NOcc) < math.Abs(2*trX-trX2-fc.NOcc) {
					sigma[i] = -1
				} else {
					sigma[i] = 1
				}
			}
			if err := applyStep(pool, cfg.Epsilon, sigma[i], rho, x2, x1, scratch); err != nil {
				return initResult{}, err
			}
		}
		first = false

		occErr := math.Abs(fc.NOcc - rho.Trace())
		trX1 := x1.Trace()
		lambda := 0.0
		if math.Abs(trX1) > fc.ThetaTr {
			lambda = (fc.NOcc - rho.Trace()) / trX1
		}
		mu += lambda

		if occErr <= fc.ThetaOcc {
			break
		}
	}

	d := identity.Copy()
	if err := sp2math.Add(pool, cfg.Epsilon, d, rho, 1, -1); err != nil {
		return initResult{}, err
	}
	tResidual, err := sp2math.TraceMult(pool, d, rho)
	if err != nil {
		return initResult{}, err
	}

	beta := float64(FermiSentinelBeta)
	if math.Abs(tResidual) > fc.ThetaTr {
		beta = -x1.Trace() / tResidual
	}

	return initResult{sigma: sigma, mu: mu, beta: beta}, nil
}

// Run executes the SP2-Fermi driver on h and returns the
// (pre-doubling-consistent) density matrix, its final mu, and beta.
func Run(pool *rowpool.Pool, cfg ellpsp2cfg.Config, fc Config, h *ellpsp2.Matrix) (driverutil.Outcome, float64, float64, error) {
	rho, err := ellpsp2.Zero(h.N(), h.M())
	if err != nil {
		return driverutil.Outcome{}, 0, 0, err
	}
	x2, err := ellpsp2.Zero(h.N(), h.M())
	if err != nil {
		return driverutil.Outcome{}, 0, 0, err
	}
	x1, err := ellpsp2.Zero(h.N(), h.M())
	if err != nil {
		return driverutil.Outcome{}, 0, 0, err
	}
	scratch, err := ellpsp2.Zero(h.N(), h.M())
	if err != nil {
		return driverutil.Outcome{}, 0, 0, err
	}

	init, err := runInit(pool, cfg, fc, h, rho, x2, x1, scratch)
	if err != nil {
		return driverutil.Outcome{}, 0, 0, err
	}

	eMin, eMax := sp2math.Gershgorin(pool, h)
	h1 := fc.TScale * eMin
	hN := fc.TScale * eMax
	mu := init.mu
	beta := init.beta

	identity, err := ellpsp2.Identity(h.N(), h.M())
	if err != nil {
		return driverutil.Outcome{}, 0, 0, err
	}

	var lambda float64
	var deltaX *ellpsp2.Matrix
	converged := false
	outerSteps := 0

	for outer := 0; outer < fc.MaxOuterSteps; outer++ {
		outerSteps++
		if err := h.CopyInto(rho); err != nil {
			return driverutil.Outcome{}, 0, 0, err
		}
		if err := ellpsp2norm.Fermi(pool, cfg.Epsilon, rho, h1, hN, mu); err != nil {
			return driverutil.Outcome{}, 0, 0, err
		}
		for i := 0; i < fc.NSteps; i++ {
			if _, _, err := sp2math.MultiplyX2(pool, cfg.Epsilon, rho, x2); err != nil {
				return driverutil.Outcome{}, 0, 0, err
			}
			if err := applyStep(pool, cfg.Epsilon, init.sigma[i], rho, x2, nil, nil); err != nil {
				return driverutil.Outcome{}, 0, 0, err
			}
		}

		occErr := math.Abs(fc.NOcc - rho.Trace())
		if occErr <= fc.ThetaOcc {
			converged = true
		}

		d := identity.Copy()
		if err := sp2math.Add(pool, cfg.Epsilon, d, rho, 1, -1); err != nil {
			return driverutil.Outcome{}, 0, 0, err
		}
		deltaX, err = ellpsp2.Zero(h.N(), h.M())
		if err != nil {
			return driverutil.Outcome{}, 0, 0, err
		}
		if err := sp2math.Multiply(pool, cfg.Epsilon, rho, d, deltaX, 1, 0); err != nil {
			return driverutil.Outcome{}, 0, 0, err
		}
		sp2math.ScaleInplace(pool, deltaX, -beta)

		trDeltaX := deltaX.Trace()
		lambda = 0
		if math.Abs(trDeltaX) > fc.ThetaTr {
			lambda = (fc.NOcc - rho.Trace()) / trDeltaX
		}

		if converged {
			break
		}
		mu += lambda
	}

	if deltaX != nil && lambda != 0 {
		sp2math.ScaleInplace(pool, deltaX, lambda)
		if err := sp2math.Add(pool, cfg.Epsilon, rho, deltaX, 1, 1); err != nil {
			return driverutil.Outcome{}, 0, 0, err
		}
	}
	sp2math.ScaleInplace(pool, rho, 2)

	out := driverutil.Outcome{Rho: rho, Iterations: outerSteps}
	if !converged {
		out.Warnings = append(out.Warnings, ellpsp2err.ErrFermiStepsExhausted)
	}
	return out, mu, beta, nil
}
