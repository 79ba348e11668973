package sp2implicit

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

// Run executes the implicit recursion driver on h and returns the
// density matrix. A non-nil error is a fatal, unrecoverable
// fault; CG non-convergence at any recursion level is downgraded to a
// warning in the returned Outcome, with the best-effort rho from that
// level carried forward.
func Run(pool *rowpool.Pool, cfg ellpsp2cfg.Config, ic Config, h *ellpsp2.Matrix) (driverutil.Outcome, error) {
	rho := h.Copy()
	x2, err := ellpsp2.Zero(h.N(), h.M())
	if err != nil {
		return driverutil.Outcome{}, err
	}

	bounds := ellpsp2norm.GershgorinBounds(pool, h)
	if err := ellpsp2norm.Basic(pool, cfg.Epsilon, rho, bounds); err != nil {
		return driverutil.Outcome{}, err
	}

	identity, err := ellpsp2.Identity(h.N(), h.M())
	if err != nil {
		return driverutil.Outcome{}, err
	}

	var e, e1, e2 float64
	iter := 0
	breakLoop := false
	terminatedCleanly := false
	var warnings []error

	for !breakLoop && iter < ic.MaxIter {
		trXOld, _, err := sp2math.MultiplyX2(pool, cfg.Epsilon, rho, x2)
		if err != nil {
			return driverutil.Outcome{}, err
		}

		// A = 2I + (rho^2 - rho)
		a := x2.Copy()
		if err := sp2math.Add(pool, cfg.Epsilon, a, rho, 1, -1); err != nil {
			return driverutil.Outcome{}, err
		}
		twoI := identity.Copy()
		sp2math.ScaleInplace(pool, twoI, 2)
		if err := sp2math.Add(pool, cfg.Epsilon, twoI, a, 1, 1); err != nil {
			return driverutil.Outcome{}, err
		}
		a = twoI

		p, _, cgErr := cgSolve(pool, cfg.Epsilon, a, x2, ic.CGMaxIter, ic.CGTol)
		if cgErr != nil {
			if cgErr == ellpsp2err.ErrCGNonConvergent {
				warnings = append(warnings, cgErr)
			} else {
				return driverutil.Outcome{}, cgErr
			}
		}
		rho = p

		trX := rho.Trace()
		e2 = e1
		e1 = e
		e = math.Abs(trX - trXOld)
		iter++

		delta := math.Abs(trX-ic.NOcc) - math.Abs(trXOld-ic.NOcc)
		if delta > -cfg.IdemTol && iter >= ic.MinIter && e >= e2 {
			breakLoop = true
			terminatedCleanly = true
		}
	}

	sp2math.ScaleInplace(pool, rho, 2)

	out := driverutil.Outcome{Rho: rho, Iterations: iter, Warnings: warnings}
	if !terminatedCleanly {
		out.Warnings = append(out.Warnings, ellpsp2err.ErrSP2MaxIterReached)
	}
	return out, nil
}
