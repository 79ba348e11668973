package sp2basic

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

// Run executes the zero-temperature SP2 recursion on h and returns the
// density matrix. A non-nil error means a fatal,
// unrecoverable fault (capacity overflow, degenerate Gershgorin scaling);
// a non-convergence warning is reported through the returned Outcome
// instead, alongside the best-effort rho.
func Run(pool *rowpool.Pool, cfg ellpsp2cfg.Config, bc Config, h *ellpsp2.Matrix) (driverutil.Outcome, error) {
	rho := h.Copy()
	x2, err := ellpsp2.Zero(h.N(), h.M())
	if err != nil {
		return driverutil.Outcome{}, err
	}

	bounds := ellpsp2norm.GershgorinBounds(pool, h)
	if err := ellpsp2norm.Basic(pool, cfg.Epsilon, rho, bounds); err != nil {
		return driverutil.Outcome{}, err
	}

	var e, e1, e2 float64
	iter := 0
	breakLoop := false
	terminatedCleanly := false

	for !breakLoop && iter < bc.MaxIter {
		trX, trX2, err := sp2math.MultiplyX2(pool, cfg.Epsilon, rho, x2)
		if err != nil {
			return driverutil.Outcome{}, err
		}

		delta1 := math.Abs(trX2 - bc.NOcc)
		delta2 := math.Abs(2*trX - trX2 - bc.NOcc)
		diff := delta1 - delta2
		trXOld := trX

		switch {
		case diff > cfg.IdemTol:
			trX = 2*trX - trX2
			if err := sp2math.Add(pool, cfg.Epsilon, rho, x2, 2, -1); err != nil {
				return driverutil.Outcome{}, err
			}
		case diff < -cfg.IdemTol:
			trX = trX2
			if err := x2.CopyInto(rho); err != nil {
				return driverutil.Outcome{}, err
			}
		default:
			trX = trXOld
			breakLoop = true
			terminatedCleanly = true
		}

		e2 = e1
		e1 = e
		e = math.Abs(trX - trXOld)
		iter++

		if iter >= bc.MinIter && e >= e2 {
			breakLoop = true
			terminatedCleanly = true
		}
	}

	sp2math.ScaleInplace(pool, rho, 2)

	out := driverutil.Outcome{Rho: rho, Iterations: iter}
	if !terminatedCleanly {
		out.Warnings = append(out.Warnings, ellpsp2err.ErrSP2MaxIterReached)
	}
	return out, nil
}
