package sp2implicit

import (
	"github.com/latticeqc/sp2core/ellpsp2"
	"github.com/latticeqc/sp2core/ellpsp2err"
	"github.com/latticeqc/sp2core/rowpool"
	"github.com/latticeqc/sp2core/sp2math"
)

// cgSolve finds P such that A*P = b under the Frobenius inner product
// <X,Y> = tr(X*Y): search direction d, residual update R <- R - alpha*A*d,
// step alpha = ||R||^2 / tr(d*A*d), convergence when ||R||^2 <= tol.
// Returns ellpsp2err.ErrCGNonConvergent if maxIter is exhausted first, or
// if tr(d*A*d) is exactly zero; the best-effort P is still returned in
// either case.
func cgSolve(pool *rowpool.Pool, eps float64, a, b *ellpsp2.Matrix, maxIter int, tol float64) (*ellpsp2.Matrix, int, error) {
	n, m := a.N(), a.M()

	p, err := ellpsp2.Zero(n, m)
	if err != nil {
		return nil, 0, err
	}
	r := b.Copy()
	d := r.Copy()

	rNormSq := sp2math.SumSquares(pool, r)

	for iter := 0; iter < maxIter; iter++ {
		if rNormSq <= tol {
			return p, iter, nil
		}

		ad, err := ellpsp2.Zero(n, m)
		if err != nil {
			return nil, iter, err
		}
		if err := sp2math.Multiply(pool, eps, a, d, ad, 1, 0); err != nil {
			return nil, iter, err
		}

		denom, err := sp2math.TraceMult(pool, d, ad)
		if err != nil {
			return nil, iter, err
		}
		if denom == 0 {
			return p, iter, ellpsp2err.ErrCGNonConvergent
		}
		alpha := rNormSq / denom

		step := d.Copy()
		sp2math.ScaleInplace(pool, step, alpha)
		if err := sp2math.Add(pool, eps, p, step, 1, 1); err != nil {
			return nil, iter, err
		}

		sp2math.ScaleInplace(pool, ad, alpha)
		if err := sp2math.Add(pool, eps, r, ad, 1, -1); err != nil {
			return nil, iter, err
		}

		rNewSq := sp2math.SumSquares(pool, r)
		beta := rNewSq / rNormSq

		oldD := d.Copy()
		sp2math.ScaleInplace(pool, oldD, beta)
		newD := r.Copy()
		if err := sp2math.Add(pool, eps, newD, oldD, 1, 1); err != nil {
			return nil, iter, err
		}
		d = newD
		rNormSq = rNewSq
	}

	return p, maxIter, ellpsp2err.ErrCGNonConvergent
}
