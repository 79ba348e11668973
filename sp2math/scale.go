package sp2math

import (
	"math"

	"github.com/latticeqc/sp2core/ellpsp2"
	"github.com/latticeqc/sp2core/ellpsp2err"
	"github.com/latticeqc/sp2core/rowpool"
)

// ScaleAddIdentity computes a <- alpha*a + beta*I in place, always writing
// the diagonal entry even when beta is 0. This is the one primitive
// besides ScaleInplace whose contract permits aliasing the input and
// output, since it is defined as in-place.
func ScaleAddIdentity(pool *rowpool.Pool, eps float64, a *ellpsp2.Matrix, alpha, beta float64) error {
	n := a.N()
	errs := &rowErrors{}

	a.ForEachRow(pool, func(lo, hi, idx int, ws *rowpool.Workspace) {
		flag := ws.Flag(n)
		accum := ws.Accum(n)

		for i := lo; i < hi; i++ {
			touched := ws.TouchedReset()

			cols, vals := a.Row(i)
			for k, col := range cols {
				flag[col] = i + 1
				accum[col] = alpha * vals[k]
				touched = append(touched, col)
			}
			if flag[i] != i+1 {
				flag[i] = i + 1
				accum[i] = 0
				touched = append(touched, i)
			}
			accum[i] += beta
			ws.SaveTouched(touched)

			outCols, outVals := a.RowCap(i)
			if len(touched) > len(outCols) {
				errs.set(ellpsp2err.ErrRowCapacityOverflow)
				continue
			}
			ll := 0
			for _, col := range touched {
				v := accum[col]
				if col == i || math.Abs(v) > eps {
					outCols[ll] = col
					outVals[ll] = v
					ll++
				}
			}
			if e := a.SetNNZ(i, ll); e != nil {
				errs.set(e)
			}
		}
	})

	return errs.get()
}

// ScaleInplace multiplies every stored value of a by gamma. It does not
// prune: no entry is ever dropped by this primitive, even if a scaled
// value lands below eps.
func ScaleInplace(pool *rowpool.Pool, a *ellpsp2.Matrix, gamma float64) {
	a.ForEachRow(pool, func(lo, hi, idx int, ws *rowpool.Workspace) {
		for i := lo; i < hi; i++ {
			_, vals := a.Row(i)
			for k := range vals {
				vals[k] *= gamma
			}
		}
	})
}

// Gershgorin computes the elementary eigenvalue-enclosing interval of a
// symmetric matrix: eMax = max_i (d_i + r_i), eMin = min_i (d_i - r_i),
// where d_i is the diagonal of row i and r_i is the sum of absolute
// off-diagonal values in row i.
func Gershgorin(pool *rowpool.Pool, a *ellpsp2.Matrix) (eMin, eMax float64) {
	n := a.N()
	chunks := pool.NumChunks(n)
	partMin := make([]float64, chunks)
	partMax := make([]float64, chunks)
	for i := range partMin {
		partMin[i] = math.Inf(1)
		partMax[i] = math.Inf(-1)
	}

	a.ForEachRow(pool, func(lo, hi, idx int, ws *rowpool.Workspace) {
		localMin, localMax := math.Inf(1), math.Inf(-1)
		for i := lo; i < hi; i++ {
			cols, vals := a.Row(i)
			var d, r float64
			for k, col := range cols {
				if col == i {
					d = vals[k]
				} else {
					r += math.Abs(vals[k])
				}
			}
			if d+r > localMax {
				localMax = d + r
			}
			if d-r < localMin {
				localMin = d - r
			}
		}
		partMin[idx] = localMin
		partMax[idx] = localMax
	})

	eMin, eMax = math.Inf(1), math.Inf(-1)
	for i := 0; i < chunks; i++ {
		if partMin[i] < eMin {
			eMin = partMin[i]
		}
		if partMax[i] > eMax {
			eMax = partMax[i]
		}
	}
	return eMin, eMax
}

// TraceMult returns tr(A*B) = sum_i sum_j A[i][j]*B[j][i] without
// materializing A*B.
func TraceMult(pool *rowpool.Pool, a, b *ellpsp2.Matrix) (float64, error) {
	if !a.SameShape(b) {
		return 0, ellpsp2err.ErrShapeMismatch
	}
	n := a.N()
	chunks := pool.NumChunks(n)
	parts := make([]float64, chunks)

	a.ForEachRow(pool, func(lo, hi, idx int, ws *rowpool.Workspace) {
		var s float64
		for i := lo; i < hi; i++ {
			cols, vals := a.Row(i)
			for k, j := range cols {
				s += vals[k] * b.At(j, i)
			}
		}
		parts[idx] = s
	})

	var total float64
	for _, p := range parts {
		total += p
	}
	return total, nil
}

// SumSquares returns the Frobenius norm squared: the sum of squares of
// every stored value.
func SumSquares(pool *rowpool.Pool, a *ellpsp2.Matrix) float64 {
	n := a.N()
	chunks := pool.NumChunks(n)
	parts := make([]float64, chunks)

	a.ForEachRow(pool, func(lo, hi, idx int, ws *rowpool.Workspace) {
		var s float64
		for i := lo; i < hi; i++ {
			_, vals := a.Row(i)
			for _, v := range vals {
				s += v * v
			}
		}
		parts[idx] = s
	})

	var total float64
	for _, p := range parts {
		total += p
	}
	return total
}
