package sp2math

import (
	"math"

	"github.com/latticeqc/sp2core/ellpsp2"
	"github.com/latticeqc/sp2core/ellpsp2err"
	"github.com/latticeqc/sp2core/rowpool"
)

// Add computes a <- alpha*a + beta*b in place, row-parallel, dropping
// off-diagonal entries with magnitude <= eps. a and b must have identical
// shape and must not alias.
func Add(pool *rowpool.Pool, eps float64, a, b *ellpsp2.Matrix, alpha, beta float64) error {
	if !a.SameShape(b) {
		return ellpsp2err.ErrShapeMismatch
	}
	if a == b {
		return ellpsp2err.ErrAliased
	}

	n := a.N()
	errs := &rowErrors{}

	a.ForEachRow(pool, func(lo, hi, idx int, ws *rowpool.Workspace) {
		flag := ws.Flag(n)
		accum := ws.Accum(n)

		for i := lo; i < hi; i++ {
			touched := ws.TouchedReset()

			acols, avals := a.Row(i)
			for k, col := range acols {
				flag[col] = i + 1
				accum[col] = alpha * avals[k]
				touched = append(touched, col)
			}
			bcols, bvals := b.Row(i)
			for k, col := range bcols {
				if flag[col] != i+1 {
					flag[col] = i + 1
					accum[col] = 0
					touched = append(touched, col)
				}
				accum[col] += beta * bvals[k]
			}
			if flag[i] != i+1 {
				flag[i] = i + 1
				accum[i] = 0
				touched = append(touched, i)
			}
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
