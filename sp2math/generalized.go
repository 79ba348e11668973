package sp2math

import (
	"math"

	"github.com/latticeqc/sp2core/ellpsp2"
	"github.com/latticeqc/sp2core/ellpsp2err"
	"github.com/latticeqc/sp2core/rowpool"
)

// Multiply computes c <- alpha*a*b + beta*c, row-parallel, dropping
// off-diagonal entries of c with magnitude <= eps. a, b, and c must have
// identical shape; c must not alias a or b.
func Multiply(pool *rowpool.Pool, eps float64, a, b, c *ellpsp2.Matrix, alpha, beta float64) error {
	if !a.SameShape(b) || !a.SameShape(c) {
		return ellpsp2err.ErrShapeMismatch
	}
	if a == c || b == c {
		return ellpsp2err.ErrAliased
	}

	n := a.N()
	errs := &rowErrors{}

	a.ForEachRow(pool, func(lo, hi, idx int, ws *rowpool.Workspace) {
		flag := ws.Flag(n)
		accum := ws.Accum(n)

		for i := lo; i < hi; i++ {
			touched := ws.TouchedReset()

			if beta != 0 {
				oldCols, oldVals := c.Row(i)
				for k, col := range oldCols {
					flag[col] = i + 1
					accum[col] = beta * oldVals[k]
					touched = append(touched, col)
				}
			}
			if flag[i] != i+1 {
				flag[i] = i + 1
				accum[i] = 0
				touched = append(touched, i)
			}

			acols, avals := a.Row(i)
			for jp, jcol := range acols {
				aij := avals[jp]
				bcols, bvals := b.Row(jcol)
				for kp, k := range bcols {
					if flag[k] != i+1 {
						flag[k] = i + 1
						accum[k] = 0
						touched = append(touched, k)
					}
					accum[k] += alpha * aij * bvals[kp]
				}
			}
			ws.SaveTouched(touched)

			outCols, outVals := c.RowCap(i)
			if len(touched) > len(outCols) {
				errs.set(ellpsp2err.ErrRowCapacityOverflow)
				continue
			}
			ll := 0
			for _, col := range touched {
				v := accum[col]
				if col == i {
					outCols[ll] = col
					outVals[ll] = v
					ll++
				} else if math.Abs(v) > eps {
					outCols[ll] = col
					outVals[ll] = v
					ll++
				}
			}
			if e := c.SetNNZ(i, ll); e != nil {
				errs.set(e)
			}
		}
	})

	return errs.get()
}
