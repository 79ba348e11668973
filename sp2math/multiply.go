package sp2math

import (
	"math"
	"sync"

	"github.com/latticeqc/sp2core/ellpsp2"
	"github.com/latticeqc/sp2core/ellpsp2err"
	"github.com/latticeqc/sp2core/rowpool"
)

// rowErrors collects the first capacity-overflow error raised by any row
// range, in a way that is safe to write from multiple goroutines.
type rowErrors struct {
	mu  sync.Mutex
	err error
}

func (r *rowErrors) set(err error) {
	if err == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err == nil {
		r.err = err
	}
}

func (r *rowErrors) get() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// MultiplyX2 computes out = x*x and returns tr(x) and tr(x*x), dropping
// off-diagonal entries of out with magnitude <= eps. x and out must have
// identical shape and must not alias.
//
// The touched-column list for row i is accumulated directly into out's
// own row-i column buffer (capacity M) as scratch before being compacted
// in place: if more than M distinct columns are touched, that is a fatal
// row capacity overflow.
func MultiplyX2(pool *rowpool.Pool, eps float64, x, out *ellpsp2.Matrix) (trX, trX2 float64, err error) {
	if !x.SameShape(out) {
		return 0, 0, ellpsp2err.ErrShapeMismatch
	}
	if x == out {
		return 0, 0, ellpsp2err.ErrAliased
	}

	n := x.N()
	chunks := pool.NumChunks(n)
	partX := make([]float64, chunks)
	partX2 := make([]float64, chunks)
	errs := &rowErrors{}

	x.ForEachRow(pool, func(lo, hi, idx int, ws *rowpool.Workspace) {
		flag := ws.Flag(n)
		accum := ws.Accum(n)
		var tX, tX2 float64

		for i := lo; i < hi; i++ {
			outCols, outVals := out.RowCap(i)
			l := 0
			overflowed := false

			xcols, xvals := x.Row(i)
			for jp, jcol := range xcols {
				a := xvals[jp]
				if jcol == i {
					tX += a
				}
				jrowCols, jrowVals := x.Row(jcol)
				for kp, k := range jrowCols {
					if flag[k] != i+1 {
						if l >= len(outCols) {
							overflowed = true
							break
						}
						flag[k] = i + 1
						accum[k] = 0
						outCols[l] = k
						l++
					}
					accum[k] += a * jrowVals[kp]
				}
				if overflowed {
					break
				}
			}
			if overflowed {
				errs.set(ellpsp2err.ErrRowCapacityOverflow)
				continue
			}

			ll := 0
			for t := 0; t < l; t++ {
				col := outCols[t]
				v := accum[col]
				if col == i {
					tX2 += v
					outCols[ll] = col
					outVals[ll] = v
					ll++
				} else if math.Abs(v) > eps {
					outCols[ll] = col
					outVals[ll] = v
					ll++
				}
			}
			if e := out.SetNNZ(i, ll); e != nil {
				errs.set(e)
			}
		}
		partX[idx] = tX
		partX2[idx] = tX2
	})

	if e := errs.get(); e != nil {
		return 0, 0, e
	}
	for i := 0; i < chunks; i++ {
		trX += partX[i]
		trX2 += partX2[i]
	}
	return trX, trX2, nil
}
