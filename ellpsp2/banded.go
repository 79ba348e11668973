package ellpsp2

import (
	"github.com/latticeqc/sp2core/ellpsp2err"
	"github.com/latticeqc/sp2core/hamgen"
)

// Banded creates a synthetic symmetric banded matrix of order n with
// per-row half-bandwidth m: for column j with i-m+1 <= j < i+m, the
// stored value is a*u*exp(-alpha*(i-j)^2), u a deterministic pseudo-random
// draw seeded from (n, m); entries with magnitude <= eps are dropped
// unless on the diagonal. Capacity overflow (a row needing
// more than M survivors) is reported as ellpsp2err.ErrRowCapacityOverflow.
func Banded(n, m int, a, alpha, eps float64) (*Matrix, error) {
	x, err := alloc(n, m)
	if err != nil {
		return nil, err
	}
	if eps < 0 {
		return nil, ellpsp2err.ErrNegativeThreshold
	}
	rows := hamgen.Generate(n, m, a, alpha, eps)
	for i, r := range rows {
		if err := x.SetNNZ(i, len(r.Entries)); err != nil {
			return nil, err
		}
		cols, vals := x.RowCap(i)
		for k, e := range r.Entries {
			cols[k] = e.Col
			vals[k] = e.Val
		}
	}
	return x, nil
}
