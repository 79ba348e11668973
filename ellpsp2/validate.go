package ellpsp2

import (
	"fmt"
	"math"

	"github.com/latticeqc/sp2core/ellpsp2err"
)

// Validate checks the structural invariants of the storage layout: every
// row's occupancy is within capacity, every column index is in range, no
// row has a duplicate column, and the diagonal entry is stored in every
// row. It is intended for tests, not hot paths.
func (x *Matrix) Validate() error {
	for i := 0; i < x.n; i++ {
		if x.nnz[i] < 0 || x.nnz[i] > x.m {
			return fmt.Errorf("row %d: nnz=%d out of [0,%d]: %w", i, x.nnz[i], x.m, ellpsp2err.ErrRowCapacityOverflow)
		}
		cols, _ := x.Row(i)
		seen := make(map[int]bool, len(cols))
		hasDiag := false
		for _, c := range cols {
			if c < 0 || c >= x.n {
				return fmt.Errorf("row %d: column %d out of [0,%d): %w", i, c, x.n, ellpsp2err.ErrColumnOutOfRange)
			}
			if seen[c] {
				return fmt.Errorf("row %d: duplicate column %d: %w", i, c, ellpsp2err.ErrDuplicateColumn)
			}
			seen[c] = true
			if c == i {
				hasDiag = true
			}
		}
		if !hasDiag {
			return fmt.Errorf("row %d: missing diagonal entry", i)
		}
	}
	return nil
}

// EqualWithin reports whether x and y have the same shape and every
// stored value differs by at most tol, treating an absent entry as 0.
func (x *Matrix) EqualWithin(y *Matrix, tol float64) bool {
	if !x.SameShape(y) {
		return false
	}
	for i := 0; i < x.n; i++ {
		cols, vals := x.Row(i)
		for k, c := range cols {
			if math.Abs(vals[k]-y.At(i, c)) > tol {
				return false
			}
		}
		ycols, yvals := y.Row(i)
		for k, c := range ycols {
			if math.Abs(yvals[k]-x.At(i, c)) > tol {
				return false
			}
		}
	}
	return true
}

// IsSymmetricWithin reports whether x is symmetric up to tol.
func (x *Matrix) IsSymmetricWithin(tol float64) bool {
	for i := 0; i < x.n; i++ {
		cols, vals := x.Row(i)
		for k, c := range cols {
			if math.Abs(vals[k]-x.At(c, i)) > tol {
				return false
			}
		}
	}
	return true
}
