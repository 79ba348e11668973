package ellpsp2

import (
	"fmt"
	"math"

	"github.com/latticeqc/sp2core/ellpsp2err"
	"github.com/latticeqc/sp2core/rowpool"
)

// Matrix is a square sparse matrix of order N with per-row capacity M,
// stored in ELLPACK-R form. The zero Matrix is not valid; build one with
// Zero, Identity, Banded, or Copy.
type Matrix struct {
	n, m int
	nnz  []int
	col  []int
	val  []float64
}

// adjustCapacity rounds m up to the next multiple of 32 and caps it at n.
func adjustCapacity(n, m int) int {
	if m == 0 || m > n {
		m = n
	}
	if rem := m % 32; rem != 0 {
		m += 32 - rem
	}
	if m > n {
		m = n
	}
	return m
}

func alloc(n, m int) (*Matrix, error) {
	if n <= 0 || m <= 0 {
		return nil, ellpsp2err.ErrInvalidSize
	}
	m = adjustCapacity(n, m)
	return &Matrix{
		n:   n,
		m:   m,
		nnz: make([]int, n),
		col: make([]int, n*m),
		val: make([]float64, n*m),
	}, nil
}

// Zero creates an N x N matrix with every row empty (nnz[i] = 0).
func Zero(n, m int) (*Matrix, error) {
	return alloc(n, m)
}

// Identity creates an N x N matrix with nnz[i] = 1 and diagonal value 1
// for every row.
func Identity(n, m int) (*Matrix, error) {
	x, err := alloc(n, m)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		x.col[i*x.m] = i
		x.val[i*x.m] = 1
		x.nnz[i] = 1
	}
	return x, nil
}

// N returns the matrix order.
func (x *Matrix) N() int { return x.n }

// M returns the per-row capacity.
func (x *Matrix) M() int { return x.m }

// NNZ returns the number of stored entries in row i.
func (x *Matrix) NNZ(row int) int { return x.nnz[row] }

// Row returns the stored column indices and values of row i as slices
// into the matrix's own backing storage. Callers must not retain these
// slices past a later mutation of x.
func (x *Matrix) Row(row int) ([]int, []float64) {
	lo := row * x.m
	hi := lo + x.nnz[row]
	return x.col[lo:hi], x.val[lo:hi]
}

// RowCap returns the full-capacity column/value slices for row i,
// irrespective of nnz[i] — used by sp2math primitives to write a new row
// before calling SetNNZ.
func (x *Matrix) RowCap(row int) ([]int, []float64) {
	lo := row * x.m
	hi := lo + x.m
	return x.col[lo:hi], x.val[lo:hi]
}

// SetNNZ records the occupancy of row i after a primitive has written its
// entries, checking the capacity invariant.
func (x *Matrix) SetNNZ(row, count int) error {
	if count > x.m {
		return fmt.Errorf("row %d needs capacity %d > M=%d: %w", row, count, x.m, ellpsp2err.ErrRowCapacityOverflow)
	}
	x.nnz[row] = count
	return nil
}

// At returns the value stored at (row, col), or 0 if no entry is stored
// there. Linear in NNZ(row); intended for tests and small diagnostics, not
// hot paths.
func (x *Matrix) At(row, col int) float64 {
	cols, vals := x.Row(row)
	for k, c := range cols {
		if c == col {
			return vals[k]
		}
	}
	return 0
}

// Copy produces an equal-valued matrix of the same shape.
func (x *Matrix) Copy() *Matrix {
	out := &Matrix{
		n:   x.n,
		m:   x.m,
		nnz: make([]int, x.n),
		col: make([]int, len(x.col)),
		val: make([]float64, len(x.val)),
	}
	copy(out.nnz, x.nnz)
	copy(out.col, x.col)
	copy(out.val, x.val)
	return out
}

// CopyInto copies x's contents into an existing matrix dst of identical
// shape, avoiding an allocation on the driver's hot path.
func (x *Matrix) CopyInto(dst *Matrix) error {
	if dst.n != x.n || dst.m != x.m {
		return ellpsp2err.ErrShapeMismatch
	}
	copy(dst.nnz, x.nnz)
	copy(dst.col, x.col)
	copy(dst.val, x.val)
	return nil
}

// SameShape reports whether x and y have identical (N, M).
func (x *Matrix) SameShape(y *Matrix) bool {
	return x.n == y.n && x.m == y.m
}

// ForEachRow partitions [0, N) across pool's workers and calls
// fn(lo, hi, idx, ws) once per range, blocking until every range
// completes. See rowpool.Pool.ParallelRows.
func (x *Matrix) ForEachRow(pool *rowpool.Pool, fn func(lo, hi, idx int, ws *rowpool.Workspace)) {
	pool.ParallelRows(x.n, fn)
}

// Bandwidth returns the classical bandwidth: the maximum, over all rows,
// of (max stored column - min stored column + 1). Rows with no stored
// entries do not contribute.
func (x *Matrix) Bandwidth() int {
	bw := 0
	for i := 0; i < x.n; i++ {
		cols, _ := x.Row(i)
		if len(cols) == 0 {
			continue
		}
		lo, hi := cols[0], cols[0]
		for _, c := range cols[1:] {
			if c < lo {
				lo = c
			}
			if c > hi {
				hi = c
			}
		}
		if width := hi - lo + 1; width > bw {
			bw = width
		}
	}
	return bw
}

// MaxRowNNZ returns the maximum, over all rows, of nnz[i]: the
// high-water-mark row occupancy, distinct from the classical bandwidth
// Bandwidth reports.
func (x *Matrix) MaxRowNNZ() int {
	max := 0
	for i := 0; i < x.n; i++ {
		if x.nnz[i] > max {
			max = x.nnz[i]
		}
	}
	return max
}

// Trace returns the sum of diagonal values.
func (x *Matrix) Trace() float64 {
	var tr float64
	for i := 0; i < x.n; i++ {
		cols, vals := x.Row(i)
		for k, c := range cols {
			if c == i {
				tr += vals[k]
				break
			}
		}
	}
	return tr
}

// FNorm returns the Frobenius norm: the square root of the sum of squared
// stored values.
func (x *Matrix) FNorm() float64 {
	return math.Sqrt(x.sumSquares())
}

func (x *Matrix) sumSquares() float64 {
	var s float64
	for i := 0; i < x.n; i++ {
		_, vals := x.Row(i)
		for _, v := range vals {
			s += v * v
		}
	}
	return s
}

// Sparsity summarizes row occupancy: total stored entries, the maximum
// per-row occupancy, and the average per row, as a pure value the caller
// can log or ignore.
type Sparsity struct {
	Total   int
	Max     int
	Average float64
}

// Sparsity computes row-occupancy statistics for x.
func (x *Matrix) Sparsity() Sparsity {
	total := 0
	max := 0
	for i := 0; i < x.n; i++ {
		total += x.nnz[i]
		if x.nnz[i] > max {
			max = x.nnz[i]
		}
	}
	return Sparsity{Total: total, Max: max, Average: float64(total) / float64(x.n)}
}
