package denseref

import (
	"gonum.org/v1/gonum/mat"

	"github.com/latticeqc/sp2core/ellpsp2"
)

// Dense wraps a gonum dense matrix so tests can cross-check the
// row-parallel sparse primitives against an independently implemented
// linear-algebra library instead of a second hand-rolled accumulation
// loop.
type Dense struct {
	n    int
	back *mat.Dense
}

// NewDense allocates an n*n zero matrix.
func NewDense(n int) *Dense {
	return &Dense{n: n, back: mat.NewDense(n, n, nil)}
}

// FromSparse converts x into a dense reference matrix.
func FromSparse(x *ellpsp2.Matrix) *Dense {
	d := NewDense(x.N())
	for i := 0; i < x.N(); i++ {
		cols, vals := x.Row(i)
		for k, col := range cols {
			d.back.Set(i, col, vals[k])
		}
	}
	return d
}

// At returns element (i,j).
func (d *Dense) At(i, j int) float64 { return d.back.At(i, j) }

// Set assigns element (i,j).
func (d *Dense) Set(i, j int, v float64) { d.back.Set(i, j, v) }

// N returns the matrix order.
func (d *Dense) N() int { return d.n }

// Mul returns a*b.
func Mul(a, b *Dense) *Dense {
	c := NewDense(a.n)
	c.back.Mul(a.back, b.back)
	return c
}

// Add returns alpha*a + beta*b element-wise.
func Add(a, b *Dense, alpha, beta float64) *Dense {
	c := NewDense(a.n)
	var scaledA, scaledB mat.Dense
	scaledA.Scale(alpha, a.back)
	scaledB.Scale(beta, b.back)
	c.back.Add(&scaledA, &scaledB)
	return c
}

// Scale returns gamma*a element-wise.
func Scale(a *Dense, gamma float64) *Dense {
	c := NewDense(a.n)
	c.back.Scale(gamma, a.back)
	return c
}

// Identity returns the n*n identity matrix.
func Identity(n int) *Dense {
	d := NewDense(n)
	for i := 0; i < n; i++ {
		d.back.Set(i, i, 1)
	}
	return d
}

// Trace returns the sum of the diagonal.
func (d *Dense) Trace() float64 { return mat.Trace(d.back) }

// FNorm returns the Frobenius norm.
func (d *Dense) FNorm() float64 { return mat.Norm(d.back, 2) }

// MaxAbsDiff returns the largest absolute element-wise difference
// between a and b.
func MaxAbsDiff(a, b *Dense) float64 {
	var diff mat.Dense
	diff.Sub(a.back, b.back)
	var max float64
	r, c := diff.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := diff.At(i, j)
			if v < 0 {
				v = -v
			}
			if v > max {
				max = v
			}
		}
	}
	return max
}

// IsSymmetric reports whether a is symmetric within tol.
func (d *Dense) IsSymmetric(tol float64) bool {
	for i := 0; i < d.n; i++ {
		for j := i + 1; j < d.n; j++ {
			diff := d.At(i, j) - d.At(j, i)
			if diff < 0 {
				diff = -diff
			}
			if diff > tol {
				return false
			}
		}
	}
	return true
}
