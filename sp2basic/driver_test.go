package sp2basic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticeqc/sp2core/ellpsp2"
	"github.com/latticeqc/sp2core/ellpsp2cfg"
	"github.com/latticeqc/sp2core/rowpool"
	"github.com/latticeqc/sp2core/sp2basic"
)

func diagHamiltonian(t *testing.T, vals []float64) *ellpsp2.Matrix {
	t.Helper()
	n := len(vals)
	x, err := ellpsp2.Zero(n, n)
	require.NoError(t, err)
	for i, v := range vals {
		require.NoError(t, x.SetNNZ(i, 1))
		cols, cvals := x.RowCap(i)
		cols[0], cvals[0] = i, v
	}
	return x
}

func TestRunConvergesOnDiagonalHamiltonian(t *testing.T) {
	pool := rowpool.New(2)
	defer pool.Close()

	h := diagHamiltonian(t, []float64{1, 2, 3, 4})
	cfg := ellpsp2cfg.New()
	bc := sp2basic.New(sp2basic.WithNOcc(2), sp2basic.WithMinIter(1), sp2basic.WithMaxIter(30))

	out, err := sp2basic.Run(pool, cfg, bc, h)
	require.NoError(t, err)
	require.True(t, out.Converged())
	require.LessOrEqual(t, out.Iterations, 30)

	require.InDelta(t, 2.0, out.Rho.At(0, 0), 1e-9)
	require.InDelta(t, 2.0, out.Rho.At(1, 1), 1e-9)
	require.InDelta(t, 0.0, out.Rho.At(2, 2), 1e-9)
	require.InDelta(t, 0.0, out.Rho.At(3, 3), 1e-9)
}

func TestRunReportsMaxIterWarningWhenCappedLow(t *testing.T) {
	pool := rowpool.New(2)
	defer pool.Close()

	h := diagHamiltonian(t, []float64{1, 2, 3, 4})
	cfg := ellpsp2cfg.New()
	// NOcc=1 keeps the first step off the diff-within-tolerance branch
	// (with NOcc=2 both polynomials leave the same trace error here).
	bc := sp2basic.New(sp2basic.WithNOcc(1), sp2basic.WithMinIter(100), sp2basic.WithMaxIter(1))

	out, err := sp2basic.Run(pool, cfg, bc, h)
	require.NoError(t, err)
	require.False(t, out.Converged())
	require.Equal(t, 1, out.Iterations)
}
