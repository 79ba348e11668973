package sp2implicit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticeqc/sp2core/ellpsp2"
	"github.com/latticeqc/sp2core/ellpsp2cfg"
	"github.com/latticeqc/sp2core/rowpool"
	"github.com/latticeqc/sp2core/sp2implicit"
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
	ic := sp2implicit.New(sp2implicit.WithNOcc(2), sp2implicit.WithMinIter(1), sp2implicit.WithMaxIter(40))

	out, err := sp2implicit.Run(pool, cfg, ic, h)
	require.NoError(t, err)
	require.InDelta(t, 2.0, out.Rho.At(0, 0), 1e-6)
	require.InDelta(t, 2.0, out.Rho.At(1, 1), 1e-6)
	require.InDelta(t, 0.0, out.Rho.At(2, 2), 1e-6)
	require.InDelta(t, 0.0, out.Rho.At(3, 3), 1e-6)
}
