package sp2fermi_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticeqc/sp2core/ellpsp2"
	"github.com/latticeqc/sp2core/ellpsp2cfg"
	"github.com/latticeqc/sp2core/rowpool"
	"github.com/latticeqc/sp2core/sp2fermi"
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

func TestRunConvergesFromMidpointMu(t *testing.T) {
	pool := rowpool.New(2)
	defer pool.Close()

	h := diagHamiltonian(t, []float64{1, 2, 3, 4})
	cfg := ellpsp2cfg.New()
	fc := sp2fermi.New(
		sp2fermi.WithNOcc(2),
		sp2fermi.WithInitialMu(2.5),
		sp2fermi.WithThetaOcc(1e-9),
		sp2fermi.WithMaxOuterSteps(200),
	)

	out, mu, beta, err := sp2fermi.Run(pool, cfg, fc, h)
	require.NoError(t, err)
	require.True(t, out.Converged())
	require.InDelta(t, 4.0, out.Rho.Trace(), 1e-8)
	require.False(t, mu == 0 && beta == 0)
}

func TestRunReportsStepsExhaustedWhenOuterStepsTooFew(t *testing.T) {
	pool := rowpool.New(2)
	defer pool.Close()

	h := diagHamiltonian(t, []float64{1, 2, 3, 4})
	cfg := ellpsp2cfg.New()
	fc := sp2fermi.New(
		sp2fermi.WithNOcc(2),
		sp2fermi.WithInitialMu(2.5),
		sp2fermi.WithThetaOcc(1e-9),
		sp2fermi.WithMaxOuterSteps(1),
	)

	out, _, _, err := sp2fermi.Run(pool, cfg, fc, h)
	require.NoError(t, err)
	require.False(t, out.Converged())
}
