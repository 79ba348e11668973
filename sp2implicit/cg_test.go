package sp2implicit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticeqc/sp2core/ellpsp2"
	"github.com/latticeqc/sp2core/rowpool"
)

func TestCgSolveOnIdentityRecoversB(t *testing.T) {
	pool := rowpool.New(2)
	defer pool.Close()

	a, err := ellpsp2.Identity(5, 5)
	require.NoError(t, err)

	b, err := ellpsp2.Zero(5, 5)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		require.NoError(t, b.SetNNZ(i, 1))
		cols, vals := b.RowCap(i)
		cols[0], vals[0] = i, float64(i+1)
	}

	p, iter, err := cgSolve(pool, 1e-12, a, b, 50, 1e-20)
	require.NoError(t, err)
	require.LessOrEqual(t, iter, 2)
	for i := 0; i < 5; i++ {
		require.InDelta(t, float64(i+1), p.At(i, i), 1e-9)
	}
}

func TestCgSolveReportsNonConvergenceOnSingularOperator(t *testing.T) {
	pool := rowpool.New(2)
	defer pool.Close()

	a, err := ellpsp2.Zero(4, 4)
	require.NoError(t, err)

	b, err := ellpsp2.Identity(4, 4)
	require.NoError(t, err)

	_, _, err = cgSolve(pool, 1e-12, a, b, 10, 1e-20)
	require.Error(t, err)
}
