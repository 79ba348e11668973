package sp2math_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticeqc/sp2core/ellpsp2"
	"github.com/latticeqc/sp2core/internal/denseref"
	"github.com/latticeqc/sp2core/rowpool"
	"github.com/latticeqc/sp2core/sp2math"
)

func TestMultiplyX2OnIdentity(t *testing.T) {
	pool := rowpool.New(2)
	defer pool.Close()

	x, err := ellpsp2.Identity(5, 5)
	require.NoError(t, err)
	out, err := ellpsp2.Zero(5, 5)
	require.NoError(t, err)

	trX, trX2, err := sp2math.MultiplyX2(pool, 1e-12, x, out)
	require.NoError(t, err)
	require.InDelta(t, 5.0, trX, 1e-9)
	require.InDelta(t, 5.0, trX2, 1e-9)
	for i := 0; i < 5; i++ {
		require.InDelta(t, 1.0, out.At(i, i), 1e-9)
	}
}

func TestGershgorinOnIdentity(t *testing.T) {
	pool := rowpool.New(2)
	defer pool.Close()

	x, err := ellpsp2.Identity(6, 6)
	require.NoError(t, err)

	eMin, eMax := sp2math.Gershgorin(pool, x)
	require.InDelta(t, 1.0, eMin, 1e-12)
	require.InDelta(t, 1.0, eMax, 1e-12)
}

func TestScaleInplaceIdentityLaw(t *testing.T) {
	pool := rowpool.New(2)
	defer pool.Close()

	x, err := ellpsp2.Banded(16, 8, 1.0, 0.5, 1e-6)
	require.NoError(t, err)
	before := x.Copy()

	sp2math.ScaleInplace(pool, x, 1.0)
	require.True(t, x.EqualWithin(before, 1e-12))
}

func TestAddRoundTrip(t *testing.T) {
	pool := rowpool.New(2)
	defer pool.Close()

	a, err := ellpsp2.Banded(16, 8, 1.0, 0.5, 1e-6)
	require.NoError(t, err)
	b, err := ellpsp2.Banded(16, 8, 0.5, 0.25, 1e-6)
	require.NoError(t, err)
	before := a.Copy()

	require.NoError(t, sp2math.Add(pool, 1e-12, a, b, 1, 1))
	require.NoError(t, sp2math.Add(pool, 1e-12, a, b, 1, -1))
	require.True(t, a.EqualWithin(before, 1e-9))
}

func TestAddNoopLaw(t *testing.T) {
	pool := rowpool.New(2)
	defer pool.Close()

	a, err := ellpsp2.Banded(16, 8, 1.0, 0.5, 1e-6)
	require.NoError(t, err)
	b, err := ellpsp2.Banded(16, 8, 1.0, 0.5, 1e-6)
	require.NoError(t, err)
	before := a.Copy()

	require.NoError(t, sp2math.Add(pool, 1e-12, a, b, 1, 0))
	require.True(t, a.EqualWithin(before, 1e-12))
}

func symmetricTridiagonal(t *testing.T, n, m int) *ellpsp2.Matrix {
	t.Helper()
	x, err := ellpsp2.Zero(n, m)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		count := 1
		if i > 0 {
			count++
		}
		if i < n-1 {
			count++
		}
		require.NoError(t, x.SetNNZ(i, count))
		cols, vals := x.RowCap(i)
		k := 0
		if i > 0 {
			cols[k], vals[k] = i-1, -0.5
			k++
		}
		cols[k], vals[k] = i, 2.0
		k++
		if i < n-1 {
			cols[k], vals[k] = i+1, -0.5
		}
	}
	return x
}

func TestMultiplyX2SymmetricStaysSymmetric(t *testing.T) {
	pool := rowpool.New(3)
	defer pool.Close()

	a := symmetricTridiagonal(t, 20, 4)
	require.True(t, a.IsSymmetricWithin(1e-12))

	out, err := ellpsp2.Zero(20, 4)
	require.NoError(t, err)
	_, _, err = sp2math.MultiplyX2(pool, 1e-10, a, out)
	require.NoError(t, err)
	require.True(t, out.IsSymmetricWithin(1e-6))
}

func TestMultiplyX2MatchesDenseOracle(t *testing.T) {
	pool := rowpool.New(3)
	defer pool.Close()

	a := symmetricTridiagonal(t, 12, 3)
	out, err := ellpsp2.Zero(12, 3)
	require.NoError(t, err)

	trX, trX2, err := sp2math.MultiplyX2(pool, 1e-12, a, out)
	require.NoError(t, err)

	ref := denseref.FromSparse(a)
	refSq := denseref.Mul(ref, ref)

	require.InDelta(t, ref.Trace(), trX, 1e-9)
	require.InDelta(t, refSq.Trace(), trX2, 1e-9)
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			require.InDelta(t, refSq.At(i, j), out.At(i, j), 1e-9)
		}
	}
}

func TestAddRejectsAliasing(t *testing.T) {
	pool := rowpool.New(1)
	defer pool.Close()

	a, err := ellpsp2.Identity(4, 4)
	require.NoError(t, err)
	require.Error(t, sp2math.Add(pool, 1e-12, a, a, 1, 1))
}
