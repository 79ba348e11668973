package hamgen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticeqc/sp2core/hamgen"
)

func TestStreamIsDeterministicForSameSeed(t *testing.T) {
	a := hamgen.NewStream(8, 4)
	b := hamgen.NewStream(8, 4)

	for i := 0; i < 10; i++ {
		require.Equal(t, a.Next(), b.Next())
	}
}

func TestStreamDiffersAcrossSeeds(t *testing.T) {
	a := hamgen.NewStream(8, 4)
	b := hamgen.NewStream(8, 5)

	same := true
	for i := 0; i < 5; i++ {
		if a.Next() != b.Next() {
			same = false
		}
	}
	require.False(t, same)
}

func TestStreamValuesAreWithinUnitInterval(t *testing.T) {
	s := hamgen.NewStream(16, 8)
	for i := 0; i < 100; i++ {
		v := s.Next()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestGenerateHalfBandwidthOneOnlyEverKeepsDiagonal(t *testing.T) {
	// With m=1 the window [i-m+1, i+m) collapses to {i} for every row,
	// so no row can ever carry more than its diagonal entry regardless
	// of a, alpha, or eps.
	rows := hamgen.Generate(4, 1, 1.0, 1.0, 0)
	for i, row := range rows {
		require.Len(t, row.Entries, 1)
		require.Equal(t, i, row.Entries[0].Col)
	}
}

func TestGenerateWindowClampsAtBothEdges(t *testing.T) {
	rows := hamgen.Generate(6, 3, 1.0, 0.1, 1e-9)
	for i, row := range rows {
		for _, e := range row.Entries {
			require.GreaterOrEqual(t, e.Col, 0)
			require.Less(t, e.Col, 6)
			require.GreaterOrEqual(t, e.Col, i-2)
			require.Less(t, e.Col, i+3)
		}
	}
}

func TestGenerateAlwaysKeepsDiagonalRegardlessOfEps(t *testing.T) {
	rows := hamgen.Generate(5, 3, 1.0, 5.0, 1e6)
	for i, row := range rows {
		found := false
		for _, e := range row.Entries {
			if e.Col == i {
				found = true
			}
		}
		require.True(t, found, "row %d lost its diagonal entry", i)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := hamgen.Generate(10, 5, 1.0, 0.3, 1e-6)
	b := hamgen.Generate(10, 5, 1.0, 0.3, 1e-6)
	require.Equal(t, a, b)
}
