package rowpool_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticeqc/sp2core/rowpool"
)

func TestNumChunksCapsAtN(t *testing.T) {
	pool := rowpool.New(8)
	defer pool.Close()

	require.Equal(t, 8, pool.Workers())
	require.Equal(t, 3, pool.NumChunks(3))
	require.Equal(t, 8, pool.NumChunks(100))
	require.Equal(t, 0, pool.NumChunks(0))
}

func TestParallelRowsCoversEveryRowExactlyOnce(t *testing.T) {
	pool := rowpool.New(4)
	defer pool.Close()

	const n = 37
	var mu sync.Mutex
	seen := make(map[int]bool, n)

	pool.ParallelRows(n, func(lo, hi, idx int, ws *rowpool.Workspace) {
		mu.Lock()
		for i := lo; i < hi; i++ {
			seen[i] = true
		}
		mu.Unlock()
	})

	require.Len(t, seen, n)
	for i := 0; i < n; i++ {
		require.True(t, seen[i], "row %d was never visited", i)
	}
}

func TestParallelRowsChunkIndexIsStable(t *testing.T) {
	pool := rowpool.New(4)
	defer pool.Close()

	const n = 20
	var mu sync.Mutex
	idxToRange := make(map[int][2]int)

	for run := 0; run < 5; run++ {
		pool.ParallelRows(n, func(lo, hi, idx int, ws *rowpool.Workspace) {
			mu.Lock()
			got := [2]int{lo, hi}
			if prev, ok := idxToRange[idx]; ok {
				require.Equal(t, prev, got, "chunk idx %d range changed across runs", idx)
			} else {
				idxToRange[idx] = got
			}
			mu.Unlock()
		})
	}
}

func TestWorkspaceFlagAccumGrowAndPersist(t *testing.T) {
	var ws rowpool.Workspace

	flag := ws.Flag(10)
	require.Len(t, flag, 10)
	flag[3] = 42

	accum := ws.Accum(10)
	require.Len(t, accum, 10)
	accum[3] = 1.5

	// Re-requesting at the same or smaller size must not clear existing
	// contents: callers rely on the row-stamp discipline.
	flag2 := ws.Flag(5)
	require.Equal(t, 42, flag2[3])
	accum2 := ws.Accum(5)
	require.Equal(t, 1.5, accum2[3])

	// Growing past the current length reallocates.
	flag3 := ws.Flag(20)
	require.Len(t, flag3, 20)
}

func TestWorkspaceTouchedResetAndSave(t *testing.T) {
	var ws rowpool.Workspace

	touched := ws.TouchedReset()
	require.Len(t, touched, 0)
	touched = append(touched, 1, 2, 3)
	ws.SaveTouched(touched)

	again := ws.TouchedReset()
	require.Len(t, again, 0)
	require.GreaterOrEqual(t, cap(again), 3)
}
