package perf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticeqc/sp2core/perf"
)

func TestDisabledRecorderIsNoop(t *testing.T) {
	r := perf.NewRecorder(false)
	ran := false
	r.Time("x", func() { ran = true })
	r.Count("c", 5)

	require.True(t, ran, "fn must still run even when disabled")
	require.Empty(t, r.Timers())
	require.Empty(t, r.Counters())
}

func TestEnabledRecorderAccumulates(t *testing.T) {
	r := perf.NewRecorder(true)
	r.Time("x", func() {})
	r.Time("x", func() {})
	r.Count("c", 3)
	r.Count("c", 4)

	require.Contains(t, r.Timers(), "x")
	require.Equal(t, int64(7), r.Counters()["c"])
}

func TestNamesAreSorted(t *testing.T) {
	r := perf.NewRecorder(true)
	r.Time("zeta", func() {})
	r.Time("alpha", func() {})
	r.Time("mu", func() {})

	require.Equal(t, []string{"alpha", "mu", "zeta"}, r.Names())
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *perf.Recorder
	ran := false
	r.Time("x", func() { ran = true })
	r.Count("c", 1)

	require.True(t, ran)
	require.Nil(t, r.Timers())
	require.Nil(t, r.Counters())
}
