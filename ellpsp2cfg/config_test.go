package ellpsp2cfg_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticeqc/sp2core/ellpsp2cfg"
)

func TestNewDefaults(t *testing.T) {
	c := ellpsp2cfg.New()
	require.Equal(t, 1e-5, c.Epsilon)
	require.Equal(t, 1e-14, c.IdemTol)
	require.Equal(t, runtime.GOMAXPROCS(0), c.Workers)
	require.False(t, c.Debug)
}

func TestOptionsOverrideDefaults(t *testing.T) {
	c := ellpsp2cfg.New(
		ellpsp2cfg.WithEpsilon(1e-8),
		ellpsp2cfg.WithIdemTol(1e-10),
		ellpsp2cfg.WithWorkers(3),
		ellpsp2cfg.WithDebug(true),
	)
	require.Equal(t, 1e-8, c.Epsilon)
	require.Equal(t, 1e-10, c.IdemTol)
	require.Equal(t, 3, c.Workers)
	require.True(t, c.Debug)
}
