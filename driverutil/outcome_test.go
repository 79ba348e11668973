package driverutil_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticeqc/sp2core/driverutil"
	"github.com/latticeqc/sp2core/ellpsp2"
)

func TestOutcomeConvergedWithNoWarnings(t *testing.T) {
	rho, err := ellpsp2.Identity(3, 3)
	require.NoError(t, err)

	out := driverutil.Outcome{Rho: rho, Iterations: 5}
	require.True(t, out.Converged())
}

func TestOutcomeNotConvergedWithWarnings(t *testing.T) {
	rho, err := ellpsp2.Identity(3, 3)
	require.NoError(t, err)

	out := driverutil.Outcome{Rho: rho, Iterations: 100, Warnings: []error{errors.New("boom")}}
	require.False(t, out.Converged())
}
