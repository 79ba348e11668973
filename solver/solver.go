package solver

import (
	"fmt"

	"github.com/latticeqc/sp2core/driverutil"
	"github.com/latticeqc/sp2core/ellpsp2"
	"github.com/latticeqc/sp2core/ellpsp2cfg"
	"github.com/latticeqc/sp2core/rowpool"
	"github.com/latticeqc/sp2core/sp2basic"
	"github.com/latticeqc/sp2core/sp2fermi"
	"github.com/latticeqc/sp2core/sp2implicit"
)

// Algorithm selects which SP2 variant Solve dispatches to.
type Algorithm string

const (
	Basic    Algorithm = "basic"
	Fermi    Algorithm = "fermi"
	Implicit Algorithm = "implicit"
)

// Params is the union of the CLI-surfaced driver parameters: N_occ, SP2
// iteration bounds, Fermi step count and temperature controls. Only the
// fields relevant to the selected Algorithm are used.
type Params struct {
	NOcc float64

	MinIter int
	MaxIter int

	TScale        float64
	NSteps        int
	MaxOuterSteps int
	ThetaOcc      float64
	ThetaTr       float64
	InitialMu     float64

	CGMaxIter int
	CGTol     float64
}

// Solve normalizes and runs the selected SP2 variant on h. The returned
// mu and beta are populated only for Algorithm Fermi; they are zero
// otherwise.
func Solve(pool *rowpool.Pool, cfg ellpsp2cfg.Config, alg Algorithm, p Params, h *ellpsp2.Matrix) (driverutil.Outcome, float64, float64, error) {
	switch alg {
	case Basic:
		bc := sp2basic.New(
			sp2basic.WithNOcc(p.NOcc),
			sp2basic.WithMinIter(p.MinIter),
			sp2basic.WithMaxIter(p.MaxIter),
		)
		out, err := sp2basic.Run(pool, cfg, bc, h)
		return out, 0, 0, err

	case Fermi:
		fc := sp2fermi.New(
			sp2fermi.WithNOcc(p.NOcc),
			sp2fermi.WithTScale(p.TScale),
			sp2fermi.WithNSteps(p.NSteps),
			sp2fermi.WithMaxOuterSteps(p.MaxOuterSteps),
			sp2fermi.WithThetaOcc(p.ThetaOcc),
			sp2fermi.WithThetaTr(p.ThetaTr),
			sp2fermi.WithInitialMu(p.InitialMu),
		)
		return sp2fermi.Run(pool, cfg, fc, h)

	case Implicit:
		ic := sp2implicit.New(
			sp2implicit.WithNOcc(p.NOcc),
			sp2implicit.WithMinIter(p.MinIter),
			sp2implicit.WithMaxIter(p.MaxIter),
			sp2implicit.WithCGMaxIter(p.CGMaxIter),
			sp2implicit.WithCGTol(p.CGTol),
		)
		out, err := sp2implicit.Run(pool, cfg, ic, h)
		return out, 0, 0, err

	default:
		return driverutil.Outcome{}, 0, 0, fmt.Errorf("solver: unknown algorithm %q", alg)
	}
}
