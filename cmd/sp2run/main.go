// Command sp2run is the thin CLI frontend: it parses the matrix/algorithm
// parameters, builds or reads a Hamiltonian, runs the selected SP2
// driver, and optionally persists the resulting density matrix. It uses
// the stdlib flag package rather than a third-party CLI framework.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/latticeqc/sp2core/driverutil"
	"github.com/latticeqc/sp2core/ellpsp2"
	"github.com/latticeqc/sp2core/ellpsp2cfg"
	"github.com/latticeqc/sp2core/ellpsp2err"
	"github.com/latticeqc/sp2core/mmio"
	"github.com/latticeqc/sp2core/perf"
	"github.com/latticeqc/sp2core/rowpool"
	"github.com/latticeqc/sp2core/solver"
)

const (
	exitOK = iota
	exitCapacityOverflow
	exitUnreadableInput
	exitNonConvergent
	exitBadConfig
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("sp2run", flag.ContinueOnError)

	n := fs.Int("n", 1600, "matrix dimension N")
	m := fs.Int("m", 1600, "ELLPACK-R row capacity M")
	algName := fs.String("algorithm", "basic", "SP2 variant: basic, fermi, or implicit")
	inFile := fs.String("matrix", "", "Matrix Market input file (overrides -generate)")
	generate := fs.Bool("generate", true, "generate a synthetic banded Hamiltonian instead of reading -matrix")
	outFile := fs.String("write-density", "", "path to write the resulting density matrix (empty: don't write)")
	minIter := fs.Int("min-iter", 25, "minimum SP2 iterations")
	maxIter := fs.Int("max-iter", 100, "maximum SP2 iterations")
	nSteps := fs.Int("n-steps", 18, "SP2-Fermi recursion depth")
	nOcc := fs.Float64("n-occ", 0, "target occupied-state count (trace target)")
	bandFill := fs.Float64("band-fill", 0.5, "banded generator fill fraction (as M/N)")
	eps := fs.Float64("eps", 1e-5, "drop threshold")
	idemTol := fs.Float64("idem-tol", 1e-14, "idempotency tolerance")
	thetaOcc := fs.Float64("theta-occ", 1e-9, "occupation error limit")
	thetaTr := fs.Float64("theta-tr", 1e-12, "trace limit")
	tscale := fs.Float64("tscale", 1.0, "Gershgorin bound scale factor s")
	mu := fs.Float64("mu", 0, "initial chemical potential (Fermi)")
	debug := fs.Bool("debug", false, "enable timer/counter instrumentation")
	workers := fs.Int("workers", 0, "worker goroutines (0: GOMAXPROCS)")

	if err := fs.Parse(args); err != nil {
		return exitBadConfig
	}

	if *n <= 0 || *m <= 0 || *eps < 0 {
		fmt.Fprintln(os.Stderr, "sp2run: invalid -n/-m/-eps")
		return exitBadConfig
	}

	cfgOpts := []ellpsp2cfg.Option{
		ellpsp2cfg.WithEpsilon(*eps),
		ellpsp2cfg.WithIdemTol(*idemTol),
		ellpsp2cfg.WithDebug(*debug),
	}
	if *workers > 0 {
		cfgOpts = append(cfgOpts, ellpsp2cfg.WithWorkers(*workers))
	}
	cfg := ellpsp2cfg.New(cfgOpts...)
	rec := perf.NewRecorder(cfg.Debug)

	var h *ellpsp2.Matrix
	var err error
	rec.Time("load", func() {
		if *inFile != "" {
			var f *os.File
			f, err = os.Open(*inFile)
			if err != nil {
				return
			}
			defer f.Close()
			h, err = mmio.Read(f, *m)
			return
		}
		if !*generate {
			err = errors.New("sp2run: no -matrix given and -generate=false")
			return
		}
		h, err = ellpsp2.Banded(*n, *m, 1.0, -1.0/(2*(*bandFill)* *bandFill), *eps)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "sp2run: loading matrix: %v\n", err)
		if errors.Is(err, ellpsp2err.ErrBadHeader) || errors.Is(err, ellpsp2err.ErrBadEntry) {
			return exitUnreadableInput
		}
		if errors.Is(err, ellpsp2err.ErrRowCapacityOverflow) {
			return exitCapacityOverflow
		}
		return exitBadConfig
	}

	pool := rowpool.New(cfg.Workers)
	defer pool.Close()

	nOccVal := *nOcc
	if nOccVal == 0 {
		nOccVal = float64(*n) * *bandFill / 2
	}

	params := solver.Params{
		NOcc:          nOccVal,
		MinIter:       *minIter,
		MaxIter:       *maxIter,
		TScale:        *tscale,
		NSteps:        *nSteps,
		MaxOuterSteps: *maxIter,
		ThetaOcc:      *thetaOcc,
		ThetaTr:       *thetaTr,
		InitialMu:     *mu,
		CGMaxIter:     100,
		CGTol:         1e-10,
	}

	var result driverutil.Outcome
	var solveErr error
	rec.Time("solve", func() {
		result, _, _, solveErr = solver.Solve(pool, cfg, solver.Algorithm(*algName), params, h)
	})
	if solveErr != nil {
		fmt.Fprintf(os.Stderr, "sp2run: solving: %v\n", solveErr)
		if errors.Is(solveErr, ellpsp2err.ErrRowCapacityOverflow) {
			return exitCapacityOverflow
		}
		if errors.Is(solveErr, ellpsp2err.ErrCGNonConvergent) {
			return exitNonConvergent
		}
		return exitBadConfig
	}
	rho := result.Rho
	if !result.Converged() {
		fmt.Fprintln(os.Stderr, "sp2run: solver did not converge within the iteration budget")
		for _, w := range result.Warnings {
			if errors.Is(w, ellpsp2err.ErrCGNonConvergent) {
				return exitNonConvergent
			}
		}
	}

	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sp2run: writing density matrix: %v\n", err)
			return exitBadConfig
		}
		defer f.Close()
		if err := mmio.Write(f, rho); err != nil {
			fmt.Fprintf(os.Stderr, "sp2run: writing density matrix: %v\n", err)
			return exitBadConfig
		}
	}

	if cfg.Debug {
		for _, name := range rec.Names() {
			fmt.Fprintf(os.Stderr, "sp2run: timer %s: %s\n", name, rec.Timers()[name])
		}
	}

	return exitOK
}
