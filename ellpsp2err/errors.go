// Package ellpsp2err defines the sentinel error catalogue shared by every
// package in this module. All packages MUST return these sentinels and
// tests MUST check them via errors.Is. No package should panic on a
// user-triggered error condition; panics are reserved for invariant
// violations in private helpers that indicate a bug in this module,
// not in caller input.
package ellpsp2err

import "errors"

// Structural / configuration errors — fatal at construction time.
var (
	// ErrInvalidSize indicates N <= 0 or M <= 0 was requested.
	ErrInvalidSize = errors.New("ellpsp2: N and M must be positive")

	// ErrNegativeThreshold indicates a drop threshold epsilon < 0 was supplied.
	ErrNegativeThreshold = errors.New("ellpsp2: drop threshold must be >= 0")

	// ErrRowCapacityOverflow indicates a row needed more than M stored entries.
	// This is the one fatal, unrecoverable runtime fault the row-parallel
	// primitives can raise.
	ErrRowCapacityOverflow = errors.New("ellpsp2: row capacity overflow")

	// ErrColumnOutOfRange indicates a column index outside [0, N).
	ErrColumnOutOfRange = errors.New("ellpsp2: column index out of range")

	// ErrDuplicateColumn indicates two entries in one row share a column.
	ErrDuplicateColumn = errors.New("ellpsp2: duplicate column in row")

	// ErrShapeMismatch indicates two matrices passed to a primitive have
	// different (N, M).
	ErrShapeMismatch = errors.New("ellpsp2: matrix shape mismatch")

	// ErrAliased indicates an input and output reference the same storage
	// where the primitive's contract forbids aliasing.
	ErrAliased = errors.New("ellpsp2: aliased input and output forbidden")

	// ErrDegenerateScaling indicates Gershgorin width eMax-eMin == 0.
	ErrDegenerateScaling = errors.New("ellpsp2: degenerate gershgorin width")
)

// I/O errors.
var (
	// ErrBadHeader indicates a malformed Matrix Market header line.
	ErrBadHeader = errors.New("mmio: malformed header")

	// ErrBadEntry indicates a non-numeric or out-of-range coordinate entry.
	ErrBadEntry = errors.New("mmio: malformed entry")
)

// Convergence errors — recoverable; the caller still receives a
// best-effort result alongside the warning.
var (
	// ErrCGNonConvergent indicates conjugate gradient exceeded its
	// iteration cap (100 by default) without reaching the residual
	// tolerance, or stopped early on a zero curvature tr(d*A*d).
	ErrCGNonConvergent = errors.New("sp2implicit: conjugate gradient did not converge")

	// ErrSP2MaxIterReached indicates the SP2 basic loop hit max_iter
	// without either stopping rule (branch diff within tolerance, or the
	// error-history rule) ever firing.
	ErrSP2MaxIterReached = errors.New("sp2basic: max_iter reached without convergence")

	// ErrFermiStepsExhausted indicates the SP2-Fermi occupation loop hit
	// its outer step ceiling without reaching theta_occ.
	ErrFermiStepsExhausted = errors.New("sp2fermi: occupation loop exhausted outer steps")
)
