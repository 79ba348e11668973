// Package sp2math implements the numeric primitives over the ellpsp2
// substrate: MultiplyX2, Multiply, Add, ScaleAddIdentity, ScaleInplace,
// Gershgorin, TraceMult, SumSquares.
//
// Every primitive is row-parallel: the output matrix is partitioned by row
// across a rowpool.Pool, and no two workers ever write the same row.
// Per-worker scratch (a flag vector and a dense accumulator, both length
// N) is checked out from the pool's Workspace and reused unstamped across
// the rows a worker processes, following a row-stamp discipline: a flag
// value of i+1 marks a column touched while accumulating row i, so the
// same scratch buffer serves every row without being re-zeroed.
//
// Aliasing: primitives take read-only references to their inputs and an
// exclusive reference to their output. Passing the same *ellpsp2.Matrix
// as both an input and the output is forbidden except where a primitive's
// own doc comment says otherwise (ScaleAddIdentity and ScaleInplace, both
// already in-place by contract).
package sp2math
