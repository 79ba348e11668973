// Package rowpool provides a persistent, reusable worker pool for the
// row-parallel matrix primitives in sp2math and ellpsp2.
//
// A Pool is created once per driver run and reused across every primitive
// call, rather than spawning goroutines per call: the SP2 loops call
// dozens of primitives per iteration, and per-call goroutine spawn would
// dominate runtime on the small-to-medium row counts this solver targets.
//
// Each worker also owns a private Workspace (an integer flag vector and a
// dense float64 accumulator, both of length N) that is checked out once
// per primitive call and reused, unstamped, across the rows that worker
// processes. The flag vector uses a row-stamp trick: a flag value of i+1
// marks a column touched while accumulating row i, so successive rows
// handled by the same worker never need to re-zero the flag vector.
package rowpool
