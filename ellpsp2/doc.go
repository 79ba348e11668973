// Package ellpsp2 implements the sparse matrix substrate: a square matrix
// of order N stored in row-compressed "ELLPACK-R" form with a fixed
// per-row capacity M (rounded up to a multiple of 32, capped at N).
//
// Storage is one contiguous column-index buffer and one contiguous value
// buffer, each of length N*M, row i occupying [i*M, i*M+M): a single flat
// allocation that keeps row data contiguous for cache behavior while
// giving every row exclusive ownership of its slice.
//
// A *Matrix owns its storage exclusively. Numeric primitives (package
// sp2math) take read-only references to input matrices and an exclusive
// reference to the output matrix; see sp2math's doc comment for the
// aliasing rules.
package ellpsp2
