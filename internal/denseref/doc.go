// Package denseref is a test-only dense-matrix oracle: a thin wrapper
// around gonum.org/v1/gonum/mat's Dense type exposing the handful of
// linear-algebra operations (multiply, add, scale, trace, Frobenius norm)
// needed to check ellpsp2.Matrix results independently of the
// row-parallel sparse primitives.
//
// The wrapper shape (construction helpers, At/Set, named free functions
// for binary operations) mirrors ellpsp2.Matrix's surface; the arithmetic
// itself is delegated to gonum rather than hand-rolled so the oracle is
// backed by an independently tested implementation. Production code never
// imports this package.
package denseref
