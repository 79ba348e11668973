// Package mmio reads and writes the Matrix Market coordinate real general
// format for persisting Hamiltonians and density matrices: a five-token
// header line, an "N N nnz" dimension line, then nnz "row col value"
// lines with 1-based indices. The reader accepts entries in any order
// within a row.
package mmio
