// Package solver is the runtime algorithm selector across the three SP2
// variants (basic, Fermi, implicit): a single enumerated choice dispatched
// from one entry point, rather than three separately built binaries.
package solver
