// Package sp2implicit implements the implicit recursion variant of the
// SP2 density-matrix solve: at each level, A = 2I + (rho^2 - rho) is
// formed and A*P = rho^2 is solved for the next rho by conjugate
// gradient under the Frobenius inner product, bounded at 100 iterations.
//
// Only the direct-CG-on-the-operator-form variant is implemented;
// Newton-Schulz inversion is not implemented as no reference result was
// available to validate it against.
package sp2implicit
