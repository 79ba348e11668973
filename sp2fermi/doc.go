// Package sp2fermi implements the finite-temperature SP2 recursion: a
// chemical-potential search that fixes a sign list sigma and an
// inverse-temperature estimate beta (the initialization phase), followed
// by a main driver that repeatedly normalizes rho from H at the current
// mu, replays the fixed sigma-indexed polynomial steps, and applies a
// Newton-Raphson correction to mu until the occupation error falls within
// theta_occ or the outer step budget is exhausted.
//
// The secondary operator X1 (d(tr rho)/d mu during initialization) and
// the beta estimate from tr((I-rho)*rho) drive the initialization phase;
// the main driver's secondary operator deltaX = -beta*rho*(I-rho)
// replaces X1 once beta is fixed, keeping the same two-phase structure.
package sp2fermi
