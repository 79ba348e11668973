// Package sp2basic implements the zero-temperature second-order spectral
// projection recursion: normalize H into rho via Gershgorin bounds, then
// repeatedly branch between rho <- 2*rho - rho^2 and rho <- rho^2
// according to which reduces the trace error against N_occ more, until
// the idempotency-error history stops decreasing or max_iter is reached.
// The final rho is doubled for spin degeneracy.
//
// The branch rule, error-history shift, and min/max iteration bounds
// follow a sequential reference recursion; row-parallel work runs as
// rowpool.Pool-backed sp2math primitive calls.
package sp2basic
