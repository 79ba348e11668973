// Package hamgen generates synthetic banded Hamiltonian matrices,
// deterministic in (N, M):
//
//	h[i][j] = a * u(seed) * exp(-alpha*(i-j)^2),  i-M+1 <= j < i+M
//
// where u is drawn from a 61-bit linear congruential generator seeded
// from (N, M) and advanced once per candidate (i, j) pair in row-major,
// column-ascending order. This is also the implementation behind
// ellpsp2.Banded, which is named once as a substrate constructor and once
// as an external collaborator; both resolve to this one package so they
// can never drift apart.
package hamgen
