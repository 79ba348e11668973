package hamgen

import "math"

// Entry is one stored (row, column, value) triple emitted by Generate.
type Entry struct {
	Row, Col int
	Val      float64
}

// Row holds the generated entries for a single row of the matrix,
// already ordered column-ascending.
type Row struct {
	Entries []Entry
}

// Generate builds a synthetic symmetric banded Hamiltonian of order n
// with per-row half-bandwidth m: for column j with i-m+1 <= j < i+m,
// value = a*u*exp(-alpha*(i-j)^2) where u is drawn from a Stream seeded
// from (n, m). Entries with |value| <= eps are dropped unless j == i.
func Generate(n, m int, a, alpha, eps float64) []Row {
	stream := NewStream(n, m)
	rows := make([]Row, n)
	for i := 0; i < n; i++ {
		lo := i - m + 1
		if lo < 0 {
			lo = 0
		}
		hi := i + m
		if hi > n {
			hi = n
		}
		entries := make([]Entry, 0, hi-lo)
		for j := lo; j < hi; j++ {
			hx := a * stream.Next() * math.Exp(-alpha*float64((i-j)*(i-j)))
			if j == i || math.Abs(hx) > eps {
				entries = append(entries, Entry{Row: i, Col: j, Val: hx})
			}
		}
		rows[i] = Row{Entries: entries}
	}
	return rows
}
