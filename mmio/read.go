package mmio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/latticeqc/sp2core/ellpsp2"
	"github.com/latticeqc/sp2core/ellpsp2err"
)

const headerPrefix = "%%MatrixMarket"

type entry struct {
	row, col int
	val      float64
}

// Read parses a Matrix Market coordinate real general stream into an
// ellpsp2.Matrix with per-row capacity m. Returns ellpsp2err.ErrBadHeader
// or ellpsp2err.ErrBadEntry on malformed input, and
// ellpsp2err.ErrRowCapacityOverflow if a row exceeds the matrix's realized
// capacity (m rounded up to a multiple of 32, capped at N).
func Read(r io.Reader, m int) (*ellpsp2.Matrix, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: missing header line", ellpsp2err.ErrBadHeader)
	}
	header := strings.TrimSpace(scanner.Text())
	fields := strings.Fields(header)
	if len(fields) != 5 || fields[0] != headerPrefix {
		return nil, fmt.Errorf("%w: expected 5-token MatrixMarket header, got %q", ellpsp2err.ErrBadHeader, header)
	}
	if !strings.EqualFold(fields[1], "matrix") || !strings.EqualFold(fields[2], "coordinate") ||
		!strings.EqualFold(fields[3], "real") || !strings.EqualFold(fields[4], "general") {
		return nil, fmt.Errorf("%w: unsupported MatrixMarket variant %q", ellpsp2err.ErrBadHeader, header)
	}

	dimLine, ok := nextNonComment(scanner)
	if !ok {
		return nil, fmt.Errorf("%w: missing dimension line", ellpsp2err.ErrBadHeader)
	}
	dims := strings.Fields(dimLine)
	if len(dims) != 3 {
		return nil, fmt.Errorf("%w: expected \"rows cols nnz\", got %q", ellpsp2err.ErrBadHeader, dimLine)
	}
	n, err := strconv.Atoi(dims[0])
	if err != nil {
		return nil, fmt.Errorf("%w: non-numeric row count %q", ellpsp2err.ErrBadHeader, dims[0])
	}
	ncols, err := strconv.Atoi(dims[1])
	if err != nil {
		return nil, fmt.Errorf("%w: non-numeric column count %q", ellpsp2err.ErrBadHeader, dims[1])
	}
	if ncols != n {
		return nil, fmt.Errorf("%w: matrix must be square, got %dx%d", ellpsp2err.ErrBadHeader, n, ncols)
	}
	nnz, err := strconv.Atoi(dims[2])
	if err != nil {
		return nil, fmt.Errorf("%w: non-numeric nnz %q", ellpsp2err.ErrBadHeader, dims[2])
	}

	rows := make([][]entry, n)
	for k := 0; k < nnz; k++ {
		line, ok := nextNonComment(scanner)
		if !ok {
			return nil, fmt.Errorf("%w: expected %d entries, found %d", ellpsp2err.ErrBadEntry, nnz, k)
		}
		fs := strings.Fields(line)
		if len(fs) != 3 {
			return nil, fmt.Errorf("%w: expected \"row col value\", got %q", ellpsp2err.ErrBadEntry, line)
		}
		row, err := strconv.Atoi(fs[0])
		if err != nil {
			return nil, fmt.Errorf("%w: non-numeric row %q", ellpsp2err.ErrBadEntry, fs[0])
		}
		col, err := strconv.Atoi(fs[1])
		if err != nil {
			return nil, fmt.Errorf("%w: non-numeric col %q", ellpsp2err.ErrBadEntry, fs[1])
		}
		val, err := strconv.ParseFloat(fs[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: non-numeric value %q", ellpsp2err.ErrBadEntry, fs[2])
		}
		if row < 1 || row > n || col < 1 || col > n {
			return nil, fmt.Errorf("%w: index (%d,%d) out of range for N=%d", ellpsp2err.ErrBadEntry, row, col, n)
		}
		rows[row-1] = append(rows[row-1], entry{row: row - 1, col: col - 1, val: val})
	}

	x, err := ellpsp2.Zero(n, m)
	if err != nil {
		return nil, err
	}
	for i, es := range rows {
		if err := x.SetNNZ(i, len(es)); err != nil {
			return nil, err
		}
		cols, vals := x.RowCap(i)
		for k, e := range es {
			cols[k] = e.col
			vals[k] = e.val
		}
	}
	return x, nil
}

// ReadAuto is Read with the row capacity inferred as the widest row found
// in the stream.
func ReadAuto(r io.Reader) (*ellpsp2.Matrix, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	maxM, err := scanMaxRowWidth(strings.NewReader(string(data)))
	if err != nil {
		return nil, err
	}
	return Read(strings.NewReader(string(data)), maxM)
}

func scanMaxRowWidth(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return 0, fmt.Errorf("%w: missing header line", ellpsp2err.ErrBadHeader)
	}
	dimLine, ok := nextNonComment(scanner)
	if !ok {
		return 0, fmt.Errorf("%w: missing dimension line", ellpsp2err.ErrBadHeader)
	}
	dims := strings.Fields(dimLine)
	if len(dims) != 3 {
		return 0, fmt.Errorf("%w: expected \"rows cols nnz\", got %q", ellpsp2err.ErrBadHeader, dimLine)
	}
	n, err := strconv.Atoi(dims[0])
	if err != nil {
		return 0, fmt.Errorf("%w: non-numeric row count %q", ellpsp2err.ErrBadHeader, dims[0])
	}
	nnz, err := strconv.Atoi(dims[2])
	if err != nil {
		return 0, fmt.Errorf("%w: non-numeric nnz %q", ellpsp2err.ErrBadHeader, dims[2])
	}

	counts := make([]int, n)
	maxM := 1
	for k := 0; k < nnz; k++ {
		line, ok := nextNonComment(scanner)
		if !ok {
			return 0, fmt.Errorf("%w: expected %d entries, found %d", ellpsp2err.ErrBadEntry, nnz, k)
		}
		fs := strings.Fields(line)
		if len(fs) != 3 {
			return 0, fmt.Errorf("%w: expected \"row col value\", got %q", ellpsp2err.ErrBadEntry, line)
		}
		row, err := strconv.Atoi(fs[0])
		if err != nil || row < 1 || row > n {
			return 0, fmt.Errorf("%w: invalid row %q", ellpsp2err.ErrBadEntry, fs[0])
		}
		counts[row-1]++
		if counts[row-1] > maxM {
			maxM = counts[row-1]
		}
	}
	return maxM, nil
}

func nextNonComment(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		return line, true
	}
	return "", false
}
