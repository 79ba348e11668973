package mmio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/latticeqc/sp2core/ellpsp2"
)

// Write serializes x as Matrix Market coordinate real general, 1-based
// indices, rows emitted in ascending order with each row's columns in
// storage order.
func Write(w io.Writer, x *ellpsp2.Matrix) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%%%%MatrixMarket matrix coordinate real general\n"); err != nil {
		return err
	}

	n := x.N()
	total := 0
	for i := 0; i < n; i++ {
		total += x.NNZ(i)
	}
	if _, err := fmt.Fprintf(bw, "%d %d %d\n", n, n, total); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		cols, vals := x.Row(i)
		for k, col := range cols {
			if _, err := bw.WriteString(strconv.Itoa(i + 1)); err != nil {
				return err
			}
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
			if _, err := bw.WriteString(strconv.Itoa(col + 1)); err != nil {
				return err
			}
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
			if _, err := bw.WriteString(strconv.FormatFloat(vals[k], 'g', -1, 64)); err != nil {
				return err
			}
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
