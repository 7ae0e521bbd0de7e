package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteCurve writes a text table with one row per element of xs. Each row
// holds x followed by the matching element of every column in cols.
func WriteCurve(w io.Writer, xs []float64, cols ...[]float64) error {
	for j, col := range cols {
		if len(col) != len(xs) {
			return fmt.Errorf(
				"column %d has %d values, but there are %d x values",
				j, len(col), len(xs),
			)
		}
	}

	bw := bufio.NewWriter(w)
	for i, x := range xs {
		fmt.Fprintf(bw, "%.10g", x)
		for _, col := range cols {
			fmt.Fprintf(bw, " %.10g", col[i])
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteCurveFile is WriteCurve for a named file. An empty name writes to
// stdout.
func WriteCurveFile(fname string, xs []float64, cols ...[]float64) error {
	if fname == "" {
		return WriteCurve(os.Stdout, xs, cols...)
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := WriteCurve(f, xs, cols...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
