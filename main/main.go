package main

import (
	"fmt"
	goio "io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/phil-mansfield/gridapprox/io"
	"github.com/phil-mansfield/gridapprox/math/interpolate"
	"github.com/phil-mansfield/gridapprox/render"
)

var (
	logLevel string    // Overrides the config's LogLevel when set
	evalAt   []float64 // Explicit evaluation points
	evalDiff bool      // Also write the first derivative
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:           "gridapprox",
	Short:         "Piecewise polynomial approximation of sampled functions",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var evalCmd = &cobra.Command{
	Use:   "eval <config>",
	Short: "Evaluate the approximation described by a config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		con, err := loadConfig(args[0])
		if err != nil {
			return err
		}
		return evalMain(con, evalAt, evalDiff, cmd.OutOrStdout())
	},
}

var cellsCmd = &cobra.Command{
	Use:   "cells <config>",
	Short: "Print the polynomial of every cell of an approximation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		con, err := loadConfig(args[0])
		if err != nil {
			return err
		}
		return cellsMain(con, cmd.OutOrStdout())
	},
}

var exampleConfigCmd = &cobra.Command{
	Use:   "example-config",
	Short: "Print an example config file to stdout",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), io.ExampleApproxFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level (trace, debug, info, warn, error, fatal, panic). Overrides the config's LogLevel")

	evalCmd.Flags().Float64SliceVar(&evalAt, "at", nil,
		"Comma-separated points to evaluate at instead of a uniform grid")
	evalCmd.Flags().BoolVar(&evalDiff, "diff", false,
		"Write the first derivative as a third column")

	rootCmd.AddCommand(evalCmd, cellsCmd, exampleConfigCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err.Error())
	}
}

// loadConfig reads the config file and sets up logging from it.
func loadConfig(fname string) (*io.ApproxConfig, error) {
	con, err := io.ReadApproxConfig(fname)
	if err != nil {
		return nil, err
	}

	level := con.Level()
	if logLevel != "" {
		level, err = logrus.ParseLevel(logLevel)
		if err != nil {
			return nil, fmt.Errorf("Invalid log level: %s", logLevel)
		}
	}
	logrus.SetLevel(level)

	return con, nil
}

// buildApproximation reads the samples named by con and builds the
// approximation over them.
func buildApproximation(con *io.ApproxConfig) (*interpolate.Approximation, error) {
	ss, err := io.ReadSamples(con)
	if err != nil {
		return nil, err
	}
	logrus.Infof("Read %d samples from '%s'.", len(ss), con.Input)

	var a *interpolate.Approximation
	if con.Trusted {
		a, err = interpolate.NewTrusted(ss, con.ApproximationKind())
	} else {
		a, err = interpolate.New(ss, con.ApproximationKind())
	}
	if err != nil {
		return nil, fmt.Errorf("samples in '%s': %w", con.Input, err)
	}

	logrus.Infof(
		"Built %s approximation with %d cells on [%g, %g].",
		a.Kind(), a.Cells(), a.Left(), a.Right(),
	)
	return a, nil
}

func evalMain(
	con *io.ApproxConfig, at []float64, diff bool, stdout goio.Writer,
) error {
	a, err := buildApproximation(con)
	if err != nil {
		return err
	}

	xs := at
	if len(xs) == 0 {
		xs = linspace(a.Left(), a.Right(), con.Points)
	}
	ys, err := a.EvalAll(xs)
	if err != nil {
		return err
	}

	cols := [][]float64{ys}
	if diff {
		dys := make([]float64, len(xs))
		for i, x := range xs {
			if dys[i], err = a.Diff(x, 1); err != nil {
				return err
			}
		}
		cols = append(cols, dys)
	}

	if con.Output == "" {
		err = io.WriteCurve(stdout, xs, cols...)
	} else {
		err = io.WriteCurveFile(con.Output, xs, cols...)
	}
	if err != nil {
		return err
	}

	if con.PlotFile != "" {
		curve := &render.Curve{
			Title:   fmt.Sprintf("%s approximation of %s", a.Kind(), con.Input),
			Samples: a.Samples(),
			Xs:      xs, Ys: ys,
		}
		if con.IsPyplot() {
			err = render.Pyplot(con.PlotFile, curve)
		} else {
			err = render.SaveImage(con.PlotFile, curve)
		}
		if err != nil {
			return err
		}
		logrus.Infof("Plotted curve to '%s'.", con.PlotFile)
	}

	return nil
}

func cellsMain(con *io.ApproxConfig, stdout goio.Writer) error {
	a, err := buildApproximation(con)
	if err != nil {
		return err
	}

	ss := a.Samples()
	for i := 0; i < a.Cells(); i++ {
		p, err := a.Polynomial(i)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(
			stdout, "%d [%.10g, %.10g] %s\n", i, ss[i].X, ss[i+1].X, p,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// linspace returns n uniformly spaced points from lo to hi, inclusive. The
// last point is exactly hi.
func linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	xs[n-1] = hi
	return xs
}
