package io

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/gridapprox/math/interpolate"
)

const ExampleApproxFile = `[Approx]

#######################
# Required Parameters #
#######################

# File containing the samples of the function being approximated.
Input = path/to/samples.txt

#######################
# Optional Parameters #
#######################

# Format of the Input file. Table is a whitespace separated text table with
# one sample per line. YAML is a list of {x: ..., y: ...} mappings.
# Format = Table

# Zero-indexed columns of the x and y values when Format = Table.
# XColumn = 0
# YColumn = 1

# Approximation scheme. One of Default, HighSpeed, HighQuality, Linear, or
# Cubic. Default and HighQuality are natural cubic splines, HighSpeed is
# piecewise linear.
# Kind = Default

# Set to true if the samples are already sorted by x with no repeated x
# values. This skips validation; unsorted input then gives garbage output.
# Trusted = false

# Number of uniformly spaced points the approximation is evaluated at.
# Points = 100

# Where the evaluated curve is written. Defaults to stdout.
# Output = path/to/curve.txt

# If set, the samples and the evaluated curve are plotted to this file.
# PlotBackend can be PNG (rendered directly) or Pyplot (rendered by
# matplotlib, which must be installed).
# PlotFile = path/to/curve.png
# PlotBackend = PNG

# One of panic, fatal, error, warn, info, debug, or trace.
# LogLevel = info`

// ApproxConfig describes a single approximation run.
type ApproxConfig struct {
	// Required
	Input string

	// Optional
	Format           string
	XColumn, YColumn int
	Kind             string
	Trusted          bool
	Points           int
	Output           string
	PlotFile         string
	PlotBackend      string
	LogLevel         string

	parsedKind  interpolate.Kind
	parsedLevel logrus.Level
}

type ApproxWrapper struct {
	Approx ApproxConfig
}

func DefaultApproxWrapper() *ApproxWrapper {
	cfg := ApproxConfig{
		Format:      "Table",
		XColumn:     0,
		YColumn:     1,
		Kind:        "Default",
		Points:      100,
		PlotBackend: "PNG",
		LogLevel:    "info",
	}
	return &ApproxWrapper{cfg}
}

// ReadApproxConfig reads and checks the [Approx] section of the given config
// file.
func ReadApproxConfig(fname string) (*ApproxConfig, error) {
	wrap := DefaultApproxWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, fmt.Errorf("config file '%s': %w", fname, err)
	}
	if err := wrap.Approx.CheckInit(); err != nil {
		return nil, fmt.Errorf("config file '%s': %w", fname, err)
	}
	return &wrap.Approx, nil
}

// ParseApproxConfig is ReadApproxConfig for a config which has already been
// read into memory.
func ParseApproxConfig(text string) (*ApproxConfig, error) {
	wrap := DefaultApproxWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil {
		return nil, err
	}
	if err := wrap.Approx.CheckInit(); err != nil {
		return nil, err
	}
	return &wrap.Approx, nil
}

// CheckInit validates the config and normalizes its enumerated fields.
func (con *ApproxConfig) CheckInit() error {
	if !con.ValidInput() {
		return fmt.Errorf("Invalid/non-existent 'Input' value.")
	} else if !con.ValidFormat() {
		return fmt.Errorf(
			"'Format' must be Table or YAML, but is '%s'.", con.Format,
		)
	} else if !con.ValidColumns() {
		return fmt.Errorf(
			"'XColumn' and 'YColumn' must be distinct and non-negative, "+
				"but are %d and %d.", con.XColumn, con.YColumn,
		)
	} else if !con.ValidPoints() {
		return fmt.Errorf("'Points' must be at least 2, but is %d.", con.Points)
	} else if !con.ValidPlotBackend() {
		return fmt.Errorf(
			"'PlotBackend' must be PNG or Pyplot, but is '%s'.",
			con.PlotBackend,
		)
	}

	kind, err := interpolate.ParseKind(con.Kind)
	if err != nil {
		return fmt.Errorf("Invalid 'Kind' value: %w", err)
	}
	con.parsedKind = kind

	level, err := logrus.ParseLevel(con.LogLevel)
	if err != nil {
		return fmt.Errorf("Invalid 'LogLevel' value: %w", err)
	}
	con.parsedLevel = level

	return nil
}

func (con *ApproxConfig) ValidInput() bool {
	return con.Input != ""
}

func (con *ApproxConfig) ValidFormat() bool {
	return con.IsTable() || con.IsYAML()
}

func (con *ApproxConfig) ValidColumns() bool {
	return con.XColumn >= 0 && con.YColumn >= 0 && con.XColumn != con.YColumn
}

func (con *ApproxConfig) ValidPoints() bool {
	return con.Points >= 2
}

func (con *ApproxConfig) ValidPlotBackend() bool {
	return con.IsPNG() || con.IsPyplot()
}

func (con *ApproxConfig) IsTable() bool { return strings.EqualFold(con.Format, "Table") }
func (con *ApproxConfig) IsYAML() bool  { return strings.EqualFold(con.Format, "YAML") }
func (con *ApproxConfig) IsPNG() bool   { return strings.EqualFold(con.PlotBackend, "PNG") }
func (con *ApproxConfig) IsPyplot() bool {
	return strings.EqualFold(con.PlotBackend, "Pyplot")
}

// ApproximationKind returns the parsed Kind. Only valid after CheckInit.
func (con *ApproxConfig) ApproximationKind() interpolate.Kind { return con.parsedKind }

// Level returns the parsed LogLevel. Only valid after CheckInit.
func (con *ApproxConfig) Level() logrus.Level { return con.parsedLevel }
