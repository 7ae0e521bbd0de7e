package io

import (
	"fmt"
	"io"
	"os"

	"github.com/phil-mansfield/table"
	"gopkg.in/yaml.v3"

	"github.com/phil-mansfield/gridapprox/math/interpolate"
)

// yamlSample is the on-disk layout of a single YAML sample.
type yamlSample struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ReadSamples reads the samples named by a checked config.
func ReadSamples(con *ApproxConfig) ([]interpolate.Sample, error) {
	if con.IsYAML() {
		return ReadYAMLSamples(con.Input)
	}
	return ReadTableSamples(con.Input, con.XColumn, con.YColumn)
}

// ReadTableSamples reads samples from the given columns of a whitespace
// separated text table.
func ReadTableSamples(fname string, xCol, yCol int) ([]interpolate.Sample, error) {
	cols, err := table.ReadTable(fname, []int{xCol, yCol}, nil)
	if err != nil {
		return nil, fmt.Errorf("table '%s': %w", fname, err)
	}

	xs, ys := cols[0], cols[1]
	if len(xs) != len(ys) {
		return nil, fmt.Errorf(
			"table '%s' has %d x values but %d y values", fname, len(xs), len(ys),
		)
	}

	ss := make([]interpolate.Sample, len(xs))
	for i := range ss {
		ss[i] = interpolate.Sample{X: xs[i], Y: ys[i]}
	}
	return ss, nil
}

// ReadYAMLSamples reads samples from a YAML file containing a list of
// {x: ..., y: ...} mappings.
func ReadYAMLSamples(fname string) ([]interpolate.Sample, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ss, err := DecodeYAMLSamples(f)
	if err != nil {
		return nil, fmt.Errorf("YAML file '%s': %w", fname, err)
	}
	return ss, nil
}

// DecodeYAMLSamples decodes a YAML list of {x: ..., y: ...} mappings.
func DecodeYAMLSamples(r io.Reader) ([]interpolate.Sample, error) {
	var raw []yamlSample
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	ss := make([]interpolate.Sample, len(raw))
	for i, s := range raw {
		ss[i] = interpolate.Sample{X: s.X, Y: s.Y}
	}
	return ss, nil
}
