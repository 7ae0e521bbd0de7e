package interpolate

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"
)

// Sample is a single (x, y) point of the sampled function.
type Sample struct {
	X, Y float64
}

// Equal reports whether s and t have exactly the same coordinates.
func (s Sample) Equal(t Sample) bool { return s.X == t.X && s.Y == t.Y }

// Grid is a sequence of samples which is strictly increasing in x. Grids are
// immutable after construction and can be shared between goroutines.
type Grid struct {
	samples     []Sample
	left, right float64

	// Usually the input data is close to uniform. This is our estimate of
	// the point spacing, used to guess cells before falling back to a
	// binary search.
	dx float64
}

// NewGrid creates a grid from samples given in any order. The samples are
// copied and stably sorted by x. Exact duplicate samples are merged, while
// two samples with the same x and different y values result in a
// *DuplicateArgumentError.
func NewGrid(samples []Sample) (*Grid, error) {
	if len(samples) == 0 {
		return nil, &InsufficientDataError{Need: 1, Got: 0}
	}
	for _, s := range samples {
		if math.IsNaN(s.X) || math.IsNaN(s.Y) {
			return nil, fmt.Errorf("%w: (%g, %g)", ErrNaN, s.X, s.Y)
		}
	}

	sorted := make([]Sample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	// Walk from the end so that out is built in reverse order. p0 is the
	// later point in sort order and p1 the earlier.
	out := make([]Sample, 0, len(sorted))
	for i := len(sorted) - 1; i > 0; i-- {
		p0, p1 := sorted[i], sorted[i-1]
		if p0.Equal(p1) {
			continue
		} else if p0.X == p1.X {
			return nil, &DuplicateArgumentError{X: p0.X, Y1: p1.Y, Y2: p0.Y}
		}
		out = append(out, p0)
	}
	out = append(out, sorted[0])

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	g := newGrid(out)
	logrus.Debugf(
		"interpolate: validated grid of %d samples (%d supplied) on [%g, %g]",
		len(out), len(samples), g.left, g.right,
	)
	return g, nil
}

// NewTrustedGrid creates a grid directly from samples without sorting or
// validation. The caller guarantees that the samples are strictly increasing
// in x. If they are not, queries against the grid give undefined results.
//
// samples is not copied and must not be modified for the lifetime of the
// Grid.
func NewTrustedGrid(samples []Sample) (*Grid, error) {
	if len(samples) == 0 {
		return nil, &InsufficientDataError{Need: 1, Got: 0}
	}
	return newGrid(samples), nil
}

func newGrid(samples []Sample) *Grid {
	g := &Grid{samples: samples}
	g.left = samples[0].X
	g.right = samples[len(samples)-1].X
	if len(samples) > 1 {
		g.dx = (g.right - g.left) / float64(len(samples)-1)
	}
	return g
}

// Len returns the number of samples in the grid.
func (g *Grid) Len() int { return len(g.samples) }

// At returns the i-th sample in increasing x order.
func (g *Grid) At(i int) Sample { return g.samples[i] }

// Left returns the smallest x value in the grid.
func (g *Grid) Left() float64 { return g.left }

// Right returns the largest x value in the grid.
func (g *Grid) Right() float64 { return g.right }

// Samples returns a copy of the grid's samples in increasing x order.
func (g *Grid) Samples() []Sample {
	out := make([]Sample, len(g.samples))
	copy(out, g.samples)
	return out
}

// Contains reports whether x lies within [Left(), Right()]. NaN is never
// contained.
func (g *Grid) Contains(x float64) bool {
	return x >= g.left && x <= g.right
}

// Index returns the index i of the cell containing x, so that
// At(i).X <= x < At(i+1).X. x == Right() maps to the last cell, Len() - 2.
//
// Lookups are O(log Len()), and O(1) when the grid is close to uniform.
func (g *Grid) Index(x float64) (int, error) {
	n := len(g.samples)
	if !g.Contains(x) {
		return 0, &OutOfDomainError{X: x, Left: g.left, Right: g.right}
	} else if n < 2 {
		return 0, &InsufficientDataError{Need: 2, Got: n}
	}

	// Guess under the assumption of uniform spacing.
	if guess := (x - g.left) / g.dx; guess >= 0 && guess < float64(n-1) {
		i := int(guess)
		if g.samples[i].X <= x && x < g.samples[i+1].X {
			return i, nil
		}
	}

	return g.search(x), nil
}

// search finds the smallest index in [1, n-1] whose x value is strictly
// larger than x and returns the index before it.
func (g *Grid) search(x float64) int {
	lo, hi := 1, len(g.samples)-1
	for lo < hi {
		mid := lo + (hi-lo)/2
		if x < g.samples[mid].X {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo - 1
}
