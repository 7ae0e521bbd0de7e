package interpolate

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Approximation is a piecewise polynomial approximation of a sampled
// function. Each cell of its grid has its own polynomial.
//
// An Approximation built with New, NewTrusted, or NewFromGrid is immutable
// and can be queried from any number of goroutines. One built with NewLazy
// computes its polynomials on first use; concurrent first queries block until
// that single build finishes.
type Approximation struct {
	grid  *Grid
	kind  Kind
	build Builder

	once  sync.Once
	polys []Polynomial
	err   error
}

// New validates samples and builds an approximation of the given kind over
// them.
func New(samples []Sample, kind Kind) (*Approximation, error) {
	g, err := NewGrid(samples)
	if err != nil {
		return nil, err
	}
	return NewFromGrid(g, kind)
}

// NewTrusted builds an approximation over samples which the caller
// guarantees are strictly increasing in x. See NewTrustedGrid.
func NewTrusted(samples []Sample, kind Kind) (*Approximation, error) {
	g, err := NewTrustedGrid(samples)
	if err != nil {
		return nil, err
	}
	return NewFromGrid(g, kind)
}

// NewFromGrid builds an approximation of the given kind over g.
func NewFromGrid(g *Grid, kind Kind) (*Approximation, error) {
	a, err := NewLazy(g, kind)
	if err != nil {
		return nil, err
	}
	if err := a.Build(); err != nil {
		return nil, err
	}
	return a, nil
}

// NewLazy creates an approximation over g whose polynomials are built on the
// first query, or on the first call to Build.
func NewLazy(g *Grid, kind Kind) (*Approximation, error) {
	build, err := BuilderFor(kind)
	if err != nil {
		return nil, err
	}
	return newApproximation(g, kind, build), nil
}

func newApproximation(g *Grid, kind Kind, build Builder) *Approximation {
	return &Approximation{grid: g, kind: kind, build: build}
}

// Build computes the cell polynomials if they have not been computed yet. The
// builder runs at most once; its error, if any, is returned by every later
// call and query.
func (a *Approximation) Build() error {
	_, err := a.cells()
	return err
}

func (a *Approximation) cells() ([]Polynomial, error) {
	a.once.Do(func() {
		a.polys, a.err = a.build(a.grid)
		if a.err == nil {
			logrus.Debugf(
				"interpolate: built %d %s cells on [%g, %g]",
				len(a.polys), a.kind, a.grid.left, a.grid.right,
			)
		}
	})
	return a.polys, a.err
}

// Kind returns the kind the approximation was built with.
func (a *Approximation) Kind() Kind { return a.kind }

// Left returns the lower bound of the domain.
func (a *Approximation) Left() float64 { return a.grid.left }

// Right returns the upper bound of the domain.
func (a *Approximation) Right() float64 { return a.grid.right }

// Samples returns a copy of the validated samples in increasing x order.
func (a *Approximation) Samples() []Sample { return a.grid.Samples() }

// Cells returns the number of cells, one less than the number of samples.
func (a *Approximation) Cells() int { return a.grid.Len() - 1 }

// Index returns the index of the cell containing x. See Grid.Index.
func (a *Approximation) Index(x float64) (int, error) { return a.grid.Index(x) }

// Polynomial returns the polynomial of the i-th cell.
func (a *Approximation) Polynomial(i int) (Polynomial, error) {
	polys, err := a.cells()
	if err != nil {
		return Polynomial{}, err
	} else if i < 0 || i >= len(polys) {
		return Polynomial{}, fmt.Errorf(
			"%w: %d not in [0, %d)", ErrCellIndex, i, len(polys),
		)
	}
	return polys[i], nil
}

// Eval returns the value of the approximation at x.
func (a *Approximation) Eval(x float64) (float64, error) {
	p, err := a.cellAt(x)
	if err != nil {
		return 0, err
	}
	return p.Eval(x), nil
}

// Diff returns the derivative of the given order at x. Derivatives are taken
// from the polynomial of the cell containing x, so at interior grid points
// they are one-sided from the right.
func (a *Approximation) Diff(x float64, order int) (float64, error) {
	if order < 0 {
		return 0, fmt.Errorf("interpolate: negative derivative order %d", order)
	}
	p, err := a.cellAt(x)
	if err != nil {
		return 0, err
	}
	for k := 0; k < order; k++ {
		p = p.Diff()
	}
	return p.Eval(x), nil
}

// EvalAll evaluates the approximation at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (a *Approximation) EvalAll(xs []float64, out ...[]float64) ([]float64, error) {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	} else if len(out[0]) < len(xs) {
		return nil, fmt.Errorf(
			"interpolate: output of length %d given for %d values",
			len(out[0]), len(xs),
		)
	}

	polys, err := a.cells()
	if err != nil {
		return nil, err
	}
	for i, x := range xs {
		j, err := a.grid.Index(x)
		if err != nil {
			return nil, err
		}
		out[0][i] = polys[j].Eval(x)
	}
	return out[0], nil
}

func (a *Approximation) cellAt(x float64) (Polynomial, error) {
	polys, err := a.cells()
	if err != nil {
		return Polynomial{}, err
	}
	i, err := a.grid.Index(x)
	if err != nil {
		return Polynomial{}, err
	}
	return polys[i], nil
}
