/*package interpolate implements piecewise polynomial approximations of
sampled functions of one variable.

Samples are collected into a Grid, which sorts and validates them. A Builder
turns the grid into one polynomial per cell and an Approximation answers
queries by locating the cell and evaluating its polynomial.
*/
package interpolate

// Interpolator is a 1D interpolator over a bounded domain.
type Interpolator interface {
	// Eval evaluates the interpolator at x.
	Eval(x float64) (float64, error)
	// EvalAll evaluates a sequence of values and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs []float64, out ...[]float64) ([]float64, error)
	// Left and Right return the bounds of the domain.
	Left() float64
	Right() float64
}

var (
	_ Interpolator = &Approximation{}
)

// Monotonic is an interpolator whose approximation is strictly monotonic
// across its whole domain, which makes it invertible.
//
// Implementations must use a builder whose output is strictly monotonic in
// every cell. Argument is then answered cell by cell: in closed form for
// linear cells, and with a bracketed root search for cubic cells.
type Monotonic interface {
	Interpolator

	// LeftValue and RightValue are the values at Left() and Right().
	LeftValue() float64
	RightValue() float64
	// MinValue and MaxValue bound the range of the approximation.
	MinValue() float64
	MaxValue() float64

	// Argument returns the x at which the approximation takes the value y.
	Argument(y float64) (float64, error)
}
