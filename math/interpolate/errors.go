package interpolate

import (
	"errors"
	"fmt"
)

var (
	// ErrNaN is returned when a sample contains a NaN coordinate.
	ErrNaN = errors.New("interpolate: NaN sample coordinate")
	// ErrSingular is returned by TriDiagAt when elimination hits a zero pivot.
	ErrSingular = errors.New("interpolate: singular tridiagonal system")
	// ErrCellIndex is returned when a cell index is outside [0, Cells()).
	ErrCellIndex = errors.New("interpolate: cell index out of range")
	// ErrUnknownKind is returned for Kind values outside the closed set.
	ErrUnknownKind = errors.New("interpolate: unknown approximation kind")
)

// DuplicateArgumentError reports two samples which share an x value but
// disagree on y.
type DuplicateArgumentError struct {
	X      float64
	Y1, Y2 float64
}

func (e *DuplicateArgumentError) Error() string {
	return fmt.Sprintf(
		"interpolate: duplicate argument x = %g with values %g and %g",
		e.X, e.Y1, e.Y2,
	)
}

// InsufficientDataError reports that fewer samples were supplied than an
// operation requires.
type InsufficientDataError struct {
	Need, Got int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf(
		"interpolate: need at least %d distinct samples, got %d",
		e.Need, e.Got,
	)
}

// OutOfDomainError reports a query argument outside [Left, Right].
type OutOfDomainError struct {
	X           float64
	Left, Right float64
}

func (e *OutOfDomainError) Error() string {
	return fmt.Sprintf(
		"interpolate: argument %g out of domain [%g, %g]",
		e.X, e.Left, e.Right,
	)
}
