package interpolate

import (
	"fmt"
	"strings"
)

// Builder constructs one polynomial per cell of a grid. The i-th polynomial
// must be valid on [g.At(i).X, g.At(i+1).X].
type Builder func(g *Grid) ([]Polynomial, error)

// Kind selects an approximation scheme without depending on a concrete
// builder.
type Kind int

const (
	Default Kind = iota
	HighSpeed
	HighQuality
	Linear
	Cubic
)

var (
	kindNames = [...]string{
		Default:     "Default",
		HighSpeed:   "HighSpeed",
		HighQuality: "HighQuality",
		Linear:      "Linear",
		Cubic:       "Cubic",
	}

	builders = [...]Builder{
		Default:     BuildCubicSpline,
		HighSpeed:   BuildLinear,
		HighQuality: BuildCubicSpline,
		Linear:      BuildLinear,
		Cubic:       BuildCubicSpline,
	}
)

func (k Kind) valid() bool { return k >= 0 && int(k) < len(kindNames) }

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind with the given name. Matching ignores case.
func ParseKind(name string) (Kind, error) {
	for k, kn := range kindNames {
		if strings.EqualFold(kn, strings.TrimSpace(name)) {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// BuilderFor returns the builder used for approximations of the given kind.
func BuilderFor(k Kind) (Builder, error) {
	if !k.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return builders[k], nil
}
