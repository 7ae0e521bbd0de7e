package interpolate

// BuildLinear builds the piecewise linear interpolant through the samples of
// g. Every polynomial has degree one and reproduces both of its cell's end
// points.
func BuildLinear(g *Grid) ([]Polynomial, error) {
	n := g.Len()
	if n < 2 {
		return nil, &InsufficientDataError{Need: 2, Got: n}
	}

	polys := make([]Polynomial, n-1)
	for i := range polys {
		s0, s1 := g.At(i), g.At(i+1)
		slope := (s1.Y - s0.Y) / (s1.X - s0.X)
		polys[i] = NewPolynomial(s0.Y-slope*s0.X, slope)
	}
	return polys, nil
}
