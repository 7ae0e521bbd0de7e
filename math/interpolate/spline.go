package interpolate

// BuildCubicSpline builds the natural cubic spline through the samples of g:
// a C2 piecewise cubic with zero second derivative at both ends of the
// domain. The i-th polynomial is valid on [g.At(i).X, g.At(i+1).X] and is
// expressed in absolute x.
//
// Because the coefficients are in absolute x, they grow like |x|^3 and cancel
// on evaluation. The relative error is roughly 1e-16 * (|x|/h)^3 for cells of
// width h, so grids with |x|/h beyond about 1e4 lose all precision (unit
// spacing at x = 1e6 misses its own samples by hundreds). Shift such grids
// towards the origin before building.
//
// Construction is O(g.Len()).
func BuildCubicSpline(g *Grid) ([]Polynomial, error) {
	n := g.Len()
	if n < 2 {
		return nil, &InsufficientDataError{Need: 2, Got: n}
	}

	cs, err := splineCurvatures(g)
	if err != nil {
		return nil, err
	}

	polys := make([]Polynomial, n-1)
	for i := range polys {
		s0, s1 := g.At(i), g.At(i+1)
		c0, c1 := cs[i], cs[i+1]

		dx, dy := s1.X-s0.X, s1.Y-s0.Y
		dCoef := (c1 - c0) / dx
		bCoef := dx*(2*c1+c0)/6 + dy/dx

		// Expand the Taylor form anchored at the right node,
		//   y1 + b*(x - x1) + c1/2*(x - x1)^2 + d/6*(x - x1)^3,
		// into the power basis.
		x1 := s1.X
		polys[i] = NewPolynomial(
			s1.Y-x1*(bCoef-x1*(c1/2-x1*dCoef/6)),
			bCoef-x1*(c1-x1*dCoef/2),
			(c1-x1*dCoef)/2,
			dCoef/6,
		)
	}

	return polys, nil
}

// splineCurvatures computes the second derivative of the natural spline at
// every sample of g. The boundary values are zero and the interior values
// solve a diagonally dominant tridiagonal system.
func splineCurvatures(g *Grid) ([]float64, error) {
	n := g.Len()
	cs := make([]float64, n)
	if n < 3 {
		return cs, nil
	}

	// These arrays do not escape to the heap.
	m := n - 2
	as, bs := make([]float64, m), make([]float64, m)
	us, rs := make([]float64, m), make([]float64, m)

	for i := range rs {
		// j indexes into the grid.
		j := i + 1
		prev, curr, next := g.At(j-1), g.At(j), g.At(j+1)

		dx1, dx2 := curr.X-prev.X, next.X-curr.X
		dy1, dy2 := curr.Y-prev.Y, next.Y-curr.Y

		as[i] = dx1
		bs[i] = 2 * (dx1 + dx2)
		us[i] = dx2
		rs[i] = 6 * (dy2/dx2 - dy1/dx1)
	}

	if err := TriDiagAt(as, bs, us, rs, cs[1:n-1]); err != nil {
		return nil, err
	}
	return cs, nil
}
