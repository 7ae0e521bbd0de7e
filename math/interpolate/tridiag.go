package interpolate

import (
	"fmt"
)

// TriDiagAt solves the system of equations
//
// | b0 c0 ..          |   | out0 |   | r0 |
// | a1 b1 c1 ..       |   | out1 |   | r1 |
// | ..                | * | ..   | = | .. |
// | ..       an    bn |   | outn |   | rn |
//
// for out0 .. outn in place in the given slice, using the Thomas algorithm.
// as[0] and cs[n] are ignored.
//
// Each unknown is eliminated as out[i] = alpha[i]*out[i+1] + beta[i]. The
// alphas are kept in a scratch slice and the betas are accumulated directly
// in out, which back-substitution then turns into the solution.
func TriDiagAt(as, bs, cs, rs, out []float64) error {
	n := len(out)
	if len(as) != n || len(bs) != n || len(cs) != n || len(rs) != n {
		return fmt.Errorf(
			"interpolate: TriDiagAt given slices of lengths %d, %d, %d, %d, %d",
			len(as), len(bs), len(cs), len(rs), n,
		)
	} else if n == 0 {
		return nil
	}

	alpha := make([]float64, n)
	prevAlpha, prevBeta := 0.0, 0.0
	for i := 0; i < n; i++ {
		pivot := as[i]*prevAlpha + bs[i]
		if pivot == 0 {
			return fmt.Errorf("%w: zero pivot in row %d", ErrSingular, i)
		}
		alpha[i] = -cs[i] / pivot
		out[i] = (rs[i] - as[i]*prevBeta) / pivot
		prevAlpha, prevBeta = alpha[i], out[i]
	}

	for i := n - 2; i >= 0; i-- {
		out[i] += alpha[i] * out[i+1]
	}

	return nil
}

// TriDiag solves the system of equations
//
// | b0 c0 ..          |   | u0 |   | r0 |
// | a1 b1 c1 ..       |   | u1 |   | r1 |
// | ..                | * | .. | = | .. |
// | ..       an    bn |   | un |   | rn |
//
// For u0 .. un.
func TriDiag(as, bs, cs, rs []float64) ([]float64, error) {
	us := make([]float64, len(bs))
	if err := TriDiagAt(as, bs, cs, rs, us); err != nil {
		return nil, err
	}
	return us, nil
}
