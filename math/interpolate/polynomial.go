package interpolate

import (
	"strconv"
	"strings"
)

// Polynomial is an immutable polynomial in the power basis. Coefficients are
// stored in ascending degree, so cs[k] multiplies x^k.
type Polynomial struct {
	cs []float64
}

// NewPolynomial creates a polynomial with the coefficients a0, a1, ... The
// arguments are copied.
func NewPolynomial(cs ...float64) Polynomial {
	p := Polynomial{cs: make([]float64, len(cs))}
	copy(p.cs, cs)
	return p
}

// Eval evaluates the polynomial at x using Horner's scheme.
func (p Polynomial) Eval(x float64) float64 {
	sum := 0.0
	for k := len(p.cs) - 1; k >= 0; k-- {
		sum = sum*x + p.cs[k]
	}
	return sum
}

// Diff returns the derivative of p.
func (p Polynomial) Diff() Polynomial {
	if len(p.cs) <= 1 {
		return Polynomial{}
	}
	d := Polynomial{cs: make([]float64, len(p.cs)-1)}
	for k := 1; k < len(p.cs); k++ {
		d.cs[k-1] = float64(k) * p.cs[k]
	}
	return d
}

// Degree returns the nominal degree of p: the number of stored coefficients
// minus one. Trailing zero coefficients are not trimmed. The zero polynomial
// has degree -1.
func (p Polynomial) Degree() int { return len(p.cs) - 1 }

// Coeff returns the coefficient of x^k. Coefficients past the degree of p are
// zero.
func (p Polynomial) Coeff(k int) float64 {
	if k < 0 || k >= len(p.cs) {
		return 0
	}
	return p.cs[k]
}

// Coeffs returns a copy of the coefficients in ascending degree.
func (p Polynomial) Coeffs() []float64 {
	out := make([]float64, len(p.cs))
	copy(out, p.cs)
	return out
}

// Equal reports whether p and q have exactly the same coefficients, treating
// missing high-degree coefficients as zero.
func (p Polynomial) Equal(q Polynomial) bool {
	n := len(p.cs)
	if len(q.cs) > n {
		n = len(q.cs)
	}
	for k := 0; k < n; k++ {
		if p.Coeff(k) != q.Coeff(k) {
			return false
		}
	}
	return true
}

func (p Polynomial) String() string {
	if len(p.cs) == 0 {
		return "0"
	}

	sb := &strings.Builder{}
	for k, c := range p.cs {
		if k > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		switch k {
		case 0:
		case 1:
			sb.WriteString("*x")
		default:
			sb.WriteString("*x^")
			sb.WriteString(strconv.Itoa(k))
		}
	}
	return sb.String()
}
