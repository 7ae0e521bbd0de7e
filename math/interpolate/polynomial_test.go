package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolynomialEval(t *testing.T) {
	table := []struct {
		cs   []float64
		x, y float64
	}{
		{nil, 3, 0},
		{[]float64{7}, 100, 7},
		{[]float64{1, 2}, 3, 7},
		{[]float64{1, 0, 1}, -2, 5},
		{[]float64{0, 1.5, 0, -0.5}, 0.5, 0.6875},
		{[]float64{-1, 2, -3, 4}, 2, -1 + 4 - 12 + 32},
	}

	for i, test := range table {
		p := NewPolynomial(test.cs...)
		if y := p.Eval(test.x); y != test.y {
			t.Errorf("%d) Expected p(%g) = %g. Got %g.", i+1, test.x, test.y, y)
		}
	}
}

func TestPolynomialDiff(t *testing.T) {
	p := NewPolynomial(-1, 2, -3, 4)

	assert.Equal(t, []float64{2, -6, 12}, p.Diff().Coeffs())
	assert.Equal(t, []float64{-6, 24}, p.Diff().Diff().Coeffs())
	assert.Equal(t, []float64{24}, p.Diff().Diff().Diff().Coeffs())
	assert.Equal(t, -1, p.Diff().Diff().Diff().Diff().Degree())
	assert.Equal(t, 0.0, p.Diff().Diff().Diff().Diff().Eval(10))
}

func TestPolynomialImmutable(t *testing.T) {
	cs := []float64{1, 2, 3}
	p := NewPolynomial(cs...)
	cs[0] = 100
	assert.Equal(t, 1.0, p.Coeff(0), "constructor must copy")

	out := p.Coeffs()
	out[1] = 100
	assert.Equal(t, 2.0, p.Coeff(1), "Coeffs must copy")
}

func TestPolynomialCoeff(t *testing.T) {
	p := NewPolynomial(1, 2)
	assert.Equal(t, 1, p.Degree())
	assert.Equal(t, 0.0, p.Coeff(-1))
	assert.Equal(t, 2.0, p.Coeff(1))
	assert.Equal(t, 0.0, p.Coeff(3))
}

func TestPolynomialEqual(t *testing.T) {
	assert.True(t, NewPolynomial(1, 2).Equal(NewPolynomial(1, 2)))
	assert.True(t, NewPolynomial(1, 2).Equal(NewPolynomial(1, 2, 0, 0)))
	assert.True(t, NewPolynomial().Equal(NewPolynomial(0)))
	assert.False(t, NewPolynomial(1, 2).Equal(NewPolynomial(1, 2, 3)))
	assert.False(t, NewPolynomial(1, 2).Equal(NewPolynomial(2, 1)))
}

func TestPolynomialString(t *testing.T) {
	assert.Equal(t, "0", NewPolynomial().String())
	assert.Equal(t, "1 + -2*x + 0.5*x^2", NewPolynomial(1, -2, 0.5).String())
}

func BenchmarkPolynomialEval(b *testing.B) {
	p := NewPolynomial(1, 2, 3, 4)
	sum := 0.0
	for i := 0; i < b.N; i++ {
		sum += p.Eval(0.5)
	}
	_ = sum
}
