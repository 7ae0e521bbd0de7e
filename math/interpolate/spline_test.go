package interpolate

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const testEps = 1e-9

func TestSplineWorkedExample(t *testing.T) {
	a, err := New([]Sample{{0, 0}, {1, 1}, {2, 0}}, Cubic)
	require.NoError(t, err)

	cs, err := splineCurvatures(a.grid)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, -3, 0}, cs)

	for _, s := range []Sample{{0, 0}, {1, 1}, {2, 0}} {
		y, err := a.Eval(s.X)
		require.NoError(t, err)
		assert.InDelta(t, s.Y, y, testEps, "x = %g", s.X)
	}

	// On [0, 1] the spline is 1.5x - 0.5x^3, and on [1, 2] its mirror image.
	p, err := a.Polynomial(0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1.5, 0, -0.5}, p.Coeffs(), testEps)

	y, err := a.Eval(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.6875, y, testEps)

	y, err = a.Eval(1.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.6875, y, testEps)

	y2, err := a.Diff(1, 2)
	require.NoError(t, err)
	assert.InDelta(t, -3, y2, testEps)
}

func TestSplineNodeExactness(t *testing.T) {
	gen := rand.New(rand.NewSource(4))

	for _, kind := range []Kind{Linear, Cubic} {
		for trial := 0; trial < 10; trial++ {
			ss := randomGrid(gen, 2+gen.Intn(19), 10*gen.Float64()-5)
			a, err := New(ss, kind)
			require.NoError(t, err)

			for _, s := range ss {
				y, err := a.Eval(s.X)
				require.NoError(t, err)
				require.InDelta(t, s.Y, y, 1e-7, "%s: x = %g", kind, s.X)
			}
		}
	}
}

func TestSplineSmoothness(t *testing.T) {
	gen := rand.New(rand.NewSource(5))

	for trial := 0; trial < 10; trial++ {
		ss := randomGrid(gen, 3+gen.Intn(18), 10*gen.Float64()-5)
		g, err := NewTrustedGrid(ss)
		require.NoError(t, err)
		polys, err := BuildCubicSpline(g)
		require.NoError(t, err)
		require.Len(t, polys, len(ss)-1)

		for i := 1; i < len(ss)-1; i++ {
			x := ss[i].X
			left, right := polys[i-1], polys[i]
			for order := 0; order <= 2; order++ {
				require.InDelta(t, left.Eval(x), right.Eval(x), 1e-7,
					"node %d, derivative %d", i, order)
				left, right = left.Diff(), right.Diff()
			}
		}

		// Natural boundary conditions.
		first, last := polys[0], polys[len(polys)-1]
		require.InDelta(t, 0, first.Diff().Diff().Eval(ss[0].X), 1e-7)
		require.InDelta(t, 0, last.Diff().Diff().Eval(ss[len(ss)-1].X), 1e-7)
	}
}

func TestSplineReproducesLines(t *testing.T) {
	ss := []Sample{{-2, -3}, {0, 1}, {0.5, 2}, {3, 7}, {3.25, 7.5}}
	a, err := New(ss, Cubic)
	require.NoError(t, err)

	for x := -2.0; x <= 3.25; x += 0.125 {
		y, err := a.Eval(x)
		require.NoError(t, err)
		assert.InDelta(t, 2*x+1, y, 1e-9, "x = %g", x)
	}
}

func TestSplineConditioning(t *testing.T) {
	ys := []float64{1, 2, 0, 5}
	far := 1e6

	table := []struct {
		x0, shift float64
	}{
		{0, 0}, {-50, 0}, {100, 0}, {far, far},
	}

	for i, test := range table {
		ss := make([]Sample, len(ys))
		for j, y := range ys {
			ss[j] = Sample{test.x0 + float64(j) - test.shift, y}
		}
		a, err := New(ss, Cubic)
		require.NoError(t, err)

		for _, s := range ss {
			y, err := a.Eval(s.X)
			require.NoError(t, err)
			if math.Abs(y-s.Y) > 1e-6 {
				t.Errorf("%d) Expected f(%g) = %g. Got %g.", i+1, s.X, s.Y, y)
			}
		}
	}
}

func TestSplineTwoSamples(t *testing.T) {
	g, err := NewGrid([]Sample{{1, 2}, {3, 6}})
	require.NoError(t, err)
	polys, err := BuildCubicSpline(g)
	require.NoError(t, err)
	require.Len(t, polys, 1)

	assert.InDeltaSlice(t, []float64{0, 2, 0, 0}, polys[0].Coeffs(), testEps)
}

func TestBuildersInsufficientData(t *testing.T) {
	g, err := NewGrid([]Sample{{1, 2}})
	require.NoError(t, err)

	for _, build := range []Builder{BuildLinear, BuildCubicSpline} {
		_, err := build(g)
		var short *InsufficientDataError
		if assert.ErrorAs(t, err, &short) {
			assert.Equal(t, 2, short.Need)
			assert.Equal(t, 1, short.Got)
		}
	}
}

func TestTriDiag(t *testing.T) {
	us, err := TriDiag(
		[]float64{0, 1, 1},
		[]float64{4, 4, 4},
		[]float64{1, 1, 0},
		[]float64{5, 6, 5},
	)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1, 1}, us, testEps)

	us, err = TriDiag(nil, nil, nil, nil)
	assert.NoError(t, err)
	assert.Empty(t, us)

	_, err = TriDiag([]float64{0}, []float64{1, 2}, []float64{0}, []float64{1})
	assert.Error(t, err)

	_, err = TriDiag([]float64{0, 1}, []float64{0, 1}, []float64{1, 0}, []float64{1, 1})
	assert.True(t, errors.Is(err, ErrSingular))
}

// TestTriDiagDense checks TriDiag against a dense LU solve of the same
// system.
func TestTriDiagDense(t *testing.T) {
	gen := rand.New(rand.NewSource(6))

	for trial := 0; trial < 20; trial++ {
		n := 1 + gen.Intn(40)
		as, bs := make([]float64, n), make([]float64, n)
		cs, rs := make([]float64, n), make([]float64, n)
		dense := mat.NewDense(n, n, nil)

		for i := 0; i < n; i++ {
			if i > 0 {
				as[i] = gen.Float64()*2 - 1
				dense.Set(i, i-1, as[i])
			}
			if i < n-1 {
				cs[i] = gen.Float64()*2 - 1
				dense.Set(i, i+1, cs[i])
			}
			bs[i] = 2 + math.Abs(as[i]) + math.Abs(cs[i]) + gen.Float64()
			dense.Set(i, i, bs[i])
			rs[i] = gen.Float64()*20 - 10
		}

		us, err := TriDiag(as, bs, cs, rs)
		require.NoError(t, err)

		var want mat.VecDense
		require.NoError(t, want.SolveVec(dense, mat.NewVecDense(n, rs)))
		for i := 0; i < n; i++ {
			require.InDelta(t, want.AtVec(i), us[i], 1e-9, "trial %d, u%d", trial, i)
		}
	}
}

func BenchmarkBuildCubicSpline1024(b *testing.B) {
	gen := rand.New(rand.NewSource(7))
	g, _ := NewTrustedGrid(randomGrid(gen, 1024, 0))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BuildCubicSpline(g)
	}
}
