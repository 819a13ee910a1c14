package nested_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/integ/adaptive"
	"github.com/katalvlaran/integ/core"
	"github.com/katalvlaran/integ/functions"
	"github.com/katalvlaran/integ/gausslegendre"
	"github.com/katalvlaran/integ/montecarlo"
	"github.com/katalvlaran/integ/nested"
	"github.com/katalvlaran/integ/simpson"
	"github.com/katalvlaran/integ/trapezoid"
)

func solvers() []core.Solver {
	return []core.Solver{
		trapezoid.New(),
		simpson.New(),
		gausslegendre.Default(),
		montecarlo.New(),
		adaptive.Default(),
	}
}

func unitSquare(t *testing.T) core.Domain2D {
	t.Helper()
	d, err := core.Rect(core.MustInterval(0, 1), core.MustInterval(0, 1))
	require.NoError(t, err)

	return d
}

// TestNested_UnitSquareArea: every pairing integrates 1 over the unit square.
func TestNested_UnitSquareArea(t *testing.T) {
	one := core.Func2D(func(float64, float64) float64 { return 1 })
	p := core.NewParams(core.WithSubdivisions(10), core.WithSamples(50), core.WithSeed(1))
	d := unitSquare(t)

	for _, outer := range solvers() {
		for _, inner := range solvers() {
			n := nested.New(outer, inner)
			t.Run(n.Name(), func(t *testing.T) {
				res, err := n.Integrate(one, d, p)
				require.NoError(t, err)
				assert.InDelta(t, 1.0, res.Value, 1e-12)
				assert.Positive(t, res.Evaluations)
				assert.Equal(t, core.Converged, res.Status)
			})
		}
	}
}

func TestNested_EvaluationComposition(t *testing.T) {
	f := functions.SumSquaresXY2D{}
	d := unitSquare(t)
	p := core.NewParams(core.WithSubdivisions(10))

	res, err := nested.New(trapezoid.New(), trapezoid.New()).Integrate(f, d, p)
	require.NoError(t, err)
	assert.Equal(t, 11*11, res.Evaluations)

	res, err = nested.New(gausslegendre.Default(), simpson.New()).Integrate(f, d, p)
	require.NoError(t, err)
	assert.Equal(t, 5*11, res.Evaluations)

	// adaptive inner: first panel converges, 30 evaluations per outer node
	one := core.Func2D(func(float64, float64) float64 { return 1 })
	res, err = nested.New(gausslegendre.Default(), adaptive.Default()).Integrate(one, d, p)
	require.NoError(t, err)
	assert.Equal(t, 5*3*adaptive.DefaultRule, res.Evaluations)
}

func TestNested_ErrorEstimateComposition(t *testing.T) {
	f := functions.SumSquaresXY2D{}
	d, err := core.Rect(core.MustInterval(0, 2), core.MustInterval(0, 1))
	require.NoError(t, err)
	p := core.NewParams(core.WithSubdivisions(8))

	res, err := nested.New(trapezoid.New(), trapezoid.New()).Integrate(f, d, p)
	require.NoError(t, err)
	require.True(t, res.HasErrorEstimate)
	// trapezoid bounds are exact for quadratics: outer 2·h²/6·… plus |X|·inner
	hx, hy := 2.0/8, 1.0/8
	outer := 2 * (2 * hx * hx) / 12
	inner := 1 * (2 * hy * hy) / 12
	assert.InEpsilon(t, outer+2*inner, res.ErrorEstimate, 1e-6)

	res, err = nested.New(trapezoid.New(), gausslegendre.Default()).Integrate(f, d, p)
	require.NoError(t, err)
	assert.False(t, res.HasErrorEstimate)
}

func TestNested_DemoProblems(t *testing.T) {
	d, err := core.Rect(core.MustInterval(0, 1), core.MustInterval(2, 3))
	require.NoError(t, err)
	cases := []struct {
		f     core.Function2D
		exact float64
	}{
		{functions.ProductXY2D{}, 1.25},
		{functions.SumSquaresXY2D{}, 20.0 / 3},
		{functions.SinXY2D{}, -math.Sin(4) + 2*math.Sin(3) - math.Sin(2)},
		{functions.ExpXY2D{}, math.Exp(3) - 2*math.Exp(2) + math.E},
	}
	gl := gausslegendre.Default()
	for _, tc := range cases {
		res, err := nested.New(gl, gl).Integrate(tc.f, d, core.DefaultParams())
		require.NoError(t, err)
		assert.InDelta(t, tc.exact, res.Value, 1e-9, "%v", tc.f)
	}
}

func TestNested_NormalDomains(t *testing.T) {
	gl := gausslegendre.Default()
	p := core.DefaultParams()

	// triangle 0 ≤ y ≤ x ≤ 1 has area 1/2
	tri, err := core.NewNormalDomain(core.MustInterval(0, 1), core.ConstBound(0), func(x float64) float64 { return x })
	require.NoError(t, err)
	one := core.Func2D(func(float64, float64) float64 { return 1 })
	res, err := nested.New(gl, gl).Integrate(one, tri, p)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, res.Value, 1e-14)

	// outer y: ∫_0^1 ∫_0^y x dx dy = 1/6; f must receive (x, y) in order
	ty, err := core.NewNormalDomainY(core.MustInterval(0, 1), core.ConstBound(0), func(y float64) float64 { return y })
	require.NoError(t, err)
	fx := core.Func2D(func(x, y float64) float64 {
		assert.LessOrEqual(t, x, y)
		return x
	})
	res, err = nested.New(gl, gl).Integrate(fx, ty, p)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/6, res.Value, 1e-14)
}

func TestNested_InnerFailuresAbort(t *testing.T) {
	p := core.NewParams(core.WithSubdivisions(4))
	one := core.Func2D(func(float64, float64) float64 { return 1 })

	crossed, err := core.NewNormalDomain(core.MustInterval(0, 1), core.ConstBound(1), func(x float64) float64 { return x })
	require.NoError(t, err)
	res, err := nested.New(trapezoid.New(), trapezoid.New()).Integrate(one, crossed, p)
	require.ErrorIs(t, err, core.ErrBadDomain)
	assert.True(t, strings.Contains(err.Error(), "inner integral at x=0"), err.Error())
	assert.Zero(t, res.Evaluations)

	singular := core.Func2D(func(x, y float64) float64 { return 1 / math.Sqrt(y) })
	res, err = nested.New(trapezoid.New(), trapezoid.New()).Integrate(singular, unitSquare(t), p)
	require.ErrorIs(t, err, core.ErrDomainEvaluation)
	assert.Equal(t, 1, res.Evaluations)
}

func TestNested_InnerNonConvergence(t *testing.T) {
	singular := core.Func2D(func(x, y float64) float64 { return 1 / math.Sqrt(y) })
	tight := nested.New(gausslegendre.Default(), adaptive.Default(), nested.WithInnerParams(core.NewParams(core.WithSubdivisions(1))))

	res, err := tight.Integrate(singular, unitSquare(t), core.DefaultParams())
	require.ErrorIs(t, err, core.ErrNonConvergence)
	assert.Contains(t, err.Error(), "inner integral at x=")
	assert.Equal(t, core.BudgetExhausted, res.Status)
	assert.False(t, res.Converged())
	// every outer node still gets the inner best estimate
	assert.Equal(t, gausslegendre.DefaultOrder*3*adaptive.DefaultRule, res.Evaluations)
	assert.InDelta(t, 2.0, res.Value, 0.1)
}

func TestNested_OuterNonConvergence(t *testing.T) {
	f := core.Func2D(func(x, y float64) float64 { return 1 / math.Sqrt(x) })
	n := nested.New(adaptive.Default(), gausslegendre.Default())
	res, err := n.Integrate(f, unitSquare(t), core.NewParams(core.WithSubdivisions(1)))
	require.ErrorIs(t, err, core.ErrNonConvergence)
	assert.Equal(t, core.BudgetExhausted, res.Status)
	assert.InDelta(t, 2.0, res.Value, 0.1)
	assert.Equal(t, 3*adaptive.DefaultRule*5, res.Evaluations)
}

func TestNested_InvalidConfiguration(t *testing.T) {
	calls := 0
	spy := core.Func2D(func(float64, float64) float64 { calls++; return 1 })
	gl := gausslegendre.Default()

	_, err := nested.New(gl, gl).Integrate(nil, unitSquare(t), core.DefaultParams())
	assert.ErrorIs(t, err, core.ErrNilFunction)

	_, err = nested.New(nil, gl).Integrate(spy, unitSquare(t), core.DefaultParams())
	assert.ErrorIs(t, err, nested.ErrNilSolver)
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)

	_, err = nested.New(gl, gl).Integrate(spy, core.Domain2D{}, core.DefaultParams())
	assert.ErrorIs(t, err, core.ErrBadDomain)

	res, err := nested.New(trapezoid.New(), trapezoid.New()).Integrate(spy, unitSquare(t), core.NewParams(core.WithSubdivisions(0)))
	assert.ErrorIs(t, err, core.ErrBadSubdivisions)
	assert.Zero(t, res.Evaluations)

	// invalid inner params surface before f is ever called
	bad := nested.New(gl, trapezoid.New(), nested.WithInnerParams(core.NewParams(core.WithSubdivisions(-1))))
	_, err = bad.Integrate(spy, unitSquare(t), core.DefaultParams())
	assert.ErrorIs(t, err, core.ErrBadSubdivisions)

	assert.Zero(t, calls)
	assert.Equal(t, "Nested(GaussLegendre(order=5), <nil>)", nested.New(gl, nil).Name())
}
