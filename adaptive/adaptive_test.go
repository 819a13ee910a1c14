// SPDX-License-Identifier: MIT
package adaptive_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/integ/adaptive"
	"github.com/katalvlaran/integ/core"
	"github.com/katalvlaran/integ/functions"
)

func TestAdaptive_Defaults(t *testing.T) {
	o := adaptive.Default().Options()
	assert.Equal(t, adaptive.DefaultRule, o.Rule)
	assert.Equal(t, adaptive.MaxPanels, o.MaxPanels)
	assert.Equal(t, "Adaptive(rule=10)", adaptive.Default().Name())
	assert.Equal(t, "Adaptive(rule=10)", adaptive.Solver{}.Name())
	assert.Equal(t, "Adaptive(rule=4)", adaptive.New(adaptive.WithRule(4)).Name())
}

func TestAdaptive_ConstantConvergesOnFirstPanel(t *testing.T) {
	res, err := adaptive.Default().Solve(functions.Constant{C: 1}, core.MustInterval(0, 2), core.DefaultParams())
	require.NoError(t, err)
	assert.InDelta(t, 2.0, res.Value, 1e-13)
	assert.Equal(t, 3*adaptive.DefaultRule, res.Evaluations)
	assert.GreaterOrEqual(t, res.Evaluations, adaptive.DefaultRule)
	assert.True(t, res.HasErrorEstimate)
	assert.Equal(t, core.Converged, res.Status)
}

func TestAdaptive_ZeroValueSolver(t *testing.T) {
	res, err := adaptive.Solver{}.Solve(functions.PolyX2Cos{}, core.MustInterval(0, 1), core.DefaultParams())
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Cos(1)-math.Sin(1), res.Value, 1e-12)
}

func TestAdaptive_EndpointSingularities(t *testing.T) {
	cases := []struct {
		name  string
		f     core.Function
		exact float64
	}{
		{"inv sqrt", functions.InvSqrt{}, 2},
		{"log", functions.LogX{}, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := adaptive.Default().Solve(tc.f, core.MustInterval(0, 1), core.DefaultParams())
			require.NoError(t, err)
			assert.InDelta(t, tc.exact, res.Value, 1e-6)
			assert.LessOrEqual(t, res.ErrorEstimate, 1e-7)
			assert.Equal(t, core.Converged, res.Status)
		})
	}
}

func TestAdaptive_UnboundedIntervals(t *testing.T) {
	inf := math.Inf(1)
	cases := []struct {
		name  string
		f     core.Function
		iv    core.Interval
		exact float64
	}{
		{"right half line", core.Func(func(x float64) float64 { return math.Exp(-x) }), core.Interval{A: 0, B: inf}, 1},
		{"left half line", core.Func(math.Exp), core.Interval{A: -inf, B: 0}, 1},
		{"real line", core.Func(func(x float64) float64 { return 1 / (1 + x*x) }), core.Interval{A: -inf, B: inf}, math.Pi},
		{"gaussian", core.Func(func(x float64) float64 { return math.Exp(-x * x) }), core.Interval{A: -inf, B: inf}, math.Sqrt(math.Pi)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := adaptive.Default().Solve(tc.f, tc.iv, core.DefaultParams())
			require.NoError(t, err)
			assert.InDelta(t, tc.exact, res.Value, 1e-7)
		})
	}
}

func TestAdaptive_TinyBudgetDoesNotConverge(t *testing.T) {
	for _, n := range []int{1, 2, 4} {
		res, err := adaptive.Default().Solve(functions.InvSqrt{}, core.MustInterval(0, 1), core.NewParams(core.WithSubdivisions(n)))
		require.ErrorIs(t, err, core.ErrNonConvergence, "n=%d", n)
		assert.NotErrorIs(t, err, core.ErrInvalidConfiguration)
		assert.Equal(t, core.BudgetExhausted, res.Status)
		assert.False(t, res.Converged())
		assert.True(t, res.HasErrorEstimate)
		assert.Greater(t, res.ErrorEstimate, 0.0)
		assert.InDelta(t, 2.0, res.Value, 0.5)
		// 3m for the first panel, 4m per bisection
		assert.Equal(t, 3*adaptive.DefaultRule+4*adaptive.DefaultRule*(n-1), res.Evaluations)
	}
}

func TestAdaptive_MaxPanelsCapsSubdivisions(t *testing.T) {
	s := adaptive.New(adaptive.WithMaxPanels(3))
	res, err := s.Solve(functions.LogX{}, core.MustInterval(0, 1), core.DefaultParams())
	require.ErrorIs(t, err, core.ErrNonConvergence)
	assert.Equal(t, 3*adaptive.DefaultRule+2*4*adaptive.DefaultRule, res.Evaluations)
}

func TestAdaptive_RelativeToleranceOnly(t *testing.T) {
	p := core.NewParams(core.WithTolerance(0), core.WithRelTolerance(1e-10))
	res, err := adaptive.Default().Solve(functions.Power{N: 10}, core.MustInterval(0, 1), p)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.0/11, res.Value, 1e-12)
}

func TestAdaptive_EvaluationFailure(t *testing.T) {
	f := core.Func(func(x float64) float64 {
		if x < 0.5 {
			return math.NaN()
		}
		return 1
	})
	res, err := adaptive.Default().Solve(f, core.MustInterval(0, 1), core.DefaultParams())
	require.ErrorIs(t, err, core.ErrDomainEvaluation)
	assert.Positive(t, res.Evaluations)
}

func TestAdaptive_InvalidConfiguration(t *testing.T) {
	calls := 0
	spy := core.Func(func(float64) float64 { calls++; return 1 })
	iv := core.MustInterval(0, 1)
	inf := math.Inf(1)

	cases := []struct {
		name string
		s    adaptive.Solver
		f    core.Function
		iv   core.Interval
		p    core.Params
		want error
	}{
		{"no tolerance", adaptive.Default(), spy, iv, core.NewParams(core.WithTolerance(0), core.WithRelTolerance(0)), core.ErrBadTolerance},
		{"negative tolerance", adaptive.Default(), spy, iv, core.NewParams(core.WithTolerance(-1)), core.ErrBadTolerance},
		{"zero subdivisions", adaptive.Default(), spy, iv, core.NewParams(core.WithSubdivisions(0)), core.ErrBadSubdivisions},
		{"bad rule", adaptive.New(adaptive.WithRule(0)), spy, iv, core.DefaultParams(), core.ErrBadOrder},
		{"bad panel cap", adaptive.New(adaptive.WithMaxPanels(0)), spy, iv, core.DefaultParams(), adaptive.ErrBadMaxPanels},
		{"reversed", adaptive.Default(), spy, core.Interval{A: 1, B: 0}, core.DefaultParams(), core.ErrBadInterval},
		{"both at +inf", adaptive.Default(), spy, core.Interval{A: inf, B: inf}, core.DefaultParams(), core.ErrBadInterval},
		{"nil function", adaptive.Default(), nil, iv, core.DefaultParams(), core.ErrNilFunction},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := tc.s.Solve(tc.f, tc.iv, tc.p)
			require.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
			assert.Zero(t, res.Evaluations)
		})
	}
	assert.Zero(t, calls)
}
