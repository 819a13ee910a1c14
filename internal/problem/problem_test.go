package problem_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/integ/adaptive"
	"github.com/katalvlaran/integ/core"
	"github.com/katalvlaran/integ/functions"
	"github.com/katalvlaran/integ/gausslegendre"
	"github.com/katalvlaran/integ/internal/problem"
	"github.com/katalvlaran/integ/nested"
)

func TestBuiltinSuite_ExactValues(t *testing.T) {
	s := problem.BuiltinSuite()
	require.Equal(t, problem.BuiltinName, s.Name)
	require.Len(t, s.Problems, 4)
	require.Len(t, s.Problems2D, 4)
	assert.Equal(t, 8, s.Len())

	p := core.NewParams(core.WithTolerance(1e-12), core.WithRelTolerance(0))
	for _, pr := range s.Problems {
		t.Run(pr.Label, func(t *testing.T) {
			require.True(t, pr.HasExact)
			res, err := adaptive.Default().Solve(pr.F, pr.Interval, p)
			require.NoError(t, err)
			assert.InDelta(t, pr.Exact, res.Value, 1e-9)
		})
	}

	gl := gausslegendre.MustNew(12)
	n := nested.New(gl, gl)
	for _, pr := range s.Problems2D {
		t.Run(pr.Label, func(t *testing.T) {
			require.True(t, pr.HasExact)
			res, err := n.Integrate(pr.F, pr.Domain, core.Params{})
			require.NoError(t, err)
			assert.InDelta(t, pr.Exact, res.Value, 1e-10)
		})
	}
}

func TestLoad_Testdata(t *testing.T) {
	s, err := problem.Load(filepath.Join("testdata", "tails.yaml"), nil)
	require.NoError(t, err)
	assert.Equal(t, "tails", s.Name)
	require.Len(t, s.Problems, 3)
	require.Len(t, s.Problems2D, 1)

	tail := s.Problems[0]
	assert.Equal(t, "x^-2 on [1, inf)", tail.Label)
	assert.Equal(t, 1.0, tail.Interval.A)
	assert.True(t, math.IsInf(tail.Interval.B, 1))
	assert.True(t, tail.HasExact)

	sub := s.Problems[1]
	assert.Equal(t, "x^(-1/2)", sub.Label)
	assert.Equal(t, core.MustInterval(0, 2), sub.Interval)
	assert.IsType(t, functions.T2Transform{}, sub.F)
	assert.Equal(t, 2.0, sub.F.At(0))

	poly := s.Problems[2]
	assert.Equal(t, 4.0, poly.F.At(1))

	tri := s.Problems2D[0]
	assert.False(t, tri.Domain.IsRect())
	iv, err := tri.Domain.InnerInterval(0.5)
	require.NoError(t, err)
	assert.Equal(t, core.MustInterval(0, 0.5), iv)

	for _, pr := range s.Problems {
		res, err := adaptive.Default().Solve(pr.F, pr.Interval, core.DefaultParams())
		require.NoError(t, err, pr.Label)
		assert.InDelta(t, pr.Exact, res.Value, 1e-6, pr.Label)
	}
	gl := gausslegendre.MustNew(4)
	res, err := nested.New(gl, gl).Integrate(tri.F, tri.Domain, core.Params{})
	require.NoError(t, err)
	assert.InDelta(t, tri.Exact, res.Value, 1e-12)
}

func TestLoad_NameFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quick.yml")
	require.NoError(t, os.WriteFile(path, []byte("problems:\n  - function: log_x\n    interval: [1, 2]\n"), 0o600))

	s, err := problem.Load(path, functions.NewRegistry())
	require.NoError(t, err)
	assert.Equal(t, "quick", s.Name)
	assert.Equal(t, "log(x)", s.Problems[0].Label)
	assert.False(t, s.Problems[0].HasExact)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := problem.Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Rect(t *testing.T) {
	s, err := problem.Parse([]byte(`
problems_2d:
  - function: exp_xy
    domain: {x: [0, 1], y: [2, 3]}
`), nil)
	require.NoError(t, err)
	require.Len(t, s.Problems2D, 1)
	assert.True(t, s.Problems2D[0].Domain.IsRect())
	assert.Equal(t, "exp(-x+y)", s.Problems2D[0].Label)
}

func TestParse_OuterAxisY(t *testing.T) {
	s, err := problem.Parse([]byte(`
problems_2d:
  - function: product_xy
    domain: {outer_axis: y, outer: [0, 2], inner_lo: [0], inner_hi: [1]}
`), nil)
	require.NoError(t, err)
	assert.Equal(t, core.AxisY, s.Problems2D[0].Domain.OuterAxis())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", problem.ErrBadProblem},
		{"unknown function", "problems:\n  - function: nope\n    interval: [0, 1]\n", functions.ErrUnknownFunction},
		{"missing arg", "problems:\n  - function: power\n    interval: [0, 1]\n", functions.ErrBadArgument},
		{"short interval", "problems:\n  - function: log_x\n    interval: [1]\n", problem.ErrBadProblem},
		{"crossed interval", "problems:\n  - function: log_x\n    interval: [2, 1]\n", core.ErrBadInterval},
		{"t2 off zero", "problems:\n  - function: log_x\n    interval: [1, 2]\n    t2: {at_zero: 0}\n", problem.ErrBadProblem},
		{"no domain", "problems_2d:\n  - function: exp_xy\n    domain: {outer: [0, 1]}\n", problem.ErrBadProblem},
		{"bad axis", "problems_2d:\n  - function: exp_xy\n    domain: {outer_axis: z, outer: [0, 1], inner_lo: [0], inner_hi: [1]}\n", problem.ErrBadProblem},
		{"bad rect", "problems_2d:\n  - function: exp_xy\n    domain: {x: [0, 1]}\n", problem.ErrBadProblem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := problem.Parse([]byte(tt.doc), nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := problem.Parse([]byte("problems:\n  - function: log_x\n    interval: [1, 2]\n    bogus: 1\n"), nil)
	assert.Error(t, err)
}

func TestLoad_ShippedTailsSuite(t *testing.T) {
	s, err := problem.Load(filepath.Join("..", "..", "suites", "tails.yaml"), nil)
	require.NoError(t, err)
	require.Len(t, s.Problems, 4)
	require.Len(t, s.Problems2D, 2)

	for _, pr := range s.Problems {
		res, err := adaptive.Default().Solve(pr.F, pr.Interval, core.DefaultParams())
		require.NoError(t, err, pr.Label)
		assert.InDelta(t, pr.Exact, res.Value, 1e-7, pr.Label)
	}
	gl := gausslegendre.MustNew(8)
	for _, pr := range s.Problems2D {
		res, err := nested.New(gl, gl).Integrate(pr.F, pr.Domain, core.Params{})
		require.NoError(t, err, pr.Label)
		assert.InDelta(t, pr.Exact, res.Value, 1e-12, pr.Label)
	}
}
