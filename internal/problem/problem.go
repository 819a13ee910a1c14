// Package problem describes benchmark problems: an integrand, its region
// and, when known, the exact value. Suites come from BuiltinSuite or from
// YAML files whose function ids resolve through functions.Registry.
package problem

import (
	"errors"
	"math"

	"github.com/katalvlaran/integ/core"
	"github.com/katalvlaran/integ/functions"
)

// ErrBadProblem indicates a suite entry that cannot be turned into a Problem.
var ErrBadProblem = errors.New("problem: invalid problem definition")

// Problem is a 1D integration task.
type Problem struct {
	Label    string
	F        core.Function
	Interval core.Interval
	Exact    float64
	HasExact bool
}

// Problem2D is a 2D integration task.
type Problem2D struct {
	Label    string
	F        core.Function2D
	Domain   core.Domain2D
	Exact    float64
	HasExact bool
}

// Suite is a named set of problems.
type Suite struct {
	Name       string
	Problems   []Problem
	Problems2D []Problem2D
}

// Len returns the total number of problems.
func (s Suite) Len() int { return len(s.Problems) + len(s.Problems2D) }

// BuiltinName is the name of BuiltinSuite.
const BuiltinName = "builtin"

// BuiltinSuite returns the demo problem set: four 1D integrals over [0, 1]
// (two of them singular at 0 and rewritten with x = t²) and four 2D
// integrals over [0, 1] × [2, 3].
func BuiltinSuite() Suite {
	unit := core.MustInterval(0, 1)
	rect, _ := core.Rect(unit, core.MustInterval(2, 3))

	return Suite{
		Name: BuiltinName,
		Problems: []Problem{
			{Label: "x^10", F: functions.Power{N: 10}, Interval: unit, Exact: 1.0 / 11, HasExact: true},
			{Label: "x^2 cos(x)", F: functions.PolyX2Cos{}, Interval: unit, Exact: 2*math.Cos(1) - math.Sin(1), HasExact: true},
			{
				Label:    "x^(-1/2) (x=t^2)",
				F:        functions.T2Transform{Base: functions.InvSqrt{}, AtZero: 2, Label: "x^(-1/2) (x=t^2)"},
				Interval: unit, Exact: 2, HasExact: true,
			},
			{
				Label:    "log(x) (x=t^2)",
				F:        functions.T2Transform{Base: functions.LogX{}, AtZero: 0, Label: "log(x) (x=t^2)"},
				Interval: unit, Exact: -1, HasExact: true,
			},
		},
		Problems2D: []Problem2D{
			{Label: "x*y", F: functions.ProductXY2D{}, Domain: rect, Exact: 1.25, HasExact: true},
			{Label: "x^2+y^2", F: functions.SumSquaresXY2D{}, Domain: rect, Exact: 20.0 / 3, HasExact: true},
			{
				Label: "sin(x+y)", F: functions.SinXY2D{}, Domain: rect,
				Exact: -math.Sin(4) + 2*math.Sin(3) - math.Sin(2), HasExact: true,
			},
			{
				Label: "exp(-x+y)", F: functions.ExpXY2D{}, Domain: rect,
				Exact: math.Exp(3) - 2*math.Exp(2) + math.E, HasExact: true,
			},
		},
	}
}
