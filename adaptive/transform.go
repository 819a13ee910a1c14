package adaptive

import (
	"fmt"
	"math"

	"github.com/katalvlaran/integ/core"
)

// mapping sends t from the working interval to x and returns dx/dt.
type mapping func(t float64) (x, jac float64)

// substitute maps an unbounded interval onto a finite working interval:
//
//	[a, +∞)  ⇐ t ∈ [0, 1]:  x = a + t/(1−t),   dx = dt/(1−t)²
//	(−∞, b]  ⇐ t ∈ [0, 1]:  x = b − (1−t)/t,   dx = dt/t²
//	(−∞, +∞) ⇐ t ∈ [−1, 1]: x = t/(1−t²),      dx = (1+t²)/(1−t²)² dt
//
// Finite intervals are returned unchanged with a nil mapping.
func substitute(iv core.Interval) (core.Interval, mapping, error) {
	lowInf, highInf := math.IsInf(iv.A, -1), math.IsInf(iv.B, 1)
	if math.IsInf(iv.A, 1) || math.IsInf(iv.B, -1) {
		return core.Interval{}, nil, fmt.Errorf("%v: %w", iv, core.ErrBadInterval)
	}

	switch {
	case !lowInf && !highInf:
		return iv, nil, nil

	case lowInf && highInf:
		return core.Interval{A: -1, B: 1}, func(t float64) (float64, float64) {
			d := 1 - t*t
			return t / d, (1 + t*t) / (d * d)
		}, nil

	case highInf:
		a := iv.A
		return core.Interval{A: 0, B: 1}, func(t float64) (float64, float64) {
			d := 1 - t
			return a + t/d, 1 / (d * d)
		}, nil

	default: // lowInf
		b := iv.B
		return core.Interval{A: 0, B: 1}, func(t float64) (float64, float64) {
			return b - (1-t)/t, 1 / (t * t)
		}, nil
	}
}

// newSampler wraps ev with the mapping. Points that land on the open end of
// the working interval contribute zero.
func newSampler(ev *core.Evaluator, m mapping) sampler {
	if m == nil {
		return ev.At
	}

	return func(t float64) (float64, error) {
		x, jac := m(t)
		if math.IsInf(x, 0) || math.IsInf(jac, 0) {
			return 0, nil
		}
		y, err := ev.At(x)
		if err != nil {
			return y, err
		}
		v := y * jac
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return v, &core.EvaluationError{X: x, Value: v, Evaluations: ev.Count()}
		}

		return v, nil
	}
}
