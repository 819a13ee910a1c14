package core

import "math"

// Evaluator wraps a Function for one Solve call: it counts evaluations and
// rejects non-finite samples.
//
// An Evaluator is local to a single solve and must not be shared between
// goroutines.
type Evaluator struct {
	f Function
	n int
}

// NewEvaluator returns an Evaluator over f with a zero count.
func NewEvaluator(f Function) *Evaluator {
	return &Evaluator{f: f}
}

// At evaluates f(x). A NaN or ±Inf value is returned together with an
// *EvaluationError; the evaluation still counts.
func (e *Evaluator) At(x float64) (float64, error) {
	y := e.f.At(x)
	e.n++
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return y, &EvaluationError{X: x, Value: y, Evaluations: e.n}
	}

	return y, nil
}

// Count returns the number of evaluations performed so far.
func (e *Evaluator) Count() int { return e.n }
