package core

// Solver integrates a Function over an Interval.
//
// Contract:
//   - Solve must not retain f, iv or p after returning and must not mutate
//     them (they are values or pure functions anyway).
//   - Configuration is validated before the first evaluation; such errors
//     wrap ErrInvalidConfiguration and come with Result.Evaluations == 0.
//   - A non-finite sample aborts with an *EvaluationError.
//   - Implementations keep no state between calls and are safe for
//     concurrent use.
type Solver interface {
	// Name identifies the method, including fixed parameters when relevant,
	// e.g. "CompositeSimpson" or "GaussLegendre(order=5)".
	Name() string

	// Solve approximates ∫_iv f(x) dx.
	Solve(f Function, iv Interval, p Params) (Result, error)
}
