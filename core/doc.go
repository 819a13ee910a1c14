// Package core defines the shared vocabulary of the integ solvers: the
// Function and Function2D capabilities, the Interval and Domain2D regions,
// the Params configuration bundle, the Result value and the Solver contract.
//
// 🚀 What lives here?
//
//	core is the leaf package every quadrature strategy builds on:
//	  • Function / Func       – pure ℝ→ℝ evaluators (Func adapts a closure)
//	  • Function2D / Func2D   – pure ℝ²→ℝ evaluators
//	  • Interval              – [A, B] with A ≤ B, possibly unbounded
//	  • Domain2D              – rectangles and normal regions y ∈ [lo(x), hi(x)]
//	  • Params                – subdivisions, samples, tolerances, seed, order
//	  • Result                – value, error estimate, evaluation count, status
//	  • Solver                – Solve(f, interval, params) (Result, error)
//	  • Evaluator             – counting, finiteness-checking wrapper used by
//	                            every solver to evaluate f
//
// ✨ Contracts:
//   - Value semantics everywhere: Interval, Domain2D, Params and Result are
//     copied, never shared, so a Solve call may run on any goroutine.
//   - Solvers validate Params and Interval before the first evaluation; the
//     error path then reports Evaluations == 0.
//   - A NaN or ±Inf sample aborts the solve with an *EvaluationError that
//     wraps ErrDomainEvaluation. Nothing is retried or routed around.
//
// Errors:
//
//	ErrInvalidConfiguration – kind; wrapped by ErrBadSubdivisions, ErrBadSamples,
//	                          ErrBadTolerance, ErrBadOrder, ErrBadInterval,
//	                          ErrUnboundedInterval, ErrBadDomain, ErrNilFunction.
//	ErrDomainEvaluation     – kind; carried by *EvaluationError.
//	ErrNonConvergence       – adaptive refinement ran out of budget.
//
// Example:
//
//	iv, _ := core.NewInterval(0, 1)
//	p := core.NewParams(core.WithSubdivisions(64))
//	res, err := trapezoid.New().Solve(core.Func(math.Exp), iv, p)
package core
