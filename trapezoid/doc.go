// Package trapezoid implements the composite trapezoidal rule.
//
// 🚀 What is it?
//
//	[a, b] is split into n equal panels of width h = (b−a)/n and each panel
//	contributes h/2·(f(xᵢ) + f(xᵢ₊₁)):
//
//	  ∫_a^b f ≈ h·[ ½f(a) + f(x₁) + … + f(xₙ₋₁) + ½f(b) ]
//
//	Interior points are shared between neighbouring panels, so a solve costs
//	exactly n+1 evaluations.
//
// ✨ Error estimate:
//
//	The truncation error of the composite rule is −(b−a)·h²/12·f''(ξ). The
//	solver bounds |f''| by the largest second difference of the samples it
//	already has, |Δ²yᵢ|/h², giving
//
//	  ErrorEstimate = (b−a)/12 · max|Δ²yᵢ|
//
//	This needs n ≥ 2; with a single panel HasErrorEstimate is false. The
//	bound is exact for quadratics.
//
// ⚙️ Usage:
//
//	p := core.NewParams(core.WithSubdivisions(128))
//	res, err := trapezoid.New().Solve(functions.PolyX2Cos{}, core.MustInterval(0, 1), p)
//
// Errors:
//   - core.ErrNilFunction, core.ErrBadInterval, core.ErrUnboundedInterval,
//     core.ErrBadSubdivisions: before any evaluation.
//   - *core.EvaluationError: a sample was NaN or ±Inf (e.g. 1/√x at 0).
//
// Complexity: O(n) time, O(n) memory.
package trapezoid
