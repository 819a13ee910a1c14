// Package adaptive implements a globally adaptive, tolerance-driven
// integrator built on Gauss–Legendre panel rules.
//
// 🚀 What is it?
//
//	The interval is split into panels. Each panel carries an m-point
//	Gauss–Legendre value on the whole panel (W) and on its two halves (L, R);
//	its estimate is L+R and its residual |W − (L+R)|. The panel with the
//	largest residual is bisected, reusing L and R as the whole-panel values
//	of the children, until
//
//	  Σ residual ≤ max(Tolerance, RelTolerance·|Σ estimate|)
//
// ✨ Budget:
//   - Params.Subdivisions caps the number of live panels.
//   - WithMaxPanels sets a hard cap on top of that (default MaxPanels).
//   - A panel too narrow to split in float64 also ends refinement.
//
//	When refinement stops before the target is met the best estimate comes
//	back with Status == core.BudgetExhausted and an error wrapping
//	core.ErrNonConvergence; callers can still use the value.
//
// Unbounded intervals:
//
//	Unlike the fixed-grid solvers, Solve accepts infinite bounds and maps
//	them onto a finite interval (x = a + t/(1−t), x = b − (1−t)/t or
//	x = t/(1−t²)). Gauss nodes never touch panel endpoints, so endpoint
//	singularities and the mapped infinity are never sampled.
//
// Evaluations: 3m for the first panel, 4m per bisection; reported after
// the fact.
//
// Example:
//
//	s := adaptive.New(adaptive.WithRule(7))
//	res, err := s.Solve(functions.InvSqrt{}, core.MustInterval(0, 1), core.DefaultParams())
package adaptive
