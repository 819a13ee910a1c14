// Package nested integrates over 2D regions by composing two 1D solvers.
//
//	∬_D f(x, y) dA = ∫_{x0}^{x1} ( ∫_{lo(x)}^{hi(x)} f(x, y) dy ) dx
//
// For every outer node the inner solver integrates f with the outer
// coordinate held fixed; the outer solver sees only the resulting 1D
// function. Any pairing of core.Solver values works, including different
// methods per level and an adaptive solver on either side.
//
// Domains are core.Domain2D values: rectangles or normal regions whose
// inner bounds are functions of the outer variable, with either x or y as
// the outer axis.
//
// Evaluation counts are exact: Result.Evaluations is the number of f(x, y)
// calls, i.e. the sum of the inner solves' counts. For fixed-count solvers
// this is outer_evals × inner_evals.
//
// Errors:
//   - core.ErrNilFunction, ErrNilSolver, core.ErrBadDomain before any
//     evaluation; invalid params surface from the solver that reads them.
//   - An inner failure (bad inner interval, evaluation error) aborts the
//     solve, wrapped with the outer coordinate.
//   - Non-convergence at either level keeps the composed best estimate and
//     returns it with Status == core.BudgetExhausted and an error wrapping
//     core.ErrNonConvergence.
package nested
