// Package integ is a numerical integration toolkit: definite integrals of
// one and two variables, computed with interchangeable solvers that report
// their value, an error estimate and the exact number of function
// evaluations they spent.
//
// 🚀 What is inside?
//
//	A small, dependency-light set of packages:
//		• core          Function, Interval, Domain2D, Params, Result, Solver
//		• trapezoid     composite trapezoid rule
//		• simpson       composite Simpson 1/3 rule
//		• gausslegendre m-point Gauss–Legendre quadrature of any order
//		• montecarlo    seeded uniform Monte Carlo with standard error
//		• adaptive      globally adaptive Gauss–Legendre, infinite bounds
//		• nested        2D iterated integrals from any two 1D solvers
//		• functions     catalog of named integrands and a registry
//
// ✨ Guarantees
//
//   - Solvers are immutable values, safe for concurrent use
//   - Invalid configuration is rejected before the first evaluation
//   - Non-finite samples fail fast with the offending point
//   - No logging, no panics on user input
//
// Quick example:
//
//	res, err := simpson.New().Solve(functions.Power{N: 10}, core.MustInterval(0, 1), core.DefaultParams())
//	// res.Value ≈ 1/11, res.Evaluations == 1001
//
// The integ command (cmd/integ) runs problem suites through the solvers and
// renders the results as tables, CSV or JSON:
//
//	go install github.com/katalvlaran/integ/cmd/integ@latest
//	integ run --solvers simpson,adaptive -o markdown
package integ
