package core

import "fmt"

// Status annotates how a solve finished.
type Status int

const (
	// Converged: the method completed normally. Fixed-order methods always
	// report Converged on success.
	Converged Status = iota

	// BudgetExhausted: an adaptive method stopped at its refinement cap
	// before meeting the tolerance. The accompanying error wraps
	// ErrNonConvergence.
	BudgetExhausted
)

// String returns "converged" or "budget-exhausted".
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case BudgetExhausted:
		return "budget-exhausted"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of one Solve call. It is built once and returned by
// value.
//
// ErrorEstimate semantics depend on the method:
//   - composite rules: theoretical truncation bound from finite differences;
//   - Monte Carlo:     standard error of the mean (probabilistic);
//   - adaptive:        sum of panel residuals;
//   - Gauss–Legendre:  none (HasErrorEstimate == false).
type Result struct {
	Value            float64 // estimated integral
	ErrorEstimate    float64 // meaningful only when HasErrorEstimate
	HasErrorEstimate bool
	Evaluations      int    // function evaluations performed
	Status           Status // Converged unless an adaptive budget ran out
	Method           string // Solver.Name() of the producing solver
	Seed             uint64 // RNG seed of a stochastic method, valid when HasSeed
	HasSeed          bool
}

// Converged reports whether Status == Converged.
func (r Result) Converged() bool { return r.Status == Converged }

// String renders a compact one-line summary.
func (r Result) String() string {
	if r.HasErrorEstimate {
		return fmt.Sprintf("%s: %.15g ± %.3g (%d evals, %s)", r.Method, r.Value, r.ErrorEstimate, r.Evaluations, r.Status)
	}

	return fmt.Sprintf("%s: %.15g (%d evals, %s)", r.Method, r.Value, r.Evaluations, r.Status)
}
