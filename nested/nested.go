package nested

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/integ/core"
)

// ErrNilSolver indicates a nil outer or inner solver.
var ErrNilSolver = fmt.Errorf("%w: solver is nil", core.ErrInvalidConfiguration)

// Integrator composes two 1D solvers into a 2D iterated integral. It holds
// only its configuration and is safe for concurrent use when both solvers
// are.
type Integrator struct {
	outer       core.Solver
	inner       core.Solver
	innerParams *core.Params
}

// Option configures an Integrator.
type Option func(*Integrator)

// WithInnerParams makes the inner solver use p instead of the params given
// to Integrate.
func WithInnerParams(p core.Params) Option {
	return func(n *Integrator) { n.innerParams = &p }
}

// New returns an Integrator that integrates over the outer axis with outer
// and over the inner axis with inner.
func New(outer, inner core.Solver, opts ...Option) Integrator {
	n := Integrator{outer: outer, inner: inner}
	for _, opt := range opts {
		opt(&n)
	}

	return n
}

// Name returns "Nested(outer, inner)" with both solver names.
func (n Integrator) Name() string {
	return fmt.Sprintf("Nested(%s, %s)", solverName(n.outer), solverName(n.inner))
}

func solverName(s core.Solver) string {
	if s == nil {
		return "<nil>"
	}

	return s.Name()
}

// Integrate computes ∬_d f as ∫_outer ( ∫_inner(u) f ) du.
//
// Result fields:
//   - Evaluations: exact number of f(x, y) calls over all inner solves.
//   - ErrorEstimate: outer estimate + |outer interval|·max inner estimate,
//     present only when both levels report one.
//   - Status: BudgetExhausted when the outer solver or any inner solve ran
//     out of budget; the error then wraps core.ErrNonConvergence.
//
// An exhausted inner solve contributes its best estimate and the outer solve
// goes on. Any other inner failure aborts the solve; the returned error wraps
// it and names the outer coordinate.
func (n Integrator) Integrate(f core.Function2D, d core.Domain2D, p core.Params) (core.Result, error) {
	name := n.Name()

	// Stage 1: validate.
	if f == nil {
		return core.Result{Method: name}, core.ErrNilFunction
	}
	if n.outer == nil || n.inner == nil {
		return core.Result{Method: name}, ErrNilSolver
	}
	if err := d.Validate(); err != nil {
		return core.Result{Method: name}, err
	}
	ip := p
	if n.innerParams != nil {
		ip = *n.innerParams
	}

	// Stage 2: outer solve over u ↦ ∫ f(u, ·).
	g := &innerIntegral{f: f, d: d, solver: n.inner, p: ip, allEstimated: true}
	res, err := n.outer.Solve(g, d.Outer(), p)
	if g.err != nil {
		return core.Result{Method: name, Evaluations: g.evals},
			fmt.Errorf("inner integral at %s=%g: %w", d.OuterAxis(), g.at, g.err)
	}
	if err != nil && !errors.Is(err, core.ErrNonConvergence) {
		return core.Result{Method: name, Evaluations: g.evals}, err
	}
	if g.exhausted != nil {
		res.Status = core.BudgetExhausted
		err = errors.Join(err, fmt.Errorf("inner integral at %s=%g: %w", d.OuterAxis(), g.exhaustedAt, g.exhausted))
	}

	// Stage 3: compose.
	out := core.Result{
		Value:       res.Value,
		Evaluations: g.evals,
		Status:      res.Status,
		Method:      name,
	}
	width := d.Outer().Len()
	if res.HasErrorEstimate && g.allEstimated && !math.IsInf(width, 0) {
		out.ErrorEstimate = res.ErrorEstimate + width*g.maxErr
		out.HasErrorEstimate = true
	}

	return out, err
}

// slice fixes the outer coordinate of f and exposes the inner variable.
type slice struct {
	f    core.Function2D
	u    float64
	axis core.Axis
}

func (s slice) At(v float64) float64 {
	if s.axis == core.AxisY {
		return s.f.At(v, s.u)
	}

	return s.f.At(s.u, v)
}

// innerIntegral is u ↦ ∫_inner(u) f as a core.Function. It records the
// first inner failure and then returns NaN so the outer solver stops.
// Inner non-convergence is not a failure: the best estimate is used and the
// first exhausted coordinate is remembered.
type innerIntegral struct {
	f      core.Function2D
	d      core.Domain2D
	solver core.Solver
	p      core.Params

	evals        int
	maxErr       float64
	allEstimated bool
	err          error
	at           float64
	exhausted    error
	exhaustedAt  float64
}

func (g *innerIntegral) At(u float64) float64 {
	if g.err != nil {
		return math.NaN()
	}

	iv, err := g.d.InnerInterval(u)
	if err != nil {
		g.err, g.at = err, u
		return math.NaN()
	}

	res, err := g.solver.Solve(slice{f: g.f, u: u, axis: g.d.OuterAxis()}, iv, g.p)
	g.evals += res.Evaluations
	switch {
	case err == nil:
	case errors.Is(err, core.ErrNonConvergence):
		if g.exhausted == nil {
			g.exhausted, g.exhaustedAt = err, u
		}
	default:
		g.err, g.at = err, u
		return math.NaN()
	}
	if res.HasErrorEstimate {
		g.maxErr = math.Max(g.maxErr, res.ErrorEstimate)
	} else {
		g.allEstimated = false
	}

	return res.Value
}
