// SPDX-License-Identifier: MIT
package adaptive

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/integ/core"
	"github.com/katalvlaran/integ/gausslegendre"
)

// Solver is a globally adaptive integrator. It is immutable after
// construction and safe for concurrent use. The zero value behaves like
// Default().
type Solver struct {
	opts Options
	rule gausslegendre.Rule
	err  error // deferred option error, reported by Solve
}

// New returns a Solver configured by opts on top of DefaultOptions.
// Invalid options are reported by Solve before any evaluation.
func New(opts ...Option) Solver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return Solver{opts: o, err: err}
	}
	rule, err := gausslegendre.NewRule(o.Rule)

	return Solver{opts: o, rule: rule, err: err}
}

// Default returns a Solver with DefaultOptions.
func Default() Solver { return New() }

// Options returns the solver configuration.
func (s Solver) Options() Options { return s.opts }

// Name returns "Adaptive(rule=m)".
func (s Solver) Name() string {
	if s.opts.Rule == 0 {
		return fmt.Sprintf("Adaptive(rule=%d)", DefaultRule)
	}

	return fmt.Sprintf("Adaptive(rule=%d)", s.opts.Rule)
}

// Solve bisects the panel with the largest residual until the summed
// residual is within max(p.Tolerance, p.RelTolerance·|value|).
//
// The live panel count is capped by min(p.Subdivisions, MaxPanels option).
// When the cap is reached first, Solve returns the best estimate with
// Status == core.BudgetExhausted together with an error wrapping
// core.ErrNonConvergence.
//
// Complexity: O(k·m + k·log k) for k panels of an m-point rule.
func (s Solver) Solve(f core.Function, iv core.Interval, p core.Params) (core.Result, error) {
	if s.opts.Rule == 0 && s.err == nil {
		s = Default()
	}
	name := s.Name()

	// Stage 1: validate.
	if f == nil {
		return core.Result{Method: name}, core.ErrNilFunction
	}
	if err := iv.Validate(); err != nil {
		return core.Result{Method: name}, err
	}
	if err := p.CheckTolerance(); err != nil {
		return core.Result{Method: name}, err
	}
	if err := p.CheckSubdivisions(); err != nil {
		return core.Result{Method: name}, err
	}
	if s.err != nil {
		return core.Result{Method: name}, s.err
	}
	work, m, err := substitute(iv)
	if err != nil {
		return core.Result{Method: name}, err
	}
	budget := min(p.Subdivisions, s.opts.MaxPanels)

	// Stage 2: first panel over the whole working interval.
	ev := core.NewEvaluator(f)
	g := newSampler(ev, m)
	fail := func(err error) (core.Result, error) {
		return core.Result{Method: name, Evaluations: ev.Count()}, err
	}
	whole, err := applyRule(s.rule, g, work.A, work.B)
	if err != nil {
		return fail(err)
	}
	first, err := newPanel(s.rule, g, work.A, work.B, whole)
	if err != nil {
		return fail(err)
	}

	// Stage 3: bisect the worst panel until the target is met.
	var (
		pq       = panelPQ{first}
		value    = first.value()
		residual = first.residual()
		status   = core.Converged
	)
	heap.Init(&pq)
	target := func(v float64) float64 { return math.Max(p.Tolerance, p.RelTolerance*math.Abs(v)) }
	for {
		if residual <= target(value) {
			// running sums drift; confirm against exact totals
			value, residual = pq.totals()
			if residual <= target(value) {
				break
			}
		}
		if pq.Len() >= budget || !pq[0].splittable() {
			status = core.BudgetExhausted
			break
		}

		worst := heap.Pop(&pq).(*panel)
		mid := 0.5 * (worst.a + worst.b)
		left, err := newPanel(s.rule, g, worst.a, mid, worst.left)
		if err != nil {
			return fail(err)
		}
		right, err := newPanel(s.rule, g, mid, worst.b, worst.right)
		if err != nil {
			return fail(err)
		}
		heap.Push(&pq, left)
		heap.Push(&pq, right)

		value += left.value() + right.value() - worst.value()
		residual += left.residual() + right.residual() - worst.residual()
	}

	// Stage 4: exact totals.
	value, residual = pq.totals()
	res := core.Result{
		Value:            value,
		ErrorEstimate:    residual,
		HasErrorEstimate: true,
		Evaluations:      ev.Count(),
		Status:           status,
		Method:           name,
	}
	if status == core.BudgetExhausted {
		return res, fmt.Errorf("%d panels, residual %g > %g: %w",
			pq.Len(), residual, target(value), core.ErrNonConvergence)
	}

	return res, nil
}

var _ core.Solver = Solver{}
