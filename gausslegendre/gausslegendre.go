package gausslegendre

import (
	"fmt"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/katalvlaran/integ/core"
)

// DefaultOrder is the order used by Default.
const DefaultOrder = core.DefaultOrder

// Rule is an m-point Gauss–Legendre rule on the canonical interval [−1, 1].
type Rule struct {
	Nodes   []float64
	Weights []float64
}

// NewRule computes the canonical m-point rule with gonum's Legendre
// locator. It returns core.ErrBadOrder for m < 1.
func NewRule(m int) (Rule, error) {
	if m < 1 {
		return Rule{}, fmt.Errorf("order=%d: %w", m, core.ErrBadOrder)
	}

	r := Rule{Nodes: make([]float64, m), Weights: make([]float64, m)}
	quad.Legendre{}.FixedLocations(r.Nodes, r.Weights, -1, 1)

	return r, nil
}

// Order returns the number of nodes.
func (r Rule) Order() int { return len(r.Nodes) }

// Solver is a fixed-order Gauss–Legendre solver. It is immutable after
// construction and safe for concurrent use.
type Solver struct {
	rule Rule
}

// New returns a Solver of the given default order.
func New(order int) (Solver, error) {
	r, err := NewRule(order)
	if err != nil {
		return Solver{}, err
	}

	return Solver{rule: r}, nil
}

// MustNew is New that panics on an invalid order.
func MustNew(order int) Solver {
	s, err := New(order)
	if err != nil {
		panic(err)
	}

	return s
}

// Default returns the 5-point solver.
func Default() Solver { return MustNew(DefaultOrder) }

// Order returns the construction order.
func (s Solver) Order() int { return s.rule.Order() }

// Name returns "GaussLegendre(order=m)" for the construction order.
func (s Solver) Name() string {
	return fmt.Sprintf("GaussLegendre(order=%d)", s.rule.Order())
}

// Solve integrates f over iv with the construction order, or with p.Order
// when it is positive.
func (s Solver) Solve(f core.Function, iv core.Interval, p core.Params) (core.Result, error) {
	name := s.Name()

	// Stage 1: validate.
	if err := core.ValidateFixedGrid(f, iv); err != nil {
		return core.Result{Method: name}, err
	}
	rule := s.rule
	if p.Order > 0 && p.Order != rule.Order() {
		var err error
		if rule, err = NewRule(p.Order); err != nil {
			return core.Result{Method: name}, err
		}
		name = fmt.Sprintf("GaussLegendre(order=%d)", p.Order)
	}
	if rule.Order() == 0 {
		// zero-value Solver
		return core.Result{Method: name}, fmt.Errorf("order=0: %w", core.ErrBadOrder)
	}

	// Stage 2: affine map [−1, 1] → [a, b] and weighted sum.
	var (
		half = 0.5 * iv.Len()
		mid  = iv.Mid()
		ev   = core.NewEvaluator(f)
		sum  float64
	)
	for i, t := range rule.Nodes {
		y, err := ev.At(mid + half*t)
		if err != nil {
			return core.Result{Method: name, Evaluations: ev.Count()}, err
		}
		sum += rule.Weights[i] * y
	}

	return core.Result{
		Value:       half * sum,
		Evaluations: ev.Count(),
		Status:      core.Converged,
		Method:      name,
	}, nil
}

var _ core.Solver = Solver{}
