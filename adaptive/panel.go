package adaptive

import (
	"math"

	"github.com/katalvlaran/integ/gausslegendre"
)

// sampler evaluates the (possibly transformed) integrand at t.
type sampler func(t float64) (float64, error)

// panel is one live subinterval [a, b].
//
// whole is the rule on [a, b]; left and right are the rule on its halves.
// The panel's value is left+right; its residual is |whole − value|.
type panel struct {
	a, b        float64
	whole       float64
	left, right float64
}

func (p *panel) value() float64 { return p.left + p.right }

func (p *panel) residual() float64 { return math.Abs(p.whole - p.value()) }

// splittable reports whether the midpoint is strictly inside the panel.
func (p *panel) splittable() bool {
	mid := 0.5 * (p.a + p.b)
	return p.a < mid && mid < p.b
}

// applyRule computes the canonical rule mapped onto [a, b].
func applyRule(rule gausslegendre.Rule, g sampler, a, b float64) (float64, error) {
	var (
		half = 0.5 * (b - a)
		mid  = 0.5 * (a + b)
		sum  float64
	)
	for i, t := range rule.Nodes {
		y, err := g(mid + half*t)
		if err != nil {
			return 0, err
		}
		sum += rule.Weights[i] * y
	}

	return half * sum, nil
}

// newPanel builds a panel whose whole-rule value is already known.
// It costs two rule applications.
func newPanel(rule gausslegendre.Rule, g sampler, a, b, whole float64) (*panel, error) {
	mid := 0.5 * (a + b)
	left, err := applyRule(rule, g, a, mid)
	if err != nil {
		return nil, err
	}
	right, err := applyRule(rule, g, mid, b)
	if err != nil {
		return nil, err
	}

	return &panel{a: a, b: b, whole: whole, left: left, right: right}, nil
}

// panelPQ is a max-heap of *panel ordered by residual.
type panelPQ []*panel

// Len returns the number of panels in the heap.
func (pq panelPQ) Len() int { return len(pq) }

// Less puts the largest residual on top.
func (pq panelPQ) Less(i, j int) bool { return pq[i].residual() > pq[j].residual() }

// Swap swaps two panels.
func (pq panelPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *panel. Called by heap.Push.
func (pq *panelPQ) Push(x interface{}) { *pq = append(*pq, x.(*panel)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *panelPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

// totals sums values and residuals over all live panels.
func (pq panelPQ) totals() (value, residual float64) {
	for _, p := range pq {
		value += p.value()
		residual += p.residual()
	}

	return value, residual
}
