package simpson

import (
	"math"

	"github.com/katalvlaran/integ/core"
	"github.com/katalvlaran/integ/internal/grid"
)

// Name is the method name reported in results.
const Name = "CompositeSimpson"

// Solver is the composite Simpson 1/3 rule. The zero value is ready to use.
type Solver struct{}

// New returns a Simpson Solver.
func New() Solver { return Solver{} }

// Name returns "CompositeSimpson".
func (Solver) Name() string { return Name }

// Panels returns the panel count actually used for a requested n:
// n itself when even, n+1 when odd. math.MaxInt maps to math.MaxInt-1.
func Panels(n int) int {
	if n == math.MaxInt {
		return n - 1
	}
	if n%2 != 0 {
		return n + 1
	}

	return n
}

// Solve integrates f over iv with Panels(p.Subdivisions) equal panels.
func (Solver) Solve(f core.Function, iv core.Interval, p core.Params) (core.Result, error) {
	// Stage 1: validate.
	if err := core.ValidateFixedGrid(f, iv); err != nil {
		return core.Result{Method: Name}, err
	}
	if err := p.CheckSubdivisions(); err != nil {
		return core.Result{Method: Name}, err
	}

	// Stage 2: sample an even grid.
	n := Panels(p.Subdivisions)
	ev := core.NewEvaluator(f)
	ys, h, err := grid.Sample(ev, iv, n)
	if err != nil {
		return core.Result{Method: Name, Evaluations: ev.Count()}, err
	}

	// Stage 3: weights 1,4,2,4,…,4,1.
	sum := ys[0] + ys[n]
	for i := 1; i < n; i += 2 {
		sum += 4 * ys[i]
	}
	for i := 2; i < n; i += 2 {
		sum += 2 * ys[i]
	}

	res := core.Result{
		Value:       h / 3 * sum,
		Evaluations: ev.Count(),
		Status:      core.Converged,
		Method:      Name,
	}

	// Stage 4: (b−a)·h⁴/180·max|f⁽⁴⁾| with f⁽⁴⁾ ≈ Δ⁴y/h⁴.
	if d4, ok := grid.MaxAbsDiff(ys, 4); ok {
		res.ErrorEstimate = iv.Len() * d4 / 180
		res.HasErrorEstimate = true
	}

	return res, nil
}

var _ core.Solver = Solver{}
