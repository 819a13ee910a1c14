package trapezoid

import (
	"github.com/katalvlaran/integ/core"
	"github.com/katalvlaran/integ/internal/grid"
)

// Name is the method name reported in results.
const Name = "CompositeTrapezoid"

// Solver is the composite trapezoidal rule. The zero value is ready to use.
type Solver struct{}

// New returns a trapezoid Solver.
func New() Solver { return Solver{} }

// Name returns "CompositeTrapezoid".
func (Solver) Name() string { return Name }

// Solve integrates f over iv with p.Subdivisions equal panels.
func (Solver) Solve(f core.Function, iv core.Interval, p core.Params) (core.Result, error) {
	// Stage 1: validate everything before touching f.
	if err := core.ValidateFixedGrid(f, iv); err != nil {
		return core.Result{Method: Name}, err
	}
	if err := p.CheckSubdivisions(); err != nil {
		return core.Result{Method: Name}, err
	}

	// Stage 2: sample the grid.
	n := p.Subdivisions
	ev := core.NewEvaluator(f)
	ys, h, err := grid.Sample(ev, iv, n)
	if err != nil {
		return core.Result{Method: Name, Evaluations: ev.Count()}, err
	}

	// Stage 3: endpoints weigh ½, interior points 1.
	sum := 0.5 * (ys[0] + ys[n])
	for i := 1; i < n; i++ {
		sum += ys[i]
	}

	res := core.Result{
		Value:       h * sum,
		Evaluations: ev.Count(),
		Status:      core.Converged,
		Method:      Name,
	}

	// Stage 4: (b−a)·h²/12·max|f''| with f'' ≈ Δ²y/h².
	if d2, ok := grid.MaxAbsDiff(ys, 2); ok {
		res.ErrorEstimate = iv.Len() * d2 / 12
		res.HasErrorEstimate = true
	}

	return res, nil
}

var _ core.Solver = Solver{}
