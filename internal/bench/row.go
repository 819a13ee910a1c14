package bench

import (
	"errors"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/integ/core"
)

// Row is the outcome of one solve.
type Row struct {
	Function    string        `json:"function"`
	Interval    string        `json:"interval"`
	Solver      string        `json:"solver"`
	Approx      float64       `json:"approx"`
	Exact       float64       `json:"exact"`
	HasExact    bool          `json:"has_exact"`
	AbsError    float64       `json:"abs_error"`
	Evaluations int           `json:"evaluations"`
	ErrEst      float64       `json:"error_estimate"`
	HasErrEst   bool          `json:"has_error_estimate"`
	Status      string        `json:"status"`
	Seed        *uint64       `json:"seed,omitempty"`
	Duration    time.Duration `json:"duration_ns"`
	Error       string        `json:"error,omitempty"`

	Err error `json:"-"`
}

func newRow(function, interval, solver string, exact float64, hasExact bool, res core.Result, err error, d time.Duration) Row {
	r := Row{
		Function:    function,
		Interval:    interval,
		Solver:      solver,
		Approx:      res.Value,
		Exact:       exact,
		HasExact:    hasExact,
		Evaluations: res.Evaluations,
		ErrEst:      res.ErrorEstimate,
		HasErrEst:   res.HasErrorEstimate,
		Status:      res.Status.String(),
		Duration:    d,
		Err:         err,
	}
	if hasExact {
		r.AbsError = math.Abs(res.Value - exact)
	}
	if res.HasSeed {
		seed := res.Seed
		r.Seed = &seed
	}
	if err != nil {
		r.Error = err.Error()
		if r.Failed() {
			r.Status = "failed"
		}
	}

	return r
}

// Failed reports whether the solve produced no usable value. A budget
// exhausted solve still carries its best estimate and is not counted as
// failed; a non-convergence error without that status is.
func (r Row) Failed() bool {
	if r.Err == nil {
		return false
	}

	return !errors.Is(r.Err, core.ErrNonConvergence) || r.Status != core.BudgetExhausted.String()
}

// SolverSummary aggregates the rows of one solver.
type SolverSummary struct {
	Solver       string  `json:"solver"`
	Solves       int     `json:"solves"`
	Failures     int     `json:"failures"`
	Evaluations  int     `json:"evaluations"`
	MeanAbsError float64 `json:"mean_abs_error"`
	StdAbsError  float64 `json:"std_abs_error"`
	MaxAbsError  float64 `json:"max_abs_error"`
}

// Summarize groups rows by solver, in order of first appearance. Error
// statistics cover successful rows with a known exact value.
func Summarize(rows []Row) []SolverSummary {
	var (
		order  []string
		byName = make(map[string]*SolverSummary)
		errs   = make(map[string][]float64)
	)
	for _, r := range rows {
		s, ok := byName[r.Solver]
		if !ok {
			s = &SolverSummary{Solver: r.Solver}
			byName[r.Solver] = s
			order = append(order, r.Solver)
		}
		s.Solves++
		s.Evaluations += r.Evaluations
		if r.Failed() {
			s.Failures++
			continue
		}
		if r.HasExact {
			errs[r.Solver] = append(errs[r.Solver], r.AbsError)
		}
	}

	out := make([]SolverSummary, 0, len(order))
	for _, name := range order {
		s := byName[name]
		if e := errs[name]; len(e) > 0 {
			s.MeanAbsError, s.StdAbsError = stat.MeanStdDev(e, nil)
			if len(e) == 1 {
				s.StdAbsError = 0
			}
			s.MaxAbsError = floats.Max(e)
		}
		out = append(out, *s)
	}

	return out
}
