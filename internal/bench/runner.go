package bench

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/integ/core"
	"github.com/katalvlaran/integ/internal/metrics"
	"github.com/katalvlaran/integ/internal/problem"
	"github.com/katalvlaran/integ/nested"
)

// DefaultParallelism is the number of solves a Runner runs at once.
const DefaultParallelism = 4

// Report is the result of one Run.
type Report struct {
	RunID    string          `json:"run_id"`
	Suite    string          `json:"suite"`
	Started  time.Time       `json:"started"`
	Duration time.Duration   `json:"duration_ns"`
	Rows     []Row           `json:"rows"`
	Summary  []SolverSummary `json:"summary"`
}

// Failures counts the failed rows.
func (r Report) Failures() int {
	var n int
	for _, row := range r.Rows {
		if row.Failed() {
			n++
		}
	}

	return n
}

// Runner solves every 1D problem with each solver and every 2D problem with
// each nested pair.
type Runner struct {
	solvers     []core.Solver
	pairs       []nested.Integrator
	params      core.Params
	parallelism int
	logger      *slog.Logger
	metrics     *metrics.Recorder
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the run logger. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics records every solve in m.
func WithMetrics(m *metrics.Recorder) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithParallelism caps concurrent solves; n < 1 selects DefaultParallelism.
func WithParallelism(n int) Option {
	return func(r *Runner) {
		if n < 1 {
			n = DefaultParallelism
		}
		r.parallelism = n
	}
}

// NewRunner builds the named solvers ("simpson", ...) and pairs
// ("outer:inner") and runs them with params p.
func NewRunner(solvers, pairs []string, p core.Params, opts ...Option) (*Runner, error) {
	r := &Runner{
		params:      p,
		parallelism: DefaultParallelism,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, id := range solvers {
		s, err := NewSolver(id)
		if err != nil {
			return nil, err
		}
		r.solvers = append(r.solvers, s)
	}
	for _, pair := range pairs {
		n, err := NewPair(pair)
		if err != nil {
			return nil, err
		}
		r.pairs = append(r.pairs, n)
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// task is one solve; run must not panic and reports errors in the Row.
type task func() Row

// Run solves the suite. Solver errors end up in the rows; the returned
// error is non-nil only when ctx is cancelled before all solves ran.
func (r *Runner) Run(ctx context.Context, s problem.Suite) (Report, error) {
	rep := Report{
		RunID:   uuid.New().String(),
		Suite:   s.Name,
		Started: time.Now(),
	}
	log := r.logger.With("run_id", rep.RunID, "suite", s.Name)

	// Stage 1: expand the suite into tasks.
	var tasks []task
	for _, pr := range s.Problems {
		for _, sv := range r.solvers {
			tasks = append(tasks, func() Row { return r.solve1D(pr, sv) })
		}
	}
	for _, pr := range s.Problems2D {
		for _, n := range r.pairs {
			tasks = append(tasks, func() Row { return r.solve2D(pr, n) })
		}
	}
	log.Info("run started", "tasks", len(tasks), "parallelism", r.parallelism)

	// Stage 2: run them; each task owns its slot.
	rows := make([]Row, len(tasks))
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.parallelism)
	for i, t := range tasks {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			rows[i] = t()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Warn("run cancelled", "error", err)
		return rep, fmt.Errorf("run %s: %w", rep.RunID, err)
	}

	// Stage 3: summarize.
	rep.Rows = rows
	rep.Summary = Summarize(rows)
	rep.Duration = time.Since(rep.Started)
	log.Info("run finished", "rows", len(rows), "failures", rep.Failures(), "duration", rep.Duration)

	return rep, nil
}

func (r *Runner) solve1D(pr problem.Problem, s core.Solver) Row {
	start := time.Now()
	res, err := s.Solve(pr.F, pr.Interval, r.params)
	d := time.Since(start)

	name := res.Method
	if name == "" {
		name = s.Name()
	}
	r.metrics.RecordSolve(name, res, err, d)
	r.logSolve(pr.Label, name, res, err, d)

	return newRow(pr.Label, pr.Interval.String(), name, pr.Exact, pr.HasExact, res, err, d)
}

func (r *Runner) solve2D(pr problem.Problem2D, n nested.Integrator) Row {
	start := time.Now()
	res, err := n.Integrate(pr.F, pr.Domain, r.params)
	d := time.Since(start)

	name := n.Name()
	r.metrics.RecordSolve(name, res, err, d)
	r.logSolve(pr.Label, name, res, err, d)

	return newRow(pr.Label, pr.Domain.String(), name, pr.Exact, pr.HasExact, res, err, d)
}

func (r *Runner) logSolve(label, solver string, res core.Result, err error, d time.Duration) {
	attrs := []any{
		"function", label,
		"solver", solver,
		"value", res.Value,
		"evaluations", res.Evaluations,
		"duration", d,
	}
	if res.HasSeed {
		attrs = append(attrs, "seed", res.Seed)
	}
	if err != nil {
		r.logger.Warn("solve failed", append(attrs, "error", err)...)
		return
	}
	r.logger.Debug("solve", attrs...)
}
