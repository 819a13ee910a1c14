// Package metrics records solver activity of a benchmark run in a private
// Prometheus registry and can export it in the node-exporter textfile
// format.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/integ/core"
)

// Failure kinds used as the "kind" label of integ_solve_failures_total.
const (
	KindInvalidConfiguration = "invalid_configuration"
	KindDomainEvaluation     = "domain_evaluation"
	KindNonConvergence       = "non_convergence"
	KindOther                = "other"
)

// Recorder holds the run metrics.
type Recorder struct {
	solvesTotal      *prometheus.CounterVec
	evaluationsTotal *prometheus.CounterVec
	solveDuration    *prometheus.HistogramVec
	failuresTotal    *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates a Recorder with its own registry.
func New() *Recorder {
	registry := prometheus.NewRegistry()

	r := &Recorder{
		solvesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "integ_solves_total",
				Help: "Total number of solves by solver and outcome status",
			},
			[]string{"solver", "status"},
		),

		evaluationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "integ_function_evaluations_total",
				Help: "Total number of integrand evaluations by solver",
			},
			[]string{"solver"},
		),

		solveDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "integ_solve_duration_seconds",
				Help:    "Wall time of a single solve in seconds",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
			},
			[]string{"solver"},
		),

		failuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "integ_solve_failures_total",
				Help: "Total number of failed solves by solver and error kind",
			},
			[]string{"solver", "kind"},
		),

		registry: registry,
	}

	registry.MustRegister(
		r.solvesTotal,
		r.evaluationsTotal,
		r.solveDuration,
		r.failuresTotal,
	)

	return r
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// RecordSolve records one finished solve. A nil Recorder is a no-op.
func (r *Recorder) RecordSolve(solver string, res core.Result, err error, d time.Duration) {
	if r == nil {
		return
	}

	status := res.Status.String()
	if err != nil && !(errors.Is(err, core.ErrNonConvergence) && res.Status == core.BudgetExhausted) {
		status = "failed"
	}
	r.solvesTotal.WithLabelValues(solver, status).Inc()
	r.evaluationsTotal.WithLabelValues(solver).Add(float64(res.Evaluations))
	r.solveDuration.WithLabelValues(solver).Observe(d.Seconds())
	if err != nil {
		r.failuresTotal.WithLabelValues(solver, Kind(err)).Inc()
	}
}

// WriteTextfile writes all metrics to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

// Kind classifies a solve error for the failure counter.
func Kind(err error) string {
	switch {
	case errors.Is(err, core.ErrInvalidConfiguration):
		return KindInvalidConfiguration
	case errors.Is(err, core.ErrDomainEvaluation):
		return KindDomainEvaluation
	case errors.Is(err, core.ErrNonConvergence):
		return KindNonConvergence
	default:
		return KindOther
	}
}
