// Package bench runs problem suites against a set of solvers and collects
// one Row per (problem, solver) pair.
package bench

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/integ/adaptive"
	"github.com/katalvlaran/integ/core"
	"github.com/katalvlaran/integ/gausslegendre"
	"github.com/katalvlaran/integ/montecarlo"
	"github.com/katalvlaran/integ/nested"
	"github.com/katalvlaran/integ/simpson"
	"github.com/katalvlaran/integ/trapezoid"
)

// Solver identifiers accepted by NewSolver.
const (
	Trapezoid     = "trapezoid"
	Simpson       = "simpson"
	GaussLegendre = "gauss-legendre"
	MonteCarlo    = "monte-carlo"
	Adaptive      = "adaptive"
)

// ErrUnknownSolver indicates a solver identifier NewSolver does not know.
var ErrUnknownSolver = errors.New("bench: unknown solver")

// SolverNames returns the identifiers accepted by NewSolver.
func SolverNames() []string {
	return []string{Trapezoid, Simpson, GaussLegendre, MonteCarlo, Adaptive}
}

// NewSolver builds the solver named id with its default configuration.
// Gauss–Legendre order and the other tunables come from core.Params.
func NewSolver(id string) (core.Solver, error) {
	switch strings.ToLower(strings.TrimSpace(id)) {
	case Trapezoid:
		return trapezoid.New(), nil
	case Simpson:
		return simpson.New(), nil
	case GaussLegendre:
		return gausslegendre.Default(), nil
	case MonteCarlo:
		return montecarlo.New(), nil
	case Adaptive:
		return adaptive.Default(), nil
	default:
		return nil, fmt.Errorf("%q (want one of %s): %w", id, strings.Join(SolverNames(), ", "), ErrUnknownSolver)
	}
}

// NewPair builds a nested integrator from "outer:inner", e.g.
// "gauss-legendre:simpson".
func NewPair(pair string) (nested.Integrator, error) {
	outer, inner, ok := strings.Cut(pair, ":")
	if !ok {
		return nested.Integrator{}, fmt.Errorf("pair %q is not outer:inner: %w", pair, ErrUnknownSolver)
	}
	o, err := NewSolver(outer)
	if err != nil {
		return nested.Integrator{}, err
	}
	i, err := NewSolver(inner)
	if err != nil {
		return nested.Integrator{}, err
	}

	return nested.New(o, i), nil
}
