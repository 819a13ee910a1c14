// SPDX-License-Identifier: MIT
// Package core: sentinel error set shared by every solver.
//
// All messages are prefixed with "integ: ". Specific configuration errors
// wrap ErrInvalidConfiguration, so callers can match either the precise
// sentinel or the whole kind with errors.Is.

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is the kind of every error detected before the
	// first function evaluation (bad counts, tolerances, bounds or domains).
	ErrInvalidConfiguration = errors.New("integ: invalid configuration")

	// ErrDomainEvaluation is the kind of failures raised while sampling f:
	// the function returned NaN or ±Inf at a required point.
	ErrDomainEvaluation = errors.New("integ: function not finite at sample point")

	// ErrNonConvergence reports that an adaptive method used its whole
	// refinement budget without meeting the requested tolerance.
	ErrNonConvergence = errors.New("integ: refinement budget exhausted before tolerance was met")
)

var (
	// ErrBadSubdivisions indicates Params.Subdivisions <= 0 or above
	// MaxSubdivisions.
	ErrBadSubdivisions = fmt.Errorf("%w: subdivision count must be in [1, %d]", ErrInvalidConfiguration, MaxSubdivisions)

	// ErrBadSamples indicates Params.Samples <= 0.
	ErrBadSamples = fmt.Errorf("%w: sample count must be positive", ErrInvalidConfiguration)

	// ErrBadTolerance indicates negative or non-finite tolerances, or both zero
	// for a method that needs one.
	ErrBadTolerance = fmt.Errorf("%w: tolerance must be finite, non-negative and not both zero", ErrInvalidConfiguration)

	// ErrBadOrder indicates a quadrature order < 1.
	ErrBadOrder = fmt.Errorf("%w: quadrature order must be positive", ErrInvalidConfiguration)

	// ErrBadInterval indicates a NaN bound or a lower bound above the upper one.
	ErrBadInterval = fmt.Errorf("%w: interval bounds must satisfy lower <= upper", ErrInvalidConfiguration)

	// ErrUnboundedInterval indicates an infinite bound given to a method that
	// samples a fixed grid.
	ErrUnboundedInterval = fmt.Errorf("%w: method requires finite interval bounds", ErrInvalidConfiguration)

	// ErrBadDomain indicates a Domain2D without bound functions, or bound
	// functions that produce an invalid inner interval.
	ErrBadDomain = fmt.Errorf("%w: malformed 2D domain", ErrInvalidConfiguration)

	// ErrNilFunction indicates a nil Function or Function2D.
	ErrNilFunction = fmt.Errorf("%w: function is nil", ErrInvalidConfiguration)
)

// EvaluationError describes a sample point where f was not finite.
//
// Evaluations is the number of evaluations performed up to and including
// the failing one.
type EvaluationError struct {
	X           float64
	Value       float64
	Evaluations int
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("%s: f(%g) = %g", ErrDomainEvaluation.Error(), e.X, e.Value)
}

// Unwrap lets errors.Is match ErrDomainEvaluation.
func (e *EvaluationError) Unwrap() error {
	return ErrDomainEvaluation
}
