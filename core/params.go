// SPDX-License-Identifier: MIT
// Package core: solver parameters and their functional options.
//
// Params is a plain value. Each solver reads only the fields it needs:
//   - composite rules:   Subdivisions
//   - Gauss–Legendre:    Order
//   - Monte Carlo:       Samples, Seed/Seeded
//   - adaptive:          Tolerance, RelTolerance, Subdivisions (panel cap)
//
// Setters never panic; out-of-range values are reported by the solver that
// consumes them, before any evaluation happens.

package core

import (
	"fmt"
	"math"
)

// Defaults (single source of truth for DefaultParams).
const (
	// DefaultSubdivisions is the composite panel count and adaptive panel cap.
	DefaultSubdivisions = 1000

	// DefaultSamples is the Monte Carlo sample count.
	DefaultSamples = 100000

	// DefaultTolerance is the absolute tolerance of adaptive methods.
	DefaultTolerance = 1e-8

	// DefaultRelTolerance is the relative tolerance of adaptive methods.
	DefaultRelTolerance = 1e-8

	// DefaultOrder is the Gauss–Legendre order.
	DefaultOrder = 5

	// MaxSubdivisions bounds Subdivisions so that a fixed grid of n+1
	// samples stays allocatable.
	MaxSubdivisions = 1 << 26
)

// Params configures a single Solve call.
type Params struct {
	Subdivisions int     // panels for composite rules; panel cap for adaptive
	Samples      int     // Monte Carlo sample count
	Tolerance    float64 // absolute tolerance (adaptive only)
	RelTolerance float64 // relative tolerance (adaptive only)
	Seed         uint64  // RNG seed, honored when Seeded is true
	Seeded       bool    // false ⇒ each stochastic solve draws a fresh seed
	Order        int     // Gauss–Legendre order; <= 0 ⇒ solver default
}

// ParamOption mutates a Params value under construction.
type ParamOption func(*Params)

// DefaultParams returns the documented defaults. The RNG is unseeded.
func DefaultParams() Params {
	return Params{
		Subdivisions: DefaultSubdivisions,
		Samples:      DefaultSamples,
		Tolerance:    DefaultTolerance,
		RelTolerance: DefaultRelTolerance,
		Order:        DefaultOrder,
	}
}

// NewParams applies opts, left to right, on top of DefaultParams.
func NewParams(opts ...ParamOption) Params {
	p := DefaultParams()
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// With returns a copy of p with opts applied; p itself is unchanged.
func (p Params) With(opts ...ParamOption) Params {
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// WithSubdivisions sets the composite panel count / adaptive panel cap.
func WithSubdivisions(n int) ParamOption {
	return func(p *Params) { p.Subdivisions = n }
}

// WithSamples sets the Monte Carlo sample count.
func WithSamples(n int) ParamOption {
	return func(p *Params) { p.Samples = n }
}

// WithTolerance sets the absolute tolerance.
func WithTolerance(tol float64) ParamOption {
	return func(p *Params) { p.Tolerance = tol }
}

// WithRelTolerance sets the relative tolerance.
func WithRelTolerance(tol float64) ParamOption {
	return func(p *Params) { p.RelTolerance = tol }
}

// WithSeed fixes the RNG seed so stochastic solves are reproducible.
func WithSeed(seed uint64) ParamOption {
	return func(p *Params) {
		p.Seed = seed
		p.Seeded = true
	}
}

// WithoutSeed clears a previously set seed.
func WithoutSeed() ParamOption {
	return func(p *Params) {
		p.Seed = 0
		p.Seeded = false
	}
}

// WithOrder sets the Gauss–Legendre order.
func WithOrder(order int) ParamOption {
	return func(p *Params) { p.Order = order }
}

// CheckSubdivisions returns ErrBadSubdivisions unless
// 0 < Subdivisions <= MaxSubdivisions.
func (p Params) CheckSubdivisions() error {
	if p.Subdivisions <= 0 || p.Subdivisions > MaxSubdivisions {
		return fmt.Errorf("subdivisions=%d: %w", p.Subdivisions, ErrBadSubdivisions)
	}

	return nil
}

// CheckSamples returns ErrBadSamples unless Samples > 0.
func (p Params) CheckSamples() error {
	if p.Samples <= 0 {
		return fmt.Errorf("samples=%d: %w", p.Samples, ErrBadSamples)
	}

	return nil
}

// CheckTolerance requires finite, non-negative tolerances, at least one of
// which is positive.
func (p Params) CheckTolerance() error {
	for _, tol := range [...]float64{p.Tolerance, p.RelTolerance} {
		if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
			return fmt.Errorf("tolerance=%g rel=%g: %w", p.Tolerance, p.RelTolerance, ErrBadTolerance)
		}
	}
	if p.Tolerance == 0 && p.RelTolerance == 0 {
		return fmt.Errorf("tolerance=0 rel=0: %w", ErrBadTolerance)
	}

	return nil
}
