// Package adaptive defines configuration options and sentinel errors for
// the adaptive bisection integrator.
//
// Options:
//
//	– Rule:      points of the Gauss–Legendre panel rule (≥ 1, default 10).
//	– MaxPanels: hard cap on the panel count whatever Params.Subdivisions
//	             says (≥ 1, default MaxPanels).
//
// Errors (sentinel, all wrap core.ErrInvalidConfiguration):
//
//	– ErrBadMaxPanels if MaxPanels < 1.
//	– core.ErrBadOrder if Rule < 1.
package adaptive

import (
	"fmt"

	"github.com/katalvlaran/integ/core"
)

const (
	// DefaultRule is the panel rule order.
	DefaultRule = 10

	// MaxPanels is the default hard cap on live panels.
	MaxPanels = 1 << 16
)

// ErrBadMaxPanels indicates a panel cap below one.
var ErrBadMaxPanels = fmt.Errorf("%w: adaptive panel cap must be positive", core.ErrInvalidConfiguration)

// Options configures an adaptive Solver.
type Options struct {
	Rule      int // Gauss–Legendre points per panel
	MaxPanels int // hard cap on panels
}

// DefaultOptions returns Rule = DefaultRule and MaxPanels = MaxPanels.
func DefaultOptions() Options {
	return Options{Rule: DefaultRule, MaxPanels: MaxPanels}
}

// Option mutates Options.
type Option func(*Options)

// WithRule sets the number of Gauss–Legendre points per panel.
func WithRule(m int) Option {
	return func(o *Options) { o.Rule = m }
}

// WithMaxPanels sets the hard cap on panels.
func WithMaxPanels(k int) Option {
	return func(o *Options) { o.MaxPanels = k }
}

// validate checks the option ranges.
func (o Options) validate() error {
	if o.Rule < 1 {
		return fmt.Errorf("rule=%d: %w", o.Rule, core.ErrBadOrder)
	}
	if o.MaxPanels < 1 {
		return fmt.Errorf("max panels=%d: %w", o.MaxPanels, ErrBadMaxPanels)
	}

	return nil
}
