package core

import (
	"fmt"
	"math"
)

// Interval is the closed integration range [A, B].
//
// Invariant: A <= B and neither bound is NaN. A == B is a valid degenerate
// interval (every integral over it is zero). Either bound may be infinite;
// Bounded reports whether the interval can be sampled on a fixed grid.
//
// Interval is a plain value: the fields are exported so literals are easy
// to write, and every solver calls Validate before using one.
type Interval struct {
	A float64 // lower bound
	B float64 // upper bound
}

// NewInterval returns [a, b] or ErrBadInterval when a > b or a bound is NaN.
func NewInterval(a, b float64) (Interval, error) {
	iv := Interval{A: a, B: b}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}

	return iv, nil
}

// MustInterval is NewInterval that panics on invalid bounds.
// Intended for package-level tables and tests with literal bounds.
func MustInterval(a, b float64) Interval {
	iv, err := NewInterval(a, b)
	if err != nil {
		panic(err)
	}

	return iv
}

// Validate checks the A <= B invariant.
func (iv Interval) Validate() error {
	if math.IsNaN(iv.A) || math.IsNaN(iv.B) {
		return fmt.Errorf("[%g, %g]: %w", iv.A, iv.B, ErrBadInterval)
	}
	if iv.A > iv.B {
		return fmt.Errorf("[%g, %g]: %w", iv.A, iv.B, ErrBadInterval)
	}

	return nil
}

// Bounded reports whether both bounds are finite.
func (iv Interval) Bounded() bool {
	return !math.IsInf(iv.A, 0) && !math.IsInf(iv.B, 0)
}

// Len returns B - A (+Inf for unbounded intervals).
func (iv Interval) Len() float64 { return iv.B - iv.A }

// Mid returns the midpoint (A + B) / 2.
func (iv Interval) Mid() float64 { return 0.5 * (iv.A + iv.B) }

// Degenerate reports whether A == B.
func (iv Interval) Degenerate() bool { return iv.A == iv.B }

// String renders the interval as "[a, b]".
func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.A, iv.B)
}

// ValidateFixedGrid is the shared pre-check of every fixed-grid method:
// f must be non-nil and iv must be valid and bounded.
func ValidateFixedGrid(f Function, iv Interval) error {
	if f == nil {
		return ErrNilFunction
	}
	if err := iv.Validate(); err != nil {
		return err
	}
	if !iv.Bounded() {
		return fmt.Errorf("%s: %w", iv, ErrUnboundedInterval)
	}

	return nil
}
