package core

import (
	"fmt"
	"math"
)

// Bound gives one inner-axis limit as a function of the outer coordinate.
// Bound functions must be pure and defined over the whole outer interval.
type Bound func(u float64) float64

// ConstBound returns a Bound that ignores its argument.
func ConstBound(c float64) Bound {
	return func(float64) float64 { return c }
}

// Axis names the outer integration variable of a Domain2D.
type Axis int

const (
	// AxisX: outer integral over x, inner over y ∈ [lo(x), hi(x)].
	AxisX Axis = iota

	// AxisY: outer integral over y, inner over x ∈ [lo(y), hi(y)].
	AxisY
)

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}

	return "x"
}

// Domain2D is a bounded region of the plane suited to nested integration.
//
// Two shapes are supported:
//   - rectangles, built with Rect: both axes are fixed intervals;
//   - normal regions, built with NewNormalDomain (y between two curves of x)
//     or NewNormalDomainY (x between two curves of y).
//
// The zero value is not usable; construct domains with the functions below.
type Domain2D struct {
	outer Interval
	inner Interval // rectangle inner range; ignored when lo/hi are set
	lo    Bound
	hi    Bound
	axis  Axis
	rect  bool
}

// Rect returns the axis-aligned rectangle x × y.
func Rect(x, y Interval) (Domain2D, error) {
	if err := x.Validate(); err != nil {
		return Domain2D{}, err
	}
	if err := y.Validate(); err != nil {
		return Domain2D{}, err
	}

	return Domain2D{outer: x, inner: y, axis: AxisX, rect: true}, nil
}

// NewNormalDomain returns {(x, y): x ∈ x, lo(x) ≤ y ≤ hi(x)}.
func NewNormalDomain(x Interval, lo, hi Bound) (Domain2D, error) {
	return newNormal(x, lo, hi, AxisX)
}

// NewNormalDomainY returns {(x, y): y ∈ y, lo(y) ≤ x ≤ hi(y)}.
func NewNormalDomainY(y Interval, lo, hi Bound) (Domain2D, error) {
	return newNormal(y, lo, hi, AxisY)
}

func newNormal(outer Interval, lo, hi Bound, axis Axis) (Domain2D, error) {
	if err := outer.Validate(); err != nil {
		return Domain2D{}, err
	}
	if lo == nil || hi == nil {
		return Domain2D{}, fmt.Errorf("nil bound function: %w", ErrBadDomain)
	}

	return Domain2D{outer: outer, lo: lo, hi: hi, axis: axis}, nil
}

// Validate reports whether the domain was built by one of the constructors.
func (d Domain2D) Validate() error {
	if !d.rect && (d.lo == nil || d.hi == nil) {
		return fmt.Errorf("domain has no inner bounds: %w", ErrBadDomain)
	}

	return d.outer.Validate()
}

// Outer returns the interval of the outer variable.
func (d Domain2D) Outer() Interval { return d.outer }

// OuterAxis returns the outer variable.
func (d Domain2D) OuterAxis() Axis { return d.axis }

// IsRect reports whether d is an axis-aligned rectangle.
func (d Domain2D) IsRect() bool { return d.rect }

// InnerInterval returns the inner-variable range for the outer coordinate u.
// For normal regions the bound functions are evaluated and the result is
// checked: NaN bounds or lo(u) > hi(u) yield an error wrapping ErrBadDomain.
func (d Domain2D) InnerInterval(u float64) (Interval, error) {
	if d.rect {
		return d.inner, nil
	}
	if d.lo == nil || d.hi == nil {
		return Interval{}, fmt.Errorf("domain has no inner bounds: %w", ErrBadDomain)
	}

	a, b := d.lo(u), d.hi(u)
	if math.IsNaN(a) || math.IsNaN(b) || a > b {
		return Interval{}, fmt.Errorf("inner bounds [%g, %g] at %s=%g: %w", a, b, d.axis, u, ErrBadDomain)
	}

	return Interval{A: a, B: b}, nil
}

// InnerRange samples the inner bounds at k+1 evenly spaced outer points and
// returns the smallest enclosing interval. It is meant for display; a
// domain without bounds yields the zero Interval.
func (d Domain2D) InnerRange(k int) Interval {
	if d.rect {
		return d.inner
	}
	if d.lo == nil || d.hi == nil {
		return Interval{}
	}
	if k < 1 {
		k = 1
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	step := d.outer.Len() / float64(k)
	for i := 0; i <= k; i++ {
		u := d.outer.A + float64(i)*step
		lo = math.Min(lo, d.lo(u))
		hi = math.Max(hi, d.hi(u))
	}

	return Interval{A: lo, B: hi}
}

// String renders the domain as "[x0, x1] × [y0, y1]" using InnerRange(5).
func (d Domain2D) String() string {
	in := d.InnerRange(5)
	if d.axis == AxisY {
		return fmt.Sprintf("%s × %s", in, d.outer)
	}

	return fmt.Sprintf("%s × %s", d.outer, in)
}
