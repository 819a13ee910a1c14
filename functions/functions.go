package functions

import (
	"fmt"
	"math"

	"github.com/katalvlaran/integ/core"
)

// InvSqrt is f(x) = 1/√x. It is +Inf at 0 and NaN for x < 0.
type InvSqrt struct{}

// At evaluates 1/√x.
func (InvSqrt) At(x float64) float64 { return 1 / math.Sqrt(x) }

func (InvSqrt) String() string { return "x^(-1/2)" }

// LogX is f(x) = ln x. It is −Inf at 0 and NaN for x < 0.
type LogX struct{}

// At evaluates ln x.
func (LogX) At(x float64) float64 { return math.Log(x) }

func (LogX) String() string { return "log(x)" }

// Power is f(x) = x^N for an integer exponent N.
type Power struct {
	N int
}

// At evaluates x^N.
func (p Power) At(x float64) float64 { return math.Pow(x, float64(p.N)) }

func (p Power) String() string { return fmt.Sprintf("x^%d", p.N) }

// PolyX2Cos is f(x) = x²·cos x.
type PolyX2Cos struct{}

// At evaluates x²·cos x.
func (PolyX2Cos) At(x float64) float64 { return x * x * math.Cos(x) }

func (PolyX2Cos) String() string { return "x^2 cos(x)" }

// Constant is f(x) = C.
type Constant struct {
	C float64
}

// At returns C.
func (c Constant) At(float64) float64 { return c.C }

func (c Constant) String() string { return fmt.Sprintf("%g", c.C) }

// Polynomial is f(x) = Coeffs[0] + Coeffs[1]·x + … + Coeffs[k]·x^k.
type Polynomial struct {
	Coeffs []float64
}

// At evaluates the polynomial with Horner's scheme.
func (p Polynomial) At(x float64) float64 {
	var s float64
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		s = s*x + p.Coeffs[i]
	}

	return s
}

// Degree returns the index of the highest non-zero coefficient, or -1 for
// the zero polynomial.
func (p Polynomial) Degree() int {
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		if p.Coeffs[i] != 0 {
			return i
		}
	}

	return -1
}

// Integral returns the exact ∫_a^b p(x) dx.
func (p Polynomial) Integral(a, b float64) float64 {
	// antiderivative P(x) = Σ cᵢ·x^(i+1)/(i+1), evaluated with Horner as well
	anti := func(x float64) float64 {
		var s float64
		for i := len(p.Coeffs) - 1; i >= 0; i-- {
			s = s*x + p.Coeffs[i]/float64(i+1)
		}
		return s * x
	}

	return anti(b) - anti(a)
}

func (p Polynomial) String() string { return fmt.Sprintf("poly%v", p.Coeffs) }

// T2Transform rewrites ∫_0^1 f(x) dx as ∫_0^1 f(t²)·2t dt.
//
// The substitution removes integrable endpoint singularities at 0 such as
// ln x or 1/√x. At t == 0 the product is replaced by AtZero, the limit of
// f(t²)·2t as t → 0⁺ (0 for ln x, 2 for 1/√x).
type T2Transform struct {
	Base   core.Function
	AtZero float64
	Label  string // optional display name
}

// At evaluates f(t²)·2t, or AtZero when t == 0. Without a Base it is NaN.
func (t T2Transform) At(u float64) float64 {
	if u == 0 {
		return t.AtZero
	}
	if t.Base == nil {
		return math.NaN()
	}

	return t.Base.At(u*u) * 2 * u
}

func (t T2Transform) String() string {
	if t.Label != "" {
		return t.Label
	}

	return fmt.Sprintf("T2Transform(%v)", t.Base)
}

// ExpXY2D is f(x, y) = e^(−x+y).
type ExpXY2D struct{}

// At evaluates e^(−x+y).
func (ExpXY2D) At(x, y float64) float64 { return math.Exp(-x + y) }

func (ExpXY2D) String() string { return "exp(-x+y)" }

// ProductXY2D is f(x, y) = x·y.
type ProductXY2D struct{}

// At evaluates x·y.
func (ProductXY2D) At(x, y float64) float64 { return x * y }

func (ProductXY2D) String() string { return "x*y" }

// SinXY2D is f(x, y) = sin(x+y).
type SinXY2D struct{}

// At evaluates sin(x+y).
func (SinXY2D) At(x, y float64) float64 { return math.Sin(x + y) }

func (SinXY2D) String() string { return "sin(x+y)" }

// SumSquaresXY2D is f(x, y) = x² + y².
type SumSquaresXY2D struct{}

// At evaluates x² + y².
func (SumSquaresXY2D) At(x, y float64) float64 { return x*x + y*y }

func (SumSquaresXY2D) String() string { return "x^2+y^2" }

// compile-time interface checks
var (
	_ core.Function   = InvSqrt{}
	_ core.Function   = LogX{}
	_ core.Function   = Power{}
	_ core.Function   = PolyX2Cos{}
	_ core.Function   = Constant{}
	_ core.Function   = Polynomial{}
	_ core.Function   = T2Transform{}
	_ core.Function2D = ExpXY2D{}
	_ core.Function2D = ProductXY2D{}
	_ core.Function2D = SinXY2D{}
	_ core.Function2D = SumSquaresXY2D{}
)
