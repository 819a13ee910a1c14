package core

// Function is a pure mapping ℝ→ℝ.
//
// Implementations must be free of side effects; solvers may evaluate them
// in any order and any number of times. A function may be undefined at
// isolated points (e.g. 1/√x at 0); returning NaN or ±Inf there makes the
// solver fail with ErrDomainEvaluation.
type Function interface {
	At(x float64) float64
}

// Func adapts an ordinary func(float64) float64 to Function.
type Func func(x float64) float64

// At calls f(x).
func (f Func) At(x float64) float64 { return f(x) }

// Function2D is a pure mapping ℝ²→ℝ.
type Function2D interface {
	At(x, y float64) float64
}

// Func2D adapts an ordinary func(x, y float64) float64 to Function2D.
type Func2D func(x, y float64) float64

// At calls f(x, y).
func (f Func2D) At(x, y float64) float64 { return f(x, y) }
