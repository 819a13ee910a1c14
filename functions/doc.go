// Package functions is the catalog of named integrands used by the tests,
// the examples and the benchmark driver.
//
// 1D (core.Function):
//
//	InvSqrt       f(x) = 1/√x            (singular at 0)
//	LogX          f(x) = ln x            (singular at 0)
//	Power{N}      f(x) = xᴺ
//	PolyX2Cos     f(x) = x²·cos x
//	Constant{C}   f(x) = C
//	Polynomial    f(x) = Σ cᵢ·xⁱ         (Horner)
//	T2Transform   g(t) = f(t²)·2t        (x = t² substitution)
//
// 2D (core.Function2D):
//
//	ExpXY2D          f(x, y) = e^(−x+y)
//	ProductXY2D      f(x, y) = x·y
//	SinXY2D          f(x, y) = sin(x+y)
//	SumSquaresXY2D   f(x, y) = x² + y²
//
// Every type is a small immutable value and safe for concurrent use.
// Registry maps string identifiers to constructors so callers that read
// problem descriptions from files can resolve them.
package functions
