// Package simpson implements the composite Simpson 1/3 rule.
//
// Overview:
//
//	Simpson's rule fits a parabola through each pair of panels:
//
//	  ∫_{x₀}^{x₂} f ≈ h/3·(f(x₀) + 4f(x₁) + f(x₂))
//
//	Accumulated over [a, b] the weights follow 1, 4, 2, 4, …, 2, 4, 1.
//	The rule is exact for every polynomial of degree ≤ 3.
//
// Panel count:
//
//	The rule needs an even number of panels. An odd p.Subdivisions is
//	rounded UP to the next even count rather than rejected, so n = 1 runs
//	as n = 2 and n = 7 as n = 8. Evaluations are n+1 for the rounded n.
//
// Error estimate:
//
//	The composite truncation error is −(b−a)·h⁴/180·f⁽⁴⁾(ξ). With f⁽⁴⁾
//	bounded by the largest fourth difference of the samples, |Δ⁴yᵢ|/h⁴,
//
//	  ErrorEstimate = (b−a)/180 · max|Δ⁴yᵢ|
//
//	It needs n ≥ 4 (five samples); for n = 2 HasErrorEstimate is false.
//	The bound is exact for quartics and zero for cubics.
//
// Errors: same set as package trapezoid.
//
// Complexity: O(n) time, O(n) memory.
package simpson
