// Package gausslegendre implements fixed-order Gauss–Legendre quadrature.
//
// 🚀 What is it?
//
//	An m-point rule picks the m roots tᵢ of the Legendre polynomial Pₘ on
//	[−1, 1] and matching weights wᵢ so that Σ wᵢ·g(tᵢ) is exact for every
//	polynomial g of degree ≤ 2m−1. For [a, b] the standard affine map is
//
//	  xᵢ = (a+b)/2 + (b−a)/2·tᵢ,   ∫_a^b f ≈ (b−a)/2 · Σ wᵢ·f(xᵢ)
//
// ✨ Tradeoff versus composite rules:
//   - exactly m evaluations whatever the interval width;
//   - very high accuracy per evaluation on smooth integrands;
//   - no subdivision knob, and nodes never touch the endpoints, so
//     integrable endpoint singularities (1/√x, ln x) are never sampled.
//
// Nodes and weights come from gonum's quad.Legendre for any order ≥ 1; the
// solver caches the canonical rule for its construction order.
//
// Order selection:
//
//	New(order) fixes the default order. A positive p.Order overrides it for
//	one call; p.Order <= 0 keeps the default.
//
// Error estimate: none. HasErrorEstimate is always false; comparing against
// a second rule would change the fixed evaluation count.
//
// Errors:
//   - core.ErrBadOrder from New when order < 1.
//   - core.ErrNilFunction, core.ErrBadInterval, core.ErrUnboundedInterval.
//   - *core.EvaluationError when a node value is not finite.
package gausslegendre
