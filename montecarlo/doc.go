// Package montecarlo implements plain Monte Carlo integration with uniform
// sampling.
//
// 🚀 What is it?
//
//	Draw n independent points Xᵢ ~ U(a, b) and estimate
//
//	  ∫_a^b f ≈ (b−a) · mean(f(Xᵢ))
//
//	with the standard error of the mean as error estimate:
//
//	  ErrorEstimate = (b−a) · stddev(f(Xᵢ)) / √n      (unbiased stddev)
//
//	The estimate is probabilistic: roughly 68% of runs land within one
//	ErrorEstimate of the true value. It shrinks like 1/√n. A single sample
//	(n = 1) has no error estimate.
//
// ✨ Reproducibility:
//   - The random state lives inside each Solve call; nothing is shared.
//   - core.WithSeed(s) makes a call bit-reproducible: the same f, interval,
//     sample count and seed always give the same Result.
//   - Without a seed each call draws a fresh one.
//   - Result.Seed always holds the seed that was used, so an unseeded run
//     can be repeated with core.WithSeed(res.Seed).
//
// Sampling uses gonum's distuv.Uniform over a PCG source (math/rand/v2).
// Samples are buffered in fixed-size batches; each batch's mean and
// variance come from gonum's stat.MeanVariance and are merged into running
// moments.
//
// Errors:
//   - core.ErrNilFunction, core.ErrBadInterval, core.ErrUnboundedInterval,
//     core.ErrBadSamples before any evaluation.
//   - *core.EvaluationError when a sample is not finite.
//
// Complexity: O(n) time, O(1) memory (one batch buffer).
package montecarlo
