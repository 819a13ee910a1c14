// Package grid holds the uniform-grid sampling shared by the composite
// rules, together with the finite-difference derivative bounds they use
// as error estimates.
package grid

import (
	"math"

	"github.com/katalvlaran/integ/core"
)

// Sample evaluates f at the n+1 points xᵢ = A + i·h, h = (B−A)/n, with the
// last point pinned to B. It returns the samples and h.
//
// On the first non-finite value Sample stops and returns the evaluator's
// error; the evaluator's count then reflects the failing evaluation.
//
// Complexity: O(n) time, O(n) memory.
func Sample(ev *core.Evaluator, iv core.Interval, n int) ([]float64, float64, error) {
	var (
		h   = iv.Len() / float64(n)
		ys  = make([]float64, n+1)
		x   float64
		y   float64
		i   int
		err error
	)
	for i = 0; i <= n; i++ {
		x = iv.A + float64(i)*h
		if i == n {
			x = iv.B // avoid accumulated rounding at the right end
		}
		if y, err = ev.At(x); err != nil {
			return nil, h, err
		}
		ys[i] = y
	}

	return ys, h, nil
}

// MaxAbsDiff returns max |Δᵏyᵢ| over the k-th forward differences of ys.
// ok is false when there are not enough samples (len(ys) <= k).
//
// Δᵏyᵢ/hᵏ approximates the k-th derivative near xᵢ, so composite rules can
// bound their truncation error without extra evaluations.
//
// Complexity: O(k·len(ys)) time, O(len(ys)) memory.
func MaxAbsDiff(ys []float64, k int) (float64, bool) {
	if len(ys) <= k {
		return 0, false
	}

	d := make([]float64, len(ys))
	copy(d, ys)
	m := len(d)
	for order := 0; order < k; order++ {
		m--
		for i := 0; i < m; i++ {
			d[i] = d[i+1] - d[i]
		}
	}

	var worst float64
	for i := 0; i < m; i++ {
		worst = math.Max(worst, math.Abs(d[i]))
	}

	return worst, true
}
