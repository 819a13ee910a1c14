package montecarlo

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/integ/core"
)

// Name is the method name reported in results.
const Name = "MonteCarloUniform"

// Solver is uniform-sampling Monte Carlo. The zero value is ready to use.
type Solver struct{}

// New returns a Monte Carlo Solver.
func New() Solver { return Solver{} }

// Name returns "MonteCarloUniform".
func (Solver) Name() string { return Name }

// Solve estimates ∫_iv f with p.Samples uniform draws.
func (Solver) Solve(f core.Function, iv core.Interval, p core.Params) (core.Result, error) {
	// Stage 1: validate.
	if err := core.ValidateFixedGrid(f, iv); err != nil {
		return core.Result{Method: Name}, err
	}
	if err := p.CheckSamples(); err != nil {
		return core.Result{Method: Name}, err
	}

	// Stage 2: sample in batches, merging batch moments as they complete.
	var (
		n         = p.Samples
		src, seed = newSource(p)
		unif      = distuv.Uniform{Min: iv.A, Max: iv.B, Src: src}
		ev        = core.NewEvaluator(f)
		buf       = make([]float64, 0, min(n, batchSize))
		acc       moments
	)
	for range n {
		y, err := ev.At(unif.Rand())
		if err != nil {
			return core.Result{Method: Name, Evaluations: ev.Count(), Seed: seed, HasSeed: true}, err
		}
		buf = append(buf, y)
		if len(buf) == cap(buf) {
			acc.merge(buf)
			buf = buf[:0]
		}
	}
	acc.merge(buf)

	// Stage 3: (b−a)·mean and the standard error of the mean.
	length := iv.Len()
	res := core.Result{
		Value:       length * acc.mean,
		Evaluations: ev.Count(),
		Status:      core.Converged,
		Method:      Name,
		Seed:        seed,
		HasSeed:     true,
	}
	if n > 1 {
		res.ErrorEstimate = length * acc.stdDev() / math.Sqrt(float64(n))
		res.HasErrorEstimate = true
	}

	return res, nil
}

// batchSize bounds the sample buffer of one solve.
const batchSize = 1 << 12

// moments accumulates count, mean and the sum of squared deviations of
// batches, combined with the pairwise update of Chan, Golub and LeVeque.
type moments struct {
	n    float64
	mean float64
	m2   float64
}

func (m *moments) merge(batch []float64) {
	if len(batch) == 0 {
		return
	}
	nb := float64(len(batch))
	mb, vb := stat.MeanVariance(batch, nil)
	m2b := 0.0
	if len(batch) > 1 {
		m2b = vb * (nb - 1)
	}
	if m.n == 0 {
		m.n, m.mean, m.m2 = nb, mb, m2b
		return
	}

	total := m.n + nb
	delta := mb - m.mean
	m.mean += delta * nb / total
	m.m2 += m2b + delta*delta*m.n*nb/total
	m.n = total
}

// stdDev is the unbiased sample standard deviation.
func (m *moments) stdDev() float64 {
	if m.n < 2 {
		return 0
	}

	return math.Sqrt(m.m2 / (m.n - 1))
}

var _ core.Solver = Solver{}
