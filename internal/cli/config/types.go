// Package config loads the integ CLI configuration from defaults, an
// optional YAML file, INTEG_* environment variables and command-line flags.
package config

import (
	"github.com/katalvlaran/integ/core"
)

// Defaults, matching the demo runs.
const (
	DefaultOutput       = "table"
	DefaultSubdivisions = 2000
	DefaultSamples      = 200000
	DefaultSeed         = 42
	DefaultParallelism  = 4
)

// DefaultSolvers are the 1D solvers run when none are configured.
var DefaultSolvers = []string{"trapezoid", "simpson", "gauss-legendre", "monte-carlo", "adaptive"}

// DefaultPairs are the nested pairs run on 2D problems when none are configured.
var DefaultPairs = []string{"trapezoid:trapezoid", "simpson:simpson", "gauss-legendre:gauss-legendre"}

// Config holds all CLI settings.
type Config struct {
	Verbose bool   `koanf:"verbose"`
	Output  string `koanf:"output"`

	// Suite is a YAML suite file; empty runs the builtin suite.
	Suite   string   `koanf:"suite"`
	Solvers []string `koanf:"solvers"`
	Pairs   []string `koanf:"pairs"`

	Subdivisions int     `koanf:"subdivisions"`
	Samples      int     `koanf:"samples"`
	Seed         uint64  `koanf:"seed"`
	Unseeded     bool    `koanf:"unseeded"`
	Tolerance    float64 `koanf:"tolerance"`
	RelTolerance float64 `koanf:"rel_tolerance"`
	Order        int     `koanf:"order"`

	Parallelism int    `koanf:"parallelism"`
	MetricsFile string `koanf:"metrics_file"`
}

// Params converts the solver settings to core.Params.
func (c *Config) Params() core.Params {
	seed := core.WithSeed(c.Seed)
	if c.Unseeded {
		seed = core.WithoutSeed()
	}

	return core.NewParams(
		core.WithSubdivisions(c.Subdivisions),
		core.WithSamples(c.Samples),
		core.WithTolerance(c.Tolerance),
		core.WithRelTolerance(c.RelTolerance),
		core.WithOrder(c.Order),
		seed,
	)
}
