package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/integ/internal/bench"
	"github.com/katalvlaran/integ/internal/report"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks settings that can be rejected before any solver runs.
// Numeric solver parameters are left to the solvers themselves.
func (c *Config) Validate() error {
	if _, err := report.ParseFormat(c.Output); err != nil {
		return fmt.Errorf("output: %w", errors.Join(ErrInvalidConfig, err))
	}
	if len(c.Solvers) == 0 && len(c.Pairs) == 0 {
		return fmt.Errorf("no solvers or pairs selected: %w", ErrInvalidConfig)
	}
	for _, id := range c.Solvers {
		if _, err := bench.NewSolver(id); err != nil {
			return fmt.Errorf("solvers: %w", errors.Join(ErrInvalidConfig, err))
		}
	}
	for _, pair := range c.Pairs {
		if _, err := bench.NewPair(pair); err != nil {
			return fmt.Errorf("pairs: %w", errors.Join(ErrInvalidConfig, err))
		}
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("parallelism=%d must be at least 1: %w", c.Parallelism, ErrInvalidConfig)
	}

	return nil
}
