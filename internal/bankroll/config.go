package bankroll

import (
	"fmt"

	"github.com/lox/pokercore/internal/pokererr"
)

// Config describes one bankroll simulation batch: simulation_count
// independent random-walk trajectories over return_samples, starting from
// initial_capital.
type Config struct {
	InitialCapital       float64
	ReturnSamples        []float64
	MaxSteps             int
	ProfitExitMultiplier float64 // 0 disables the profit-exit stop
	SimulationCount      int
}

// Validate checks the config against the bankroll simulator's precondition,
// returning ErrInvalidConfig when the batch cannot be run.
func (c Config) Validate() error {
	if len(c.ReturnSamples) == 0 {
		return fmt.Errorf("%w: return_samples must be non-empty", pokererr.ErrInvalidConfig)
	}
	if c.InitialCapital <= 0 {
		return fmt.Errorf("%w: initial_capital must be positive, got %v", pokererr.ErrInvalidConfig, c.InitialCapital)
	}
	if c.MaxSteps == 0 {
		return fmt.Errorf("%w: max_steps must be non-zero", pokererr.ErrInvalidConfig)
	}
	if c.SimulationCount <= 0 {
		return fmt.Errorf("%w: simulation_count must be positive, got %d", pokererr.ErrInvalidConfig, c.SimulationCount)
	}
	return nil
}
