package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/pokercore/internal/bankroll"
	"github.com/lox/pokercore/internal/config"
)

// BankrollCmd runs a bankroll Monte-Carlo batch and prints the aggregate
// outcome rates and final-capital summary. InitialCapital, MaxSteps, and
// SimulationCount fall back to the loaded config's bankroll block when
// left unset (zero); ProfitExitMultiplier's zero value is itself the
// "never exit on profit" sentinel, so it is never backfilled.
type BankrollCmd struct {
	Config               string    `help:"Path to an HCL config file" default:"config/pokercore.hcl"`
	InitialCapital       float64   `help:"Starting capital in buy-ins (default from config)"`
	ReturnSamples        []float64 `help:"Per-step additive return samples" required:""`
	MaxSteps             int       `help:"Maximum steps per trajectory (default from config)"`
	ProfitExitMultiplier float64   `help:"Exit on profit at capital >= initial*multiplier (0 disables)"`
	SimulationCount      int       `help:"Number of independent trajectories (default from config)"`
	Seed                 int64     `help:"Batch seed for reproducibility" default:"1"`
}

func (c *BankrollCmd) Run() error {
	defaults, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cfg := bankroll.Config{
		InitialCapital:       c.InitialCapital,
		ReturnSamples:        c.ReturnSamples,
		MaxSteps:             c.MaxSteps,
		ProfitExitMultiplier: c.ProfitExitMultiplier,
		SimulationCount:      c.SimulationCount,
	}
	if cfg.InitialCapital == 0 {
		cfg.InitialCapital = defaults.Bankroll.InitialCapital
	}
	if cfg.MaxSteps == 0 {
		cfg.MaxSteps = defaults.Bankroll.MaxSteps
	}
	if cfg.SimulationCount == 0 {
		cfg.SimulationCount = defaults.Bankroll.SimulationCount
	}

	logger := log.New(os.Stderr)
	result, err := bankroll.Simulate(cfg, c.Seed, bankroll.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("running bankroll simulation: %w", err)
	}

	fmt.Printf("simulations:     %d\n", result.SimulationCount)
	fmt.Printf("bankrupt:        %d (%.2f%%)\n", result.Bankrupt, result.BankruptcyRate*100)
	fmt.Printf("survived to cap: %d (%.2f%%)\n", result.SurvivedToCap, result.SurvivalRate*100)
	fmt.Printf("profit exited:   %d (%.2f%%)\n", result.ProfitExited, result.ProfitableRate*100)
	fmt.Printf("mean final capital:   %.2f\n", result.MeanFinalCapital)
	fmt.Printf("median final capital: %.2f\n", result.MedianFinalCapital)
	return nil
}
