package bankroll

import (
	"errors"
	"testing"

	"github.com/lox/pokercore/internal/pokererr"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{InitialCapital: 100, ReturnSamples: []float64{-1, 1}, MaxSteps: 10, SimulationCount: 10}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	cases := []Config{
		{InitialCapital: 100, ReturnSamples: nil, MaxSteps: 10, SimulationCount: 10},
		{InitialCapital: 0, ReturnSamples: []float64{1}, MaxSteps: 10, SimulationCount: 10},
		{InitialCapital: 100, ReturnSamples: []float64{1}, MaxSteps: 0, SimulationCount: 10},
		{InitialCapital: 100, ReturnSamples: []float64{1}, MaxSteps: 10, SimulationCount: 0},
	}
	for i, c := range cases {
		if err := c.Validate(); !errors.Is(err, pokererr.ErrInvalidConfig) {
			t.Errorf("case %d: Validate() = %v, want ErrInvalidConfig", i, err)
		}
	}
}

// TestSimulateIsReproducible uses capital=100,
// return_samples=[-1,-1,2,5,-1], max_steps=10000, simulation_count=2500,
// profit_exit_multiplier=0 ("never exit"). The same seed must reproduce
// identical aggregate counts.
func TestSimulateIsReproducible(t *testing.T) {
	cfg := Config{
		InitialCapital:       100,
		ReturnSamples:        []float64{-1, -1, 2, 5, -1},
		MaxSteps:             10000,
		ProfitExitMultiplier: 0,
		SimulationCount:      2500,
	}

	r1, err := Simulate(cfg, 42)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	r2, err := Simulate(cfg, 42)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if r1 != r2 {
		t.Errorf("Simulate(seed=42) not reproducible: %+v vs %+v", r1, r2)
	}

	if r1.ProfitExited != 0 {
		t.Errorf("ProfitExited = %d, want 0 with ProfitExitMultiplier=0 (never exit)", r1.ProfitExited)
	}

	sum := r1.BankruptcyRate + r1.SurvivalRate + r1.ProfitableRate
	if diff := sum - 1.0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("rates sum to %v, want 1", sum)
	}
}

func TestSimulateAllBankruptWithOnlyLosingSamples(t *testing.T) {
	cfg := Config{
		InitialCapital:  1,
		ReturnSamples:   []float64{-1},
		MaxSteps:        100,
		SimulationCount: 50,
	}
	r, err := Simulate(cfg, 1)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if r.Bankrupt != 50 {
		t.Errorf("Bankrupt = %d, want 50", r.Bankrupt)
	}
	if r.BankruptcyRate != 1 {
		t.Errorf("BankruptcyRate = %v, want 1", r.BankruptcyRate)
	}
}

func TestSimulateProfitExit(t *testing.T) {
	cfg := Config{
		InitialCapital:       10,
		ReturnSamples:        []float64{10},
		MaxSteps:             5,
		ProfitExitMultiplier: 2,
		SimulationCount:      10,
	}
	r, err := Simulate(cfg, 7)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if r.ProfitExited != 10 {
		t.Errorf("ProfitExited = %d, want 10 (every trajectory doubles on step 1)", r.ProfitExited)
	}
}

func TestSimulateRejectsInvalidConfig(t *testing.T) {
	_, err := Simulate(Config{}, 1)
	if !errors.Is(err, pokererr.ErrInvalidConfig) {
		t.Errorf("Simulate() = %v, want ErrInvalidConfig", err)
	}
}
