// Package config loads pokercore's HCL configuration file, grounded on
// the teacher's internal/server.LoadServerConfig (hclparse + gohcl.DecodeBody,
// missing-file-means-defaults, field-by-field default backfill).
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokercore/internal/pokererr"
)

// Config is pokercore's top-level configuration: defaults for the equity
// engine's worker pool, the bankroll simulator, and the websocket bridge.
type Config struct {
	Equity   EquitySettings   `hcl:"equity,block"`
	Bankroll BankrollSettings `hcl:"bankroll,block"`
	Bridge   BridgeSettings   `hcl:"bridge,block"`
}

// EquitySettings controls the exhaustive equity engine.
type EquitySettings struct {
	MaxWorkers int `hcl:"max_workers,optional"`
}

// BankrollSettings seeds default bankroll.Config values for the CLI and
// the websocket bridge when a request omits them.
type BankrollSettings struct {
	InitialCapital       float64 `hcl:"initial_capital,optional"`
	MaxSteps             int     `hcl:"max_steps,optional"`
	ProfitExitMultiplier float64 `hcl:"profit_exit_multiplier,optional"`
	SimulationCount      int     `hcl:"simulation_count,optional"`
}

// BridgeSettings controls the websocket compute bridge server.
type BridgeSettings struct {
	Address string `hcl:"address,optional"`
	Port    int    `hcl:"port,optional"`
}

// Default returns pokercore's built-in configuration, used whenever no
// config file is present on disk.
func Default() *Config {
	return &Config{
		Equity: EquitySettings{
			MaxWorkers: 8,
		},
		Bankroll: BankrollSettings{
			InitialCapital:       100,
			MaxSteps:             10000,
			ProfitExitMultiplier: 0,
			SimulationCount:      10000,
		},
		Bridge: BridgeSettings{
			Address: "localhost",
			Port:    8787,
		},
	}
}

// Load reads and decodes an HCL configuration file. A missing file is not
// an error: it yields Default().
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parsing %s: %s", pokererr.ErrInvalidConfig, filename, diags.Error())
	}

	cfg := Default()
	diags = gohcl.DecodeBody(file.Body, nil, cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: decoding %s: %s", pokererr.ErrInvalidConfig, filename, diags.Error())
	}

	if cfg.Equity.MaxWorkers <= 0 {
		cfg.Equity.MaxWorkers = 8
	}
	if cfg.Bankroll.InitialCapital <= 0 {
		cfg.Bankroll.InitialCapital = 100
	}
	if cfg.Bankroll.MaxSteps <= 0 {
		cfg.Bankroll.MaxSteps = 10000
	}
	if cfg.Bankroll.SimulationCount <= 0 {
		cfg.Bankroll.SimulationCount = 10000
	}
	if cfg.Bridge.Address == "" {
		cfg.Bridge.Address = "localhost"
	}
	if cfg.Bridge.Port == 0 {
		cfg.Bridge.Port = 8787
	}

	return cfg, nil
}

// Validate checks that a Config's values are usable.
func (c *Config) Validate() error {
	if c.Equity.MaxWorkers <= 0 {
		return fmt.Errorf("%w: equity.max_workers must be positive", pokererr.ErrInvalidConfig)
	}
	if c.Bridge.Port < 1 || c.Bridge.Port > 65535 {
		return fmt.Errorf("%w: bridge.port out of range: %d", pokererr.ErrInvalidConfig, c.Bridge.Port)
	}
	if c.Bankroll.InitialCapital <= 0 {
		return fmt.Errorf("%w: bankroll.initial_capital must be positive", pokererr.ErrInvalidConfig)
	}
	if c.Bankroll.MaxSteps <= 0 {
		return fmt.Errorf("%w: bankroll.max_steps must be positive", pokererr.ErrInvalidConfig)
	}
	if c.Bankroll.SimulationCount <= 0 {
		return fmt.Errorf("%w: bankroll.simulation_count must be positive", pokererr.ErrInvalidConfig)
	}
	return nil
}
