package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Equity.MaxWorkers != 8 {
		t.Errorf("MaxWorkers = %d, want 8", cfg.Equity.MaxWorkers)
	}
	if cfg.Bridge.Port != 8787 {
		t.Errorf("Port = %d, want 8787", cfg.Bridge.Port)
	}
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokercore.hcl")
	body := `
equity {
  max_workers = 4
}
bankroll {
  initial_capital = 50
  max_steps = 500
  profit_exit_multiplier = 2
  simulation_count = 1000
}
bridge {
  address = "0.0.0.0"
  port = 9000
}
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Equity.MaxWorkers != 4 {
		t.Errorf("MaxWorkers = %d, want 4", cfg.Equity.MaxWorkers)
	}
	if cfg.Bankroll.InitialCapital != 50 {
		t.Errorf("InitialCapital = %v, want 50", cfg.Bankroll.InitialCapital)
	}
	if cfg.Bridge.Address != "0.0.0.0" || cfg.Bridge.Port != 9000 {
		t.Errorf("Bridge = %+v, want 0.0.0.0:9000", cfg.Bridge)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidateRejectsBadPort(t *testing.T) {
	cfg := Default()
	cfg.Bridge.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}
