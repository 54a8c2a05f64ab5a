package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/pokercore/internal/config"
	"github.com/lox/pokercore/internal/wsbridge"
)

// BridgeCmd starts the websocket compute bridge, serving equity, luck,
// and bankroll requests to long-running clients.
type BridgeCmd struct {
	Config  string `help:"Path to an HCL config file" default:"config/pokercore.hcl"`
	Address string `help:"Override the configured bind address"`
	Port    int    `help:"Override the configured bind port"`
}

func (c *BridgeCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if c.Address != "" {
		cfg.Bridge.Address = c.Address
	}
	if c.Port != 0 {
		cfg.Bridge.Port = c.Port
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := log.New(os.Stderr)
	addr := fmt.Sprintf("%s:%d", cfg.Bridge.Address, cfg.Bridge.Port)
	srv := wsbridge.New(logger, cfg)
	logger.Info("starting bridge", "addr", addr)
	return srv.Start(addr)
}
