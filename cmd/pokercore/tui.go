package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/pokercore/internal/config"
	"github.com/lox/pokercore/internal/tui"
)

// TUICmd launches the interactive equity explorer.
type TUICmd struct {
	Config string `help:"Path to an HCL config file" default:"config/pokercore.hcl"`
}

func (c *TUICmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	p := tea.NewProgram(tui.New(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
