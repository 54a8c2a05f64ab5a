package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokercore/internal/card"
	"github.com/lox/pokercore/internal/config"
	"github.com/lox/pokercore/internal/equity"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// EquityCmd computes exhaustive multi-way equity for a comma-separated
// list of hole-card pairs against an optional partial board.
type EquityCmd struct {
	Hands  []string `arg:"" help:"Hole-card pairs, e.g. 'AsAc' 'KdKh'"`
	Board  string   `short:"b" help:"Community cards dealt so far, e.g. 'Td7s2h'"`
	Config string   `help:"Path to an HCL config file" default:"config/pokercore.hcl"`
}

func (c *EquityCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	holes := make([][2]card.Card, 0, len(c.Hands))
	for i, h := range c.Hands {
		cards, err := card.ParseAll(h)
		if err != nil {
			return fmt.Errorf("hand %d (%q): %w", i+1, h, err)
		}
		if len(cards) != 2 {
			return fmt.Errorf("hand %d (%q): must be exactly 2 cards, got %d", i+1, h, len(cards))
		}
		holes = append(holes, [2]card.Card{cards[0], cards[1]})
	}

	var board []card.Card
	if c.Board != "" {
		parsed, err := card.ParseAll(c.Board)
		if err != nil {
			return fmt.Errorf("board %q: %w", c.Board, err)
		}
		board = parsed
	}

	result, err := equity.Compute(holes, board, equity.WithMaxWorkers(cfg.Equity.MaxWorkers))
	if err != nil {
		return fmt.Errorf("computing equity: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n", headerStyle.Render("hand"), headerStyle.Render("equity"), headerStyle.Render("never-lost"))
	for i, hole := range holes {
		handStr := hole[0].String() + hole[1].String()
		fmt.Fprintf(w, "%s\t%s\t%v\n",
			handStyle.Render(handStr),
			winStyle.Render(fmt.Sprintf("%.2f%%", result.Equity(i)*100)),
			result.NeverLost(i))
	}
	w.Flush()

	fmt.Printf("\n%d boards enumerated\n", result.TrialCount())
	return nil
}
