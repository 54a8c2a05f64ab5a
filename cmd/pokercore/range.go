package main

import (
	"fmt"

	"github.com/lox/pokercore/internal/card"
	"github.com/lox/pokercore/internal/config"
	"github.com/lox/pokercore/internal/equity"
)

// RangeCmd computes range-vs-range equity: each side is expanded via
// internal/equity.ExpandRange into its concrete hole-card combos, and the
// reported equity is the trial-weighted average over every hero/villain
// combo pair that doesn't clash with the other combo or the board.
type RangeCmd struct {
	Ranges []string `arg:"" help:"Two range notations, e.g. 'AA,KK' 'TT+'" required:""`
	Board  string   `short:"b" help:"Community cards dealt so far, e.g. 'Td7s2h'"`
	Config string   `help:"Path to an HCL config file" default:"config/pokercore.hcl"`
}

func (c *RangeCmd) Run() error {
	if len(c.Ranges) != 2 {
		return fmt.Errorf("range requires exactly 2 range notations, got %d", len(c.Ranges))
	}

	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	heroCombos, err := equity.ExpandRange(c.Ranges[0])
	if err != nil {
		return fmt.Errorf("hero range %q: %w", c.Ranges[0], err)
	}
	villainCombos, err := equity.ExpandRange(c.Ranges[1])
	if err != nil {
		return fmt.Errorf("villain range %q: %w", c.Ranges[1], err)
	}

	var board []card.Card
	if c.Board != "" {
		parsed, err := card.ParseAll(c.Board)
		if err != nil {
			return fmt.Errorf("board %q: %w", c.Board, err)
		}
		board = parsed
	}

	var heroWins, villainWins, trials int64
	matchups := 0
	for _, hero := range heroCombos {
		for _, villain := range villainCombos {
			if combosClash(hero, villain) || clashesWithBoard(hero, board) || clashesWithBoard(villain, board) {
				continue
			}
			result, err := equity.Compute([][2]card.Card{hero, villain}, board, equity.WithMaxWorkers(cfg.Equity.MaxWorkers))
			if err != nil {
				return fmt.Errorf("computing %s vs %s: %w", describeCombo(hero), describeCombo(villain), err)
			}
			heroWins += result.Wins(0)
			villainWins += result.Wins(1)
			trials += result.TrialCount()
			matchups++
		}
	}

	if matchups == 0 {
		return fmt.Errorf("no valid hero/villain combo pairs in these ranges")
	}

	ties := trials - heroWins - villainWins
	heroEquity := (float64(heroWins) + float64(ties)/2) / float64(trials)
	villainEquity := 1 - heroEquity

	fmt.Printf("hero range %q:    %.2f%% equity\n", c.Ranges[0], heroEquity*100)
	fmt.Printf("villain range %q: %.2f%% equity\n", c.Ranges[1], villainEquity*100)
	fmt.Printf("%d combo matchups, %d boards enumerated\n", matchups, trials)
	return nil
}

func combosClash(a, b [2]card.Card) bool {
	return a[0] == b[0] || a[0] == b[1] || a[1] == b[0] || a[1] == b[1]
}

func clashesWithBoard(combo [2]card.Card, board []card.Card) bool {
	for _, c := range board {
		if combo[0] == c || combo[1] == c {
			return true
		}
	}
	return false
}

func describeCombo(combo [2]card.Card) string {
	return combo[0].String() + combo[1].String()
}
