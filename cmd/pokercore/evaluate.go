package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokercore/internal/card"
	"github.com/lox/pokercore/internal/evaluator"
)

var handStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))

// EvaluateCmd evaluates a single 5-7 card hand and prints its category and
// description.
type EvaluateCmd struct {
	Cards string `arg:"" help:"Cards to evaluate, e.g. 'AsKsQsJsTs' (5-7 cards, no spaces)"`
}

func (c *EvaluateCmd) Run() error {
	cards, err := card.ParseAll(c.Cards)
	if err != nil {
		return fmt.Errorf("parsing cards: %w", err)
	}

	rank, err := evaluator.Evaluate(cards)
	if err != nil {
		return fmt.Errorf("evaluating hand: %w", err)
	}

	fmt.Printf("%s: %s\n", handStyle.Render(c.Cards), rank.Describe())
	return nil
}
