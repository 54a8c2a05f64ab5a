package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/pokercore/internal/luck"
)

// LuckCmd scores a sequence of "equity:outcome" samples and prints the
// z-score and tail p-values.
type LuckCmd struct {
	Samples []string `arg:"" help:"Samples as 'equity:outcome', e.g. '0.8:0' '0.8:1' '0.5:0.5'"`
}

func (c *LuckCmd) Run() error {
	scorer := luck.NewScorer()
	for i, s := range c.Samples {
		p, a, err := parseSample(s)
		if err != nil {
			return fmt.Errorf("sample %d (%q): %w", i+1, s, err)
		}
		if err := scorer.Add(p, a); err != nil {
			return fmt.Errorf("sample %d (%q): %w", i+1, s, err)
		}
	}

	z, ok := scorer.Score()
	if !ok {
		fmt.Println("no informative samples (all had zero variance)")
		return nil
	}
	upper, lower, twoSided, _ := scorer.Tails()

	fmt.Printf("z = %.4f\n", z)
	fmt.Printf("upper-tail p = %.4f\n", upper)
	fmt.Printf("lower-tail p = %.4f\n", lower)
	fmt.Printf("two-sided p  = %.4f\n", twoSided)
	return nil
}

func parseSample(s string) (p, a float64, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected 'equity:outcome'")
	}
	p, err = strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid equity: %w", err)
	}
	a, err = strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid outcome: %w", err)
	}
	return p, a, nil
}
