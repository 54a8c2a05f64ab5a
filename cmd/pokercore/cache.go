package main

import (
	"fmt"
	"os"

	"github.com/lox/pokercore/internal/card"
	"github.com/lox/pokercore/internal/preflopcache"
)

// CacheCmd groups the preflop equity cache build and query subcommands.
type CacheCmd struct {
	Build CacheBuildCmd `cmd:"" help:"Build the preflop equity cache and write it to disk"`
	Query CacheQueryCmd `cmd:"" help:"Query hero/villain win-lose-tie counts from a cache file"`
}

// CacheBuildCmd drives internal/preflopcache.Build and writes the binary
// blob, doing the same job as cmd/gen-preflop-cache for ad hoc rebuilds
// from the main binary.
type CacheBuildCmd struct {
	Output string `help:"Output path for the binary cache" default:"preflop.bin"`
}

func (c *CacheBuildCmd) Run() error {
	cache, err := preflopcache.Build()
	if err != nil {
		return fmt.Errorf("building cache: %w", err)
	}
	if err := os.WriteFile(c.Output, cache.Dump(), 0o644); err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	fmt.Printf("wrote %d entries to %s\n", cache.Len(), c.Output)
	return nil
}

// CacheQueryCmd loads a cache file and looks up one hero/villain matchup.
type CacheQueryCmd struct {
	File    string `arg:"" help:"Path to a preflop.bin cache file"`
	Hero    string `arg:"" help:"Hero's hole cards, e.g. 'AsAc'"`
	Villain string `arg:"" help:"Villain's hole cards, e.g. 'KdKh'"`
}

func (c *CacheQueryCmd) Run() error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("reading cache file: %w", err)
	}
	cache, err := preflopcache.Load(data)
	if err != nil {
		return fmt.Errorf("loading cache: %w", err)
	}

	hero, err := card.ParseAll(c.Hero)
	if err != nil || len(hero) != 2 {
		return fmt.Errorf("hero must be exactly 2 cards")
	}
	villain, err := card.ParseAll(c.Villain)
	if err != nil || len(villain) != 2 {
		return fmt.Errorf("villain must be exactly 2 cards")
	}

	win, lose, tie, ok := cache.GetWinLose([2]card.Card{hero[0], hero[1]}, [2]card.Card{villain[0], villain[1]})
	if !ok {
		fmt.Println("matchup not found in cache")
		return nil
	}

	total := win + lose + tie
	fmt.Printf("hero win:  %d (%.2f%%)\n", win, float64(win)/float64(total)*100)
	fmt.Printf("villain win: %d (%.2f%%)\n", lose, float64(lose)/float64(total)*100)
	fmt.Printf("tie:       %d (%.2f%%)\n", tie, float64(tie)/float64(total)*100)
	return nil
}
