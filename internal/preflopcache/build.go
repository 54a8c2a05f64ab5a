package preflopcache

import (
	"fmt"
	"sort"

	"github.com/lox/pokercore/internal/card"
	"github.com/lox/pokercore/internal/equity"
)

// Build enumerates every canonical pair of disjoint hole-card pairs drawn
// from the 52-card deck, drives the Equity Engine over each to fill in
// hero_wins/villain_wins/ties, and returns the resulting Cache. This is the
// one-shot offline build spec.md describes; cmd/gen-preflop-cache is its
// command-line driver.
func Build() (*Cache, error) {
	deck := allCards()
	seen := make(map[uint64]bool)
	var entries []Entry

	for i := 0; i < len(deck); i++ {
		for j := i + 1; j < len(deck); j++ {
			heroPair := [2]card.Card{deck[i], deck[j]}
			for k := 0; k < len(deck); k++ {
				if k == i || k == j {
					continue
				}
				for l := k + 1; l < len(deck); l++ {
					if l == i || l == j {
						continue
					}
					villainPair := [2]card.Card{deck[k], deck[l]}

					key, swapped, err := canonicalKey(heroPair, villainPair)
					if err != nil {
						continue
					}
					if seen[key] {
						continue
					}
					seen[key] = true

					pairA, pairB := heroPair, villainPair
					if swapped {
						pairA, pairB = villainPair, heroPair
					}

					result, err := equity.Compute([][2]card.Card{pairA, pairB}, nil)
					if err != nil {
						return nil, fmt.Errorf("computing equity for matchup %d: %w", key, err)
					}

					win, lose, tie := countOutcomes(result)
					entries = append(entries, Entry{Key: key, Win: win, Lose: lose, Tie: tie})
				}
			}
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return NewCache(entries)
}

// countOutcomes converts a two-player equity.EquityResult into exact
// integer hero-wins/villain-wins/ties counts: a heads-up board has no
// three-way chop, so every board not won outright by either player is a
// tie between them.
func countOutcomes(result equity.EquityResult) (win, lose, tie uint32) {
	win = uint32(result.Wins(0))
	lose = uint32(result.Wins(1))
	tie = uint32(result.TrialCount()) - win - lose
	return win, lose, tie
}

func allCards() []card.Card {
	cards := make([]card.Card, 0, 52)
	for r := card.Two; r <= card.Ace; r++ {
		for s := card.Clubs; s <= card.Spades; s++ {
			cards = append(cards, card.New(r, s))
		}
	}
	return cards
}
