// Package card implements the value types for rank, suit, card and
// multi-card collections shared by every other package in pokercore.
package card

import (
	"fmt"

	"github.com/lox/pokercore/internal/pokererr"
)

// Suit represents a card suit. Zero value is Clubs so that a card's bit
// index (rank-2)*4+suit lines up with the canonical ordering used by the
// evaluator's rank bitmap and the preflop cache key.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the canonical single-character suit code ("cdhs").
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// Glyph returns a Unicode suit symbol for human-facing CLI/TUI display.
func (s Suit) Glyph() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds).
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'c':
		return Clubs, nil
	case 'd':
		return Diamonds, nil
	case 'h':
		return Hearts, nil
	case 's':
		return Spades, nil
	default:
		return 0, fmt.Errorf("%w: unknown suit %q", pokererr.ErrInvalidCard, c)
	}
}

// Rank represents a card rank. Ace is high (14) for ordering; the wheel
// straight (A-2-3-4-5) is handled explicitly by the evaluator.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankChars = "??23456789TJQKA"

// String returns the canonical single-character rank code.
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return string(rankChars[r])
}

func parseRank(c byte) (Rank, error) {
	switch c {
	case 'A':
		return Ace, nil
	case 'K':
		return King, nil
	case 'Q':
		return Queen, nil
	case 'J':
		return Jack, nil
	case 'T':
		return Ten, nil
	case '9':
		return Nine, nil
	case '8':
		return Eight, nil
	case '7':
		return Seven, nil
	case '6':
		return Six, nil
	case '5':
		return Five, nil
	case '4':
		return Four, nil
	case '3':
		return Three, nil
	case '2':
		return Two, nil
	default:
		return 0, fmt.Errorf("%w: unknown rank %q", pokererr.ErrInvalidCard, c)
	}
}

// Card is an immutable value type identifying a single playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

// New builds a card from a rank and suit directly.
func New(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Parse accepts exactly a two-character ASCII card code: a rank character
// from "23456789TJQKA" followed by a suit character from "cdhs", both
// case-sensitive as written. Anything else, including the wrong length,
// whitespace, or a case variant like "aS" or "AS", fails with
// ErrInvalidCard.
func Parse(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q must be exactly 2 characters", pokererr.ErrInvalidCard, s)
	}
	rank, err := parseRank(s[0])
	if err != nil {
		return Card{}, err
	}
	suit, err := parseSuit(s[1])
	if err != nil {
		return Card{}, err
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseAll splits a contiguous even-length string into 2-character card
// codes and parses each one, e.g. "AsKdTh".
func ParseAll(s string) ([]Card, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: %q has odd length", pokererr.ErrInvalidCard, s)
	}
	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		c, err := Parse(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// String renders the canonical wire form, e.g. "As".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Pretty renders the card with a Unicode suit glyph for CLI/TUI display.
func (c Card) Pretty() string {
	return c.Rank.String() + c.Suit.Glyph()
}

// IsRed returns true if the card is a red suit.
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Index returns the card's position in the standard 52-card ordering:
// index = (rank-2)*4 + suit, in [0, 52).
func (c Card) Index() int {
	return int(c.Rank-Two)*4 + int(c.Suit)
}

// FromIndex is the inverse of Index.
func FromIndex(i int) Card {
	return Card{Rank: Two + Rank(i/4), Suit: Suit(i % 4)}
}
