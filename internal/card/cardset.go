package card

import (
	"fmt"
	"math/bits"

	"github.com/lox/pokercore/internal/pokererr"
)

// Set is a bitset over the 52-card deck, one bit per Card.Index(). It
// supports O(1) membership, insertion with duplicate detection, and
// enumeration of the 52-card complement, which the Evaluator and Equity
// Engine inner loops depend on to stay allocation-free.
type Set uint64

// NewSet builds a Set from a slice of cards. Returns ErrInvalidHand if any
// card repeats.
func NewSet(cards []Card) (Set, error) {
	var s Set
	for _, c := range cards {
		if s.Contains(c) {
			return 0, fmt.Errorf("%w: duplicate card %s", pokererr.ErrInvalidHand, c)
		}
		s = s.Add(c)
	}
	return s, nil
}

// Add returns a new Set with c inserted, regardless of whether it was
// already present. Callers that need duplicate detection should check
// Contains first (NewSet does this for them).
func (s Set) Add(c Card) Set {
	return s | (1 << uint(c.Index()))
}

// Contains reports whether c is a member of the set.
func (s Set) Contains(c Card) bool {
	return s&(1<<uint(c.Index())) != 0
}

// Len returns the number of cards in the set.
func (s Set) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Cards returns the set's members in ascending index order.
func (s Set) Cards() []Card {
	cards := make([]Card, 0, s.Len())
	for v := uint64(s); v != 0; v &= v - 1 {
		cards = append(cards, FromIndex(bits.TrailingZeros64(v)))
	}
	return cards
}

// Complement returns the cards of the standard 52-card deck that are not
// members of s, in ascending index order.
func (s Set) Complement() []Card {
	out := make([]Card, 0, 52-s.Len())
	for i := 0; i < 52; i++ {
		c := FromIndex(i)
		if !s.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}
