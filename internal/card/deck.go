package card

import "math/rand"

// Deck is a mutable sequence of cards dealt from the top. The caller
// supplies the random source so callers needing reproducible shuffles
// (such as tests) can inject a seeded *rand.Rand instead of depending on
// wall-clock entropy.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck builds a standard 52-card deck in suit-major order (all clubs
// Two through Ace, then diamonds, hearts, spades) using rng for all future
// shuffles. rng must not be nil.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	d.fill()
	return d
}

func (d *Deck) fill() {
	d.cards = d.cards[:0]
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, New(rank, suit))
		}
	}
}

// Shuffle randomizes the order of the remaining cards in place.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top card. ok is false if the deck is empty.
func (d *Deck) Deal() (c Card, ok bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	c = d.cards[0]
	d.cards = d.cards[1:]
	return c, true
}

// DealN deals up to n cards, stopping early if the deck runs out.
func (d *Deck) DealN(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	cards := make([]Card, n)
	for i := 0; i < n; i++ {
		cards[i], _ = d.Deal()
	}
	return cards
}

// CardsRemaining returns the number of cards left to deal.
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// IsEmpty reports whether the deck has no cards left.
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Reset restores the deck to a full, freshly shuffled 52 cards.
func (d *Deck) Reset() {
	d.fill()
	d.Shuffle()
}

// Peek returns the top card without removing it.
func (d *Deck) Peek() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[0], true
}
