package card

import (
	"errors"
	"testing"

	"github.com/lox/pokercore/internal/pokererr"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Card
	}{
		{"As", Card{Rank: Ace, Suit: Spades}},
		{"Kd", Card{Rank: King, Suit: Diamonds}},
		{"2c", Card{Rank: Two, Suit: Clubs}},
		{"Th", Card{Rank: Ten, Suit: Hearts}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if got.String() != tt.in {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []string{"", "A", "Asx", "1s", "Ax", "As ", "aS", "AS", "ks"}
	for _, in := range tests {
		if _, err := Parse(in); !errors.Is(err, pokererr.ErrInvalidCard) {
			t.Errorf("Parse(%q): want ErrInvalidCard, got %v", in, err)
		}
	}
}

func TestParseAll(t *testing.T) {
	cards, err := ParseAll("AsKdTh")
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}
	want := []Card{{Ace, Spades}, {King, Diamonds}, {Ten, Hearts}}
	if len(cards) != len(want) {
		t.Fatalf("got %d cards, want %d", len(cards), len(want))
	}
	for i := range want {
		if cards[i] != want[i] {
			t.Errorf("cards[%d] = %+v, want %+v", i, cards[i], want[i])
		}
	}
}

func TestParseAllOddLength(t *testing.T) {
	if _, err := ParseAll("AsK"); !errors.Is(err, pokererr.ErrInvalidCard) {
		t.Errorf("want ErrInvalidCard, got %v", err)
	}
}

func TestIndexRoundTrip(t *testing.T) {
	for rank := Two; rank <= Ace; rank++ {
		for suit := Clubs; suit <= Spades; suit++ {
			c := New(rank, suit)
			idx := c.Index()
			if idx < 0 || idx >= 52 {
				t.Fatalf("Index() = %d out of range for %s", idx, c)
			}
			if got := FromIndex(idx); got != c {
				t.Errorf("FromIndex(%d) = %s, want %s", idx, got, c)
			}
		}
	}
}

func TestIsRed(t *testing.T) {
	if !New(Ace, Hearts).IsRed() {
		t.Errorf("hearts should be red")
	}
	if !New(Ace, Diamonds).IsRed() {
		t.Errorf("diamonds should be red")
	}
	if New(Ace, Spades).IsRed() {
		t.Errorf("spades should not be red")
	}
	if New(Ace, Clubs).IsRed() {
		t.Errorf("clubs should not be red")
	}
}
