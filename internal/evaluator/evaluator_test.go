package evaluator

import (
	"testing"

	"github.com/lox/pokercore/internal/card"
)

func mustCards(t *testing.T, s string) []card.Card {
	t.Helper()
	cards, err := card.ParseAll(s)
	if err != nil {
		t.Fatalf("ParseAll(%q): %v", s, err)
	}
	return cards
}

func TestEvaluateRejectsWrongCardCount(t *testing.T) {
	if _, err := Evaluate(mustCards(t, "AsKsQsJs")); err == nil {
		t.Fatal("expected error for 4-card hand")
	}
}

func TestEvaluateRejectsDuplicateCard(t *testing.T) {
	cards := mustCards(t, "AsKsQsJsTs")
	cards[4] = cards[0]
	if _, err := Evaluate(cards); err == nil {
		t.Fatal("expected error for duplicate card")
	}
}

func TestEvaluateRanksCategoriesInOrder(t *testing.T) {
	cases := []struct {
		name  string
		cards string
		want  Category
	}{
		{"straight flush", "AsKsQsJsTs", StraightFlush},
		{"four of a kind", "AsAcAdAh2s", FourOfAKind},
		{"full house", "AsAcAd2s2c", FullHouse},
		{"flush", "AsKsQs9s2s", Flush},
		{"straight", "AsKdQcJhTs", Straight},
		{"three of a kind", "AsAcAd2h9c", ThreeOfAKind},
		{"two pair", "AsAc2d2h9c", TwoPair},
		{"one pair", "AsAc2d9h7c", OnePair},
		{"high card", "As2d9h7c4s", HighCard},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rank, err := Evaluate(mustCards(t, tc.cards))
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if rank.Category() != tc.want {
				t.Errorf("category = %v, want %v", rank.Category(), tc.want)
			}
		})
	}
}

func TestEvaluateWheelIsLowestStraight(t *testing.T) {
	wheel, err := Evaluate(mustCards(t, "AsKc2d3h4s5c"))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if wheel.Category() != Straight {
		t.Fatalf("category = %v, want Straight", wheel.Category())
	}

	sixHigh, err := Evaluate(mustCards(t, "2s3c4d5h6s"))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if wheel >= sixHigh {
		t.Errorf("wheel (%d) should rank below 6-high straight (%d)", wheel, sixHigh)
	}
}

func TestEvaluateSevenCardsPicksBestFive(t *testing.T) {
	rank, err := Evaluate(mustCards(t, "AsKsQsJsTs2c3d"))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if rank.Category() != StraightFlush {
		t.Errorf("category = %v, want StraightFlush", rank.Category())
	}
}

func TestEvaluateHigherRankBeatsLowerRank(t *testing.T) {
	pair, err := Evaluate(mustCards(t, "AsAc2d9h7c"))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	high, err := Evaluate(mustCards(t, "KsQc2d9h7c"))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if pair <= high {
		t.Errorf("one pair (%d) should outrank high card (%d)", pair, high)
	}
}
