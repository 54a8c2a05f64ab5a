package equity

import (
	"errors"
	"testing"

	"github.com/lox/pokercore/internal/card"
	"github.com/lox/pokercore/internal/pokererr"
)

func comboSet(t *testing.T, combos [][2]card.Card) map[string]bool {
	t.Helper()
	set := make(map[string]bool, len(combos))
	for _, c := range combos {
		a, b := c[0].String(), c[1].String()
		if a > b {
			a, b = b, a
		}
		set[a+b] = true
	}
	return set
}

func TestExpandRangePocketPair(t *testing.T) {
	combos, err := ExpandRange("AA")
	if err != nil {
		t.Fatalf("ExpandRange: %v", err)
	}
	if len(combos) != 6 {
		t.Fatalf("len(combos) = %d, want 6", len(combos))
	}
	for _, c := range combos {
		if c[0].Rank != card.Ace || c[1].Rank != card.Ace {
			t.Errorf("combo %v is not a pair of aces", c)
		}
		if c[0].Suit == c[1].Suit {
			t.Errorf("combo %v reuses a suit", c)
		}
	}
}

func TestExpandRangeSuitedAndOffsuit(t *testing.T) {
	suited, err := ExpandRange("AKs")
	if err != nil {
		t.Fatalf("ExpandRange(AKs): %v", err)
	}
	if len(suited) != 4 {
		t.Fatalf("len(suited) = %d, want 4", len(suited))
	}
	for _, c := range suited {
		if c[0].Suit != c[1].Suit {
			t.Errorf("combo %v is not suited", c)
		}
	}

	offsuit, err := ExpandRange("AKo")
	if err != nil {
		t.Fatalf("ExpandRange(AKo): %v", err)
	}
	if len(offsuit) != 12 {
		t.Fatalf("len(offsuit) = %d, want 12", len(offsuit))
	}
	for _, c := range offsuit {
		if c[0].Suit == c[1].Suit {
			t.Errorf("combo %v is not offsuit", c)
		}
	}

	both, err := ExpandRange("AK")
	if err != nil {
		t.Fatalf("ExpandRange(AK): %v", err)
	}
	if len(both) != 16 {
		t.Fatalf("len(both) = %d, want 16", len(both))
	}
}

func TestExpandRangePlusNotation(t *testing.T) {
	combos, err := ExpandRange("TT+")
	if err != nil {
		t.Fatalf("ExpandRange(TT+): %v", err)
	}
	// TT, JJ, QQ, KK, AA: 5 ranks * 6 combos each.
	if len(combos) != 30 {
		t.Fatalf("len(combos) = %d, want 30", len(combos))
	}

	suitedPlus, err := ExpandRange("ATs+")
	if err != nil {
		t.Fatalf("ExpandRange(ATs+): %v", err)
	}
	// ATs, AJs, AQs, AKs: 4 ranks * 4 combos each.
	if len(suitedPlus) != 16 {
		t.Fatalf("len(suitedPlus) = %d, want 16", len(suitedPlus))
	}
}

func TestExpandRangeDashNotation(t *testing.T) {
	combos, err := ExpandRange("A5s-A2s")
	if err != nil {
		t.Fatalf("ExpandRange(A5s-A2s): %v", err)
	}
	// A2s, A3s, A4s, A5s: 4 ranks * 4 combos each.
	if len(combos) != 16 {
		t.Fatalf("len(combos) = %d, want 16", len(combos))
	}

	set := comboSet(t, combos)
	for _, want := range []string{"2sAs", "3sAs", "4sAs", "5sAs"} {
		if !set[want] {
			t.Errorf("missing expected combo %s", want)
		}
	}
}

func TestExpandRangeCommaSeparated(t *testing.T) {
	combos, err := ExpandRange("AA,KK")
	if err != nil {
		t.Fatalf("ExpandRange(AA,KK): %v", err)
	}
	if len(combos) != 12 {
		t.Fatalf("len(combos) = %d, want 12", len(combos))
	}
}

func TestExpandRangeRejectsInvalidNotation(t *testing.T) {
	tests := []string{"Z1", "AAs", "AK9", "1"}
	for _, notation := range tests {
		if _, err := ExpandRange(notation); err == nil {
			t.Errorf("ExpandRange(%q) = nil error, want error", notation)
		} else if !errors.Is(err, pokererr.ErrInvalidInput) {
			t.Errorf("ExpandRange(%q) error = %v, want wrapping ErrInvalidInput", notation, err)
		}
	}
}

func TestExpandRangeEmptyNotationYieldsNoCombos(t *testing.T) {
	combos, err := ExpandRange("")
	if err != nil {
		t.Fatalf("ExpandRange(\"\"): %v", err)
	}
	if len(combos) != 0 {
		t.Fatalf("len(combos) = %d, want 0", len(combos))
	}
}
