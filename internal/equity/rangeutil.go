package equity

import (
	"fmt"
	"strings"

	"github.com/lox/pokercore/internal/card"
	"github.com/lox/pokercore/internal/pokererr"
)

// ExpandRange parses a comma-separated standard poker range notation
// ("AA,KK", "AKs,AKo", "TT+", "A5s-A2s") into the concrete two-card hole
// pairs it denotes. It is grounded on the teacher's sdk/analysis range
// parser, generalized to card.Card and restricted to the notations the
// CLI's range command (cmd/pokercore/range.go) actually needs.
func ExpandRange(notation string) ([][2]card.Card, error) {
	var pairs [][2]card.Card
	for _, part := range strings.Split(notation, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		expanded, err := expandPart(part)
		if err != nil {
			return nil, fmt.Errorf("%w: range part %q: %v", pokererr.ErrInvalidInput, part, err)
		}
		pairs = append(pairs, expanded...)
	}
	return pairs, nil
}

func expandPart(part string) ([][2]card.Card, error) {
	switch {
	case strings.HasSuffix(part, "+"):
		return expandPlus(strings.TrimSuffix(part, "+"))
	case strings.Contains(part, "-"):
		return expandDash(part)
	default:
		return expandSingle(part)
	}
}

func expandSingle(notation string) ([][2]card.Card, error) {
	if len(notation) < 2 || len(notation) > 3 {
		return nil, fmt.Errorf("invalid notation length: %s", notation)
	}
	r1, err := parseNotationRank(notation[0])
	if err != nil {
		return nil, err
	}
	r2, err := parseNotationRank(notation[1])
	if err != nil {
		return nil, err
	}

	if r1 == r2 {
		if len(notation) == 3 {
			return nil, fmt.Errorf("pocket pairs cannot have a suited/offsuit modifier: %s", notation)
		}
		return pocketPairCombos(r1), nil
	}

	if len(notation) == 2 {
		combos := suitedCombos(r1, r2)
		return append(combos, offsuitCombos(r1, r2)...), nil
	}

	switch notation[2] {
	case 's':
		return suitedCombos(r1, r2), nil
	case 'o':
		return offsuitCombos(r1, r2), nil
	default:
		return nil, fmt.Errorf("invalid modifier: %c", notation[2])
	}
}

func expandPlus(base string) ([][2]card.Card, error) {
	if len(base) < 2 || len(base) > 3 {
		return nil, fmt.Errorf("invalid base notation: %s", base)
	}
	r1, err := parseNotationRank(base[0])
	if err != nil {
		return nil, err
	}
	r2, err := parseNotationRank(base[1])
	if err != nil {
		return nil, err
	}

	var out [][2]card.Card
	if r1 == r2 {
		for r := r1; r <= card.Ace; r++ {
			out = append(out, pocketPairCombos(r)...)
		}
		return out, nil
	}

	suited, offsuit := true, true
	if len(base) == 3 {
		switch base[2] {
		case 's':
			offsuit = false
		case 'o':
			suited = false
		default:
			return nil, fmt.Errorf("invalid modifier: %c", base[2])
		}
	}
	for r := r2; r < r1; r++ {
		if suited {
			out = append(out, suitedCombos(r1, r)...)
		}
		if offsuit {
			out = append(out, offsuitCombos(r1, r)...)
		}
	}
	return out, nil
}

func expandDash(notation string) ([][2]card.Card, error) {
	parts := strings.SplitN(notation, "-", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid dash range: %s", notation)
	}
	start, end := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if len(start) < 2 || len(end) < 2 {
		return nil, fmt.Errorf("invalid dash range: %s", notation)
	}

	sr1, err := parseNotationRank(start[0])
	if err != nil {
		return nil, err
	}
	sr2, err := parseNotationRank(start[1])
	if err != nil {
		return nil, err
	}
	er1, err := parseNotationRank(end[0])
	if err != nil {
		return nil, err
	}
	er2, err := parseNotationRank(end[1])
	if err != nil {
		return nil, err
	}

	var out [][2]card.Card
	if sr1 == sr2 && er1 == er2 {
		lo, hi := minRank(sr1, er1), maxRank(sr1, er1)
		for r := lo; r <= hi; r++ {
			out = append(out, pocketPairCombos(r)...)
		}
		return out, nil
	}

	if sr1 == er1 {
		suited, offsuit := true, true
		if len(start) == 3 {
			suited = start[2] == 's'
			offsuit = start[2] == 'o'
		}
		lo, hi := minRank(sr2, er2), maxRank(sr2, er2)
		for r := lo; r <= hi; r++ {
			if suited {
				out = append(out, suitedCombos(sr1, r)...)
			}
			if offsuit {
				out = append(out, offsuitCombos(sr1, r)...)
			}
		}
		return out, nil
	}

	return nil, fmt.Errorf("unsupported range notation: %s", notation)
}

func pocketPairCombos(r card.Rank) [][2]card.Card {
	var out [][2]card.Card
	for s1 := card.Clubs; s1 <= card.Spades; s1++ {
		for s2 := s1 + 1; s2 <= card.Spades; s2++ {
			out = append(out, [2]card.Card{card.New(r, s1), card.New(r, s2)})
		}
	}
	return out
}

func suitedCombos(r1, r2 card.Rank) [][2]card.Card {
	var out [][2]card.Card
	for s := card.Clubs; s <= card.Spades; s++ {
		out = append(out, [2]card.Card{card.New(r1, s), card.New(r2, s)})
	}
	return out
}

func offsuitCombos(r1, r2 card.Rank) [][2]card.Card {
	var out [][2]card.Card
	for s1 := card.Clubs; s1 <= card.Spades; s1++ {
		for s2 := card.Clubs; s2 <= card.Spades; s2++ {
			if s1 != s2 {
				out = append(out, [2]card.Card{card.New(r1, s1), card.New(r2, s2)})
			}
		}
	}
	return out
}

func parseNotationRank(b byte) (card.Rank, error) {
	c, err := card.Parse(string(b) + "c")
	if err != nil {
		return 0, fmt.Errorf("invalid rank %q", b)
	}
	return c.Rank, nil
}

func minRank(a, b card.Rank) card.Rank {
	if a < b {
		return a
	}
	return b
}

func maxRank(a, b card.Rank) card.Rank {
	if a > b {
		return a
	}
	return b
}
