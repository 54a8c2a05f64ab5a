package preflopcache

import (
	"bytes"
	"testing"

	"github.com/lox/pokercore/internal/card"
)

func mustParse(t *testing.T, s string) card.Card {
	t.Helper()
	c, err := card.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return c
}

func TestCanonicalKeySymmetric(t *testing.T) {
	heroAA := [2]card.Card{mustParse(t, "As"), mustParse(t, "Ac")}
	villainKK := [2]card.Card{mustParse(t, "Kd"), mustParse(t, "Kh")}

	k1, swapped1, err := canonicalKey(heroAA, villainKK)
	if err != nil {
		t.Fatalf("canonicalKey: %v", err)
	}
	k2, swapped2, err := canonicalKey(villainKK, heroAA)
	if err != nil {
		t.Fatalf("canonicalKey: %v", err)
	}
	if k1 != k2 {
		t.Errorf("canonical key not symmetric: %d vs %d", k1, k2)
	}
	if swapped1 == swapped2 {
		t.Errorf("exactly one query order should be reported as swapped")
	}
}

func TestCanonicalKeyRejectsOverlap(t *testing.T) {
	hero := [2]card.Card{mustParse(t, "As"), mustParse(t, "Ac")}
	villain := [2]card.Card{mustParse(t, "As"), mustParse(t, "Ad")}
	if _, _, err := canonicalKey(hero, villain); err == nil {
		t.Error("canonicalKey should reject overlapping pairs")
	}
}

func TestCacheRoundTrip(t *testing.T) {
	heroAA := [2]card.Card{mustParse(t, "As"), mustParse(t, "Ac")}
	villainKK := [2]card.Card{mustParse(t, "Kd"), mustParse(t, "Kh")}
	key, swapped, err := canonicalKey(heroAA, villainKK)
	if err != nil {
		t.Fatalf("canonicalKey: %v", err)
	}
	if swapped {
		heroAA, villainKK = villainKK, heroAA
	}

	cache, err := NewCache([]Entry{{Key: key, Win: 1408706, Lose: 300293, Tie: 3305}})
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	win, lose, tie, ok := cache.GetWinLose(heroAA, villainKK)
	if !ok {
		t.Fatalf("GetWinLose: expected hit")
	}
	if win != 1408706 || lose != 300293 || tie != 3305 {
		t.Errorf("GetWinLose(heroAA, villainKK) = (%d,%d,%d), want (1408706,300293,3305)", win, lose, tie)
	}

	// Querying with hero/villain swapped must swap the returned counts too.
	win2, lose2, _, ok2 := cache.GetWinLose(villainKK, heroAA)
	if !ok2 {
		t.Fatalf("GetWinLose (swapped query): expected hit")
	}
	if win2 != lose || lose2 != win {
		t.Errorf("swapped query = (%d,%d), want (%d,%d)", win2, lose2, lose, win)
	}

	dumped := cache.Dump()
	loaded, err := Load(dumped)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(dumped, loaded.Dump()) {
		t.Error("Load(Dump()).Dump() did not round-trip to identical bytes")
	}
}

func TestGetWinLoseMissOnAbsentMatchup(t *testing.T) {
	cache, err := NewCache(nil)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	hero := [2]card.Card{mustParse(t, "As"), mustParse(t, "Ac")}
	villain := [2]card.Card{mustParse(t, "Kd"), mustParse(t, "Kh")}
	if _, _, _, ok := cache.GetWinLose(hero, villain); ok {
		t.Error("GetWinLose on empty cache should miss")
	}
}

func TestGetWinLoseMissOnOverlap(t *testing.T) {
	cache, err := NewCache(nil)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	hero := [2]card.Card{mustParse(t, "As"), mustParse(t, "Ac")}
	villainOverlap := [2]card.Card{mustParse(t, "As"), mustParse(t, "Ad")}
	if _, _, _, ok := cache.GetWinLose(hero, villainOverlap); ok {
		t.Error("GetWinLose with overlapping cards should miss")
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	data := []byte("XXXX\x01\x00\x00\x00\x00\x00")
	if _, err := Load(data); err == nil {
		t.Error("Load should reject bad magic")
	}
}

func TestLoadRejectsTruncated(t *testing.T) {
	if _, err := Load([]byte("PKCT")); err == nil {
		t.Error("Load should reject truncated header")
	}
}

func TestNewCacheRejectsUnsortedEntries(t *testing.T) {
	_, err := NewCache([]Entry{{Key: 5}, {Key: 3}})
	if err == nil {
		t.Error("NewCache should reject entries not in ascending key order")
	}
}
