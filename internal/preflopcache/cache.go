// Package preflopcache implements the heads-up preflop equity cache's
// binary format: one entry per canonically-ordered unordered matchup of
// two hole-card pairs, loaded and queried by exact key lookup with no
// live evaluation on a miss.
//
// The generated-artifact shape (a build step populates a table, a loader
// reads it back byte-for-byte) is grounded on the teacher's
// sdk/analysis/preflop.go generation pattern, adapted from "emit a .go
// source file" to "emit and parse a binary blob", which is what the format
// here actually specifies.
package preflopcache

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/lox/pokercore/internal/card"
	"github.com/lox/pokercore/internal/pokererr"
)

// magic identifies the cache file format.
var magic = [4]byte{'P', 'K', 'C', 'T'}

const formatVersion uint16 = 1

// recordSize is the byte length of one on-disk record: an 8-byte key plus
// three 4-byte counts.
const recordSize = 8 + 4 + 4 + 4

// Entry is one canonical matchup's accumulated board-completion counts,
// recorded with pairA (the lexicographically first sorted pair) as hero.
type Entry struct {
	Key  uint64
	Win  uint32
	Lose uint32
	Tie  uint32
}

// Cache is an immutable, binary-search-queryable table of Entry records in
// ascending key order. Safe for unrestricted concurrent reads.
type Cache struct {
	entries []Entry
}

// NewCache builds a Cache from entries, which must already be sorted in
// ascending key order (as produced by a build pass over canonical
// matchups). Returns ErrCacheFormat if the ordering invariant is violated.
func NewCache(entries []Entry) (*Cache, error) {
	for i := 1; i < len(entries); i++ {
		if entries[i].Key <= entries[i-1].Key {
			return nil, fmt.Errorf("%w: entries not in strictly ascending key order at index %d", pokererr.ErrCacheFormat, i)
		}
	}
	return &Cache{entries: entries}, nil
}

// Len returns the number of entries in the cache.
func (c *Cache) Len() int {
	return len(c.entries)
}

// GetWinLose returns hero's win/lose/tie counts against villain, drawn from
// the canonical matchup entry if present. ok is false if either pair is
// invalid, the pairs overlap, or the matchup is absent from the cache.
func (c *Cache) GetWinLose(hero, villain [2]card.Card) (win, lose, tie uint32, ok bool) {
	key, swapped, err := canonicalKey(hero, villain)
	if err != nil {
		return 0, 0, 0, false
	}

	i := sort.Search(len(c.entries), func(i int) bool { return c.entries[i].Key >= key })
	if i >= len(c.entries) || c.entries[i].Key != key {
		return 0, 0, 0, false
	}

	e := c.entries[i]
	if swapped {
		return e.Lose, e.Win, e.Tie, true
	}
	return e.Win, e.Lose, e.Tie, true
}

// Dump serializes the cache to its versioned binary format.
func (c *Cache) Dump() []byte {
	buf := new(bytes.Buffer)
	buf.Write(magic[:])
	_ = binary.Write(buf, binary.LittleEndian, formatVersion)
	_ = binary.Write(buf, binary.LittleEndian, uint32(len(c.entries)))
	for _, e := range c.entries {
		_ = binary.Write(buf, binary.LittleEndian, e.Key)
		_ = binary.Write(buf, binary.LittleEndian, e.Win)
		_ = binary.Write(buf, binary.LittleEndian, e.Lose)
		_ = binary.Write(buf, binary.LittleEndian, e.Tie)
	}
	return buf.Bytes()
}

// Load parses a binary cache blob, validating the magic header, version,
// record-count/length consistency, and ascending key order. It does not
// auto-decompress; a gzip-wrapped blob must be unwrapped by the caller
// first.
func Load(data []byte) (*Cache, error) {
	if len(data) < 10 {
		return nil, fmt.Errorf("%w: truncated header (%d bytes)", pokererr.ErrCacheFormat, len(data))
	}
	if !bytes.Equal(data[0:4], magic[:]) {
		return nil, fmt.Errorf("%w: bad magic %q", pokererr.ErrCacheFormat, data[0:4])
	}
	version := binary.LittleEndian.Uint16(data[4:6])
	if version != formatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", pokererr.ErrCacheFormat, version)
	}
	count := binary.LittleEndian.Uint32(data[6:10])

	want := 10 + int(count)*recordSize
	if len(data) != want {
		return nil, fmt.Errorf("%w: expected %d bytes for %d records, got %d", pokererr.ErrCacheFormat, want, count, len(data))
	}

	entries := make([]Entry, count)
	offset := 10
	for i := range entries {
		entries[i] = Entry{
			Key:  binary.LittleEndian.Uint64(data[offset : offset+8]),
			Win:  binary.LittleEndian.Uint32(data[offset+8 : offset+12]),
			Lose: binary.LittleEndian.Uint32(data[offset+12 : offset+16]),
			Tie:  binary.LittleEndian.Uint32(data[offset+16 : offset+20]),
		}
		offset += recordSize
	}

	return NewCache(entries)
}

// canonicalKey derives the 64-bit canonical matchup key for (hero, villain)
// plus whether the query order was swapped relative to the stored
// pairA/pairB convention. Returns ErrInvalidInput if either pair holds
// duplicate cards or the two pairs overlap.
func canonicalKey(hero, villain [2]card.Card) (key uint64, swapped bool, err error) {
	var used card.Set
	for _, c := range append(append([]card.Card{}, hero[:]...), villain[:]...) {
		if used.Contains(c) {
			return 0, false, fmt.Errorf("%w: duplicate or overlapping card %s", pokererr.ErrInvalidInput, c)
		}
		used = used.Add(c)
	}

	ha, hb := sortPairHighFirst(hero[0], hero[1])
	va, vb := sortPairHighFirst(villain[0], villain[1])

	if pairLess(va, vb, ha, hb) {
		return pairKey(va, vb, ha, hb), true, nil
	}
	return pairKey(ha, hb, va, vb), false, nil
}

func sortPairHighFirst(a, b card.Card) (card.Card, card.Card) {
	if a.Index() < b.Index() {
		return b, a
	}
	return a, b
}

// pairLess reports whether (a1,a2) sorts before (b1,b2) as a tuple.
func pairLess(a1, a2, b1, b2 card.Card) bool {
	if a1.Index() != b1.Index() {
		return a1.Index() < b1.Index()
	}
	return a2.Index() < b2.Index()
}

// pairKey packs the four cards' occupancy bits (bits 0-51) with a split tag
// (bits 52-53) naming which of the three ways of dividing those four cards
// into two pairs this matchup is, so matchups over the same four cards get
// distinct keys. The tag is the position of the lowest card's partner among
// the four cards in ascending index order, minus one.
func pairKey(a1, a2, b1, b2 card.Card) uint64 {
	var set card.Set
	set = set.Add(a1).Add(a2).Add(b1).Add(b2)
	cards := set.Cards()
	partner := a1
	switch cards[0] {
	case a1:
		partner = a2
	case b1:
		partner = b2
	case b2:
		partner = b1
	}
	split := uint64(0)
	for split < 2 && cards[split+1] != partner {
		split++
	}
	return uint64(set) | split<<52
}
