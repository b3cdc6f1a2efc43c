package zungjung

import (
	"fmt"
	"sort"
)

// Suit identifies the family a tile belongs to.
// The declaration order is also the canonical sort order.
type Suit int

const (
	Bamboo Suit = iota + 1
	Characters
	Dots
	Dragons
	Winds
)

// Dragon ranks (Suit == Dragons)
const (
	White = 1
	Green = 2
	Red   = 3
)

// Wind ranks (Suit == Winds)
const (
	East  = 1
	South = 2
	West  = 3
	North = 4
)

// HandSize is the number of tiles in a complete hand.
const HandSize = 14

var suitNames = map[Suit]string{
	Bamboo:     "Bamboo",
	Characters: "Characters",
	Dots:       "Dots",
	Dragons:    "Dragons",
	Winds:      "Winds",
}

func (s Suit) String() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Suit(%d)", int(s))
}

// IsNumbered reports whether the suit carries ranks 1-9.
func (s Suit) IsNumbered() bool {
	return s == Bamboo || s == Characters || s == Dots
}

// maxRank returns the highest legal rank for the suit, or 0 for an unknown suit.
func (s Suit) maxRank() int {
	switch {
	case s.IsNumbered():
		return 9
	case s == Dragons:
		return 3
	case s == Winds:
		return 4
	}
	return 0
}

// NumberedSuits lists the three numbered suits in canonical order.
var NumberedSuits = []Suit{Bamboo, Characters, Dots}

// Tile represents one physical mahjong tile. It is a comparable value type,
// so == and map keys work on it directly.
type Tile struct {
	Suit Suit
	Rank int // 1-9 for numbered suits, 1-3 for Dragons (White, Green, Red), 1-4 for Winds (E, S, W, N)
}

// NewTile creates a tile. It does not validate; use IsValid for that.
func NewTile(suit Suit, rank int) Tile {
	return Tile{Suit: suit, Rank: rank}
}

// IsValid reports whether the suit is known and the rank is in range for it.
func (t Tile) IsValid() bool {
	return t.Rank >= 1 && t.Rank <= t.Suit.maxRank()
}

// Equal compares suit and rank.
func (t Tile) Equal(other Tile) bool {
	return t.Suit == other.Suit && t.Rank == other.Rank
}

// Less orders tiles by suit, then rank.
func (t Tile) Less(other Tile) bool {
	if t.Suit != other.Suit {
		return t.Suit < other.Suit
	}
	return t.Rank < other.Rank
}

// IsHonor is true for dragons and winds.
func (t Tile) IsHonor() bool {
	return t.Suit == Dragons || t.Suit == Winds
}

// IsNumber is true for bamboo, characters and dots.
func (t Tile) IsNumber() bool {
	return !t.IsHonor()
}

// IsTerminal is true for a numbered 1 or 9.
func (t Tile) IsTerminal() bool {
	return t.IsNumber() && (t.Rank == 1 || t.Rank == 9)
}

// IsSimple is true for a numbered 2-8.
func (t Tile) IsSimple() bool {
	return t.IsNumber() && !t.IsTerminal()
}

// --- Sorting Tiles ---

// BySuitRank implements sort.Interface for []Tile based on suit then rank.
type BySuitRank []Tile

func (a BySuitRank) Len() int           { return len(a) }
func (a BySuitRank) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a BySuitRank) Less(i, j int) bool { return a[i].Less(a[j]) }

// SortedTiles returns a sorted copy of tiles. The input is left untouched.
func SortedTiles(tiles []Tile) []Tile {
	sorted := make([]Tile, len(tiles))
	copy(sorted, tiles)
	sort.Sort(BySuitRank(sorted))
	return sorted
}
