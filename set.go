package zungjung

import "fmt"

// Kind represents the type of a set in a decomposed hand.
type Kind int

const (
	KindPair Kind = iota
	KindRun
	KindTriplet
	KindKong
)

func (k Kind) String() string {
	switch k {
	case KindPair:
		return "Pair"
	case KindRun:
		return "Run"
	case KindTriplet:
		return "Triplet"
	case KindKong:
		return "Kong"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Set is one meld or pair: 2-4 ordered tiles of one suit plus a concealed flag.
// A Set is never modified after construction; every transforming method returns a new one.
type Set struct {
	tiles     []Tile
	concealed bool
}

// NewSet builds a set from tiles, copying the slice. Callers are responsible
// for passing a real pair, run, triplet or kong.
func NewSet(tiles []Tile, concealed bool) Set {
	owned := make([]Tile, len(tiles))
	copy(owned, tiles)
	return Set{tiles: owned, concealed: concealed}
}

// Tiles returns a copy of the set's tiles.
func (s Set) Tiles() []Tile {
	out := make([]Tile, len(s.tiles))
	copy(out, s.tiles)
	return out
}

// Len is the number of tiles in the set.
func (s Set) Len() int { return len(s.tiles) }

// First is the lowest tile of a run, or the repeated tile of a pair/triplet/kong.
func (s Set) First() Tile { return s.tiles[0] }

// Suit of the set (all tiles share it).
func (s Set) Suit() Suit { return s.tiles[0].Suit }

// Concealed reports whether the set was formed without a claimed tile.
func (s Set) Concealed() bool { return s.concealed }

func (s Set) IsPair() bool { return len(s.tiles) == 2 }

func (s Set) IsKong() bool { return len(s.tiles) == 4 }

// IsTriplet is true for triplets and kongs.
func (s Set) IsTriplet() bool {
	return len(s.tiles) >= 3 && s.tiles[0].Equal(s.tiles[1])
}

func (s Set) IsRun() bool {
	return len(s.tiles) == 3 && !s.tiles[0].Equal(s.tiles[1])
}

// Kind classifies the set. A size outside 2-4 can only come from a bug in the
// search, so it panics rather than returning an error.
func (s Set) Kind() Kind {
	switch {
	case s.IsPair():
		return KindPair
	case s.IsKong():
		return KindKong
	case s.IsTriplet():
		return KindTriplet
	case s.IsRun():
		return KindRun
	}
	panic(fmt.Sprintf("internal error: set with %d tiles", len(s.tiles)))
}

// HasTerminalOrHonor reports whether any tile of the set is a terminal or an honor.
func (s Set) HasTerminalOrHonor() bool {
	for _, t := range s.tiles {
		if t.IsTerminal() || t.IsHonor() {
			return true
		}
	}
	return false
}

// Matches is true when both sets are the same run in the same suit, or the
// same triplet in the same suit. A kong matches the triplet of its tile.
func (s Set) Matches(other Set) bool {
	a, b := s.head(), other.head()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// MatchesSmallOrBig is true when both sets are pairs or triplets (in any
// combination) of the same tile. Runs never match.
func (s Set) MatchesSmallOrBig(other Set) bool {
	if s.IsRun() || other.IsRun() {
		return false
	}
	return s.tiles[0].Equal(other.tiles[0])
}

// ChangeSuit returns the same shape in another suit.
func (s Set) ChangeSuit(suit Suit) Set {
	out := make([]Tile, len(s.tiles))
	for i, t := range s.tiles {
		out[i] = Tile{Suit: suit, Rank: t.Rank}
	}
	return Set{tiles: out, concealed: s.concealed}
}

// Bump returns the set with every rank raised by n.
func (s Set) Bump(n int) Set {
	out := make([]Tile, len(s.tiles))
	for i, t := range s.tiles {
		out[i] = Tile{Suit: t.Suit, Rank: t.Rank + n}
	}
	return Set{tiles: out, concealed: s.concealed}
}

func (s Set) String() string {
	return FormatTiles(s.tiles)
}

// head is the part of the set that identifies it: at most three tiles, so a
// kong and a triplet of the same tile compare equal.
func (s Set) head() []Tile {
	if len(s.tiles) > 3 {
		return s.tiles[:3]
	}
	return s.tiles
}
