package zungjung

import (
	"fmt"
	"strings"
)

// Notation:
//
//	1-9 followed by b, c or d  numbered tiles; digits may be chained: "123123b"
//	E S W N                    winds
//	H G R                      white, green and red dragons
//
// Whitespace separates groups but is otherwise ignored, so "19b 19c 19d ESWN HGRR"
// and "1b9b1c9c1d9dESWNHGRR" are the same hand.

var suitLetters = map[rune]Suit{'b': Bamboo, 'c': Characters, 'd': Dots}

var honorLetters = map[rune]Tile{
	'E': {Winds, East},
	'S': {Winds, South},
	'W': {Winds, West},
	'N': {Winds, North},
	'H': {Dragons, White},
	'G': {Dragons, Green},
	'R': {Dragons, Red},
}

// ParseTiles parses tile notation. Tiles are returned in input order.
func ParseTiles(s string) ([]Tile, error) {
	var tiles []Tile
	for _, part := range strings.Fields(s) {
		var ranks []int // digits waiting for their suit letter
		for _, r := range part {
			switch {
			case r >= '1' && r <= '9':
				ranks = append(ranks, int(r-'0'))
			case suitLetters[r] != 0:
				if len(ranks) == 0 {
					return nil, fmt.Errorf("%w: suit %q without ranks in %q", ErrNotation, r, part)
				}
				for _, rank := range ranks {
					tiles = append(tiles, Tile{Suit: suitLetters[r], Rank: rank})
				}
				ranks = ranks[:0]
			default:
				honor, ok := honorLetters[r]
				if !ok {
					return nil, fmt.Errorf("%w: unexpected %q in %q", ErrNotation, r, part)
				}
				if len(ranks) > 0 {
					return nil, fmt.Errorf("%w: ranks before honor %q in %q", ErrNotation, r, part)
				}
				tiles = append(tiles, honor)
			}
		}
		if len(ranks) > 0 {
			return nil, fmt.Errorf("%w: ranks without a suit in %q", ErrNotation, part)
		}
	}
	return tiles, nil
}

// MustParseTiles is ParseTiles for literals known to be valid; it panics otherwise.
func MustParseTiles(s string) []Tile {
	tiles, err := ParseTiles(s)
	if err != nil {
		panic(err)
	}
	return tiles
}

// String renders a single tile: "5b", "E", "H".
func (t Tile) String() string {
	switch t.Suit {
	case Bamboo, Characters, Dots:
		return fmt.Sprintf("%d%c", t.Rank, suitLetter(t.Suit))
	}
	for r, honor := range honorLetters {
		if honor == t {
			return string(r)
		}
	}
	return fmt.Sprintf("[bad tile %d/%d]", int(t.Suit), t.Rank)
}

// FormatTiles renders tiles in notation, grouping neighbours of the same suit:
// "123b 55c ESW HH". Tile order is preserved.
func FormatTiles(tiles []Tile) string {
	var groups []string
	var sb strings.Builder
	for i, t := range tiles {
		if i > 0 && t.Suit != tiles[i-1].Suit {
			groups = append(groups, closeGroup(&sb, tiles[i-1]))
		}
		if t.IsNumber() && t.IsValid() {
			sb.WriteByte(byte('0' + t.Rank))
		} else {
			sb.WriteString(t.String())
		}
	}
	if len(tiles) > 0 {
		groups = append(groups, closeGroup(&sb, tiles[len(tiles)-1]))
	}
	return strings.Join(groups, " ")
}

// closeGroup finishes a run of same-suit tiles, adding the suit letter for numbered suits.
func closeGroup(sb *strings.Builder, last Tile) string {
	if last.IsNumber() && last.IsValid() {
		sb.WriteRune(suitLetter(last.Suit))
	}
	group := sb.String()
	sb.Reset()
	return group
}

func suitLetter(s Suit) rune {
	for r, suit := range suitLetters {
		if suit == s {
			return r
		}
	}
	return '?'
}
