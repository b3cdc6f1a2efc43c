package zungjung

import (
	"fmt"
	"log/slog"
)

// Shape is the overall structure of a complete hand.
type Shape int

const (
	ShapeRegular Shape = iota // four melds and a pair
	ShapeSevenPairs
	ShapeThirteenOrphans
)

func (s Shape) String() string {
	switch s {
	case ShapeRegular:
		return "Regular"
	case ShapeSevenPairs:
		return "Seven Pairs"
	case ShapeThirteenOrphans:
		return "Thirteen Orphans"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Result is a scored decomposition of a complete hand.
type Result struct {
	Shape Shape
	Sets  []Set // nil for Thirteen Orphans, which has no set structure
	Yaku  YakuList
}

// Score is the capped point total of the result.
func (r *Result) Score() int {
	return r.Yaku.Score()
}

// searcher explores every way to split a sorted hand into pairs, triplets
// and runs, and keeps the best scoring one.
type searcher struct {
	detector detector
	logger   *slog.Logger
	leaves   int // complete decompositions seen, for diagnostics
}

func newSearcher(o options) *searcher {
	return &searcher{detector: detector{seatWind: o.seatWind}, logger: o.logger}
}

// decompose returns the best result for a sorted hand, or nil if no reading of
// the tiles is complete.
//
// Tiles are consumed from the front. For the first tile the search tries, in
// order: a triplet, a pair, and a run starting at it. Every branch works on a
// fresh remaining slice so the branches never see each other's choices.
// Among complete readings the highest capped score wins; ties keep the first found.
//
// Known limitation: only groupings that start at the lowest remaining tile are
// generated. That covers every hand seen so far but has not been proven to
// reach every possible decomposition.
func (s *searcher) decompose(tiles []Tile, sets []Set) *Result {
	// Base Case: every tile placed, let the detector judge the shape
	if len(tiles) == 0 {
		s.leaves++
		res := s.detector.detect(sets)
		if res != nil {
			s.logger.Debug("complete decomposition",
				"sets", formatSets(sets),
				"yaku", res.Yaku.Names(),
				"score", res.Score())
		}
		return res
	}

	var best *Result
	consider := func(res *Result) {
		if res == nil {
			return
		}
		if best == nil || res.Score() > best.Score() {
			best = res
		}
	}

	numFirst := countFirst(tiles)

	// 1. Triplet (111123 may or may not start with one: compare 11123)
	if numFirst >= 3 {
		consider(s.decompose(tiles[3:], withSet(sets, NewSet(tiles[:3], true))))
	}

	// 2. Pair (eyes, or part of seven pairs; 112233 is really 123123)
	if numFirst >= 2 {
		consider(s.decompose(tiles[2:], withSet(sets, NewSet(tiles[:2], true))))
	}

	// 3. Run starting at the first tile (12223 starts with a run too)
	if run, rest, ok := extractRun(tiles); ok {
		consider(s.decompose(rest, withSet(sets, run)))
	}

	return best
}

// extractRun takes the first tile plus one each of rank+1 and rank+2 of the
// same suit from anywhere in tiles. Honors never form runs.
func extractRun(tiles []Tile) (Set, []Tile, bool) {
	first := tiles[0]
	if first.IsHonor() {
		return Set{}, nil, false
	}
	second := Tile{Suit: first.Suit, Rank: first.Rank + 1}
	third := Tile{Suit: first.Suit, Rank: first.Rank + 2}

	rest, ok := RemoveTiles(tiles[1:], []Tile{second, third})
	if !ok {
		return Set{}, nil, false
	}
	return NewSet([]Tile{first, second, third}, true), rest, true
}

// withSet returns sets plus one more, never sharing the backing array.
func withSet(sets []Set, s Set) []Set {
	out := make([]Set, len(sets), len(sets)+1)
	copy(out, sets)
	return append(out, s)
}

// verifyDecomposition panics unless the sets use exactly the hand's tiles.
// A mismatch means the search itself is broken.
func verifyDecomposition(hand []Tile, sets []Set) {
	tiles := flattenSets(sets)
	if len(tiles) != HandSize || !sameTiles(hand, tiles) {
		panic(fmt.Sprintf("internal error: decomposition %s does not rebuild hand %s",
			formatSets(sets), FormatTiles(hand)))
	}
}
