package zungjung

import (
	"fmt"
	"math/rand"
)

// TotalTiles is 4 copies of 34 tile kinds.
const TotalTiles = 136

// AllTileKinds returns one of each of the 34 tile kinds, sorted.
func AllTileKinds() []Tile {
	kinds := make([]Tile, 0, 34)
	for _, suit := range NumberedSuits {
		for rank := 1; rank <= 9; rank++ {
			kinds = append(kinds, NewTile(suit, rank))
		}
	}
	for rank := White; rank <= Red; rank++ {
		kinds = append(kinds, NewTile(Dragons, rank))
	}
	for rank := East; rank <= North; rank++ {
		kinds = append(kinds, NewTile(Winds, rank))
	}
	return kinds
}

// Wall is the shuffled stack of tiles hands are dealt from.
type Wall struct {
	tiles []Tile
}

// NewWall builds all 136 tiles and shuffles them with rng.
func NewWall(rng *rand.Rand) *Wall {
	var tiles []Tile
	for _, kind := range AllTileKinds() {
		for i := 0; i < 4; i++ {
			tiles = append(tiles, kind)
		}
	}
	if len(tiles) != TotalTiles {
		panic(fmt.Sprintf("internal error: generated wall size is %d, expected %d", len(tiles), TotalTiles))
	}

	rng.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})
	return &Wall{tiles: tiles}
}

// Remaining is the number of tiles left to deal.
func (w *Wall) Remaining() int { return len(w.tiles) }

// Deal takes n tiles from the front of the wall.
func (w *Wall) Deal(n int) ([]Tile, error) {
	if n < 0 || n > len(w.tiles) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrWallExhausted, n, len(w.tiles))
	}
	dealt := make([]Tile, n)
	copy(dealt, w.tiles[:n])
	w.tiles = w.tiles[n:]
	return dealt, nil
}

// Remove takes specific tiles out of the wall, e.g. ones a caller placed in a
// hand by hand. It fails without changing the wall if any tile is not there.
func (w *Wall) Remove(tiles []Tile) error {
	rest, ok := RemoveTiles(w.tiles, tiles)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotInWall, FormatTiles(tiles))
	}
	w.tiles = rest
	return nil
}

// DealHand returns a full hand starting with prefix, topped up from the wall.
// Prefix tiles are removed from the wall first, so no tile appears more than four times.
func (w *Wall) DealHand(prefix []Tile) ([]Tile, error) {
	if len(prefix) > HandSize {
		return nil, fmt.Errorf("%w: prefix has %d", ErrHandSize, len(prefix))
	}
	if err := w.Remove(prefix); err != nil {
		return nil, err
	}
	rest, err := w.Deal(HandSize - len(prefix))
	if err != nil {
		return nil, err
	}
	hand := make([]Tile, 0, HandSize)
	hand = append(hand, prefix...)
	return append(hand, rest...), nil
}
