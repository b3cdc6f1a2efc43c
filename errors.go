package zungjung

import "errors"

var (
	// ErrHandSize is returned when a hand to score is not exactly 14 tiles.
	ErrHandSize = errors.New("hand must have exactly 14 tiles")
	// ErrInvalidTile is returned for a tile whose suit or rank is out of range.
	ErrInvalidTile = errors.New("invalid tile")
	// ErrNotation is returned by ParseTiles for malformed input.
	ErrNotation = errors.New("invalid tile notation")
	// ErrWallExhausted is returned when dealing more tiles than the wall holds.
	ErrWallExhausted = errors.New("not enough tiles left in the wall")
	// ErrNotInWall is returned when a requested tile has already left the wall.
	ErrNotInWall = errors.New("tile not in the wall")
)
