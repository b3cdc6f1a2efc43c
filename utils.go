package zungjung

// CountTiles counts tiles by suit and rank.
func CountTiles(tiles []Tile) map[Tile]int {
	counts := make(map[Tile]int, len(tiles))
	for _, t := range tiles {
		counts[t]++
	}
	return counts
}

// UniqueTiles returns one of each tile, keeping the first-seen order.
// On sorted input the output is sorted too.
func UniqueTiles(tiles []Tile) []Tile {
	seen := make(map[Tile]bool, len(tiles))
	out := make([]Tile, 0, len(tiles))
	for _, t := range tiles {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// countFirst counts the copies of tiles[0] at the front of a sorted slice.
func countFirst(tiles []Tile) int {
	if len(tiles) == 0 {
		return 0
	}
	n := 1
	for n < len(tiles) && tiles[n].Equal(tiles[0]) {
		n++
	}
	return n
}

// indexOf finds the first tile equal to target, or -1.
func indexOf(tiles []Tile, target Tile) int {
	for i, t := range tiles {
		if t.Equal(target) {
			return i
		}
	}
	return -1
}

// RemoveTile returns a copy of tiles without the first occurrence of target,
// and whether it was found. The input slice is never modified.
func RemoveTile(tiles []Tile, target Tile) ([]Tile, bool) {
	idx := indexOf(tiles, target)
	if idx == -1 {
		return tiles, false
	}
	out := make([]Tile, 0, len(tiles)-1)
	out = append(out, tiles[:idx]...)
	return append(out, tiles[idx+1:]...), true
}

// RemoveTiles removes one occurrence of each target. It reports false, with the
// original slice, if any target is missing.
func RemoveTiles(tiles []Tile, targets []Tile) ([]Tile, bool) {
	rest := tiles
	for _, target := range targets {
		var ok bool
		if rest, ok = RemoveTile(rest, target); !ok {
			return tiles, false
		}
	}
	return rest, true
}

// sameTiles compares two tile slices as multisets.
func sameTiles(a, b []Tile) bool {
	if len(a) != len(b) {
		return false
	}
	counts := CountTiles(a)
	for _, t := range b {
		counts[t]--
		if counts[t] < 0 {
			return false
		}
	}
	return true
}

// flattenSets concatenates the tiles of every set.
func flattenSets(sets []Set) []Tile {
	var tiles []Tile
	for _, s := range sets {
		tiles = append(tiles, s.tiles...)
	}
	return tiles
}
