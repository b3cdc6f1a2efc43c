package zungjung

// ==========================================================
// Hand Shape & Composition Checks
// ==========================================================

// orphansPattern is the 13 distinct tiles of Thirteen Orphans, in canonical order.
var orphansPattern = []Tile{
	{Bamboo, 1}, {Bamboo, 9},
	{Characters, 1}, {Characters, 9},
	{Dots, 1}, {Dots, 9},
	{Dragons, White}, {Dragons, Green}, {Dragons, Red},
	{Winds, East}, {Winds, South}, {Winds, West}, {Winds, North},
}

// IsThirteenOrphans checks for one of each terminal and honor plus one duplicate.
// The hand must be 14 tiles; order does not matter.
func IsThirteenOrphans(hand []Tile) bool {
	if len(hand) != HandSize {
		return false
	}
	unique := UniqueTiles(SortedTiles(hand))
	if len(unique) != len(orphansPattern) {
		return false
	}
	for i, t := range unique {
		if !t.Equal(orphansPattern[i]) {
			return false
		}
	}
	return true
}

// isNineGates checks the tile counts for 1112345678999 plus any tile of one suit.
// The caller has already established the hand is pure one suit.
func isNineGates(tiles []Tile) bool {
	if len(tiles) != HandSize || tiles[0].IsHonor() {
		return false
	}
	counts := make(map[int]int, 9)
	for _, t := range tiles {
		counts[t.Rank]++
	}
	if counts[1] < 3 || counts[9] < 3 {
		return false
	}
	for rank := 2; rank <= 8; rank++ {
		if counts[rank] < 1 {
			return false
		}
	}
	return true
}

// composition summarises the flattened tiles of a complete hand.
type composition struct {
	total     int
	honors    int
	numbers   int
	terminals int
	suits     map[Suit]bool // numbered suits present
}

func composeTiles(tiles []Tile) composition {
	c := composition{total: len(tiles), suits: make(map[Suit]bool, 3)}
	for _, t := range tiles {
		if t.IsHonor() {
			c.honors++
			continue
		}
		c.numbers++
		c.suits[t.Suit] = true
		if t.IsTerminal() {
			c.terminals++
		}
	}
	return c
}

func (c composition) allHonors() bool { return c.honors == c.total }

func (c composition) allSimples() bool { return c.numbers-c.terminals == c.total }

func (c composition) onlyTerminalsAndHonors() bool { return c.terminals+c.honors == c.total }

// oneSuit is true when there is at least one numbered tile and all of them share a suit.
func (c composition) oneSuit() bool { return c.numbers > 0 && len(c.suits) == 1 }
