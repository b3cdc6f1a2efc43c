package zungjung

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRun(t *testing.T) {
	run, rest, ok := extractRun(TilesFromString(t, "1223b 5c"))
	require.True(t, ok)
	assert.Equal(t, "123b", run.String())
	assert.Equal(t, "2b 5c", FormatTiles(rest))

	_, _, ok = extractRun(TilesFromString(t, "124b"))
	assert.False(t, ok)

	_, _, ok = extractRun(TilesFromString(t, "89b 1c"))
	assert.False(t, ok, "runs do not wrap into the next suit")

	_, _, ok = extractRun(TilesFromString(t, "EEE"))
	assert.False(t, ok)
}

func TestWithSet_DoesNotAlias(t *testing.T) {
	base := make([]Set, 1, 4)
	base[0] = setOf(t, "123b")

	a := withSet(base, setOf(t, "EEE"))
	b := withSet(base, setOf(t, "HH"))

	assert.Equal(t, "EEE", a[1].String())
	assert.Equal(t, "HH", b[1].String())
	assert.Len(t, base, 1)
}

func TestDecompose_SevenPairsAndRegular(t *testing.T) {
	// 22 33 44 55 66 77 88 reads as seven pairs or as 234 234 567 567 88
	res := scoreString(t, "223344556677b 88c")
	require.NotNil(t, res)
	assert.Equal(t, ShapeRegular, res.Shape)
	assert.True(t, res.Yaku.Has(TwoIdenticalSequencesTwice.Yaku()), res.Yaku.Names())

	res = scoreString(t, "22b 44b 66b 88b 33c 55c 77c")
	require.NotNil(t, res)
	assert.Equal(t, ShapeSevenPairs, res.Shape)
	for _, s := range res.Sets {
		assert.True(t, s.IsPair())
	}
}

func TestDecompose_TiesKeepFirstReading(t *testing.T) {
	// 11123 + 444 etc: both readings score the same, so the triplet-first one is kept
	res := scoreString(t, "11123444b 123c 555d")
	require.NotNil(t, res)
	assert.Equal(t, "111b", res.Sets[0].String())
}

func TestDecompose_CountsLeaves(t *testing.T) {
	s := newSearcher(newOptions(nil))
	res := s.decompose(SortedTiles(TilesFromString(t, "111222333b 555c HH")), nil)
	require.NotNil(t, res)
	assert.True(t, s.leaves >= 2, "both the triplet and the run readings are complete")
}

func TestVerifyDecomposition(t *testing.T) {
	hand := SortedTiles(TilesFromString(t, "123b 456c 789d HHH EE"))
	good := []Set{setOf(t, "123b"), setOf(t, "456c"), setOf(t, "789d"), setOf(t, "HHH"), setOf(t, "EE")}
	assert.NotPanics(t, func() { verifyDecomposition(hand, good) })

	bad := []Set{setOf(t, "123b"), setOf(t, "456c"), setOf(t, "789d"), setOf(t, "GGG"), setOf(t, "EE")}
	assert.Panics(t, func() { verifyDecomposition(hand, bad) })
	assert.Panics(t, func() { verifyDecomposition(hand, good[:4]) })
}

func TestRemoveTiles(t *testing.T) {
	tiles := TilesFromString(t, "1123b")
	rest, ok := RemoveTiles(tiles, TilesFromString(t, "13b"))
	require.True(t, ok)
	assert.Equal(t, "12b", FormatTiles(rest))
	assert.Equal(t, "1123b", FormatTiles(tiles))

	rest, ok = RemoveTiles(tiles, TilesFromString(t, "14b"))
	assert.False(t, ok)
	assert.Equal(t, tiles, rest)
}

func TestCountAndUniqueTiles(t *testing.T) {
	tiles := TilesFromString(t, "1123b EE")
	counts := CountTiles(tiles)
	assert.Equal(t, 2, counts[Tile{Bamboo, 1}])
	assert.Equal(t, 2, counts[Tile{Winds, East}])
	assert.Equal(t, "123b E", FormatTiles(UniqueTiles(tiles)))
	assert.Equal(t, 2, countFirst(tiles))
	assert.Equal(t, 0, countFirst(nil))
}
