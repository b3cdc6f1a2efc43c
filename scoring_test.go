package zungjung

import (
	"bytes"
	"log/slog"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreHand_InputErrors(t *testing.T) {
	_, err := ScoreHand(TilesFromString(t, "123b 456c 789d EEE H"))
	assert.ErrorIs(t, err, ErrHandSize)

	_, err = ScoreHand(nil)
	assert.ErrorIs(t, err, ErrHandSize)

	hand := TilesFromString(t, "123b 456c 789d EEE H")
	hand = append(hand, Tile{Dragons, 4})
	_, err = ScoreHand(hand)
	assert.ErrorIs(t, err, ErrInvalidTile)
}

func TestScoreHand_Totals(t *testing.T) {
	tests := []struct {
		hand string
		want int
	}{
		{"123b 456c HHH GGG RR", 65},   // 5 + 10 + 10 + 40
		{"123456b 456789c HH", 10},     // 5 + 5
		{"111222333b 555c HH", 135},    // triplets beat three identical runs
		{"19b 19c 19d ESWN HGRR", 165}, // 5 + 160
		{"EEE SSS WWW NNN 55b", 400},   // limit
		{"11123455678999c", 480},       // limit
	}
	for _, tc := range tests {
		t.Run(tc.hand, func(t *testing.T) {
			res := scoreString(t, tc.hand)
			require.NotNil(t, res)
			assert.Equal(t, tc.want, res.Score())
			assert.Equal(t, tc.want, ScoreYaku(res.Yaku))
		})
	}
}

func TestScoreHand_PrefersTripletReading(t *testing.T) {
	res := scoreString(t, "111222333b 555c HH")
	require.NotNil(t, res)
	require.Len(t, res.Sets, 5)
	for _, s := range res.Sets[:4] {
		assert.True(t, s.IsTriplet(), "set %s", s)
	}
	assert.True(t, res.Sets[4].IsPair())
}

func TestScoreHand_OrderDoesNotMatter(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, hand := range []string{
		"123b 456c HHH GGG RR",
		"111222333444b 55c",
		"1199b 1199c HH GG RR",
		"19b 19c 19d ESWN HGRR",
		"29b 68c 1223d H G RR S W",
	} {
		want := scoreString(t, hand)
		for i := 0; i < 10; i++ {
			tiles := TilesFromString(t, hand)
			rng.Shuffle(len(tiles), func(i, j int) { tiles[i], tiles[j] = tiles[j], tiles[i] })
			got, err := ScoreHand(tiles)
			require.NoError(t, err)
			if want == nil {
				assert.Nil(t, got, FormatTiles(tiles))
				continue
			}
			require.NotNil(t, got, FormatTiles(tiles))
			assert.Equal(t, want.Score(), got.Score())
			assert.True(t, CompareYaku(want.Yaku, got.Yaku), FormatTiles(tiles))
		}
	}
}

func TestScoreHand_DoesNotModifyInput(t *testing.T) {
	hand := TilesFromString(t, "RR HHH 789d 456c 123b")
	before := append([]Tile(nil), hand...)
	_, err := ScoreHand(hand)
	require.NoError(t, err)
	assert.Equal(t, before, hand)
}

// randomRegularHand builds four melds and a pair from at most four copies of each tile.
func randomRegularHand(rng *rand.Rand) []Tile {
	kinds := AllTileKinds()
	for {
		used := make(map[Tile]int)
		var hand []Tile
		take := func(tiles ...Tile) bool {
			for _, t := range tiles {
				if !t.IsValid() || used[t]+1 > 4 {
					return false
				}
			}
			for _, t := range tiles {
				used[t]++
			}
			hand = append(hand, tiles...)
			return true
		}

		ok := true
		for meld := 0; meld < 4 && ok; meld++ {
			k := kinds[rng.Intn(len(kinds))]
			if k.IsNumber() && rng.Intn(2) == 0 {
				ok = take(k, Tile{k.Suit, k.Rank + 1}, Tile{k.Suit, k.Rank + 2})
			} else {
				ok = take(k, k, k)
			}
		}
		if ok {
			k := kinds[rng.Intn(len(kinds))]
			ok = take(k, k)
		}
		if ok {
			return hand
		}
	}
}

func TestScoreHand_RandomRegularHandsAreComplete(t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	for i := 0; i < 200; i++ {
		hand := randomRegularHand(rng)
		res, err := ScoreHand(hand)
		require.NoError(t, err)
		require.NotNil(t, res, "hand %s", FormatTiles(SortedTiles(hand)))
		assert.True(t, res.Score() > 0)
		assert.True(t, res.Score() <= 480)
		if res.Shape != ShapeThirteenOrphans {
			assert.True(t, sameTiles(hand, flattenSets(res.Sets)))
		}
	}
}

func TestScoreHand_Concurrent(t *testing.T) {
	hands := []string{
		"123b 456c HHH GGG RR",
		"111222333b 555c HH",
		"EEE SSS WWW NNN 55b",
		"1199b 1199c HH GG RR",
	}
	want := make([]int, len(hands))
	for i, h := range hands {
		want[i] = scoreString(t, h).Score()
	}

	var wg sync.WaitGroup
	got := make([][]int, 8)
	for w := range got {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for _, h := range hands {
				res, err := ScoreHand(MustParseTiles(h))
				if err != nil || res == nil {
					got[w] = append(got[w], -1)
					continue
				}
				got[w] = append(got[w], res.Score())
			}
		}(w)
	}
	wg.Wait()
	for _, scores := range got {
		assert.Equal(t, want, scores)
	}
}

func TestScoreHand_LogsSearch(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	res := scoreString(t, "123b 456c HHH GGG RR", WithLogger(logger))
	require.NotNil(t, res)
	assert.Contains(t, buf.String(), "hand scored")
	assert.Contains(t, buf.String(), "score=65")

	buf.Reset()
	assert.Nil(t, scoreString(t, "29b 68c 1223d H G RR S W", WithLogger(logger)))
	assert.Contains(t, buf.String(), "hand is not complete")
}

// --- Limit rule and list helpers ---

func TestCapped(t *testing.T) {
	plain := yakuOf(ConcealedHand, AllSequences)
	capped := plain.Capped()
	assert.Equal(t, plain, capped)
	capped[0].Value = 99
	assert.Equal(t, 5, plain[0].Value, "Capped returns a copy")

	withLimit := yakuOf(ConcealedHand, BigThreeWinds, AllHonors)
	assert.Equal(t, YakuList{AllHonors.Yaku()}, withLimit.Capped())
	assert.Equal(t, 320, ScoreYaku(withLimit))

	highest := yakuOf(AllHonors, BigFourWinds, ConcealedHand)
	assert.Equal(t, YakuList{BigFourWinds.Yaku()}, highest.Capped())

	tie := yakuOf(ConcealedHand, FourKongs, NineGates)
	assert.Equal(t, YakuList{FourKongs.Yaku()}, tie.Capped())
}

func TestScoreYaku_Idempotent(t *testing.T) {
	for _, list := range []YakuList{
		yakuOf(),
		yakuOf(ConcealedHand, SevenPairs, MixedOneSuit),
		yakuOf(ConcealedHand, SmallFourWinds, MixedOneSuit),
	} {
		assert.Equal(t, ScoreYaku(list), ScoreYaku(list.Capped()))
	}
	assert.Equal(t, 0, ScoreYaku(nil))
	assert.Equal(t, 75, ScoreYaku(yakuOf(ConcealedHand, SevenPairs, MixedOneSuit)))
}

func TestHasYakuAndCompareYaku(t *testing.T) {
	list := yakuOf(ConcealedHand, SevenPairs)

	assert.True(t, HasYaku(list, SevenPairs.Yaku()))
	assert.True(t, HasYaku(list, Yaku{Name: "Seven Pairs"}), "membership is by name")
	assert.False(t, HasYaku(list, AllSimples.Yaku()))

	assert.True(t, CompareYaku(list, yakuOf(SevenPairs, ConcealedHand)))
	assert.False(t, CompareYaku(list, yakuOf(SevenPairs)))
	assert.False(t, CompareYaku(list, yakuOf(SevenPairs, AllSimples)))
	assert.True(t, CompareYaku(nil, YakuList{}))
}
