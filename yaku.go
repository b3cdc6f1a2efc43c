// yaku.go
package zungjung

import (
	"fmt"
	"sort"
)

// LimitValue is the point value at which a yaku becomes a limit hand.
const LimitValue = 320

// Yaku holds the name and point value of a scoring pattern.
type Yaku struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

// IsLimit reports whether the yaku alone reaches the limit.
func (y Yaku) IsLimit() bool { return y.Value >= LimitValue }

// YakuType enumerates every yaku the ruleset knows about.
type YakuType int

const (
	ChickenHand YakuType = iota
	AllSequences
	ConcealedHand
	AllSimples
	MixedOneSuit
	PureOneSuit
	NineGates
	DragonTripletWhite
	DragonTripletGreen
	DragonTripletRed
	SeatWindTriplet
	SmallThreeDragons
	BigThreeDragons
	SmallThreeWinds
	BigThreeWinds
	SmallFourWinds
	BigFourWinds
	AllHonors
	AllTriplets
	TwoConcealedTriplets
	ThreeConcealedTriplets
	FourConcealedTriplets
	OneKong
	TwoKongs
	ThreeKongs
	FourKongs
	TwoIdenticalSequences
	TwoIdenticalSequencesTwice
	ThreeIdenticalSequences
	FourIdenticalSequences
	ThreeSimilarSequences
	SmallThreeSimilarTriplets
	ThreeSimilarTriplets
	NineTileStraight
	ThreeConsecutiveTriplets
	FourConsecutiveTriplets
	MixedLesserTerminals
	PureLesserTerminals
	MixedGreaterTerminals
	PureGreaterTerminals
	FinalDraw
	FinalDiscard
	WinOnKong
	RobbingAKong
	BlessingOfHeaven
	BlessingOfEarth
	ThirteenOrphans
	SevenPairs

	numYakuTypes
)

// yakuTable maps every YakuType to its name and value. Names must be unique;
// init enforces it.
var yakuTable = [numYakuTypes]Yaku{
	ChickenHand:                {"Chicken Hand", 1},
	AllSequences:               {"All Sequences", 5},
	ConcealedHand:              {"Concealed Hand", 5},
	AllSimples:                 {"All Simples", 5},
	MixedOneSuit:               {"Mixed One Suit", 40},
	PureOneSuit:                {"Pure One Suit", 80},
	NineGates:                  {"Nine Gates", 480},
	DragonTripletWhite:         {"Triplet of Dragons (White)", 10},
	DragonTripletGreen:         {"Triplet of Dragons (Green)", 10},
	DragonTripletRed:           {"Triplet of Dragons (Red)", 10},
	SeatWindTriplet:            {"Triplet of Seat Wind", 10},
	SmallThreeDragons:          {"Small Three Dragons", 40},
	BigThreeDragons:            {"Big Three Dragons", 130},
	SmallThreeWinds:            {"Small Three Winds", 30},
	BigThreeWinds:              {"Big Three Winds", 120},
	SmallFourWinds:             {"Small Four Winds", 320},
	BigFourWinds:               {"Big Four Winds", 400},
	AllHonors:                  {"All Honors", 320},
	AllTriplets:                {"All Triplets", 30},
	TwoConcealedTriplets:       {"Two Concealed Triplets", 5},
	ThreeConcealedTriplets:     {"Three Concealed Triplets", 30},
	FourConcealedTriplets:      {"Four Concealed Triplets", 125},
	OneKong:                    {"One Kong", 5},
	TwoKongs:                   {"Two Kongs", 20},
	ThreeKongs:                 {"Three Kongs", 120},
	FourKongs:                  {"Four Kongs", 480},
	TwoIdenticalSequences:      {"Two Identical Sequences", 10},
	TwoIdenticalSequencesTwice: {"Two Identical Sequences Twice", 60},
	ThreeIdenticalSequences:    {"Three Identical Sequences", 120},
	FourIdenticalSequences:     {"Four Identical Sequences", 480},
	ThreeSimilarSequences:      {"Three Similar Sequences", 35},
	SmallThreeSimilarTriplets:  {"Small Three Similar Triplets", 30},
	ThreeSimilarTriplets:       {"Three Similar Triplets", 120},
	NineTileStraight:           {"Nine-Tile Straight", 40},
	ThreeConsecutiveTriplets:   {"Three Consecutive Triplets", 100},
	FourConsecutiveTriplets:    {"Four Consecutive Triplets", 200},
	MixedLesserTerminals:       {"Mixed Lesser Terminals", 40},
	PureLesserTerminals:        {"Pure Lesser Terminals", 50},
	MixedGreaterTerminals:      {"Mixed Greater Terminals", 100},
	PureGreaterTerminals:       {"Pure Greater Terminals", 400},
	FinalDraw:                  {"Final Draw", 10},
	FinalDiscard:               {"Final Discard", 10},
	WinOnKong:                  {"Win on Kong", 10},
	RobbingAKong:               {"Robbing a Kong", 10},
	BlessingOfHeaven:           {"Blessing of Heaven", 155},
	BlessingOfEarth:            {"Blessing of Earth", 155},
	ThirteenOrphans:            {"Thirteen Orphans", 160},
	SevenPairs:                 {"Seven Pairs", 30},
}

func init() {
	if err := checkYakuTable(yakuTable[:]); err != nil {
		panic(fmt.Sprintf("internal error: %v", err))
	}
}

// checkYakuTable verifies that every entry is filled in and no name repeats.
func checkYakuTable(table []Yaku) error {
	seen := make(map[string]int, len(table))
	for i, y := range table {
		if y.Name == "" {
			return fmt.Errorf("yaku %d has no name", i)
		}
		if prev, dup := seen[y.Name]; dup {
			return fmt.Errorf("yaku %d and %d share the name %q", prev, i, y.Name)
		}
		seen[y.Name] = i
	}
	return nil
}

// Yaku returns the name/value entry for the type.
func (t YakuType) Yaku() Yaku {
	if t < 0 || t >= numYakuTypes {
		panic(fmt.Sprintf("internal error: unknown yaku type %d", int(t)))
	}
	return yakuTable[t]
}

func (t YakuType) String() string { return t.Yaku().Name }

// AllYaku returns the whole table in declaration order.
func AllYaku() []Yaku {
	out := make([]Yaku, len(yakuTable))
	copy(out, yakuTable[:])
	return out
}

// YakuList is every scoring pattern one hand embodies. Names are unique.
type YakuList []Yaku

// add appends a yaku unless one with the same name is already present.
func (l YakuList) add(t YakuType) YakuList {
	y := t.Yaku()
	if l.Has(y) {
		return l
	}
	return append(l, y)
}

// Has checks membership by name.
func (l YakuList) Has(y Yaku) bool {
	for _, x := range l {
		if x.Name == y.Name {
			return true
		}
	}
	return false
}

// Names returns the yaku names sorted alphabetically.
func (l YakuList) Names() []string {
	names := make([]string, len(l))
	for i, y := range l {
		names[i] = y.Name
	}
	sort.Strings(names)
	return names
}

// Equal compares two lists by name, ignoring order.
func (l YakuList) Equal(other YakuList) bool {
	if len(l) != len(other) {
		return false
	}
	a, b := l.Names(), other.Names()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Total sums the values without applying the limit rule.
func (l YakuList) Total() int {
	total := 0
	for _, y := range l {
		total += y.Value
	}
	return total
}

// Score is the capped total; see Capped.
func (l YakuList) Score() int {
	return l.Capped().Total()
}
