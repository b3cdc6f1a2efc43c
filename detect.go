package zungjung

// detector turns a candidate decomposition into a list of yaku.
type detector struct {
	seatWind int // 0 when unknown: Triplet of Seat Wind is then never evaluated
}

// meldCounts splits a decomposition by set kind.
type meldCounts struct {
	triplets []Set // kongs included
	runs     []Set
	pairs    []Set
}

func countMelds(sets []Set) meldCounts {
	var m meldCounts
	for _, s := range sets {
		switch s.Kind() {
		case KindTriplet, KindKong:
			m.triplets = append(m.triplets, s)
		case KindRun:
			m.runs = append(m.runs, s)
		case KindPair:
			m.pairs = append(m.pairs, s)
		}
	}
	return m
}

// detect validates the shape of sets and returns the scored result, or nil
// when the sets are not four melds and a pair, or seven pairs.
func (d detector) detect(sets []Set) *Result {
	m := countMelds(sets)

	yaku := YakuList{}.add(ConcealedHand)
	var shape Shape
	switch {
	case len(m.triplets)+len(m.runs) == 4 && len(m.pairs) == 1:
		shape = ShapeRegular
		yaku = d.regularYaku(yaku, m)
	case len(m.pairs) == 7:
		shape = ShapeSevenPairs
		yaku = yaku.add(SevenPairs)
	default:
		// Incomplete hand
		return nil
	}

	tiles := flattenSets(sets)
	c := composeTiles(tiles)
	yaku = compositionYaku(yaku, c, sets)
	if c.oneSuit() {
		if c.honors > 0 {
			yaku = yaku.add(MixedOneSuit)
		} else {
			yaku = yaku.add(PureOneSuit)
			if shape == ShapeRegular && isNineGates(tiles) {
				yaku = yaku.add(NineGates)
			}
		}
	}

	return &Result{Shape: shape, Sets: sets, Yaku: yaku.Capped()}
}

// regularYaku applies the rules that only make sense for four melds and a pair.
func (d detector) regularYaku(yaku YakuList, m meldCounts) YakuList {
	if len(m.triplets) == 4 {
		yaku = yaku.add(AllTriplets)
	}
	if len(m.runs) == 4 {
		yaku = yaku.add(AllSequences)
	}
	yaku = d.honorYaku(yaku, m)
	yaku = identicalSequenceYaku(yaku, m.runs)
	yaku = similarSetYaku(yaku, m)
	yaku = consecutiveSetYaku(yaku, m)
	return yaku
}

// --- Honor Tiles ---

func (d detector) honorYaku(yaku YakuList, m meldCounts) YakuList {
	numDragonTriplets, numWindTriplets := 0, 0
	for _, s := range m.triplets {
		switch s.Suit() {
		case Dragons:
			numDragonTriplets++
			switch s.First().Rank {
			case White:
				yaku = yaku.add(DragonTripletWhite)
			case Green:
				yaku = yaku.add(DragonTripletGreen)
			case Red:
				yaku = yaku.add(DragonTripletRed)
			}
		case Winds:
			numWindTriplets++
			if d.seatWind != 0 && s.First().Rank == d.seatWind {
				yaku = yaku.add(SeatWindTriplet)
			}
		}
	}

	pair := m.pairs[0]
	hasDragonPair := pair.Suit() == Dragons
	hasWindPair := pair.Suit() == Winds

	// Three dragon triplets leave no room for a dragon pair, so at most one fires.
	if numDragonTriplets == 3 {
		yaku = yaku.add(BigThreeDragons)
	} else if numDragonTriplets == 2 && hasDragonPair {
		yaku = yaku.add(SmallThreeDragons)
	}

	switch {
	case numWindTriplets == 4:
		yaku = yaku.add(BigFourWinds)
	case numWindTriplets == 3 && hasWindPair:
		yaku = yaku.add(SmallFourWinds)
	case numWindTriplets == 3:
		yaku = yaku.add(BigThreeWinds)
	case numWindTriplets == 2 && hasWindPair:
		yaku = yaku.add(SmallThreeWinds)
	}
	return yaku
}

// --- Identical Sets ---

// identicalSequenceYaku groups runs by suit and starting rank.
func identicalSequenceYaku(yaku YakuList, runs []Set) YakuList {
	counted := make(map[Tile]int, len(runs))
	for _, r := range runs {
		counted[r.First()]++
	}
	numDoubleRuns := 0
	for _, n := range counted {
		switch n {
		case 2:
			numDoubleRuns++
		case 3:
			yaku = yaku.add(ThreeIdenticalSequences)
		case 4:
			yaku = yaku.add(FourIdenticalSequences)
		}
	}
	switch numDoubleRuns {
	case 1:
		yaku = yaku.add(TwoIdenticalSequences)
	case 2:
		yaku = yaku.add(TwoIdenticalSequencesTwice)
	}
	return yaku
}

// --- Similar Sets ---

// similarSetYaku looks for the same run or triplet repeated across all three
// numbered suits. A pair may stand in for one triplet (the small variant).
func similarSetYaku(yaku YakuList, m meldCounts) YakuList {
	for _, r := range m.runs {
		if inEverySuit(r, m.runs, Set.Matches) {
			yaku = yaku.add(ThreeSimilarSequences)
			break
		}
	}

	var numbered []Set
	for _, t := range m.triplets {
		if t.Suit().IsNumbered() {
			numbered = append(numbered, t)
		}
	}
	for _, t := range numbered {
		if inEverySuit(t, numbered, Set.Matches) {
			return yaku.add(ThreeSimilarTriplets)
		}
	}
	pair := m.pairs[0]
	if !pair.Suit().IsNumbered() {
		return yaku
	}
	withPair := append(append([]Set{}, numbered...), pair)
	for _, t := range numbered {
		if inEverySuit(t, withPair, Set.MatchesSmallOrBig) {
			return yaku.add(SmallThreeSimilarTriplets)
		}
	}
	return yaku
}

// inEverySuit reports whether, for each numbered suit, some set in pool
// matches s moved into that suit.
func inEverySuit(s Set, pool []Set, match func(Set, Set) bool) bool {
	for _, suit := range NumberedSuits {
		moved := s.ChangeSuit(suit)
		if !anyMatch(moved, pool, match) {
			return false
		}
	}
	return true
}

func anyMatch(s Set, pool []Set, match func(Set, Set) bool) bool {
	for _, p := range pool {
		if match(s, p) {
			return true
		}
	}
	return false
}

// --- Consecutive Sets ---

func consecutiveSetYaku(yaku YakuList, m meldCounts) YakuList {
	for _, r := range m.runs {
		if r.First().Rank == 1 &&
			anyMatch(r.Bump(3), m.runs, Set.Matches) &&
			anyMatch(r.Bump(6), m.runs, Set.Matches) {
			yaku = yaku.add(NineTileStraight)
			break
		}
	}

	// Four consecutive triplets supersedes three.
	longest := 0
	for _, t := range m.triplets {
		if !t.Suit().IsNumbered() {
			continue
		}
		n := 1
		for anyMatch(t.Bump(n), m.triplets, Set.Matches) {
			n++
		}
		if n > longest {
			longest = n
		}
	}
	switch {
	case longest >= 4:
		yaku = yaku.add(FourConsecutiveTriplets)
	case longest == 3:
		yaku = yaku.add(ThreeConsecutiveTriplets)
	}
	return yaku
}

// --- Terminals ---

// compositionYaku applies the terminal/honor rules. They are mutually
// exclusive and checked in priority order.
func compositionYaku(yaku YakuList, c composition, sets []Set) YakuList {
	switch {
	case c.allHonors():
		return yaku.add(AllHonors)
	case c.onlyTerminalsAndHonors():
		if c.honors == 0 {
			return yaku.add(PureGreaterTerminals)
		}
		return yaku.add(MixedGreaterTerminals)
	case everySetHasTerminalOrHonor(sets):
		if c.honors == 0 {
			return yaku.add(PureLesserTerminals)
		}
		return yaku.add(MixedLesserTerminals)
	case c.allSimples():
		return yaku.add(AllSimples)
	}
	return yaku
}

func everySetHasTerminalOrHonor(sets []Set) bool {
	for _, s := range sets {
		if !s.HasTerminalOrHonor() {
			return false
		}
	}
	return true
}
