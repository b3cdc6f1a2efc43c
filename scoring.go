package zungjung

import "fmt"

// ScoreHand decides whether hand is complete and returns its best scoring
// decomposition. Tile order does not matter.
//
// A nil Result with a nil error means the hand is not complete, which is the
// normal outcome for most hands. An error means the input itself is unusable.
func ScoreHand(hand []Tile, opts ...Option) (*Result, error) {
	if len(hand) != HandSize {
		return nil, fmt.Errorf("%w: got %d", ErrHandSize, len(hand))
	}
	for _, t := range hand {
		if !t.IsValid() {
			return nil, fmt.Errorf("%w: suit %d rank %d", ErrInvalidTile, int(t.Suit), t.Rank)
		}
	}

	o := newOptions(opts)
	sorted := SortedTiles(hand)

	// Thirteen Orphans cannot be expressed as pairs and melds, so match it directly.
	if IsThirteenOrphans(sorted) {
		yaku := YakuList{}.add(ConcealedHand).add(ThirteenOrphans)
		return &Result{Shape: ShapeThirteenOrphans, Yaku: yaku.Capped()}, nil
	}

	s := newSearcher(o)
	best := s.decompose(sorted, nil)
	if best == nil {
		o.logger.Debug("hand is not complete", "hand", FormatTiles(sorted), "leaves", s.leaves)
		return nil, nil
	}
	verifyDecomposition(sorted, best.Sets)

	o.logger.Debug("hand scored",
		"hand", FormatTiles(sorted),
		"shape", best.Shape.String(),
		"leaves", s.leaves,
		"score", best.Score())
	return best, nil
}

// Capped applies the limit rule: if any yaku is worth LimitValue or more, the
// hand scores as that single yaku (the highest one, first on ties) and every
// other pattern, Concealed Hand included, is dropped. Otherwise the list is
// returned unchanged as a copy.
func (l YakuList) Capped() YakuList {
	var top *Yaku
	for i := range l {
		if l[i].IsLimit() && (top == nil || l[i].Value > top.Value) {
			top = &l[i]
		}
	}
	if top != nil {
		return YakuList{*top}
	}
	out := make(YakuList, len(l))
	copy(out, l)
	return out
}

// ScoreYaku is the total point value of a list after the limit rule.
// Scoring an already capped list gives the same total.
func ScoreYaku(list YakuList) int {
	return list.Score()
}

// HasYaku reports whether a yaku with the candidate's name is in the list.
func HasYaku(list YakuList, candidate Yaku) bool {
	return list.Has(candidate)
}

// CompareYaku reports whether two lists hold the same yaku names, in any order.
func CompareYaku(a, b YakuList) bool {
	return a.Equal(b)
}
