package game

import (
	"fmt"
	"sort"
)

type HandCategory int

const (
	HighCard HandCategory = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var categoryNames = map[HandCategory]string{
	HighCard:      "High Card",
	OnePair:       "One Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
}

func (c HandCategory) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return fmt.Sprintf("HandCategory(%d)", int(c))
}

// Strength packing. Each category owns a disjoint band of width categoryBand.
// Inside a band the six tie-break slots (primary, secondary, up to four
// kickers) are packed as base-15 digits, most significant first. The largest
// in-band value is 15^6-1 = 11,390,624 < categoryBand, so the bands cannot
// overlap and comparing Strength alone reproduces the full
// category -> primary -> secondary -> kickers order.
const (
	categoryBand  = 100_000_000
	tiebreakBase  = 15
	tiebreakSlots = 6
)

// HandEvaluation is the scored best five of a player's seven cards.
// Secondary is only meaningful for FullHouse and TwoPair; it is zero
// everywhere else. Kickers are sorted descending.
type HandEvaluation struct {
	Category  HandCategory
	Strength  int64
	Primary   Rank
	Secondary Rank
	Kickers   []Rank
	BestFive  [5]Card
}

func packStrength(cat HandCategory, primary, secondary Rank, kickers []Rank) int64 {
	var slots [tiebreakSlots]int64
	slots[0] = int64(primary)
	slots[1] = int64(secondary)
	for i, k := range kickers {
		slots[2+i] = int64(k)
	}
	v := int64(0)
	for _, d := range slots {
		v = v*tiebreakBase + d
	}
	return int64(cat)*categoryBand + v
}

// fiveOfSeven enumerates the 21 ways of choosing 5 of 7 cards, fixed since
// 7-choose-5 never changes.
var fiveOfSeven = [21][5]int{
	{0, 1, 2, 3, 4}, {0, 1, 2, 3, 5}, {0, 1, 2, 3, 6}, {0, 1, 2, 4, 5},
	{0, 1, 2, 4, 6}, {0, 1, 2, 5, 6}, {0, 1, 3, 4, 5}, {0, 1, 3, 4, 6},
	{0, 1, 3, 5, 6}, {0, 1, 4, 5, 6}, {0, 2, 3, 4, 5}, {0, 2, 3, 4, 6},
	{0, 2, 3, 5, 6}, {0, 2, 4, 5, 6}, {0, 3, 4, 5, 6}, {1, 2, 3, 4, 5},
	{1, 2, 3, 4, 6}, {1, 2, 3, 5, 6}, {1, 2, 4, 5, 6}, {1, 3, 4, 5, 6},
	{2, 3, 4, 5, 6},
}

// EvaluateBestHand scores the best five-card hand a player can form from two
// hole cards and a complete five-card board. Duplicate cards and a short or
// long board are caller bugs and come back as errors, never as a default.
func EvaluateBestHand(hole [2]Card, community []Card) (HandEvaluation, error) {
	if len(community) != 5 {
		return HandEvaluation{}, fmt.Errorf("%w: expected 5 community cards, got %d", ErrBadBoard, len(community))
	}
	var all [7]Card
	all[0], all[1] = hole[0], hole[1]
	copy(all[2:], community)

	seen := map[Card]bool{}
	for _, c := range all {
		if seen[c] {
			return HandEvaluation{}, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen[c] = true
	}

	var best HandEvaluation
	for i, combo := range fiveOfSeven {
		var five [5]Card
		for j, idx := range combo {
			five[j] = all[idx]
		}
		ev := evaluateFive(five)
		if i == 0 || ev.Strength > best.Strength {
			best = ev
		}
	}
	return best, nil
}

func evaluateFive(five [5]Card) HandEvaluation {
	counts := map[Rank]int{}
	suits := map[Suit]int{}
	ranks := make([]Rank, 0, 5)
	for _, c := range five {
		counts[c.Rank]++
		suits[c.Suit]++
		ranks = append(ranks, c.Rank)
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })

	isFlush := len(suits) == 1
	isStraight, straightHigh := straightHighRank(ranks)

	ev := HandEvaluation{BestFive: five}
	switch {
	case isFlush && isStraight && straightHigh == Ace:
		ev.Category = RoyalFlush
		ev.Primary = straightHigh
	case isFlush && isStraight:
		ev.Category = StraightFlush
		ev.Primary = straightHigh
	default:
		groups := rankGroups(counts)
		switch {
		case groups[0].count == 4:
			ev.Category = FourOfAKind
			ev.Primary = groups[0].rank
			ev.Kickers = kickersExcluding(ranks, 1, groups[0].rank)
		case groups[0].count == 3 && groups[1].count == 2:
			ev.Category = FullHouse
			ev.Primary = groups[0].rank
			ev.Secondary = groups[1].rank
		case isFlush:
			ev.Category = Flush
			ev.Primary = ranks[0]
			ev.Kickers = append([]Rank(nil), ranks[1:]...)
		case isStraight:
			ev.Category = Straight
			ev.Primary = straightHigh
		case groups[0].count == 3:
			ev.Category = ThreeOfAKind
			ev.Primary = groups[0].rank
			ev.Kickers = kickersExcluding(ranks, 2, groups[0].rank)
		case groups[0].count == 2 && groups[1].count == 2:
			ev.Category = TwoPair
			ev.Primary = groups[0].rank
			ev.Secondary = groups[1].rank
			ev.Kickers = kickersExcluding(ranks, 1, groups[0].rank, groups[1].rank)
		case groups[0].count == 2:
			ev.Category = OnePair
			ev.Primary = groups[0].rank
			ev.Kickers = kickersExcluding(ranks, 3, groups[0].rank)
		default:
			ev.Category = HighCard
			ev.Primary = ranks[0]
			ev.Kickers = append([]Rank(nil), ranks[1:]...)
		}
	}
	ev.Strength = packStrength(ev.Category, ev.Primary, ev.Secondary, ev.Kickers)
	return ev
}

type rankGroup struct {
	rank  Rank
	count int
}

// rankGroups sorts rank multiplicities by count then rank, both descending,
// so groups[0] is always the dominant group of the hand.
func rankGroups(counts map[Rank]int) []rankGroup {
	groups := make([]rankGroup, 0, len(counts))
	for r, c := range counts {
		groups = append(groups, rankGroup{rank: r, count: c})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})
	// a lone group can never index out of range below
	if len(groups) == 1 {
		groups = append(groups, rankGroup{})
	}
	return groups
}

// straightHighRank expects ranks sorted descending. The wheel A-5-4-3-2 plays
// as a 5-high straight, never as ace-high.
func straightHighRank(ranks []Rank) (bool, Rank) {
	for i := 1; i < len(ranks); i++ {
		if ranks[i] == ranks[i-1] {
			return false, 0
		}
	}
	if ranks[0]-ranks[4] == 4 {
		return true, ranks[0]
	}
	if ranks[0] == Ace && ranks[1] == Five && ranks[4] == Two && ranks[1]-ranks[4] == 3 {
		return true, Five
	}
	return false, 0
}

// kickersExcluding takes the top n ranks not belonging to any excluded group.
func kickersExcluding(ranks []Rank, n int, exclude ...Rank) []Rank {
	out := make([]Rank, 0, n)
	for _, r := range ranks {
		skip := false
		for _, e := range exclude {
			if r == e {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		out = append(out, r)
		if len(out) == n {
			break
		}
	}
	return out
}
