package game

import "sort"

// Compare orders two evaluations: category, then primary, then secondary,
// then kickers element by element. An exhausted kicker list is equal at that
// tier. The structured walk is authoritative; Strength is the packed cache of
// the same order and the two must always agree.
func Compare(a, b HandEvaluation) int {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return 1
		}
		return -1
	}
	if a.Primary != b.Primary {
		if a.Primary > b.Primary {
			return 1
		}
		return -1
	}
	if a.Secondary != b.Secondary {
		if a.Secondary > b.Secondary {
			return 1
		}
		return -1
	}
	for i := 0; i < len(a.Kickers) && i < len(b.Kickers); i++ {
		if a.Kickers[i] != b.Kickers[i] {
			if a.Kickers[i] > b.Kickers[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// PlayerHand pairs a player with their evaluated hand for ranking.
type PlayerHand struct {
	PlayerID   string
	Evaluation HandEvaluation
}

// HandRanking carries a 1-based competition rank: tied players share a rank
// and the rank after a tie group of size n jumps by n. Evaluation is nil for
// players ranked without a showdown (folded, sentinel rank).
type HandRanking struct {
	PlayerID   string
	Rank       int
	Evaluation *HandEvaluation
	IsWinner   bool
}

// RankPlayers sorts hands strongest first and assigns competition ranks:
// a 3-way tie for first puts all three at rank 1 and the next hand at rank 4.
func RankPlayers(hands []PlayerHand) []HandRanking {
	sorted := append([]PlayerHand(nil), hands...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Compare(sorted[i].Evaluation, sorted[j].Evaluation) > 0
	})
	out := make([]HandRanking, 0, len(sorted))
	for i := range sorted {
		rank := i + 1
		if i > 0 && Compare(sorted[i].Evaluation, sorted[i-1].Evaluation) == 0 {
			rank = out[i-1].Rank
		}
		ev := sorted[i].Evaluation
		out = append(out, HandRanking{
			PlayerID:   sorted[i].PlayerID,
			Rank:       rank,
			Evaluation: &ev,
			IsWinner:   rank == 1,
		})
	}
	return out
}

// Winners returns every rank-1 entry.
func Winners(rankings []HandRanking) []HandRanking {
	out := make([]HandRanking, 0, 1)
	for _, r := range rankings {
		if r.Rank == 1 {
			out = append(out, r)
		}
	}
	return out
}

func HasTiedWinners(rankings []HandRanking) bool {
	return len(Winners(rankings)) > 1
}
