package game

import (
	"fmt"
	"sort"
)

// PlayerContribution is a player's terminal-hand snapshot: total chips
// committed across all streets plus fold/all-in status. Hole is nil when the
// cards never mattered (player folded before showdown).
type PlayerContribution struct {
	PlayerID string
	Name     string
	TotalBet int64
	Folded   bool
	AllIn    bool
	Hole     []Card
}

// SidePot is one laminar layer of the pot. Eligible is sorted by player id
// and each pot's eligible set contains the next pot's. Threshold is the
// contribution level that closed the layer.
type SidePot struct {
	ID        string
	Amount    int64
	Eligible  []string
	Threshold int64
}

// PotDistribution is one player's slice of one pot. For any pot the amounts
// across its distributions sum to the pot amount exactly.
type PotDistribution struct {
	PlayerID string
	PotID    string
	Amount   int64
	IsWinner bool
	IsTied   bool
}

// CalculateSidePots layers the non-folded contributions into main and side
// pots. Contributions are walked ascending by distinct bet level; each level
// adds (level - processed) chips per player still at or above it, eligible to
// exactly those players. Identical levels collapse into a single pot.
func CalculateSidePots(contributions []PlayerContribution) []SidePot {
	active := make([]PlayerContribution, 0, len(contributions))
	for _, c := range contributions {
		if !c.Folded && c.TotalBet > 0 {
			active = append(active, c)
		}
	}
	if len(active) == 0 {
		return nil
	}

	levels := make([]int64, 0, len(active))
	seen := map[int64]bool{}
	for _, c := range active {
		if !seen[c.TotalBet] {
			seen[c.TotalBet] = true
			levels = append(levels, c.TotalBet)
		}
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })

	pots := make([]SidePot, 0, len(levels))
	processed := int64(0)
	for _, level := range levels {
		eligible := make([]string, 0, len(active))
		for _, c := range active {
			if c.TotalBet >= level {
				eligible = append(eligible, c.PlayerID)
			}
		}
		sort.Strings(eligible)
		pots = append(pots, SidePot{
			ID:        potID(len(pots)),
			Amount:    (level - processed) * int64(len(eligible)),
			Eligible:  eligible,
			Threshold: level,
		})
		processed = level
	}
	return pots
}

func potID(index int) string {
	if index == 0 {
		return "main_pot"
	}
	return fmt.Sprintf("side_pot_%d", index)
}

// DistributePots assigns each pot to its winners. A pot with a single
// contender goes to them whole with no evaluation, which also covers the
// everyone-else-folded case. Otherwise contenders are evaluated and ranked,
// the pot is split by integer division among the rank-1 group, and the
// remainder chips go one per winner following oddChipOrder.
func DistributePots(pots []SidePot, contributions []PlayerContribution, community []Card) ([]PotDistribution, error) {
	byID := make(map[string]PlayerContribution, len(contributions))
	for _, c := range contributions {
		byID[c.PlayerID] = c
	}
	evals := make(map[string]HandEvaluation)

	out := make([]PotDistribution, 0, len(pots))
	for _, pot := range pots {
		contenders := make([]string, 0, len(pot.Eligible))
		for _, id := range pot.Eligible {
			c, ok := byID[id]
			if !ok || c.Folded || len(c.Hole) != 2 {
				continue
			}
			contenders = append(contenders, id)
		}
		if len(contenders) == 0 {
			return nil, fmt.Errorf("%w: pot %s", ErrNoContenders, pot.ID)
		}
		if len(contenders) == 1 {
			out = append(out, PotDistribution{
				PlayerID: contenders[0],
				PotID:    pot.ID,
				Amount:   pot.Amount,
				IsWinner: true,
			})
			continue
		}

		hands := make([]PlayerHand, 0, len(contenders))
		for _, id := range contenders {
			ev, ok := evals[id]
			if !ok {
				c := byID[id]
				var err error
				ev, err = EvaluateBestHand([2]Card{c.Hole[0], c.Hole[1]}, community)
				if err != nil {
					return nil, fmt.Errorf("evaluate %s: %w", id, err)
				}
				evals[id] = ev
			}
			hands = append(hands, PlayerHand{PlayerID: id, Evaluation: ev})
		}
		rankings := RankPlayers(hands)
		winners := Winners(rankings)
		tied := len(winners) > 1

		share := pot.Amount / int64(len(winners))
		remainder := pot.Amount % int64(len(winners))
		ids := make([]string, 0, len(winners))
		for _, w := range winners {
			ids = append(ids, w.PlayerID)
		}
		for i, id := range oddChipOrder(ids) {
			amount := share
			if int64(i) < remainder {
				amount++
			}
			out = append(out, PotDistribution{
				PlayerID: id,
				PotID:    pot.ID,
				Amount:   amount,
				IsWinner: true,
				IsTied:   tied,
			})
		}
	}
	return out, nil
}

// oddChipOrder decides who receives the indivisible remainder chips of a
// split pot: lexical player-id order. Live-table rules award odd chips by
// seat proximity to the button; this engine does not model seating, so the
// policy lives here as the single swap point if that ever changes.
func oddChipOrder(playerIDs []string) []string {
	out := append([]string(nil), playerIDs...)
	sort.Strings(out)
	return out
}

// ValidateSidePots cross-checks pot layering against the chips the non-folded
// players put in. Remainders are always redistributed in full, so any
// difference at all is an accounting bug.
func ValidateSidePots(pots []SidePot, originalTotal int64) error {
	sum := int64(0)
	for _, p := range pots {
		sum += p.Amount
	}
	if sum != originalTotal {
		return fmt.Errorf("%w: pots total %d, contributions total %d", ErrPotMismatch, sum, originalTotal)
	}
	return nil
}
