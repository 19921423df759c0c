package game

import (
	"fmt"
	"strings"
)

// Outcome is the hero's personal result for the hand.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
	OutcomeTie  Outcome = "tie"
)

// FoldedRank is the sentinel rank assigned to folded players, who carry no
// evaluation payload.
const FoldedRank = 999

// HandInput is the terminal-hand snapshot handed over by the game-state
// manager once a hand is done. IsShowdown is false only when every player but
// one folded.
type HandInput struct {
	HandID     string
	HeroID     string
	IsShowdown bool
	Players    []PlayerContribution
	Community  []Card
}

// HandResult is the complete resolution of one hand. It is built whole or not
// at all: any internal failure surfaces as an error, never as a partial
// result with a guessed winner.
type HandResult struct {
	HandID        string
	WinnerID      string
	WinnerName    string
	Tied          bool
	HeroOutcome   Outcome
	Rankings      []HandRanking
	Pots          []SidePot
	Distributions []PotDistribution
	TotalPot      int64
	Analysis      string
}

// ResolveHand settles a finished hand. A fold-ended hand is resolved without
// touching the evaluator; a showdown evaluates and ranks every live player,
// layers the pot and distributes each layer to its winners.
func ResolveHand(in HandInput) (HandResult, error) {
	if in.IsShowdown {
		return resolveShowdown(in)
	}
	return resolveFoldEnded(in)
}

func resolveFoldEnded(in HandInput) (HandResult, error) {
	var survivor *PlayerContribution
	live := 0
	for i := range in.Players {
		if !in.Players[i].Folded {
			live++
			survivor = &in.Players[i]
		}
	}
	if live == 0 {
		return HandResult{}, ErrNoSurvivor
	}
	if live > 1 {
		return HandResult{}, fmt.Errorf("%w: %d players still live", ErrNotFoldEnded, live)
	}

	totalPot := int64(0)
	for _, p := range in.Players {
		totalPot += p.TotalBet
	}

	pot := SidePot{ID: potID(0), Amount: totalPot, Eligible: []string{survivor.PlayerID}, Threshold: survivor.TotalBet}
	rankings := make([]HandRanking, 0, len(in.Players))
	rankings = append(rankings, HandRanking{PlayerID: survivor.PlayerID, Rank: 1, IsWinner: true})
	for _, p := range in.Players {
		if p.Folded {
			rankings = append(rankings, HandRanking{PlayerID: p.PlayerID, Rank: FoldedRank})
		}
	}

	res := HandResult{
		HandID:     in.HandID,
		WinnerID:   survivor.PlayerID,
		WinnerName: survivor.Name,
		Rankings:   rankings,
		Pots:       []SidePot{pot},
		Distributions: []PotDistribution{{
			PlayerID: survivor.PlayerID,
			PotID:    pot.ID,
			Amount:   totalPot,
			IsWinner: true,
		}},
		TotalPot: totalPot,
	}
	res.HeroOutcome = heroOutcome(in.HeroID, res.Rankings, false)
	res.Analysis = buildAnalysis(in, res)
	return res, nil
}

func resolveShowdown(in HandInput) (HandResult, error) {
	names := make(map[string]string, len(in.Players))
	totalPot := int64(0)
	liveTotal := int64(0)
	hands := make([]PlayerHand, 0, len(in.Players))
	for _, p := range in.Players {
		names[p.PlayerID] = p.Name
		totalPot += p.TotalBet
		if p.Folded {
			continue
		}
		liveTotal += p.TotalBet
		if len(p.Hole) != 2 {
			return HandResult{}, fmt.Errorf("%w: player %s", ErrMissingHoleCards, p.PlayerID)
		}
		ev, err := EvaluateBestHand([2]Card{p.Hole[0], p.Hole[1]}, in.Community)
		if err != nil {
			return HandResult{}, fmt.Errorf("evaluate %s: %w", p.PlayerID, err)
		}
		hands = append(hands, PlayerHand{PlayerID: p.PlayerID, Evaluation: ev})
	}
	if len(hands) == 0 {
		return HandResult{}, ErrNoSurvivor
	}

	rankings := RankPlayers(hands)
	for _, p := range in.Players {
		if p.Folded {
			rankings = append(rankings, HandRanking{PlayerID: p.PlayerID, Rank: FoldedRank})
		}
	}

	pots := CalculateSidePots(in.Players)
	if err := ValidateSidePots(pots, liveTotal); err != nil {
		return HandResult{}, err
	}
	distributions, err := DistributePots(pots, in.Players, in.Community)
	if err != nil {
		return HandResult{}, err
	}

	tied := HasTiedWinners(rankings)
	winnerID := rankings[0].PlayerID
	res := HandResult{
		HandID:        in.HandID,
		WinnerID:      winnerID,
		WinnerName:    names[winnerID],
		Tied:          tied,
		Rankings:      rankings,
		Pots:          pots,
		Distributions: distributions,
		TotalPot:      totalPot,
	}
	res.HeroOutcome = heroOutcome(in.HeroID, rankings, tied)
	res.Analysis = buildAnalysis(in, res)
	return res, nil
}

func heroOutcome(heroID string, rankings []HandRanking, tied bool) Outcome {
	if heroID == "" {
		return ""
	}
	for _, r := range rankings {
		if r.PlayerID != heroID {
			continue
		}
		if r.Rank != 1 {
			return OutcomeLose
		}
		if tied {
			return OutcomeTie
		}
		return OutcomeWin
	}
	return ""
}

// DescribeEvaluation renders a hand for humans: "Full House, Ks over 2s".
func DescribeEvaluation(ev HandEvaluation) string {
	switch ev.Category {
	case RoyalFlush:
		return ev.Category.String()
	case StraightFlush, Straight:
		return fmt.Sprintf("%s, %s high", ev.Category, rankChars[ev.Primary])
	case FullHouse:
		return fmt.Sprintf("%s, %ss over %ss", ev.Category, rankChars[ev.Primary], rankChars[ev.Secondary])
	case TwoPair:
		return fmt.Sprintf("%s, %ss and %ss", ev.Category, rankChars[ev.Primary], rankChars[ev.Secondary])
	case FourOfAKind, ThreeOfAKind, OnePair:
		return fmt.Sprintf("%s, %ss", ev.Category, rankChars[ev.Primary])
	default:
		return fmt.Sprintf("%s, %s high", ev.Category, rankChars[ev.Primary])
	}
}

// buildAnalysis is presentation only; nothing downstream may parse it.
func buildAnalysis(in HandInput, res HandResult) string {
	names := make(map[string]string, len(in.Players))
	for _, p := range in.Players {
		names[p.PlayerID] = p.Name
	}
	display := func(id string) string {
		if n := names[id]; n != "" {
			return n
		}
		return id
	}

	var b strings.Builder
	if res.Tied {
		fmt.Fprintf(&b, "Split pot of %d chips.\n", res.TotalPot)
	} else {
		fmt.Fprintf(&b, "%s wins the %d chip pot.\n", display(res.WinnerID), res.TotalPot)
	}
	for _, r := range res.Rankings {
		if r.Rank == FoldedRank {
			fmt.Fprintf(&b, "  %s folded.\n", display(r.PlayerID))
			continue
		}
		if r.Evaluation != nil {
			fmt.Fprintf(&b, "  #%d %s: %s.\n", r.Rank, display(r.PlayerID), DescribeEvaluation(*r.Evaluation))
		} else {
			fmt.Fprintf(&b, "  #%d %s: took the pot uncontested.\n", r.Rank, display(r.PlayerID))
		}
	}
	for _, d := range res.Distributions {
		fmt.Fprintf(&b, "  %s collects %d from %s.\n", display(d.PlayerID), d.Amount, d.PotID)
	}
	return strings.TrimRight(b.String(), "\n")
}
