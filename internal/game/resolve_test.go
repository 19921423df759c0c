package game

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveHandFoldEnded(t *testing.T) {
	in := HandInput{
		HandID: "h1",
		HeroID: "hero",
		Players: []PlayerContribution{
			{PlayerID: "hero", Name: "Hero", TotalBet: 20, Folded: true},
			{PlayerID: "villain", Name: "Villain", TotalBet: 15, Folded: true},
			{PlayerID: "lucky", Name: "Lucky", TotalBet: 10},
		},
	}
	res, err := ResolveHand(in)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.WinnerID != "lucky" || res.WinnerName != "Lucky" {
		t.Fatalf("winner = %s/%s, want lucky/Lucky", res.WinnerID, res.WinnerName)
	}
	if res.TotalPot != 45 {
		t.Fatalf("total pot = %d, want 45", res.TotalPot)
	}
	if len(res.Distributions) != 1 || res.Distributions[0].Amount != 45 || res.Distributions[0].PlayerID != "lucky" {
		t.Fatalf("distribution = %+v, want single 45 chip entry for lucky", res.Distributions)
	}
	if res.Tied {
		t.Fatalf("fold-ended hand cannot be tied")
	}
	if res.HeroOutcome != OutcomeLose {
		t.Fatalf("hero folded, outcome = %q, want lose", res.HeroOutcome)
	}
	for _, r := range res.Rankings {
		if r.Evaluation != nil {
			t.Fatalf("no evaluation may happen in a fold-ended hand, got one for %s", r.PlayerID)
		}
		if r.PlayerID == "lucky" {
			if r.Rank != 1 || !r.IsWinner {
				t.Fatalf("survivor ranking = %+v, want rank 1 winner", r)
			}
		} else if r.Rank != FoldedRank {
			t.Fatalf("folded player %s rank = %d, want %d", r.PlayerID, r.Rank, FoldedRank)
		}
	}
	if res.Analysis == "" {
		t.Fatalf("analysis text missing")
	}
}

func TestResolveHandFoldEndedInvalidStates(t *testing.T) {
	_, err := ResolveHand(HandInput{Players: []PlayerContribution{
		{PlayerID: "a", Folded: true},
		{PlayerID: "b", Folded: true},
	}})
	if !errors.Is(err, ErrNoSurvivor) {
		t.Fatalf("all folded: err = %v, want ErrNoSurvivor", err)
	}

	_, err = ResolveHand(HandInput{Players: []PlayerContribution{
		{PlayerID: "a"},
		{PlayerID: "b"},
	}})
	if !errors.Is(err, ErrNotFoldEnded) {
		t.Fatalf("two live without showdown: err = %v, want ErrNotFoldEnded", err)
	}
}

func TestResolveHandShowdown(t *testing.T) {
	board := []Card{{Two, Hearts}, {Seven, Diamonds}, {Nine, Spades}, {Jack, Clubs}, {Ace, Hearts}}
	in := HandInput{
		HandID:     "h2",
		HeroID:     "hero",
		IsShowdown: true,
		Community:  board,
		Players: []PlayerContribution{
			{PlayerID: "hero", Name: "Hero", TotalBet: 100, Hole: []Card{{Ace, Spades}, {King, Diamonds}}},
			{PlayerID: "villain", Name: "Villain", TotalBet: 100, Hole: []Card{{Queen, Clubs}, {Eight, Clubs}}},
			{PlayerID: "mucker", Name: "Mucker", TotalBet: 10, Folded: true},
		},
	}
	res, err := ResolveHand(in)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.WinnerID != "hero" || res.Tied {
		t.Fatalf("winner = %s tied=%v, want hero untied", res.WinnerID, res.Tied)
	}
	if res.HeroOutcome != OutcomeWin {
		t.Fatalf("hero outcome = %q, want win", res.HeroOutcome)
	}
	// Folded chips stay in the reported total but only live chips are layered.
	if res.TotalPot != 210 {
		t.Fatalf("total pot = %d, want 210", res.TotalPot)
	}
	if len(res.Pots) != 1 || res.Pots[0].Amount != 200 {
		t.Fatalf("pots = %+v, want one 200 chip pot", res.Pots)
	}
	if len(res.Distributions) != 1 || res.Distributions[0].PlayerID != "hero" || res.Distributions[0].Amount != 200 {
		t.Fatalf("distributions = %+v, want hero taking 200", res.Distributions)
	}
	if res.Rankings[0].PlayerID != "hero" || res.Rankings[0].Rank != 1 {
		t.Fatalf("rankings[0] = %+v, want hero at rank 1", res.Rankings[0])
	}
	if res.Rankings[0].Evaluation == nil || res.Rankings[0].Evaluation.Category != OnePair {
		t.Fatalf("hero evaluation missing or wrong: %+v", res.Rankings[0].Evaluation)
	}
	last := res.Rankings[len(res.Rankings)-1]
	if last.PlayerID != "mucker" || last.Rank != FoldedRank {
		t.Fatalf("folded player ranking = %+v, want sentinel rank", last)
	}
	if !strings.Contains(res.Analysis, "Hero") {
		t.Fatalf("analysis should mention the winner, got %q", res.Analysis)
	}
}

func TestResolveHandShowdownTie(t *testing.T) {
	board := []Card{{Ace, Hearts}, {King, Diamonds}, {Queen, Spades}, {Jack, Hearts}, {Ten, Clubs}}
	in := HandInput{
		HeroID:     "a",
		IsShowdown: true,
		Community:  board,
		Players: []PlayerContribution{
			{PlayerID: "a", Name: "A", TotalBet: 50, Hole: []Card{{Two, Hearts}, {Three, Diamonds}}},
			{PlayerID: "b", Name: "B", TotalBet: 50, Hole: []Card{{Two, Spades}, {Three, Clubs}}},
		},
	}
	res, err := ResolveHand(in)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !res.Tied {
		t.Fatalf("board plays for both, expected a tie")
	}
	if res.HeroOutcome != OutcomeTie {
		t.Fatalf("hero outcome = %q, want tie", res.HeroOutcome)
	}
	total := int64(0)
	for _, d := range res.Distributions {
		total += d.Amount
		if !d.IsTied {
			t.Fatalf("split distribution should be marked tied: %+v", d)
		}
	}
	if total != 100 {
		t.Fatalf("distributed %d, want the full 100", total)
	}
}

func TestResolveHandShowdownMultiWayAllIn(t *testing.T) {
	board := []Card{{Two, Hearts}, {Five, Diamonds}, {Nine, Spades}, {Jack, Clubs}, {King, Diamonds}}
	in := HandInput{
		IsShowdown: true,
		Community:  board,
		Players: []PlayerContribution{
			{PlayerID: "a", Name: "A", TotalBet: 50, AllIn: true, Hole: []Card{{King, Hearts}, {King, Spades}}},
			{PlayerID: "b", Name: "B", TotalBet: 100, AllIn: true, Hole: []Card{{Jack, Diamonds}, {Jack, Hearts}}},
			{PlayerID: "c", Name: "C", TotalBet: 100, Hole: []Card{{Nine, Clubs}, {Two, Clubs}}},
		},
	}
	res, err := ResolveHand(in)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(res.Pots) != 2 || res.Pots[0].Amount != 150 || res.Pots[1].Amount != 100 {
		t.Fatalf("pots = %+v, want 150 and 100", res.Pots)
	}
	if res.WinnerID != "a" {
		t.Fatalf("winner = %s, want a (trip kings)", res.WinnerID)
	}
	won := map[string]int64{}
	for _, d := range res.Distributions {
		won[d.PlayerID] += d.Amount
	}
	if won["a"] != 150 || won["b"] != 100 || won["c"] != 0 {
		t.Fatalf("won = %v, want a:150 b:100 c:0", won)
	}
}

func TestResolveHandShowdownErrors(t *testing.T) {
	board := []Card{{Two, Hearts}, {Five, Diamonds}, {Nine, Spades}, {Jack, Clubs}, {King, Diamonds}}

	_, err := ResolveHand(HandInput{
		IsShowdown: true,
		Community:  board,
		Players: []PlayerContribution{
			{PlayerID: "a", TotalBet: 10, Hole: []Card{{Ace, Spades}, {Ace, Hearts}}},
			{PlayerID: "b", TotalBet: 10},
		},
	})
	if !errors.Is(err, ErrMissingHoleCards) {
		t.Fatalf("missing hole cards: err = %v, want ErrMissingHoleCards", err)
	}

	_, err = ResolveHand(HandInput{
		IsShowdown: true,
		Community:  board[:4],
		Players: []PlayerContribution{
			{PlayerID: "a", TotalBet: 10, Hole: []Card{{Ace, Spades}, {Ace, Hearts}}},
			{PlayerID: "b", TotalBet: 10, Hole: []Card{{Queen, Spades}, {Queen, Hearts}}},
		},
	})
	if !errors.Is(err, ErrBadBoard) {
		t.Fatalf("short board: err = %v, want ErrBadBoard", err)
	}
}
