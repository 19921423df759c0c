package game

import "testing"

func TestCompareFullHouseTripsDecideBeforePair(t *testing.T) {
	kingsFullOfTwos := evaluateFive([5]Card{{King, Spades}, {King, Diamonds}, {King, Clubs}, {Two, Hearts}, {Two, Diamonds}})
	queensFullOfAces := evaluateFive([5]Card{{Queen, Spades}, {Queen, Diamonds}, {Queen, Clubs}, {Ace, Hearts}, {Ace, Diamonds}})

	if Compare(kingsFullOfTwos, queensFullOfAces) <= 0 {
		t.Fatalf("kings full of twos must beat queens full of aces")
	}
	if kingsFullOfTwos.Strength <= queensFullOfAces.Strength {
		t.Fatalf("strength ordering disagrees: %d <= %d", kingsFullOfTwos.Strength, queensFullOfAces.Strength)
	}
}

func TestCompareKickersBreakTies(t *testing.T) {
	aceKing := evaluateFive([5]Card{{Ace, Hearts}, {Ace, Diamonds}, {King, Spades}, {Seven, Hearts}, {Five, Clubs}})
	aceQueen := evaluateFive([5]Card{{Ace, Spades}, {Ace, Clubs}, {Queen, Diamonds}, {Seven, Spades}, {Five, Diamonds}})
	if Compare(aceKing, aceQueen) <= 0 {
		t.Fatalf("king kicker must beat queen kicker")
	}

	same := evaluateFive([5]Card{{Ace, Spades}, {Ace, Clubs}, {King, Diamonds}, {Seven, Spades}, {Five, Diamonds}})
	if Compare(aceKing, same) != 0 {
		t.Fatalf("identical hand values must compare equal")
	}
}

func TestRankPlayersCompetitionRanking(t *testing.T) {
	straight1 := evaluateFive([5]Card{{Ace, Hearts}, {King, Diamonds}, {Queen, Spades}, {Jack, Hearts}, {Ten, Clubs}})
	straight2 := evaluateFive([5]Card{{Ace, Diamonds}, {King, Clubs}, {Queen, Hearts}, {Jack, Spades}, {Ten, Hearts}})
	pair := evaluateFive([5]Card{{Two, Hearts}, {Two, Diamonds}, {Nine, Spades}, {Seven, Hearts}, {Five, Clubs}})

	rankings := RankPlayers([]PlayerHand{
		{PlayerID: "p3", Evaluation: pair},
		{PlayerID: "p1", Evaluation: straight1},
		{PlayerID: "p2", Evaluation: straight2},
	})

	if len(rankings) != 3 {
		t.Fatalf("rankings length = %d, want 3", len(rankings))
	}
	if rankings[0].Rank != 1 || rankings[1].Rank != 1 {
		t.Fatalf("tied straights should both hold rank 1, got %d and %d", rankings[0].Rank, rankings[1].Rank)
	}
	if rankings[2].Rank != 3 {
		t.Fatalf("weaker hand after a 2-way tie should rank 3, got %d", rankings[2].Rank)
	}
	if rankings[2].PlayerID != "p3" || rankings[2].IsWinner {
		t.Fatalf("p3 must be last and not a winner")
	}

	winners := Winners(rankings)
	if len(winners) != 2 {
		t.Fatalf("winners = %d, want 2", len(winners))
	}
	if !HasTiedWinners(rankings) {
		t.Fatalf("expected tied winners")
	}
}

func TestRankPlayersThreeWayTieJumpsToFour(t *testing.T) {
	board := evaluateFive([5]Card{{Ace, Hearts}, {King, Diamonds}, {Queen, Spades}, {Jack, Hearts}, {Ten, Clubs}})
	boardB := evaluateFive([5]Card{{Ace, Spades}, {King, Hearts}, {Queen, Diamonds}, {Jack, Clubs}, {Ten, Spades}})
	boardC := evaluateFive([5]Card{{Ace, Clubs}, {King, Spades}, {Queen, Clubs}, {Jack, Diamonds}, {Ten, Diamonds}})
	weak := evaluateFive([5]Card{{Nine, Hearts}, {Seven, Diamonds}, {Five, Spades}, {Three, Hearts}, {Two, Clubs}})

	rankings := RankPlayers([]PlayerHand{
		{PlayerID: "a", Evaluation: board},
		{PlayerID: "b", Evaluation: boardB},
		{PlayerID: "c", Evaluation: boardC},
		{PlayerID: "d", Evaluation: weak},
	})

	for i := 0; i < 3; i++ {
		if rankings[i].Rank != 1 {
			t.Fatalf("entry %d rank = %d, want 1", i, rankings[i].Rank)
		}
	}
	if rankings[3].Rank != 4 {
		t.Fatalf("hand after a 3-way tie must rank 4, got %d", rankings[3].Rank)
	}
}
