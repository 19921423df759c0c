package results

import "time"

type ResolveRequest struct {
	HandID     string          `json:"hand_id"`
	HeroID     string          `json:"hero_id"`
	IsShowdown bool            `json:"is_showdown"`
	Community  []string        `json:"community_cards"`
	Players    []PlayerPayload `json:"players"`
}

type PlayerPayload struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	TotalBet  int64    `json:"total_bet"`
	Folded    bool     `json:"folded"`
	AllIn     bool     `json:"all_in"`
	HoleCards []string `json:"hole_cards,omitempty"`
}

type ResolveResponse struct {
	ResultID      string             `json:"result_id,omitempty"`
	HandID        string             `json:"hand_id,omitempty"`
	WinnerID      string             `json:"winner_id"`
	WinnerName    string             `json:"winner_name,omitempty"`
	Tied          bool               `json:"tied"`
	HeroOutcome   string             `json:"hero_outcome,omitempty"`
	TotalPot      int64              `json:"total_pot"`
	Rankings      []RankingItem      `json:"rankings"`
	Pots          []PotItem          `json:"pots"`
	Distributions []DistributionItem `json:"distributions"`
	Analysis      string             `json:"analysis"`
}

type RankingItem struct {
	PlayerID    string   `json:"player_id"`
	Rank        int      `json:"rank"`
	IsWinner    bool     `json:"is_winner"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
	BestFive    []string `json:"best_five,omitempty"`
}

type PotItem struct {
	ID        string   `json:"id"`
	Amount    int64    `json:"amount"`
	Eligible  []string `json:"eligible_player_ids"`
	Threshold int64    `json:"threshold_amount"`
}

type DistributionItem struct {
	PotID    string `json:"pot_id"`
	PlayerID string `json:"player_id"`
	Amount   int64  `json:"amount"`
	IsWinner bool   `json:"is_winner"`
	IsTied   bool   `json:"is_tied"`
}

type ResultsResponse struct {
	Items  []ResultSummary `json:"items"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

type ResultSummary struct {
	ResultID    string    `json:"result_id"`
	HandID      string    `json:"hand_id"`
	WinnerID    string    `json:"winner_id"`
	WinnerName  string    `json:"winner_name,omitempty"`
	Tied        bool      `json:"tied"`
	HeroOutcome string    `json:"hero_outcome,omitempty"`
	IsShowdown  bool      `json:"is_showdown"`
	TotalPot    int64     `json:"total_pot"`
	CreatedAt   time.Time `json:"created_at"`
}

type ResultDetailResponse struct {
	ResultSummary
	Analysis      string             `json:"analysis"`
	Rankings      []RankingItem      `json:"rankings"`
	Distributions []DistributionItem `json:"distributions"`
}
