package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

type ResultRecord struct {
	ID            string
	HandID        string
	WinnerID      string
	WinnerName    string
	Tied          bool
	HeroOutcome   string
	IsShowdown    bool
	TotalPot      int64
	Analysis      string
	CreatedAt     time.Time
	Rankings      []RankingRecord
	Distributions []DistributionRecord
}

type RankingRecord struct {
	PlayerID string
	Rank     int
	Category string
	Strength int64
	BestFive string
	IsWinner bool
}

type DistributionRecord struct {
	PotID    string
	PlayerID string
	Amount   int64
	IsWinner bool
	IsTied   bool
}

// SaveResult archives a resolved hand with its rankings and distributions in
// one transaction. A fresh id is assigned when the record has none.
func (s *Store) SaveResult(ctx context.Context, rec ResultRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = NewID()
	}
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO hand_results (id, hand_id, winner_id, winner_name, tied, hero_outcome, is_showdown, total_pot, analysis)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.ID, rec.HandID, rec.WinnerID, rec.WinnerName, rec.Tied, rec.HeroOutcome, rec.IsShowdown, rec.TotalPot, rec.Analysis)
	if err != nil {
		return "", err
	}
	for _, r := range rec.Rankings {
		_, err = tx.Exec(ctx, `
			INSERT INTO hand_rankings (result_id, player_id, player_rank, category, strength, best_five, is_winner)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			rec.ID, r.PlayerID, r.Rank, r.Category, r.Strength, r.BestFive, r.IsWinner)
		if err != nil {
			return "", err
		}
	}
	for _, d := range rec.Distributions {
		_, err = tx.Exec(ctx, `
			INSERT INTO pot_distributions (result_id, pot_id, player_id, amount, is_winner, is_tied)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			rec.ID, d.PotID, d.PlayerID, d.Amount, d.IsWinner, d.IsTied)
		if err != nil {
			return "", err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return "", err
	}
	return rec.ID, nil
}

// ListResults returns archived hands newest first, without child rows.
func (s *Store) ListResults(ctx context.Context, limit, offset int) ([]ResultRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.Pool.Query(ctx, `
		SELECT id, hand_id, winner_id, winner_name, tied, hero_outcome, is_showdown, total_pot, analysis, created_at
		FROM hand_results
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ResultRecord, 0, limit)
	for rows.Next() {
		var r ResultRecord
		if err := rows.Scan(&r.ID, &r.HandID, &r.WinnerID, &r.WinnerName, &r.Tied, &r.HeroOutcome,
			&r.IsShowdown, &r.TotalPot, &r.Analysis, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetResult loads one archived hand including rankings and distributions.
func (s *Store) GetResult(ctx context.Context, id string) (ResultRecord, error) {
	var r ResultRecord
	err := s.Pool.QueryRow(ctx, `
		SELECT id, hand_id, winner_id, winner_name, tied, hero_outcome, is_showdown, total_pot, analysis, created_at
		FROM hand_results WHERE id = $1`, id).
		Scan(&r.ID, &r.HandID, &r.WinnerID, &r.WinnerName, &r.Tied, &r.HeroOutcome,
			&r.IsShowdown, &r.TotalPot, &r.Analysis, &r.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ResultRecord{}, ErrNotFound
	}
	if err != nil {
		return ResultRecord{}, err
	}

	rows, err := s.Pool.Query(ctx, `
		SELECT player_id, player_rank, category, strength, best_five, is_winner
		FROM hand_rankings WHERE result_id = $1
		ORDER BY player_rank, player_id`, id)
	if err != nil {
		return ResultRecord{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var rr RankingRecord
		if err := rows.Scan(&rr.PlayerID, &rr.Rank, &rr.Category, &rr.Strength, &rr.BestFive, &rr.IsWinner); err != nil {
			return ResultRecord{}, err
		}
		r.Rankings = append(r.Rankings, rr)
	}
	if err := rows.Err(); err != nil {
		return ResultRecord{}, err
	}

	drows, err := s.Pool.Query(ctx, `
		SELECT pot_id, player_id, amount, is_winner, is_tied
		FROM pot_distributions WHERE result_id = $1
		ORDER BY pot_id, player_id`, id)
	if err != nil {
		return ResultRecord{}, err
	}
	defer drows.Close()
	for drows.Next() {
		var dr DistributionRecord
		if err := drows.Scan(&dr.PotID, &dr.PlayerID, &dr.Amount, &dr.IsWinner, &dr.IsTied); err != nil {
			return ResultRecord{}, err
		}
		r.Distributions = append(r.Distributions, dr)
	}
	return r, drows.Err()
}
