package store

import "context"

const schemaDDL = `
CREATE TABLE IF NOT EXISTS hand_results (
	id           TEXT PRIMARY KEY,
	hand_id      TEXT NOT NULL,
	winner_id    TEXT NOT NULL,
	winner_name  TEXT NOT NULL DEFAULT '',
	tied         BOOLEAN NOT NULL DEFAULT FALSE,
	hero_outcome TEXT NOT NULL DEFAULT '',
	is_showdown  BOOLEAN NOT NULL,
	total_pot    BIGINT NOT NULL,
	analysis     TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS hand_rankings (
	result_id   TEXT NOT NULL REFERENCES hand_results(id) ON DELETE CASCADE,
	player_id   TEXT NOT NULL,
	player_rank INT NOT NULL,
	category    TEXT NOT NULL DEFAULT '',
	strength    BIGINT NOT NULL DEFAULT 0,
	best_five   TEXT NOT NULL DEFAULT '',
	is_winner   BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS pot_distributions (
	result_id TEXT NOT NULL REFERENCES hand_results(id) ON DELETE CASCADE,
	pot_id    TEXT NOT NULL,
	player_id TEXT NOT NULL,
	amount    BIGINT NOT NULL,
	is_winner BOOLEAN NOT NULL,
	is_tied   BOOLEAN NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_hand_results_created_at ON hand_results (created_at DESC);
CREATE INDEX IF NOT EXISTS idx_hand_rankings_result ON hand_rankings (result_id);
CREATE INDEX IF NOT EXISTS idx_pot_distributions_result ON pot_distributions (result_id);
`

// EnsureSchema creates the archive tables when they do not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.Pool.Exec(ctx, schemaDDL)
	return err
}
