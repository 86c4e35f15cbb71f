package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ethancd/deevgames/internal/model"
	"github.com/ethancd/deevgames/internal/repository"
)

var _ repository.MatchRepository = (*MatchRepo)(nil)

// MatchRepo handles arena match-result database operations.
type MatchRepo struct {
	db *sql.DB
}

// NewMatchRepo creates a MatchRepo.
func NewMatchRepo(db *sql.DB) *MatchRepo {
	return &MatchRepo{db: db}
}

const matchColumns = `id, player_one_difficulty, player_two_difficulty, winner, winner_difficulty,
	turns, actions, forced_ends, material_one, material_two, units_one, units_two,
	seed, duration_ms, created_at`

// RecordMatch inserts a finished match. Recording the same id twice is a no-op.
func (r *MatchRepo) RecordMatch(ctx context.Context, m model.MatchRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO matches (id, player_one_difficulty, player_two_difficulty, winner, winner_difficulty,
		 turns, actions, forced_ends, material_one, material_two, units_one, units_two, seed, duration_ms)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 ON CONFLICT (id) DO NOTHING`,
		m.ID, m.PlayerOneDifficulty, m.PlayerTwoDifficulty, m.Winner, m.WinnerDifficulty,
		m.Turns, m.Actions, m.ForcedEnds, m.MaterialOne, m.MaterialTwo, m.UnitsOne, m.UnitsTwo,
		m.Seed, m.DurationMS,
	)
	if err != nil {
		return fmt.Errorf("record match: %w", err)
	}
	return nil
}

// FindByID looks up a match by id. Returns nil if it does not exist.
func (r *MatchRepo) FindByID(ctx context.Context, id string) (*model.MatchRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = $1`, id)
	m, err := scanMatch(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find match by id: %w", err)
	}
	return m, nil
}

// ListByMatchup returns the most recent matches for a pairing, newest first.
func (r *MatchRepo) ListByMatchup(ctx context.Context, p1, p2 string, limit int) ([]model.MatchRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+matchColumns+` FROM matches
		 WHERE player_one_difficulty = $1 AND player_two_difficulty = $2
		 ORDER BY created_at DESC LIMIT $3`,
		p1, p2, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	var matches []model.MatchRecord
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, *m)
	}
	return matches, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(s scanner) (*model.MatchRecord, error) {
	var m model.MatchRecord
	err := s.Scan(&m.ID, &m.PlayerOneDifficulty, &m.PlayerTwoDifficulty, &m.Winner, &m.WinnerDifficulty,
		&m.Turns, &m.Actions, &m.ForcedEnds, &m.MaterialOne, &m.MaterialTwo, &m.UnitsOne, &m.UnitsTwo,
		&m.Seed, &m.DurationMS, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
