package repository

import (
	"context"
	"errors"

	"github.com/ethancd/deevgames/internal/model"
)

// MatchRecorder stores the outcome of a finished arena match.
type MatchRecorder interface {
	RecordMatch(ctx context.Context, m model.MatchRecord) error
}

// MatchRepository defines match-result operations (Postgres).
type MatchRepository interface {
	MatchRecorder
	FindByID(ctx context.Context, id string) (*model.MatchRecord, error)
	ListByMatchup(ctx context.Context, p1, p2 string, limit int) ([]model.MatchRecord, error)
}

// Scoreboard defines running win counts per matchup (Redis).
type Scoreboard interface {
	MatchRecorder
	Tally(ctx context.Context, p1, p2 string) (model.Tally, error)
	Reset(ctx context.Context, p1, p2 string) error
}

// MultiRecorder fans a record out to every non-nil recorder. All recorders
// are attempted; their errors are joined.
type MultiRecorder []MatchRecorder

func (rs MultiRecorder) RecordMatch(ctx context.Context, m model.MatchRecord) error {
	var errs []error
	for _, r := range rs {
		if r == nil {
			continue
		}
		if err := r.RecordMatch(ctx, m); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
