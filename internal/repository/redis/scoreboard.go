// Package redis keeps the arena's running win/draw tallies in Redis hashes,
// one hash per difficulty pairing.
package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ethancd/deevgames/internal/model"
	"github.com/ethancd/deevgames/internal/repository"
)

var _ repository.Scoreboard = (*Scoreboard)(nil)

// DefaultKeyPrefix namespaces the scoreboard hashes.
const DefaultKeyPrefix = "arena:score:"

// Hash fields of a matchup's scoreboard entry.
const (
	fieldPlayerOne = "player1"
	fieldPlayerTwo = "player2"
	fieldDraws     = "draws"
	fieldGames     = "games"
)

// Scoreboard implements repository.Scoreboard on a Redis hash per pairing.
type Scoreboard struct {
	rdb    *redis.Client
	prefix string
}

// Connect opens a scoreboard on the Redis server at redisURL using
// DefaultKeyPrefix.
func Connect(ctx context.Context, redisURL string) (*Scoreboard, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewScoreboard(rdb, DefaultKeyPrefix), nil
}

// NewScoreboard wraps an existing client. An empty prefix selects
// DefaultKeyPrefix.
func NewScoreboard(rdb *redis.Client, prefix string) *Scoreboard {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Scoreboard{rdb: rdb, prefix: prefix}
}

// Close closes the underlying connection.
func (s *Scoreboard) Close() error {
	return s.rdb.Close()
}

func (s *Scoreboard) key(p1, p2 string) string { return s.prefix + p1 + "-vs-" + p2 }

// RecordMatch increments the win (or draw) counter and the game counter for
// the match's pairing in one transaction.
func (s *Scoreboard) RecordMatch(ctx context.Context, m model.MatchRecord) error {
	key := s.key(m.PlayerOneDifficulty, m.PlayerTwoDifficulty)
	field := fieldDraws
	if !m.IsDraw() {
		field = m.Winner
	}
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, key, field, 1)
		pipe.HIncrBy(ctx, key, fieldGames, 1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("record score: %w", err)
	}
	return nil
}

// Tally returns the running counts for a pairing. A pairing with no games
// yields a zero tally.
func (s *Scoreboard) Tally(ctx context.Context, p1, p2 string) (model.Tally, error) {
	t := model.Tally{Matchup: p1 + "-vs-" + p2}
	vals, err := s.rdb.HGetAll(ctx, s.key(p1, p2)).Result()
	if err == redis.Nil {
		return t, nil
	}
	if err != nil {
		return t, fmt.Errorf("get tally: %w", err)
	}
	for field, dst := range map[string]*int64{
		fieldPlayerOne: &t.PlayerOne,
		fieldPlayerTwo: &t.PlayerTwo,
		fieldDraws:     &t.Draws,
		fieldGames:     &t.Games,
	} {
		raw, ok := vals[field]
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return t, fmt.Errorf("parse tally field %s: %w", field, err)
		}
		*dst = n
	}
	return t, nil
}

// Reset clears the counts for a pairing.
func (s *Scoreboard) Reset(ctx context.Context, p1, p2 string) error {
	return s.rdb.Del(ctx, s.key(p1, p2)).Err()
}
