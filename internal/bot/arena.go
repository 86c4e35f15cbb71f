package bot

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/ethancd/deevgames/internal/logger"
	"github.com/ethancd/deevgames/internal/model"
	"github.com/ethancd/deevgames/internal/repository"
	"github.com/ethancd/deevgames/pkg/tactics"
)

// DefaultMaxTurns is the round cap after which an arena match is a draw.
const DefaultMaxTurns = 60

// ArenaConfig configures a single bot-vs-bot match.
type ArenaConfig struct {
	MatchID   string // generated when empty
	PlayerOne string // difficulty level
	PlayerTwo string // difficulty level
	MaxTurns  int    // full rounds before a draw; 0 = DefaultMaxTurns
	Seed      int64  // 0 = random

	// Budgets overrides DefaultBudget per difficulty.
	Budgets map[string]Budget

	// Start is the position to play from; nil uses the standard opening.
	Start *tactics.GameState
}

// ArenaResult describes the outcome of a completed arena match.
type ArenaResult struct {
	MatchID          string                   `json:"matchId"`
	PlayerOne        string                   `json:"playerOne"`
	PlayerTwo        string                   `json:"playerTwo"`
	Winner           tactics.PlayerID         `json:"winner,omitempty"` // empty on a draw
	WinnerDifficulty string                   `json:"winnerDifficulty,omitempty"`
	Turns            int                      `json:"turns"` // rounds played, at most the cap
	Actions          int                      `json:"actions"`
	ForcedEnds       int                      `json:"forcedEnds"`
	Material         map[tactics.PlayerID]int `json:"material"`
	Units            map[tactics.PlayerID]int `json:"units"`
	Seed             int64                    `json:"seed"`
	Duration         time.Duration            `json:"duration"`
	Final            *tactics.GameState       `json:"-"`
}

// Difficulty returns the difficulty level that played as p.
func (r *ArenaResult) Difficulty(p tactics.PlayerID) string {
	if p == tactics.PlayerTwo {
		return r.PlayerTwo
	}
	return r.PlayerOne
}

// Record converts the result to its stored form.
func (r *ArenaResult) Record() model.MatchRecord {
	return model.MatchRecord{
		ID:                  r.MatchID,
		PlayerOneDifficulty: r.PlayerOne,
		PlayerTwoDifficulty: r.PlayerTwo,
		Winner:              string(r.Winner),
		WinnerDifficulty:    r.WinnerDifficulty,
		Turns:               r.Turns,
		Actions:             r.Actions,
		ForcedEnds:          r.ForcedEnds,
		MaterialOne:         r.Material[tactics.PlayerOne],
		MaterialTwo:         r.Material[tactics.PlayerTwo],
		UnitsOne:            r.Units[tactics.PlayerOne],
		UnitsTwo:            r.Units[tactics.PlayerTwo],
		Seed:                r.Seed,
		DurationMS:          r.Duration.Milliseconds(),
	}
}

// ParseMatchup splits a label like "hard-vs-easy" into its two difficulty
// levels.
func ParseMatchup(s string) (string, string, error) {
	p1, p2, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "-vs-")
	if !ok {
		return "", "", fmt.Errorf("matchup %q: expected <difficulty>-vs-<difficulty>", s)
	}
	for _, d := range []string{p1, p2} {
		if !ValidDifficulty(d) {
			return "", "", fmt.Errorf("matchup %q: unknown difficulty %q", s, d)
		}
	}
	return p1, p2, nil
}

// RunMatch plays a full match between two difficulty levels. When rec is
// non-nil the finished match is recorded; a recording failure is returned
// alongside the result.
func RunMatch(ctx context.Context, cfg ArenaConfig, rec repository.MatchRecorder) (*ArenaResult, error) {
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = DefaultMaxTurns
	}
	if cfg.MatchID == "" {
		cfg.MatchID = logger.NewMatchID()
	}
	for cfg.Seed == 0 {
		cfg.Seed = botInt63()
	}
	for _, d := range []string{cfg.PlayerOne, cfg.PlayerTwo} {
		if !ValidDifficulty(d) {
			return nil, fmt.Errorf("unknown difficulty %q", d)
		}
	}

	ctx = logger.WithMatchID(ctx, cfg.MatchID)
	l := logger.FromContext(ctx)
	start := time.Now()

	strategies := map[tactics.PlayerID]Strategy{
		tactics.PlayerOne: arenaStrategy(cfg, cfg.PlayerOne, cfg.Seed),
		tactics.PlayerTwo: arenaStrategy(cfg, cfg.PlayerTwo, cfg.Seed+1),
	}

	gs := cfg.Start
	if gs == nil {
		gs = tactics.NewStandardGame()
	}

	result := &ArenaResult{
		MatchID:   cfg.MatchID,
		PlayerOne: cfg.PlayerOne,
		PlayerTwo: cfg.PlayerTwo,
		Seed:      cfg.Seed,
		Material:  make(map[tactics.PlayerID]int),
		Units:     make(map[tactics.PlayerID]int),
	}

	l.Info().
		Str("playerOne", cfg.PlayerOne).
		Str("playerTwo", cfg.PlayerTwo).
		Int64("seed", cfg.Seed).
		Msg("Arena match started")

	for !gs.IsOver() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if tactics.TurnLimitReached(gs, cfg.MaxTurns) {
			gs = tactics.DeclareDraw(gs)
			break
		}

		player := gs.Turn.CurrentPlayer
		tr, err := PlayTurn(ctx, gs, strategies[player])
		if err != nil {
			return nil, fmt.Errorf("play turn %d (%s): %w", gs.Turn.TurnNumber, player, err)
		}
		result.Actions += len(tr.Actions)
		if tr.Forced {
			result.ForcedEnds++
		}
		gs = tr.State

		l.Debug().
			Int("turn", gs.Turn.TurnNumber).
			Str("player", string(player)).
			Int("actions", len(tr.Actions)).
			Bool("forced", tr.Forced).
			Int("units1", gs.Board.UnitCount(tactics.PlayerOne)).
			Int("units2", gs.Board.UnitCount(tactics.PlayerTwo)).
			Msg("Turn played")
	}

	result.Final = gs
	result.Turns = min(gs.Turn.TurnNumber, cfg.MaxTurns)
	result.Winner = gs.Winner
	if gs.Winner != tactics.NoPlayer {
		result.WinnerDifficulty = result.Difficulty(gs.Winner)
	}
	fillMaterial(result, gs)
	result.Duration = time.Since(start)

	if result.Winner == tactics.NoPlayer {
		l.Info().Int("turns", result.Turns).Msg("Arena match ended as draw")
	} else {
		l.Info().
			Str("winner", string(result.Winner)).
			Str("difficulty", result.WinnerDifficulty).
			Int("turns", result.Turns).
			Msg("Arena match won")
	}

	if rec != nil {
		if err := rec.RecordMatch(ctx, result.Record()); err != nil {
			return result, fmt.Errorf("record match: %w", err)
		}
	}
	return result, nil
}

func arenaStrategy(cfg ArenaConfig, difficulty string, seed int64) Strategy {
	budget, ok := cfg.Budgets[difficulty]
	if !ok {
		budget = DefaultBudget(difficulty)
	}
	return NewStrategy(difficulty, budget, rand.New(rand.NewSource(seed)))
}

func fillMaterial(r *ArenaResult, gs *tactics.GameState) {
	for _, p := range tactics.AllPlayers() {
		r.Material[p] = 0
		r.Units[p] = 0
	}
	for _, u := range gs.Board.Units {
		r.Material[u.Owner] += u.Definition().Cost
		r.Units[u.Owner]++
	}
}
