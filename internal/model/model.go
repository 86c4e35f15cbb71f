package model

import "time"

// MatchRecord summarizes one completed arena match between two bot
// difficulty levels. Only the outcome is stored, never game state.
type MatchRecord struct {
	ID                  string    `json:"id"`
	PlayerOneDifficulty string    `json:"player_one_difficulty"`
	PlayerTwoDifficulty string    `json:"player_two_difficulty"`
	Winner              string    `json:"winner,omitempty"` // player id, empty on a draw
	WinnerDifficulty    string    `json:"winner_difficulty,omitempty"`
	Turns               int       `json:"turns"`
	Actions             int       `json:"actions"`
	ForcedEnds          int       `json:"forced_ends"`
	MaterialOne         int       `json:"material_one"`
	MaterialTwo         int       `json:"material_two"`
	UnitsOne            int       `json:"units_one"`
	UnitsTwo            int       `json:"units_two"`
	Seed                int64     `json:"seed"`
	DurationMS          int64     `json:"duration_ms"`
	CreatedAt           time.Time `json:"created_at"`
}

// Matchup is the canonical label for a pairing, e.g. "hard-vs-easy".
func (m MatchRecord) Matchup() string {
	return m.PlayerOneDifficulty + "-vs-" + m.PlayerTwoDifficulty
}

// IsDraw reports whether the match ended without a winner.
func (m MatchRecord) IsDraw() bool { return m.Winner == "" }

// Tally is a win/loss/draw count for one matchup.
type Tally struct {
	Matchup   string `json:"matchup"`
	PlayerOne int64  `json:"player_one"`
	PlayerTwo int64  `json:"player_two"`
	Draws     int64  `json:"draws"`
	Games     int64  `json:"games"`
}
