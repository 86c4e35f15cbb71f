package tactics

// PlayerID identifies one of the two sides.
type PlayerID string

const (
	PlayerOne PlayerID = "player1"
	PlayerTwo PlayerID = "player2"
	NoPlayer  PlayerID = ""
)

// AllPlayers returns both players in turn order.
func AllPlayers() []PlayerID {
	return []PlayerID{PlayerOne, PlayerTwo}
}

// Opponent returns the other player.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	}
	return NoPlayer
}

// HomeCorner returns the player's fixed start corner. The two corners are opposite.
func HomeCorner(p PlayerID) Position {
	if p == PlayerTwo {
		return Pos(BoardSize-1, BoardSize-1)
	}
	return Pos(0, 0)
}

// Unit is a deployed unit instance.
type Unit struct {
	ID             string
	DefinitionID   string
	Owner          PlayerID
	Position       Position
	HasMoved       bool
	HasAttacked    bool
	HasMined       bool
	CanActThisTurn bool
}

// Definition returns the unit's catalog entry.
func (u *Unit) Definition() UnitDefinition {
	return MustDefinition(u.DefinitionID)
}

// resetForTurn clears per-turn flags at the start of the owner's turn.
func (u *Unit) resetForTurn() {
	u.HasMoved = false
	u.HasAttacked = false
	u.HasMined = false
	u.CanActThisTurn = true
}

// QueuedUnit is a build-queue entry. It is ready for placement once
// TurnsRemaining reaches zero.
type QueuedUnit struct {
	ID             string
	DefinitionID   string
	TurnsRemaining int
	Owner          PlayerID
}

// Ready reports whether the entry can be placed.
func (q QueuedUnit) Ready() bool { return q.TurnsRemaining <= 0 }
