package tactics

import "strconv"

// GamePhase is the overall lifecycle stage of a game.
type GamePhase string

const (
	PhaseSetup   GamePhase = "setup"
	PhasePlaying GamePhase = "playing"
	PhaseVictory GamePhase = "victory"
)

// TurnPhase is the stage within a single player turn.
type TurnPhase string

const (
	TurnPlace  TurnPhase = "place"
	TurnAction TurnPhase = "action"
	TurnQueue  TurnPhase = "queue"
)

// ActionsPerTurn is the size of the shared action pool refilled each turn.
const ActionsPerTurn = 4

// DefaultStartingResources is the resource stock each player begins with.
const DefaultStartingResources = 5

// PlayerState holds one side's economy and production.
type PlayerState struct {
	ID          PlayerID
	Resources   int
	BuildQueue  []QueuedUnit
	StartCorner Position
}

// TurnState tracks whose turn it is and how far it has progressed.
type TurnState struct {
	CurrentPlayer    PlayerID
	Phase            TurnPhase
	ActionsRemaining int
	TurnNumber       int
}

// GameState is a complete snapshot of a game. The engine treats it as a value:
// every producer clones before making changes.
type GameState struct {
	Phase   GamePhase
	Board   Board
	Players []PlayerState
	Turn    TurnState
	Winner  PlayerID // NoPlayer on a draw

	// SelectedUnitID is transient UI selection; it has no rule effect.
	SelectedUnitID string

	// NextID feeds deterministic unit and queue-entry ids so that
	// simulated branches are reproducible.
	NextID int
}

// RosterEntry is a starting unit placed by StartGame.
type RosterEntry struct {
	DefinitionID string
	Position     Position
}

// GameConfig configures a new game.
type GameConfig struct {
	StartingResources int
	Rosters           map[PlayerID][]RosterEntry
}

// DefaultGameConfig returns the standard two-unit starting rosters.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		StartingResources: DefaultStartingResources,
		Rosters: map[PlayerID][]RosterEntry{
			PlayerOne: {
				{DefinitionID: "fire_1", Position: Pos(0, 0)},
				{DefinitionID: "lightning_1", Position: Pos(1, 1)},
			},
			PlayerTwo: {
				{DefinitionID: "water_1", Position: Pos(9, 9)},
				{DefinitionID: "metal_1", Position: Pos(8, 8)},
			},
		},
	}
}

// NewGame returns a game in the setup phase with a fresh board and no units.
// The rosters in cfg are deployed by StartGame.
func NewGame(cfg GameConfig) *GameState {
	gs := &GameState{
		Phase: PhaseSetup,
		Board: NewBoard(),
		Turn:  TurnState{CurrentPlayer: PlayerOne, Phase: TurnPlace, TurnNumber: 1},
	}
	for _, p := range AllPlayers() {
		gs.Players = append(gs.Players, PlayerState{
			ID:          p,
			Resources:   cfg.StartingResources,
			StartCorner: HomeCorner(p),
		})
	}
	for _, p := range AllPlayers() {
		for _, r := range cfg.Rosters[p] {
			MustDefinition(r.DefinitionID)
			if !r.Position.InBounds() || gs.Board.IsOccupied(r.Position) {
				continue
			}
			gs.Board.Units = append(gs.Board.Units, Unit{
				ID:             gs.newID("u"),
				DefinitionID:   r.DefinitionID,
				Owner:          p,
				Position:       r.Position,
				CanActThisTurn: true,
			})
		}
	}
	return gs
}

// NewStandardGame is NewGame(DefaultGameConfig()) followed by StartGame.
func NewStandardGame() *GameState {
	return StartGame(NewGame(DefaultGameConfig()))
}

// StartGame moves a setup-phase game into play and opens turn 1 for PlayerOne.
// It returns gs unchanged if the game is not in setup.
func StartGame(gs *GameState) *GameState {
	if gs.Phase != PhaseSetup {
		return gs
	}
	next := gs.Clone()
	next.Phase = PhasePlaying
	next.Turn.TurnNumber = 1
	beginTurn(next, PlayerOne)
	checkVictory(next)
	return next
}

// Player returns the state of the given player, or nil.
func (gs *GameState) Player(id PlayerID) *PlayerState {
	for i := range gs.Players {
		if gs.Players[i].ID == id {
			return &gs.Players[i]
		}
	}
	return nil
}

// CurrentPlayerState returns the state of the player whose turn it is.
func (gs *GameState) CurrentPlayerState() *PlayerState {
	return gs.Player(gs.Turn.CurrentPlayer)
}

// IsOver reports whether the game has reached a terminal state.
func (gs *GameState) IsOver() bool {
	return gs.Phase == PhaseVictory
}

// IsDraw reports whether the game ended without a winner.
func (gs *GameState) IsDraw() bool {
	return gs.Phase == PhaseVictory && gs.Winner == NoPlayer
}

// Clone returns a deep copy of the GameState. Mutations to the clone
// do not affect the original, which search relies on when branching.
func (gs *GameState) Clone() *GameState {
	c := &GameState{
		Phase:          gs.Phase,
		Board:          Board{Cells: gs.Board.Cells},
		Turn:           gs.Turn,
		Winner:         gs.Winner,
		SelectedUnitID: gs.SelectedUnitID,
		NextID:         gs.NextID,
	}
	if gs.Board.Units != nil {
		c.Board.Units = make([]Unit, len(gs.Board.Units))
		copy(c.Board.Units, gs.Board.Units)
	}
	if gs.Players != nil {
		c.Players = make([]PlayerState, len(gs.Players))
		for i, p := range gs.Players {
			c.Players[i] = p
			if p.BuildQueue != nil {
				c.Players[i].BuildQueue = make([]QueuedUnit, len(p.BuildQueue))
				copy(c.Players[i].BuildQueue, p.BuildQueue)
			}
		}
	}
	return c
}

func (gs *GameState) newID(prefix string) string {
	gs.NextID++
	return prefix + strconv.Itoa(gs.NextID)
}
