package bot

import (
	"sort"

	"github.com/ethancd/deevgames/pkg/tactics"
)

// actionPriority orders candidate actions so that likely-decisive ones are
// searched first, which lets alpha-beta cut off more of the tree.
var actionPriority = map[tactics.ActionKind]int{
	tactics.ActionAttack:         0,
	tactics.ActionMove:           1,
	tactics.ActionMine:           2,
	tactics.ActionQueueUnit:      3,
	tactics.ActionPlaceUnit:      4,
	tactics.ActionPromoteUnit:    5,
	tactics.ActionEndPlacePhase:  6,
	tactics.ActionEndActionPhase: 7,
	tactics.ActionEndTurn:        8,
}

// LegalActions enumerates the actions the player on turn can take in the
// current phase, sorted by actionPriority. It returns nil once the game is over.
//
//	place:  place each ready unit at each spawn position, promote each eligible unit, end phase
//	action: move, attack and mine for each eligible unit, end phase
//	queue:  queue each affordable definition, end turn
func LegalActions(gs *tactics.GameState) []tactics.Action {
	if gs.Phase != tactics.PhasePlaying {
		return nil
	}
	player := gs.Turn.CurrentPlayer

	var actions []tactics.Action
	switch gs.Turn.Phase {
	case tactics.TurnPlace:
		actions = placeActions(gs, player)
	case tactics.TurnAction:
		actions = unitActions(gs, player)
	case tactics.TurnQueue:
		for _, def := range tactics.QueueableDefinitions(gs, player) {
			actions = append(actions, tactics.QueueUnit(def.ID))
		}
		actions = append(actions, tactics.EndTurn())
	}
	OrderActions(actions)
	return actions
}

func placeActions(gs *tactics.GameState, player tactics.PlayerID) []tactics.Action {
	var actions []tactics.Action
	spawns := tactics.SpawnPositions(gs, player)

	// Ready entries of the same definition are interchangeable; offering
	// only the first of each keeps the branching factor down.
	seen := make(map[string]bool)
	for _, q := range tactics.ReadyUnits(gs, player) {
		if seen[q.DefinitionID] {
			continue
		}
		seen[q.DefinitionID] = true
		for _, p := range spawns {
			actions = append(actions, tactics.PlaceUnit(q.ID, p))
		}
	}
	for _, u := range tactics.PromotableUnits(gs, player) {
		actions = append(actions, tactics.PromoteUnit(u.ID))
	}
	return append(actions, tactics.EndPlacePhase())
}

func unitActions(gs *tactics.GameState, player tactics.PlayerID) []tactics.Action {
	var actions []tactics.Action
	if gs.Turn.ActionsRemaining > 0 {
		for _, u := range gs.Board.UnitsOf(player) {
			for _, p := range tactics.ValidMoves(gs, u.ID) {
				actions = append(actions, tactics.Move(u.ID, p))
			}
			for _, p := range tactics.ValidAttacks(gs, u.ID) {
				actions = append(actions, tactics.Attack(u.ID, p))
			}
			if tactics.CanMine(gs, u.ID) {
				actions = append(actions, tactics.Mine(u.ID))
			}
		}
	}
	return append(actions, tactics.EndActionPhase())
}

// OrderActions stably sorts actions by kind priority.
func OrderActions(actions []tactics.Action) {
	sort.SliceStable(actions, func(i, j int) bool {
		return priorityOf(actions[i].Kind) < priorityOf(actions[j].Kind)
	})
}

func priorityOf(k tactics.ActionKind) int {
	if p, ok := actionPriority[k]; ok {
		return p
	}
	return len(actionPriority)
}
