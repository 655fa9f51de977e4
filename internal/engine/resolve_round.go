package engine

import (
	"fmt"

	"github.com/ericogr/pokemon-arena/internal/game"
)

// checkOutcome ends the battle when a side has no healthy pokémon left.
func (tc *turnContext) checkOutcome() bool {
	playerOut := tc.s.Team(game.SidePlayer).Defeated()
	npcOut := tc.s.Team(game.SideNPC).Defeated()
	switch {
	case playerOut && npcOut:
		tc.end(game.OutcomeDraw)
	case playerOut:
		tc.end(game.OutcomeNPCWins)
	case npcOut:
		tc.end(game.OutcomePlayerWins)
	default:
		return false
	}
	return true
}

func (tc *turnContext) end(o game.Outcome) {
	tc.s.Phase = game.PhaseEnded
	tc.s.Outcome = o
	var msg string
	switch o {
	case game.OutcomePlayerWins:
		msg = fmt.Sprintf("%s defeated %s!", tc.s.PlayerName, tc.s.NPCName)
	case game.OutcomeNPCWins:
		msg = fmt.Sprintf("%s defeated %s!", tc.s.NPCName, tc.s.PlayerName)
	default:
		msg = "The battle ended in a draw."
	}
	tc.add(game.Event{Kind: game.EventBattleEnded, Side: game.SidePlayer, Slot: game.NoActive, Outcome: o, Message: msg})
}

// replaceNPC sends in the NPC's next pokémon chosen by its policy.
func (tc *turnContext) replaceNPC() error {
	if !tc.s.Team(game.SideNPC).NeedsReplacement() {
		return nil
	}
	a, err := tc.npcAction()
	if err != nil {
		return err
	}
	if a.Kind != game.ActionSwitch {
		return tc.fault(fmt.Errorf("npc replacement must be a switch, got %s", a))
	}
	return tc.execute(game.SideNPC, a)
}

// finishTurn closes the current turn and reopens the session for input.
func (tc *turnContext) finishTurn() {
	tc.add(game.Event{Kind: game.EventTurnEnded, Side: game.SidePlayer, Slot: game.NoActive, Message: fmt.Sprintf("Turn %d ended.", tc.s.TurnNumber)})
	tc.s.TurnNumber++
	tc.s.Phase = game.PhaseWaitingForPlayerAction
}
