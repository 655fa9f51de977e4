package storage

import (
	"github.com/ericogr/pokemon-arena/internal/game"
)

// battleResult is the delta a finished battle adds to its trainer.
type battleResult struct {
	wins, losses, forfeits int
}

// resultOf returns the trainer delta of an ended session.
func resultOf(s *game.BattleSession) battleResult {
	var r battleResult
	switch s.Outcome {
	case game.OutcomePlayerWins:
		r.wins = 1
	case game.OutcomeNPCWins:
		r.losses = 1
	}
	for i := len(s.Events) - 1; i >= 0; i-- {
		if s.Events[i].Turn < s.TurnNumber {
			break
		}
		if s.Events[i].Kind == game.EventForfeit {
			r.forfeits = 1
			break
		}
	}
	return r
}

// apply adds the result to t.
func (r battleResult) apply(t *game.Trainer) {
	t.BattlesPlayed++
	t.Wins += r.wins
	t.Losses += r.losses
	t.Forfeits += r.forfeits
}

// endsBattle reports whether saving next over prev finishes the battle.
func endsBattle(prevPhase game.Phase, next *game.BattleSession) bool {
	return prevPhase != game.PhaseEnded && next.Ended()
}
