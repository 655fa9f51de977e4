package service

import (
	"context"
	"errors"

	"github.com/ericogr/pokemon-arena/internal/constants"
	"github.com/ericogr/pokemon-arena/internal/game"
	"github.com/ericogr/pokemon-arena/internal/logging"
)

// SubmitResult is the outcome of one accepted player action.
type SubmitResult struct {
	View   game.BattleView `json:"battle"`
	Events []game.Event    `json:"events"`
	// Attempts counts the load-apply-save rounds, 1 without conflicts.
	Attempts int `json:"-"`
}

// SubmitAction applies the player's action to the stored battle. On a
// version conflict the battle is reloaded and the action reapplied, up to
// the configured number of retries; the action may then be rejected as no
// longer legal.
func (m *Manager) SubmitAction(ctx context.Context, battleID, playerID string, action game.Action) (*SubmitResult, error) {
	fields := logging.Fields{
		constants.LogFieldBattleID: battleID,
		constants.LogFieldPlayerID: playerID,
		constants.LogFieldAction:   action.String(),
	}
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s, version, err := m.load(ctx, battleID, playerID)
		if err != nil {
			return nil, err
		}

		next, events, err := m.resolver.Apply(s, action)
		if err != nil {
			if errors.Is(err, game.ErrEngineFault) {
				logging.Error("battle resolution failed", err, fields)
			}
			return nil, err
		}

		newVersion, err := m.store.Save(ctx, next, version)
		if err == nil {
			next.Version = newVersion
			fields[constants.LogFieldTurn] = next.TurnNumber
			fields[constants.LogFieldVersion] = newVersion
			fields[constants.LogFieldEvents] = len(events)
			if next.Ended() {
				fields[constants.LogFieldOutcome] = string(next.Outcome)
				logging.Info("battle ended", fields)
			} else {
				logging.Debug("action applied", fields)
			}
			return &SubmitResult{
				View:     m.resolver.View(next, game.SidePlayer),
				Events:   events,
				Attempts: attempt,
			}, nil
		}
		if !errors.Is(err, game.ErrConflict) || attempt > m.maxRetries {
			return nil, err
		}
		fields[constants.LogFieldAttempt] = attempt
		logging.Warn("version conflict, reapplying action", fields)
	}
}
