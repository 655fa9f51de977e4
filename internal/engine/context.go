package engine

import (
	"fmt"

	"github.com/ericogr/pokemon-arena/internal/game"
	"github.com/ericogr/pokemon-arena/internal/mechanics"
)

// --- Turn context -----------------------------------------------------
// turnContext carries one Apply call: the working copy of the session and
// the randomness shared by mechanics and the NPC policy.
type turnContext struct {
	r   *Resolver
	s   *game.BattleSession
	rng mechanics.Rand
}

func (tc *turnContext) add(e game.Event) { tc.s.AppendEvents(e) }

func (tc *turnContext) addf(kind game.EventKind, side game.Side, format string, args ...any) {
	tc.add(game.Event{Kind: kind, Side: side, Slot: tc.s.Team(side).Active, Message: fmt.Sprintf(format, args...)})
}

func (tc *turnContext) fault(err error) error {
	return game.EngineFault(tc.s.ID, err)
}
