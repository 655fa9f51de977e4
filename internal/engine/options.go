package engine

import (
	"fmt"

	"github.com/ericogr/pokemon-arena/internal/game"
	"github.com/ericogr/pokemon-arena/internal/mechanics"
)

// SleepPolicy decides how a sleeping or frozen active pokémon is validated.
type SleepPolicy string

const (
	// SleepResolveAtApply lists moves as usual; the mechanics engine turns
	// them into a "fast asleep" event when the action is applied.
	SleepResolveAtApply SleepPolicy = "resolve_at_apply"
	// SleepPrefilter restricts an asleep or frozen pokémon to a forced pass.
	SleepPrefilter SleepPolicy = "prefilter"
)

// TieBreak orders two actions of equal priority and speed.
type TieBreak string

const (
	TieBreakPlayerFirst TieBreak = "player_first"
	// TieBreakSeeded flips a coin from the session randomness.
	TieBreakSeeded TieBreak = "seeded"
)

// DefaultMaxAutoTurns bounds the turns one Apply call may resolve.
const DefaultMaxAutoTurns = 100

type Options struct {
	SleepPolicy SleepPolicy
	TieBreak    TieBreak
	// AutoAdvance resolves forced player turns without returning to the caller.
	AutoAdvance bool
	// MaxAutoTurns is the number of turns after which Apply yields even if
	// the player is still locked into a forced action.
	MaxAutoTurns int
}

func DefaultOptions() Options {
	return Options{
		SleepPolicy:  SleepResolveAtApply,
		TieBreak:     TieBreakPlayerFirst,
		AutoAdvance:  true,
		MaxAutoTurns: DefaultMaxAutoTurns,
	}
}

// Validate checks the option values.
func (o Options) Validate() error {
	switch o.SleepPolicy {
	case SleepResolveAtApply, SleepPrefilter:
	default:
		return fmt.Errorf("unknown sleep policy %q", o.SleepPolicy)
	}
	switch o.TieBreak {
	case TieBreakPlayerFirst, TieBreakSeeded:
	default:
		return fmt.Errorf("unknown tie break %q", o.TieBreak)
	}
	if o.MaxAutoTurns < 1 {
		return fmt.Errorf("max auto turns must be positive, got %d", o.MaxAutoTurns)
	}
	return nil
}

// Policy chooses the NPC's action from its own redacted view. The result
// must be a member of legal.
type Policy interface {
	ChooseAction(profile game.NPCProfile, view game.BattleView, legal game.ValidActionSet, rng mechanics.Rand) game.Action
}
