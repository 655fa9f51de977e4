// Package engine drives a battle session: it validates player input, asks
// the NPC policy for its move, orders and resolves both actions through the
// mechanics engine and advances the session to its next stable phase.
package engine

import (
	"fmt"
	"math/rand/v2"

	"github.com/ericogr/pokemon-arena/internal/catalog"
	"github.com/ericogr/pokemon-arena/internal/game"
	"github.com/ericogr/pokemon-arena/internal/mechanics"
)

type Resolver struct {
	cat       *catalog.Catalog
	mech      mechanics.Engine
	ai        Policy
	opts      Options
	validator Validator
}

func NewResolver(cat *catalog.Catalog, mech mechanics.Engine, ai Policy, opts Options) *Resolver {
	if opts.MaxAutoTurns < 1 {
		opts.MaxAutoTurns = DefaultMaxAutoTurns
	}
	return &Resolver{cat: cat, mech: mech, ai: ai, opts: opts, validator: Validator{Sleep: opts.SleepPolicy}}
}

func (r *Resolver) Options() Options { return r.opts }

// ValidActions applies the resolver's sleep policy.
func (r *Resolver) ValidActions(s *game.BattleSession, side game.Side) game.ValidActionSet {
	return r.validator.ValidActions(s, side)
}

// View returns the redacted view of s for side under the resolver's policy.
func (r *Resolver) View(s *game.BattleSession, side game.Side) game.BattleView {
	return r.validator.ViewFor(s, side)
}

// NewRand returns the randomness for applying an action to a snapshot. It
// depends only on the session seed and version, so a retry against the
// same snapshot replays the same rolls.
func NewRand(s *game.BattleSession) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(s.Seed), uint64(s.Version)))
}

// Apply resolves the player's action against s and returns the next
// snapshot with the events appended during this call. s is never modified;
// on error nothing is returned. The version is left for the store to bump.
func (r *Resolver) Apply(s *game.BattleSession, action game.Action) (*game.BattleSession, []game.Event, error) {
	if s.Ended() {
		return nil, nil, game.Terminated(s.ID)
	}
	legal := r.validator.ValidActions(s, game.SidePlayer)
	if !legal.Contains(action) {
		return nil, nil, game.InvalidAction(s.ID, "%s is not a legal action", action)
	}

	next := s.Clone()
	start := len(next.Events)
	tc := &turnContext{r: r, s: next, rng: NewRand(s)}
	next.Phase = game.PhaseResolvingTurn

	if err := tc.run(action, legal.ReplacementRequired); err != nil {
		return nil, nil, err
	}
	if next.Phase == game.PhaseResolvingTurn {
		return nil, nil, game.EngineFault(s.ID, fmt.Errorf("resolver stopped in transient phase"))
	}
	delta := append([]game.Event(nil), next.Events[start:]...)
	return next, delta, nil
}

// run is the tick loop: it resolves the submitted turn and keeps resolving
// while the player is locked into a forced action.
func (tc *turnContext) run(action game.Action, replacing bool) error {
	if action.Kind == game.ActionForfeit {
		tc.addf(game.EventForfeit, game.SidePlayer, "%s forfeited the battle.", tc.s.PlayerName)
		tc.end(game.OutcomeNPCWins)
		return nil
	}

	for turns := 1; ; turns++ {
		ended, err := tc.turn(action, replacing)
		if err != nil || ended {
			return err
		}
		if tc.s.Team(game.SidePlayer).NeedsReplacement() {
			tc.s.Phase = game.PhaseWaitingForPlayerAction
			return nil
		}
		tc.finishTurn()

		if !tc.r.opts.AutoAdvance || turns >= tc.r.opts.MaxAutoTurns {
			return nil
		}
		next := tc.r.validator.ValidActions(tc.s, game.SidePlayer)
		if !next.Forced {
			return nil
		}
		action, replacing = next.WithoutForfeit()[0], false
	}
}

// turn resolves one micro-turn. In replacement mode only the player's
// switch is executed; the rest of that turn already happened.
func (tc *turnContext) turn(action game.Action, replacing bool) (bool, error) {
	if replacing {
		if err := tc.execute(game.SidePlayer, action); err != nil {
			return false, err
		}
		return false, nil
	}

	npc, err := tc.npcAction()
	if err != nil {
		return false, err
	}
	ended, err := tc.executePlans(tc.buildPlans(action, npc))
	if err != nil || ended {
		return ended, err
	}
	if ended, err = tc.endOfTurn(); err != nil || ended {
		return ended, err
	}
	return false, tc.replaceNPC()
}

// npcAction asks the policy for the NPC's action and checks it is legal.
func (tc *turnContext) npcAction() (game.Action, error) {
	legal := tc.r.validator.ValidActions(tc.s, game.SideNPC)
	if legal.Empty() {
		return game.Action{}, tc.fault(fmt.Errorf("npc has no legal action"))
	}
	var a game.Action
	if len(legal.Actions) == 1 {
		a = legal.Actions[0]
	} else {
		profile, ok := tc.r.cat.Profile(tc.s.NPCProfileID)
		if !ok {
			return game.Action{}, tc.fault(fmt.Errorf("unknown npc profile %q", tc.s.NPCProfileID))
		}
		a = tc.r.ai.ChooseAction(profile, tc.r.validator.ViewFor(tc.s, game.SideNPC), legal, tc.rng)
	}
	if !legal.Contains(a) {
		return game.Action{}, tc.fault(fmt.Errorf("npc policy chose illegal action %s", a))
	}
	return a, nil
}
