// Package mechanics implements Generation-1 battle rules: damage, accuracy,
// critical hits, status conditions and the volatile effects of moves.
//
// The engine is pure. Inputs are never mutated and all randomness comes
// from the Rand passed in by the caller.
package mechanics

import (
	"errors"
	"fmt"

	"github.com/ericogr/pokemon-arena/internal/catalog"
	"github.com/ericogr/pokemon-arena/internal/game"
)

// Rand is the randomness source used by the engine. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// TeamPair holds both teams indexed by game.Side.
type TeamPair = [2]game.Team

// Engine resolves single actions and end-of-turn effects.
type Engine interface {
	ResolveAction(pair TeamPair, side game.Side, action game.Action, rng Rand) (TeamPair, []game.Event, error)
	ApplyEndOfTurn(pair TeamPair, rng Rand) (TeamPair, []game.Event, error)
}

var (
	ErrNoActive          = errors.New("no active pokemon")
	ErrUnsupportedAction = errors.New("unsupported action")
	ErrBadSlot           = errors.New("slot out of range")
	ErrNoPP              = errors.New("move has no pp left")
	ErrUnknownMove       = errors.New("unknown move")
	ErrLocked            = errors.New("pokemon is locked into another action")
)

// Gen1 is the Generation-1 rule set backed by a catalog.
type Gen1 struct {
	cat *catalog.Catalog
}

var _ Engine = (*Gen1)(nil)

func NewGen1(cat *catalog.Catalog) *Gen1 {
	return &Gen1{cat: cat}
}

func clonePair(p TeamPair) TeamPair {
	return TeamPair{p[0].Clone(), p[1].Clone()}
}

// ResolveAction performs one side's action and returns the new teams and
// the events describing every change.
func (g *Gen1) ResolveAction(pair TeamPair, side game.Side, action game.Action, rng Rand) (TeamPair, []game.Event, error) {
	out := clonePair(pair)
	tc := &turnContext{cat: g.cat, pair: &out, rng: rng}

	var err error
	switch action.Kind {
	case game.ActionSwitch:
		err = tc.switchIn(side, action.Index)
	case game.ActionMove:
		err = tc.useMoveSlot(side, action.Index)
	case game.ActionStruggle:
		err = tc.struggle(side)
	case game.ActionPass:
		err = tc.pass(side)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedAction, action.Kind)
	}
	if err != nil {
		return pair, nil, fmt.Errorf("%s %s: %w", side, action, err)
	}
	return out, tc.events, nil
}

// ApplyEndOfTurn applies poison, burn and binding damage and clears the
// per-turn flags of both active pokémon.
func (g *Gen1) ApplyEndOfTurn(pair TeamPair, rng Rand) (TeamPair, []game.Event, error) {
	out := clonePair(pair)
	tc := &turnContext{cat: g.cat, pair: &out, rng: rng}

	for _, side := range []game.Side{game.SidePlayer, game.SideNPC} {
		p := tc.team(side).ActivePokemon()
		if p == nil || p.Fainted() {
			continue
		}
		switch p.Status {
		case game.StatusPoison:
			tc.hurt(side, p, chip(p), fmt.Sprintf("%s is hurt by poison!", tc.who(side)))
		case game.StatusBurn:
			tc.hurt(side, p, chip(p), fmt.Sprintf("%s is hurt by its burn!", tc.who(side)))
		}
		if !p.Fainted() && p.Volatile.BoundTurns > 0 {
			tc.hurt(side, p, chip(p), fmt.Sprintf("%s is hurt by the bind!", tc.who(side)))
			if !p.Fainted() {
				p.Volatile.BoundTurns--
				if p.Volatile.BoundTurns == 0 {
					tc.on(side, game.EventBindEnded, "%s was freed!", tc.who(side))
				}
			}
		}
		p.Volatile.MovedThisTurn = false
		p.Volatile.Flinched = false
	}
	return out, tc.events, nil
}

// chip is the 1/16 max HP damage of poison, burn and binding.
func chip(p *game.Pokemon) int {
	return max(1, p.MaxHP/16)
}
