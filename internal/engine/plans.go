package engine

import (
	"sort"

	"github.com/ericogr/pokemon-arena/internal/game"
	"github.com/ericogr/pokemon-arena/internal/mechanics"
)

// --- Planned action model ---------------------------------------------
type plannedAction struct {
	side     game.Side
	action   game.Action
	priority int
	speed    int
}

func (p plannedAction) isSwitch() bool { return p.action.Kind == game.ActionSwitch }

// buildPlans orders the two actions of a turn: switches first (player
// first among them), then move priority, then effective speed, then the
// configured tie break.
func (tc *turnContext) buildPlans(player, npc game.Action) []plannedAction {
	plans := []plannedAction{tc.plan(game.SidePlayer, player), tc.plan(game.SideNPC, npc)}

	coin := -1
	npcWinsTie := func() bool {
		if tc.r.opts.TieBreak != TieBreakSeeded {
			return false
		}
		if coin < 0 {
			coin = tc.rng.IntN(2)
		}
		return coin == 1
	}

	sort.SliceStable(plans, func(i, j int) bool {
		a, b := plans[i], plans[j]
		if a.isSwitch() != b.isSwitch() {
			return a.isSwitch()
		}
		if a.isSwitch() {
			return a.side == game.SidePlayer && b.side == game.SideNPC
		}
		if a.priority != b.priority {
			return a.priority > b.priority
		}
		if a.speed != b.speed {
			return a.speed > b.speed
		}
		if npcWinsTie() {
			return a.side == game.SideNPC && b.side == game.SidePlayer
		}
		return a.side == game.SidePlayer && b.side == game.SideNPC
	})
	return plans
}

func (tc *turnContext) plan(side game.Side, a game.Action) plannedAction {
	p := tc.s.Team(side).ActivePokemon()
	pl := plannedAction{side: side, action: a}
	if p != nil {
		pl.priority = mechanics.MovePriority(tc.r.cat, p, a)
		pl.speed = mechanics.EffectiveSpeed(p)
	}
	return pl
}
