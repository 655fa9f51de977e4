package engine

import "github.com/ericogr/pokemon-arena/internal/game"

// Validator computes legal actions. It never mutates the session.
type Validator struct {
	Sleep SleepPolicy
}

// ValidActions uses the default sleep policy.
func ValidActions(s *game.BattleSession, side game.Side) game.ValidActionSet {
	return Validator{Sleep: SleepResolveAtApply}.ValidActions(s, side)
}

// RequireValidActions is ValidActions for callers that need a non-empty set.
func RequireValidActions(s *game.BattleSession, side game.Side) (game.ValidActionSet, error) {
	if s.Ended() {
		return game.ValidActionSet{}, game.Terminated(s.ID)
	}
	return ValidActions(s, side), nil
}

func (v Validator) ValidActions(s *game.BattleSession, side game.Side) game.ValidActionSet {
	set := game.ValidActionSet{Actions: []game.Action{}}
	if s.Ended() {
		return set
	}
	t := s.Team(side)
	addForfeit := func() {
		if side == game.SidePlayer {
			set.Actions = append(set.Actions, game.Forfeit())
		}
	}

	p := t.ActivePokemon()
	if p == nil || p.Fainted() {
		for _, i := range t.Reserves() {
			set.Actions = append(set.Actions, game.SwitchTo(i))
		}
		set.ReplacementRequired = len(set.Actions) > 0
		addForfeit()
		return set
	}

	forced := func(a game.Action) game.ValidActionSet {
		set.Actions = append(set.Actions, a)
		set.Forced = true
		addForfeit()
		return set
	}
	switch {
	case p.Volatile.Recharging, p.Volatile.BoundTurns > 0:
		return forced(game.Pass())
	case p.Volatile.ChargingMove != game.NoChargingMove:
		return forced(game.UseMove(p.Volatile.ChargingMove))
	case v.Sleep == SleepPrefilter && (p.Status == game.StatusSleep || p.Status == game.StatusFreeze):
		return forced(game.Pass())
	}

	for i, m := range p.Moves {
		if m.PP > 0 {
			set.Actions = append(set.Actions, game.UseMove(i))
		}
	}
	if len(set.Actions) == 0 {
		set.Actions = append(set.Actions, game.Struggle())
	}
	for _, i := range t.Reserves() {
		set.Actions = append(set.Actions, game.SwitchTo(i))
	}
	addForfeit()
	return set
}
