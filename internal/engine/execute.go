package engine

import (
	"github.com/ericogr/pokemon-arena/internal/game"
)

// execute runs one side's action through the mechanics engine. An actor
// whose active pokémon fainted earlier in the turn is skipped.
func (tc *turnContext) execute(side game.Side, a game.Action) error {
	t := tc.s.Team(side)
	if a.Kind != game.ActionSwitch {
		if p := t.ActivePokemon(); p == nil || p.Fainted() {
			return nil
		}
	}
	pair, events, err := tc.r.mech.ResolveAction(tc.s.Teams, side, a, tc.rng)
	if err != nil {
		return tc.fault(err)
	}
	tc.s.Teams = pair
	tc.s.AppendEvents(events...)
	return nil
}

// executePlans runs the ordered plans and stops as soon as the battle ends.
func (tc *turnContext) executePlans(plans []plannedAction) (bool, error) {
	for _, plan := range plans {
		if err := tc.execute(plan.side, plan.action); err != nil {
			return false, err
		}
		if tc.checkOutcome() {
			return true, nil
		}
	}
	return false, nil
}

// endOfTurn applies residual effects.
func (tc *turnContext) endOfTurn() (bool, error) {
	pair, events, err := tc.r.mech.ApplyEndOfTurn(tc.s.Teams, tc.rng)
	if err != nil {
		return false, tc.fault(err)
	}
	tc.s.Teams = pair
	tc.s.AppendEvents(events...)
	return tc.checkOutcome(), nil
}
