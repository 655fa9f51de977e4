package mechanics

import (
	"fmt"

	"github.com/ericogr/pokemon-arena/internal/catalog"
	"github.com/ericogr/pokemon-arena/internal/game"
)

// thawChance is the percentage chance a frozen pokémon thaws before acting.
const thawChance = 20

func (tc *turnContext) switchIn(side game.Side, idx int) error {
	t := tc.team(side)
	if idx < 0 || idx >= len(t.Members) {
		return fmt.Errorf("%w: switch to %d", ErrBadSlot, idx)
	}
	if idx == t.Active {
		return fmt.Errorf("slot %d is already active", idx)
	}
	if t.Members[idx].Fainted() {
		return fmt.Errorf("slot %d has fainted", idx)
	}
	if cur := t.ActivePokemon(); cur != nil && !cur.Fainted() {
		tc.on(side, game.EventSwitchOut, "%s, come back!", tc.who(side))
		cur.Volatile = game.ClearVolatile()
		tc.resetStages(side, cur)
		tc.releaseBind(side.Opponent())
	}
	t.Active = idx
	p := &t.Members[idx]
	p.Revealed = true
	p.Volatile = game.ClearVolatile()
	p.Volatile.MovedThisTurn = true
	tc.on(side, game.EventSwitchIn, "Go! %s!", tc.who(side))
	return nil
}

func (tc *turnContext) pass(side game.Side) error {
	p := tc.team(side).ActivePokemon()
	if p == nil || p.Fainted() {
		return ErrNoActive
	}
	p.Volatile.MovedThisTurn = true
	switch {
	case p.Volatile.Recharging:
		p.Volatile.Recharging = false
		tc.on(side, game.EventRecharge, "%s must recharge!", tc.who(side))
	case p.Status == game.StatusSleep || p.Status == game.StatusFreeze:
		if !tc.statusBlocks(side, p) {
			tc.on(side, game.EventCantMove, "%s is waiting.", tc.who(side))
		}
	case p.Volatile.BoundTurns > 0:
		tc.on(side, game.EventCantMove, "%s can't move!", tc.who(side))
	default:
		tc.on(side, game.EventCantMove, "%s is waiting.", tc.who(side))
	}
	return nil
}

func (tc *turnContext) useMoveSlot(side game.Side, idx int) error {
	p := tc.team(side).ActivePokemon()
	if p == nil || p.Fainted() {
		return ErrNoActive
	}
	if idx < 0 || idx >= len(p.Moves) {
		return fmt.Errorf("%w: move %d", ErrBadSlot, idx)
	}
	mv, ok := tc.cat.Move(p.Moves[idx].Move)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMove, p.Moves[idx].Move)
	}
	if p.Volatile.Recharging {
		return fmt.Errorf("%w: must recharge", ErrLocked)
	}
	releasing := p.Volatile.ChargingMove == idx
	if p.Volatile.ChargingMove != game.NoChargingMove && !releasing {
		return fmt.Errorf("%w: charging slot %d", ErrLocked, p.Volatile.ChargingMove)
	}
	if !releasing && p.Moves[idx].PP <= 0 {
		return fmt.Errorf("%w: %s", ErrNoPP, mv.Name)
	}
	tc.execute(side, p, mv, idx, releasing)
	return nil
}

func (tc *turnContext) struggle(side game.Side) error {
	p := tc.team(side).ActivePokemon()
	if p == nil || p.Fainted() {
		return ErrNoActive
	}
	tc.execute(side, p, catalog.StruggleMove, -1, false)
	return nil
}

// statusBlocks handles sleep and freeze before an action. It reports
// whether the action is lost.
func (tc *turnContext) statusBlocks(side game.Side, p *game.Pokemon) bool {
	switch p.Status {
	case game.StatusSleep:
		p.SleepTurns--
		if p.SleepTurns <= 0 {
			tc.cure(side, p, "%s woke up!")
			return true
		}
		e := tc.on(side, game.EventCantMove, "%s is fast asleep.", tc.who(side))
		e.Status = game.StatusSleep
		return true
	case game.StatusFreeze:
		if tc.rng.IntN(100) < thawChance {
			tc.cure(side, p, "%s thawed out!")
			return false
		}
		e := tc.on(side, game.EventCantMove, "%s is frozen solid!", tc.who(side))
		e.Status = game.StatusFreeze
		return true
	}
	return false
}

// volatileBlocks handles flinch, confusion and paralysis.
func (tc *turnContext) volatileBlocks(side game.Side, p *game.Pokemon) bool {
	if p.Volatile.Flinched {
		p.Volatile.Flinched = false
		tc.on(side, game.EventFlinch, "%s flinched!", tc.who(side))
		return true
	}
	if p.Volatile.ConfusionTurns > 0 {
		p.Volatile.ConfusionTurns--
		if p.Volatile.ConfusionTurns == 0 {
			tc.on(side, game.EventConfusionEnd, "%s snapped out of confusion!", tc.who(side))
		} else if tc.rng.IntN(2) == 0 {
			tc.hurt(side, p, ConfusionDamage(p), fmt.Sprintf("%s hurt itself in its confusion!", tc.who(side)))
			return true
		}
	}
	if p.Status == game.StatusParalysis && tc.rng.IntN(4) == 0 {
		e := tc.on(side, game.EventCantMove, "%s is fully paralyzed!", tc.who(side))
		e.Status = game.StatusParalysis
		return true
	}
	return false
}

// execute runs a move for side's active pokémon. slot is -1 for struggle.
func (tc *turnContext) execute(side game.Side, user *game.Pokemon, mv catalog.Move, slot int, releasing bool) {
	user.Volatile.MovedThisTurn = true
	if tc.statusBlocks(side, user) || tc.volatileBlocks(side, user) {
		user.Volatile.ChargingMove = game.NoChargingMove
		return
	}

	used := tc.on(side, game.EventMoveUsed, "%s used %s!", tc.who(side), catalog.DisplayName(mv.Name))
	used.Move = mv.Name
	if slot >= 0 && !releasing {
		user.Moves[slot].PP--
		user.Moves[slot].Revealed = true
		used.PPUsed = 1
	}

	if mv.Effect.Kind == catalog.EffectCharge && !releasing {
		user.Volatile.ChargingMove = slot
		e := tc.on(side, game.EventCharging, "%s is charging up!", tc.who(side))
		e.Move = mv.Name
		return
	}
	if releasing {
		user.Volatile.ChargingMove = game.NoChargingMove
	}

	if mv.TargetsSelf() {
		tc.selfEffect(side, user, mv)
		return
	}

	foeSide := side.Opponent()
	foe := tc.team(foeSide).ActivePokemon()
	if foe == nil || foe.Fainted() {
		tc.on(side, game.EventMoveFailed, "But there was no target!")
		return
	}

	if !tc.hits(user, foe, mv) {
		e := tc.on(side, game.EventMoveMissed, "%s's attack missed!", tc.who(side))
		e.Move = mv.Name
		if mv.Effect.Kind == catalog.EffectExplode {
			tc.hurt(side, user, user.HP, fmt.Sprintf("%s exploded!", tc.who(side)))
		}
		return
	}

	if mv.IsStatus() {
		tc.statusMove(side, foeSide, foe, mv)
		return
	}
	tc.damagingMove(side, user, foeSide, foe, mv)
}

func (tc *turnContext) hits(user, foe *game.Pokemon, mv catalog.Move) bool {
	if mv.NeverMisses() {
		return true
	}
	stage := max(game.MinStage, min(game.MaxStage, user.Stages.Accuracy-foe.Stages.Evasion))
	return tc.rng.IntN(100) < applyStage(mv.Accuracy, stage)
}

func (tc *turnContext) selfEffect(side game.Side, user *game.Pokemon, mv catalog.Move) {
	ok := false
	switch mv.Effect.Kind {
	case catalog.EffectStat:
		ok = tc.changeStage(side, user, mv.Effect.Stat, mv.Effect.Stages)
	case catalog.EffectHeal:
		ok = tc.heal(side, user, user.MaxHP*mv.Effect.Amount/100, fmt.Sprintf("%s regained health!", tc.who(side))) > 0
	case catalog.EffectRest:
		if user.HP < user.MaxHP {
			if user.Status != game.StatusNone {
				tc.cure(side, user, "%s's status was cleared.")
			}
			tc.heal(side, user, user.MaxHP, fmt.Sprintf("%s slept and became healthy!", tc.who(side)))
			user.Status = game.StatusSleep
			user.SleepTurns = 2
			e := tc.on(side, game.EventStatusApplied, "%s fell asleep!", tc.who(side))
			e.Status = game.StatusSleep
			ok = true
		}
	}
	if !ok {
		tc.on(side, game.EventMoveFailed, "But it failed!")
	}
}

func (tc *turnContext) statusMove(side, foeSide game.Side, foe *game.Pokemon, mv catalog.Move) {
	ok := false
	switch mv.Effect.Kind {
	case catalog.EffectConfuse:
		ok = tc.confuse(foeSide, foe)
	case catalog.EffectStat:
		ok = tc.changeStage(foeSide, foe, mv.Effect.Stat, mv.Effect.Stages)
	default:
		if st, inflicts := mv.InflictedStatus(); inflicts {
			if st == game.StatusParalysis && tc.cat.Effectiveness(mv.Type, foe.Types) == 0 {
				tc.on(foeSide, game.EventEffectiveness, "It doesn't affect %s...", tc.who(foeSide))
				return
			}
			ok = tc.inflict(foeSide, foe, st)
		}
	}
	if !ok {
		tc.on(side, game.EventMoveFailed, "But it failed!")
	}
}

func (tc *turnContext) damagingMove(side game.Side, user *game.Pokemon, foeSide game.Side, foe *game.Pokemon, mv catalog.Move) {
	eff := tc.cat.Effectiveness(mv.Type, foe.Types)
	if eff == 0 {
		tc.on(foeSide, game.EventEffectiveness, "It doesn't affect %s...", tc.who(foeSide))
		if mv.Effect.Kind == catalog.EffectExplode {
			tc.hurt(side, user, user.HP, fmt.Sprintf("%s exploded!", tc.who(side)))
		}
		return
	}

	var dmg int
	if mv.Effect.Kind == catalog.EffectFixedDamage {
		dmg = mv.Effect.Amount
		if dmg == 0 {
			dmg = user.Level
		}
	} else {
		crit := tc.rng.IntN(256) < critThreshold(user, mv)
		dmg = Damage(user, foe, mv, eff, crit, MinDamageRoll+tc.rng.IntN(MaxDamageRoll-MinDamageRoll+1))
		if crit {
			tc.on(side, game.EventCriticalHit, "A critical hit!")
		}
		switch {
		case eff > 1:
			tc.on(foeSide, game.EventEffectiveness, "It's super effective!")
		case eff < 1:
			tc.on(foeSide, game.EventEffectiveness, "It's not very effective...")
		}
	}

	foeName := tc.who(foeSide)
	dealt := tc.hurt(foeSide, foe, dmg, fmt.Sprintf("%s took %d damage.", foeName, min(dmg, foe.HP)))

	switch mv.Effect.Kind {
	case catalog.EffectDrain:
		tc.heal(side, user, max(1, dealt*mv.Effect.Amount/100), fmt.Sprintf("%s had its energy drained!", foeName))
	case catalog.EffectRecoil:
		tc.hurt(side, user, max(1, dealt*mv.Effect.Amount/100), fmt.Sprintf("%s is hit with recoil!", tc.who(side)))
	case catalog.EffectExplode:
		tc.hurt(side, user, user.HP, fmt.Sprintf("%s exploded!", tc.who(side)))
	case catalog.EffectRecharge:
		if !foe.Fainted() && !user.Fainted() {
			user.Volatile.Recharging = true
		}
	}

	if foe.Fainted() {
		return
	}
	if foe.Status == game.StatusFreeze && mv.Type == "fire" {
		tc.cure(foeSide, foe, "%s thawed out!")
	}
	tc.secondary(foeSide, foe, mv)
}

// secondary applies the chance-based side effect of a damaging move.
func (tc *turnContext) secondary(foeSide game.Side, foe *game.Pokemon, mv catalog.Move) {
	roll := func() bool {
		return mv.Effect.Chance == 0 || tc.rng.IntN(100) < mv.Effect.Chance
	}
	switch mv.Effect.Kind {
	case catalog.EffectParalyze, catalog.EffectBurn, catalog.EffectFreeze, catalog.EffectPoison, catalog.EffectSleep:
		st, _ := mv.InflictedStatus()
		if foe.Status == game.StatusNone && roll() {
			tc.inflict(foeSide, foe, st)
		}
	case catalog.EffectConfuse:
		if roll() {
			tc.confuse(foeSide, foe)
		}
	case catalog.EffectStat:
		if roll() {
			tc.changeStage(foeSide, foe, mv.Effect.Stat, mv.Effect.Stages)
		}
	case catalog.EffectFlinch:
		if !foe.Volatile.MovedThisTurn && roll() {
			foe.Volatile.Flinched = true
		}
	case catalog.EffectBind:
		if foe.Volatile.BoundTurns == 0 {
			foe.Volatile.BoundTurns = 2 + tc.rng.IntN(4)
			tc.on(foeSide, game.EventBound, "%s was trapped!", tc.who(foeSide))
		}
	}
}
