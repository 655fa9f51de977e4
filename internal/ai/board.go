package ai

import (
	"github.com/ericogr/pokemon-arena/internal/catalog"
	"github.com/ericogr/pokemon-arena/internal/game"
	"github.com/ericogr/pokemon-arena/internal/mechanics"
)

// option is a legal move together with what the NPC knows about it.
type option struct {
	action game.Action
	move   catalog.Move
}

// board is the NPC's picture of the battle, rebuilt from its view.
type board struct {
	view     game.BattleView
	self     *game.Pokemon
	foe      *game.Pokemon
	moves    []option
	switches []int
	struggle bool
}

func (s *Selector) newBoard(view game.BattleView, legal game.ValidActionSet) *board {
	b := &board{view: view}
	if a := view.Own.Active; a >= 0 && a < len(view.Own.Members) {
		p := s.asPokemon(&view.Own.Members[a])
		b.self = &p
	}
	if view.Opponent.Active != nil {
		p := s.asPokemon(view.Opponent.Active)
		b.foe = &p
	}
	for _, a := range legal.Actions {
		switch a.Kind {
		case game.ActionMove:
			if b.self == nil || a.Index >= len(b.self.Moves) {
				continue
			}
			if mv, ok := s.cat.Move(b.self.Moves[a.Index].Move); ok {
				b.moves = append(b.moves, option{action: a, move: mv})
			}
		case game.ActionSwitch:
			b.switches = append(b.switches, a.Index)
		case game.ActionStruggle:
			b.struggle = true
		}
	}
	return b
}

// asPokemon rebuilds a pokémon from a view. Hidden stats are estimated
// from the species and level.
func (s *Selector) asPokemon(v *game.PokemonView) game.Pokemon {
	p := game.Pokemon{
		Species:  v.Species,
		Level:    v.Level,
		HP:       v.HP,
		MaxHP:    v.MaxHP,
		Types:    v.Types,
		Status:   v.Status,
		Stages:   v.Stages,
		Volatile: game.ClearVolatile(),
	}
	if v.Stats != nil {
		p.Stats = *v.Stats
	} else if st, ok := s.cat.EstimateStats(v.Species, v.Level); ok {
		p.Stats = st
	}
	if sp, ok := s.cat.Species(v.Species); ok {
		p.BaseSpeed = sp.Speed
	}
	for _, m := range v.Moves {
		p.Moves = append(p.Moves, game.MoveSlot{Move: m.Move})
	}
	return p
}

// member returns the own team member in slot i as a pokémon.
func (s *Selector) member(b *board, i int) game.Pokemon {
	return s.asPokemon(&b.view.Own.Members[i])
}

// fallback is the action used when no move option exists.
func (b *board) fallback() game.Action {
	if b.struggle {
		return game.Struggle()
	}
	if len(b.switches) > 0 {
		return game.SwitchTo(b.switches[0])
	}
	return game.Action{}
}

// effectiveness of a move against the foe; 1 when the foe is unknown.
func (s *Selector) effectiveness(b *board, mv catalog.Move) float64 {
	if b.foe == nil {
		return 1
	}
	return s.cat.Effectiveness(mv.Type, b.foe.Types)
}

// score is power x type effectiveness x STAB, weighted by accuracy.
// Fixed-damage moves count their damage as power.
func (s *Selector) score(b *board, o option) float64 {
	power := float64(o.move.Power)
	if o.move.Effect.Kind == catalog.EffectFixedDamage {
		power = float64(o.move.Effect.Amount)
		if power == 0 && b.self != nil {
			power = float64(b.self.Level)
		}
	}
	if power == 0 {
		return 0
	}
	v := power * s.effectiveness(b, o.move)
	if b.self != nil && mechanics.HasSTAB(b.self, o.move.Type) {
		v *= 1.5
	}
	if !o.move.NeverMisses() {
		v *= float64(o.move.Accuracy) / 100
	}
	if o.move.Effect.Kind == catalog.EffectCharge || o.move.Effect.Kind == catalog.EffectRecharge {
		v *= 0.6
	}
	return v
}

// expected returns the mean damage of a move on the foe.
func (s *Selector) expected(b *board, o option) int {
	if b.self == nil || b.foe == nil {
		return 0
	}
	return mechanics.ExpectedDamage(s.cat, b.self, b.foe, o.move)
}

// threatFrom estimates the strongest hit attacker can land on defender,
// using its revealed moves or, when none are known, a strong STAB attack
// of each of its types.
func (s *Selector) threatFrom(attacker, defender *game.Pokemon) int {
	best := 0
	try := func(mv catalog.Move) {
		if d := mechanics.ExpectedDamage(s.cat, attacker, defender, mv); d > best {
			best = d
		}
	}
	known := 0
	for _, m := range attacker.Moves {
		if mv, ok := s.cat.Move(m.Move); ok && !mv.IsStatus() {
			try(mv)
			known++
		}
	}
	if known == 0 {
		for _, t := range attacker.Types {
			try(catalog.Move{Name: "stab", Type: t, Power: 80, Accuracy: 100, PP: 1})
		}
	}
	return best
}

// typeThreat is the worst multiplier attacker's types get against defender.
func (s *Selector) typeThreat(attacker, defender *game.Pokemon) float64 {
	worst := 0.0
	for _, t := range attacker.Types {
		worst = max(worst, s.cat.Effectiveness(t, defender.Types))
	}
	return worst
}
