package mechanics

import (
	"slices"

	"github.com/ericogr/pokemon-arena/internal/catalog"
	"github.com/ericogr/pokemon-arena/internal/game"
)

// Bounds of the random damage factor, out of 255.
const (
	MinDamageRoll = 217
	MaxDamageRoll = 255
)

var confusionHit = catalog.Move{Name: "confusion", Power: 40, Accuracy: 0, PP: 1}

// applyStage scales v by a stat stage: (2+s)/2 when raised, 2/(2-s) when lowered.
func applyStage(v, stage int) int {
	var r int
	if stage >= 0 {
		r = v * (2 + stage) / 2
	} else {
		r = v * 2 / (2 - stage)
	}
	return max(1, r)
}

// EffectiveSpeed is the speed used for turn order: stage-adjusted and
// quartered by paralysis.
func EffectiveSpeed(p *game.Pokemon) int {
	s := applyStage(p.Stats.Speed, p.Stages.Speed)
	if p.Status == game.StatusParalysis {
		s /= 4
	}
	return max(1, s)
}

// HasSTAB reports whether the move shares a type with its user.
func HasSTAB(user *game.Pokemon, moveType string) bool {
	return moveType != "" && slices.Contains(user.Types, moveType)
}

func critThreshold(user *game.Pokemon, mv catalog.Move) int {
	t := user.BaseSpeed / 2
	if mv.Effect.Kind == catalog.EffectHighCrit {
		t = user.BaseSpeed * 4
	}
	return min(255, t)
}

// attackStats returns the attacking and defending stat for a move. Critical
// hits ignore stages and the burn penalty.
func attackStats(user, foe *game.Pokemon, mv catalog.Move, crit bool) (int, int) {
	var atk, def, atkStage, defStage int
	if mv.IsSpecial() {
		atk, def = user.Stats.Special, foe.Stats.Special
		atkStage, defStage = user.Stages.Special, foe.Stages.Special
	} else {
		atk, def = user.Stats.Attack, foe.Stats.Defense
		atkStage, defStage = user.Stages.Attack, foe.Stages.Defense
	}
	if crit {
		return atk, def
	}
	atk = applyStage(atk, atkStage)
	def = applyStage(def, defStage)
	if user.Status == game.StatusBurn && !mv.IsSpecial() {
		atk = max(1, atk/2)
	}
	return atk, def
}

// Damage computes Generation-1 damage for a damaging move. eff is the type
// multiplier and roll the random factor in [MinDamageRoll, MaxDamageRoll].
func Damage(user, foe *game.Pokemon, mv catalog.Move, eff float64, crit bool, roll int) int {
	if mv.Power == 0 || eff == 0 {
		return 0
	}
	level := user.Level
	if crit {
		level *= 2
	}
	atk, def := attackStats(user, foe, mv, crit)
	if mv.Effect.Kind == catalog.EffectExplode {
		def = max(1, def/2)
	}
	if atk > 255 || def > 255 {
		atk = max(1, atk/4)
		def = max(1, def/4)
	}
	base := ((2*level/5+2)*mv.Power*atk/def)/50 + 2
	if HasSTAB(user, mv.Type) {
		base = base * 3 / 2
	}
	base = int(float64(base) * eff)
	if base > 1 {
		base = base * roll / MaxDamageRoll
	}
	return max(1, base)
}

// ConfusionDamage is the typeless 40-power hit a confused pokémon deals to itself.
func ConfusionDamage(p *game.Pokemon) int {
	return Damage(p, p, confusionHit, 1, false, MaxDamageRoll)
}

// ExpectedDamage estimates the damage of a move without randomness: no
// critical hit and the mean roll. Fixed-damage moves return their amount.
func ExpectedDamage(cat *catalog.Catalog, user, foe *game.Pokemon, mv catalog.Move) int {
	eff := cat.Effectiveness(mv.Type, foe.Types)
	if eff == 0 {
		return 0
	}
	if mv.Effect.Kind == catalog.EffectFixedDamage {
		if mv.Effect.Amount > 0 {
			return mv.Effect.Amount
		}
		return user.Level
	}
	return Damage(user, foe, mv, eff, false, (MinDamageRoll+MaxDamageRoll)/2)
}

// MovePriority returns the priority of a move slot, or 0 when unknown.
// Struggle and pass have normal priority.
func MovePriority(cat *catalog.Catalog, p *game.Pokemon, a game.Action) int {
	if p == nil || a.Kind != game.ActionMove || a.Index < 0 || a.Index >= len(p.Moves) {
		return 0
	}
	mv, ok := cat.Move(p.Moves[a.Index].Move)
	if !ok {
		return 0
	}
	return mv.Priority
}
