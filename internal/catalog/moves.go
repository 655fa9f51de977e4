package catalog

import (
	"fmt"

	"github.com/ericogr/pokemon-arena/internal/game"
)

// EffectKind names the secondary behaviour of a move.
type EffectKind string

const (
	EffectNone        EffectKind = ""
	EffectParalyze    EffectKind = "paralyze"
	EffectSleep       EffectKind = "sleep"
	EffectPoison      EffectKind = "poison"
	EffectBurn        EffectKind = "burn"
	EffectFreeze      EffectKind = "freeze"
	EffectConfuse     EffectKind = "confuse"
	EffectStat        EffectKind = "stat"
	EffectRecharge    EffectKind = "recharge"
	EffectCharge      EffectKind = "charge"
	EffectBind        EffectKind = "bind"
	EffectRecoil      EffectKind = "recoil"
	EffectDrain       EffectKind = "drain"
	EffectHeal        EffectKind = "heal"
	EffectRest        EffectKind = "rest"
	EffectHighCrit    EffectKind = "high_crit"
	EffectFixedDamage EffectKind = "fixed_damage"
	EffectExplode     EffectKind = "explode"
	EffectFlinch      EffectKind = "flinch"
)

// MoveEffect is the secondary effect of a move. Chance is a percentage; 0
// means the effect always applies. Amount is a percentage for recoil, drain
// and heal, and a flat HP value for fixed damage (0 means the user's level).
type MoveEffect struct {
	Kind   EffectKind `json:"kind"`
	Chance int        `json:"chance,omitempty"`
	Stat   string     `json:"stat,omitempty"`
	Stages int        `json:"stages,omitempty"`
	Self   bool       `json:"self,omitempty"`
	Amount int        `json:"amount,omitempty"`
}

// Move is one attack from the catalog. Accuracy 0 means the move never misses.
type Move struct {
	Name     string     `json:"name"`
	Type     string     `json:"type"`
	Power    int        `json:"power"`
	Accuracy int        `json:"accuracy"`
	PP       int        `json:"pp"`
	Priority int        `json:"priority,omitempty"`
	Effect   MoveEffect `json:"effect"`
}

// StruggleMove is used when every move is out of PP. It is typeless and
// costs the user half of the damage dealt.
var StruggleMove = Move{
	Name:     "struggle",
	Power:    50,
	Accuracy: 100,
	Effect:   MoveEffect{Kind: EffectRecoil, Amount: 50},
}

// specialTypes are the types whose damaging moves use the Special stat.
var specialTypes = map[string]bool{
	"fire": true, "water": true, "electric": true, "grass": true,
	"ice": true, "psychic": true, "dragon": true,
}

// IsStatus reports whether the move deals no direct damage.
func (m Move) IsStatus() bool {
	return m.Power == 0 && m.Effect.Kind != EffectFixedDamage
}

// IsSpecial reports whether damage uses Special instead of Attack/Defense.
func (m Move) IsSpecial() bool { return specialTypes[m.Type] }

// TargetsSelf reports whether the move only affects its user.
func (m Move) TargetsSelf() bool { return m.Effect.Self }

// NeverMisses reports whether accuracy checks are skipped.
func (m Move) NeverMisses() bool { return m.Accuracy == 0 || m.Effect.Self }

// InflictedStatus returns the persistent status the move may cause.
func (m Move) InflictedStatus() (game.StatusCondition, bool) {
	switch m.Effect.Kind {
	case EffectParalyze:
		return game.StatusParalysis, true
	case EffectSleep:
		return game.StatusSleep, true
	case EffectPoison:
		return game.StatusPoison, true
	case EffectBurn:
		return game.StatusBurn, true
	case EffectFreeze:
		return game.StatusFreeze, true
	}
	return game.StatusNone, false
}

func (m Move) validate() error {
	if m.Power < 0 {
		return fmt.Errorf("negative power")
	}
	if m.Accuracy < 0 || m.Accuracy > 100 {
		return fmt.Errorf("accuracy %d outside [0,100]", m.Accuracy)
	}
	if m.PP <= 0 || m.PP > 64 {
		return fmt.Errorf("pp %d outside [1,64]", m.PP)
	}
	if m.Effect.Chance < 0 || m.Effect.Chance > 100 {
		return fmt.Errorf("effect chance %d outside [0,100]", m.Effect.Chance)
	}
	switch m.Effect.Kind {
	case EffectNone, EffectParalyze, EffectSleep, EffectPoison, EffectBurn, EffectFreeze,
		EffectConfuse, EffectRecharge, EffectCharge, EffectBind, EffectHighCrit,
		EffectFixedDamage, EffectExplode, EffectFlinch, EffectRest:
	case EffectStat:
		switch m.Effect.Stat {
		case game.StatAttack, game.StatDefense, game.StatSpecial, game.StatSpeed, game.StatAccuracy, game.StatEvasion:
		default:
			return fmt.Errorf("unknown stat '%s'", m.Effect.Stat)
		}
		if m.Effect.Stages == 0 {
			return fmt.Errorf("stat effect without stages")
		}
	case EffectRecoil, EffectDrain, EffectHeal:
		if m.Effect.Amount <= 0 || m.Effect.Amount > 100 {
			return fmt.Errorf("%s amount %d outside [1,100]", m.Effect.Kind, m.Effect.Amount)
		}
	default:
		return fmt.Errorf("unknown effect '%s'", m.Effect.Kind)
	}
	return nil
}
