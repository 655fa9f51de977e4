package mechanics

import (
	"fmt"

	"github.com/ericogr/pokemon-arena/internal/catalog"
	"github.com/ericogr/pokemon-arena/internal/game"
)

// turnContext accumulates the events of one engine call.
type turnContext struct {
	cat    *catalog.Catalog
	pair   *TeamPair
	rng    Rand
	events []game.Event
}

func (tc *turnContext) team(side game.Side) *game.Team { return &tc.pair[side] }

// on appends an event about side's active pokémon and returns it for
// further decoration. The pointer is only valid until the next append.
func (tc *turnContext) on(side game.Side, kind game.EventKind, format string, args ...any) *game.Event {
	t := tc.team(side)
	e := game.Event{Kind: kind, Side: side, Slot: t.Active, Message: fmt.Sprintf(format, args...)}
	if p := t.ActivePokemon(); p != nil {
		e.Species = p.Species
		e.HP = p.HP
	}
	tc.events = append(tc.events, e)
	return &tc.events[len(tc.events)-1]
}

func label(p *game.Pokemon) string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return catalog.DisplayName(p.Species)
}

// who names side's active pokémon for event messages.
func (tc *turnContext) who(side game.Side) string {
	p := tc.team(side).ActivePokemon()
	if p == nil {
		return "nobody"
	}
	if side == game.SideNPC {
		return "Foe " + label(p)
	}
	return label(p)
}

// hurt removes up to dmg HP from p and records it. It returns the HP
// actually lost.
func (tc *turnContext) hurt(side game.Side, p *game.Pokemon, dmg int, msg string) int {
	if dmg > p.HP {
		dmg = p.HP
	}
	if dmg <= 0 {
		return 0
	}
	p.HP -= dmg
	e := tc.on(side, game.EventDamage, "%s", msg)
	e.Delta = -dmg
	if p.Fainted() {
		tc.faint(side, p)
	}
	return dmg
}

// heal restores up to amount HP and records it. It returns the HP gained.
func (tc *turnContext) heal(side game.Side, p *game.Pokemon, amount int, msg string) int {
	if amount > p.MaxHP-p.HP {
		amount = p.MaxHP - p.HP
	}
	if amount <= 0 {
		return 0
	}
	p.HP += amount
	e := tc.on(side, game.EventHeal, "%s", msg)
	e.Delta = amount
	return amount
}

// faint records a knock-out and leaves the team without an active member.
func (tc *turnContext) faint(side game.Side, p *game.Pokemon) {
	tc.on(side, game.EventFaint, "%s fainted!", tc.who(side))
	p.Volatile = game.ClearVolatile()
	tc.resetStages(side, p)
	tc.team(side).Active = game.NoActive
	tc.releaseBind(side.Opponent())
}

// resetStages returns every stage counter of side's active pokémon to zero,
// recording one stat_stage event per counter it moves.
func (tc *turnContext) resetStages(side game.Side, p *game.Pokemon) {
	for _, stat := range game.StatNames {
		cur := p.Stages.Get(stat)
		if cur == 0 {
			continue
		}
		e := tc.on(side, game.EventStatStage, "%s's %s returned to normal.", tc.who(side), stat)
		e.Stat = stat
		e.Stages = -cur
	}
	p.Stages = game.StatStages{}
}

// releaseBind frees side's active pokémon from a binding move.
func (tc *turnContext) releaseBind(side game.Side) {
	p := tc.team(side).ActivePokemon()
	if p == nil || p.Volatile.BoundTurns == 0 {
		return
	}
	p.Volatile.BoundTurns = 0
	tc.on(side, game.EventBindEnded, "%s was freed!", tc.who(side))
}

// inflict sets a persistent status. It fails when one is already present or
// the target's type is immune to it.
func (tc *turnContext) inflict(side game.Side, p *game.Pokemon, st game.StatusCondition) bool {
	if p.Status != game.StatusNone || p.Fainted() {
		return false
	}
	immune := map[game.StatusCondition]string{
		game.StatusBurn:   "fire",
		game.StatusFreeze: "ice",
		game.StatusPoison: "poison",
	}[st]
	for _, t := range p.Types {
		if immune != "" && t == immune {
			return false
		}
	}
	p.Status = st
	var msg string
	switch st {
	case game.StatusSleep:
		p.SleepTurns = 1 + tc.rng.IntN(7)
		msg = "%s fell asleep!"
	case game.StatusParalysis:
		msg = "%s is paralyzed! It may be unable to move!"
	case game.StatusBurn:
		msg = "%s was burned!"
	case game.StatusFreeze:
		msg = "%s was frozen solid!"
	case game.StatusPoison:
		msg = "%s was poisoned!"
	}
	e := tc.on(side, game.EventStatusApplied, msg, tc.who(side))
	e.Status = st
	return true
}

func (tc *turnContext) cure(side game.Side, p *game.Pokemon, format string) {
	old := p.Status
	p.Status = game.StatusNone
	p.SleepTurns = 0
	e := tc.on(side, game.EventStatusCured, format, tc.who(side))
	e.Status = old
}

func (tc *turnContext) confuse(side game.Side, p *game.Pokemon) bool {
	if p.Volatile.ConfusionTurns > 0 || p.Fainted() {
		return false
	}
	p.Volatile.ConfusionTurns = 2 + tc.rng.IntN(4)
	tc.on(side, game.EventConfused, "%s became confused!", tc.who(side))
	return true
}

// changeStage moves a stat stage by delta within bounds. It fails when the
// stage is already at the limit.
func (tc *turnContext) changeStage(side game.Side, p *game.Pokemon, stat string, delta int) bool {
	cur := p.Stages.Get(stat)
	p.Stages.Set(stat, cur+delta)
	applied := p.Stages.Get(stat) - cur
	if applied == 0 {
		return false
	}
	var verb string
	switch {
	case applied >= 2:
		verb = "sharply rose"
	case applied > 0:
		verb = "rose"
	case applied <= -2:
		verb = "harshly fell"
	default:
		verb = "fell"
	}
	e := tc.on(side, game.EventStatStage, "%s's %s %s!", tc.who(side), stat, verb)
	e.Stat = stat
	e.Stages = applied
	return true
}
