package ai

import (
	"math"

	"github.com/ericogr/pokemon-arena/internal/catalog"
	"github.com/ericogr/pokemon-arena/internal/game"
	"github.com/ericogr/pokemon-arena/internal/mechanics"
)

// nearBest keeps medium-tier candidates within this share of the top score.
const nearBest = 0.9

// easy picks the legal move with the highest base power.
func (s *Selector) easy(b *board) game.Action {
	if len(b.moves) == 0 {
		return b.fallback()
	}
	best := b.moves[0]
	for _, o := range b.moves[1:] {
		if o.move.Power > best.move.Power {
			best = o
		}
	}
	return best.action
}

// medium scores moves by power, type effectiveness, STAB and accuracy and
// picks among the near-best at random, weighted by aggression. Below the
// switch threshold it retreats to a reserve that resists the foe and
// threatens it back.
func (s *Selector) medium(profile game.NPCProfile, b *board, rng mechanics.Rand) game.Action {
	if a, ok := s.defensiveSwitch(profile, b); ok {
		return a
	}
	if len(b.moves) == 0 {
		return b.fallback()
	}

	scores := make([]float64, len(b.moves))
	top := 0.0
	for i, o := range b.moves {
		scores[i] = s.score(b, o)
		top = max(top, scores[i])
	}
	if top == 0 {
		return b.moves[0].action
	}

	exp := 1 + 3*profile.Aggression
	var (
		cands   []option
		weights []int
		total   int
	)
	for i, o := range b.moves {
		if scores[i] < nearBest*top {
			continue
		}
		w := max(1, int(math.Round(100*math.Pow(scores[i]/top, exp))))
		cands = append(cands, o)
		weights = append(weights, w)
		total += w
	}
	n := rng.IntN(total)
	for i, w := range weights {
		if n < w {
			return cands[i].action
		}
		n -= w
	}
	return cands[len(cands)-1].action
}

func (s *Selector) defensiveSwitch(profile game.NPCProfile, b *board) (game.Action, bool) {
	if b.self == nil || b.foe == nil || len(b.switches) == 0 || profile.SwitchThreshold <= 0 {
		return game.Action{}, false
	}
	if float64(b.self.HP)/float64(b.self.MaxHP) >= profile.SwitchThreshold {
		return game.Action{}, false
	}
	for _, slot := range b.switches {
		r := s.member(b, slot)
		if s.typeThreat(b.foe, &r) < 1 && s.typeThreat(&r, b.foe) > 1 {
			return game.SwitchTo(slot), true
		}
	}
	return game.Action{}, false
}

// hard opens with sleep or paralysis when the foe cannot be knocked out
// right away, then looks one turn ahead: it retreats from a faster foe that
// would knock it out, takes a knockout when it moves first, and otherwise
// maximizes expected damage.
func (s *Selector) hard(profile game.NPCProfile, b *board, rng mechanics.Rand) game.Action {
	if len(b.moves) == 0 {
		return b.fallback()
	}
	if b.foe == nil || b.self == nil {
		return s.medium(profile, b, rng)
	}

	bestDmg, best := -1.0, b.moves[0]
	canKO := false
	var ko *option
	for i, o := range b.moves {
		d := s.expected(b, o)
		if d >= b.foe.HP {
			canKO = true
			if ko == nil || o.move.Accuracy == 0 || o.move.Accuracy > ko.move.Accuracy {
				ko = &b.moves[i]
			}
		}
		v := float64(d) * accuracy(o.move)
		if v > bestDmg {
			bestDmg, best = v, o
		}
	}

	if !canKO && b.foe.Status == game.StatusNone {
		if o, ok := s.statusOpener(b); ok {
			return o.action
		}
	}

	if profile.LookAhead >= 1 {
		foeFirst := mechanics.EffectiveSpeed(b.foe) > mechanics.EffectiveSpeed(b.self)
		threat := s.threatFrom(b.foe, b.self)
		if foeFirst && threat >= b.self.HP {
			if slot, ok := s.safestSwitch(b); ok {
				return game.SwitchTo(slot)
			}
		}
		if !foeFirst && ko != nil {
			return ko.action
		}
	}
	if bestDmg <= 0 {
		return s.medium(profile, b, rng)
	}
	return best.action
}

// statusOpener finds a sleep move, else a paralysis move, the foe is not
// immune to.
func (s *Selector) statusOpener(b *board) (option, bool) {
	for _, want := range []game.StatusCondition{game.StatusSleep, game.StatusParalysis} {
		for _, o := range b.moves {
			if !o.move.IsStatus() {
				continue
			}
			st, ok := o.move.InflictedStatus()
			if !ok || st != want || s.effectiveness(b, o.move) == 0 {
				continue
			}
			return o, true
		}
	}
	return option{}, false
}

// safestSwitch returns the reserve that takes the least estimated damage
// from the current foe.
func (s *Selector) safestSwitch(b *board) (int, bool) {
	best, bestThreat := -1, math.MaxInt
	for _, slot := range b.switches {
		r := s.member(b, slot)
		t := s.threatFrom(b.foe, &r)
		if t >= r.HP {
			continue
		}
		if t < bestThreat {
			best, bestThreat = slot, t
		}
	}
	return best, best >= 0
}

func accuracy(mv catalog.Move) float64 {
	if mv.NeverMisses() {
		return 1
	}
	return float64(mv.Accuracy) / 100
}
