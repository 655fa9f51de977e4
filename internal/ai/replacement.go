package ai

import (
	"github.com/ericogr/pokemon-arena/internal/game"
)

// replacement picks the next pokémon after a faint. The easy tier sends the
// first reserve; the others weigh the type matchup against the foe, then HP.
func (s *Selector) replacement(profile game.NPCProfile, b *board) game.Action {
	if len(b.switches) == 0 {
		return b.fallback()
	}
	if profile.Difficulty == game.DifficultyEasy || b.foe == nil {
		return game.SwitchTo(b.switches[0])
	}
	best, bestScore := b.switches[0], -1.0
	for _, slot := range b.switches {
		r := s.member(b, slot)
		score := s.typeThreat(&r, b.foe) / max(0.25, s.typeThreat(b.foe, &r))
		score += float64(r.HP) / float64(r.MaxHP) / 10
		if score > bestScore {
			best, bestScore = slot, score
		}
	}
	return game.SwitchTo(best)
}
