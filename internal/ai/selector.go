// Package ai picks the NPC's action. It only sees the NPC-side redacted
// view of the battle and always answers with a member of the legal set.
package ai

import (
	"github.com/ericogr/pokemon-arena/internal/catalog"
	"github.com/ericogr/pokemon-arena/internal/engine"
	"github.com/ericogr/pokemon-arena/internal/game"
	"github.com/ericogr/pokemon-arena/internal/mechanics"
)

// Selector implements the easy, medium and hard policies.
type Selector struct {
	cat *catalog.Catalog
}

var _ engine.Policy = (*Selector)(nil)

func NewSelector(cat *catalog.Catalog) *Selector {
	return &Selector{cat: cat}
}

// ChooseAction returns the NPC's action. A single legal action is returned
// as is; anything the policy proposes outside legal falls back to the
// first legal action.
func (s *Selector) ChooseAction(profile game.NPCProfile, view game.BattleView, legal game.ValidActionSet, rng mechanics.Rand) game.Action {
	switch len(legal.Actions) {
	case 0:
		return game.Action{}
	case 1:
		return legal.Actions[0]
	}

	b := s.newBoard(view, legal)
	var a game.Action
	switch {
	case legal.ReplacementRequired:
		a = s.replacement(profile, b)
	case profile.Difficulty == game.DifficultyHard:
		a = s.hard(profile, b, rng)
	case profile.Difficulty == game.DifficultyMedium:
		a = s.medium(profile, b, rng)
	default:
		a = s.easy(b)
	}
	if !legal.Contains(a) {
		return legal.Actions[0]
	}
	return a
}
