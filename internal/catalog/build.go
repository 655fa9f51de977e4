package catalog

import (
	"github.com/ericogr/pokemon-arena/internal/game"
)

const (
	MinLevel = 1
	MaxLevel = 100

	// maxDV is the individual value used for every stat.
	maxDV = 15
)

func calcHP(base, level int) int {
	return (base+maxDV)*2*level/100 + level + 10
}

func calcStat(base, level int) int {
	return (base+maxDV)*2*level/100 + 5
}

// BuildPokemon turns a team member description into a full-health battle
// pokémon. Invalid input yields a ValidationError.
func (c *Catalog) BuildPokemon(m TeamMember) (game.Pokemon, error) {
	sp, ok := c.Species(m.Species)
	if !ok {
		return game.Pokemon{}, game.Validation("unknown species '%s'", m.Species)
	}
	if m.Level < MinLevel || m.Level > MaxLevel {
		return game.Pokemon{}, game.Validation("%s: level %d outside [%d,%d]", sp.Name, m.Level, MinLevel, MaxLevel)
	}
	if len(m.Moves) == 0 || len(m.Moves) > game.MaxMoves {
		return game.Pokemon{}, game.Validation("%s: must know between 1 and %d moves", sp.Name, game.MaxMoves)
	}

	seen := make(map[string]bool, len(m.Moves))
	slots := make([]game.MoveSlot, 0, len(m.Moves))
	for _, name := range m.Moves {
		mv, ok := c.moves[key(name)]
		if !ok {
			return game.Pokemon{}, game.Validation("%s: unknown move '%s'", sp.Name, name)
		}
		if seen[mv.Name] {
			return game.Pokemon{}, game.Validation("%s: duplicate move '%s'", sp.Name, mv.Name)
		}
		seen[mv.Name] = true
		slots = append(slots, game.MoveSlot{Move: mv.Name, PP: mv.PP, MaxPP: mv.PP})
	}

	hp := calcHP(sp.HP, m.Level)
	return game.Pokemon{
		Species:   sp.Name,
		Nickname:  m.Nickname,
		Level:     m.Level,
		HP:        hp,
		MaxHP:     hp,
		BaseSpeed: sp.Speed,
		Stats: game.Stats{
			Attack:  calcStat(sp.Attack, m.Level),
			Defense: calcStat(sp.Defense, m.Level),
			Special: calcStat(sp.Special, m.Level),
			Speed:   calcStat(sp.Speed, m.Level),
		},
		Types:    append([]string(nil), sp.Types...),
		Moves:    slots,
		Volatile: game.ClearVolatile(),
	}, nil
}

// BuildTeam builds every member and makes the first one active.
func (c *Catalog) BuildTeam(members []TeamMember) (game.Team, error) {
	if len(members) == 0 || len(members) > game.MaxTeamSize {
		return game.Team{}, game.Validation("team must have between 1 and %d members, got %d", game.MaxTeamSize, len(members))
	}
	t := game.Team{Members: make([]game.Pokemon, 0, len(members)), Active: 0}
	for _, m := range members {
		p, err := c.BuildPokemon(m)
		if err != nil {
			return game.Team{}, err
		}
		t.Members = append(t.Members, p)
	}
	return t, nil
}

// EstimateStats computes the stats a species has at level. Opponents use it
// to reason about a pokémon whose exact stats they cannot see.
func (c *Catalog) EstimateStats(species string, level int) (game.Stats, bool) {
	sp, ok := c.Species(species)
	if !ok {
		return game.Stats{}, false
	}
	return game.Stats{
		Attack:  calcStat(sp.Attack, level),
		Defense: calcStat(sp.Defense, level),
		Special: calcStat(sp.Special, level),
		Speed:   calcStat(sp.Speed, level),
	}, true
}
