// Package catalog holds the immutable reference data of the arena: species,
// moves, the type chart, prefab teams and NPC opponent profiles.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ericogr/pokemon-arena/internal/game"
)

//go:embed data/gen1.json
var defaultData []byte

// Default returns the catalog compiled into the binary. It is parsed once.
var Default = sync.OnceValues(func() (*Catalog, error) {
	return Parse(defaultData)
})

// Species is the base data of one kind of pokémon.
type Species struct {
	Name    string   `json:"name"`
	Types   []string `json:"types"`
	HP      int      `json:"hp"`
	Attack  int      `json:"attack"`
	Defense int      `json:"defense"`
	Special int      `json:"special"`
	Speed   int      `json:"speed"`
}

// TeamMember describes a pokémon to build: a species at a level with a move list.
type TeamMember struct {
	Species  string   `json:"species"`
	Nickname string   `json:"nickname,omitempty"`
	Level    int      `json:"level"`
	Moves    []string `json:"moves"`
}

// PrefabTeam is a ready-made team a player can pick, also used for NPCs.
type PrefabTeam struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Members     []TeamMember `json:"members"`
}

// AverageLevel returns the mean level of the team, rounded down.
func (t PrefabTeam) AverageLevel() int {
	if len(t.Members) == 0 {
		return 0
	}
	sum := 0
	for _, m := range t.Members {
		sum += m.Level
	}
	return sum / len(t.Members)
}

type rawCatalog struct {
	TypeChart   map[string]map[string]float64 `json:"type_chart"`
	Species     []Species                     `json:"species"`
	Moves       []Move                        `json:"moves"`
	Teams       []PrefabTeam                  `json:"teams"`
	NPCProfiles []game.NPCProfile             `json:"npc_profiles"`
}

// Catalog is read-only after Parse returns; it is safe for concurrent use.
type Catalog struct {
	species      map[string]Species
	moves        map[string]Move
	chart        map[string]map[string]float64
	teams        map[string]PrefabTeam
	teamOrder    []string
	profiles     map[string]game.NPCProfile
	profileOrder []string
}

func key(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// Parse decodes and validates a catalog document.
func Parse(b []byte) (*Catalog, error) {
	var rc rawCatalog
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(rc.Species) == 0 {
		return nil, fmt.Errorf("catalog: species list is empty")
	}
	if len(rc.Moves) == 0 {
		return nil, fmt.Errorf("catalog: move list is empty")
	}

	c := &Catalog{
		species:  make(map[string]Species, len(rc.Species)),
		moves:    make(map[string]Move, len(rc.Moves)),
		chart:    make(map[string]map[string]float64, len(rc.TypeChart)),
		teams:    make(map[string]PrefabTeam, len(rc.Teams)),
		profiles: make(map[string]game.NPCProfile, len(rc.NPCProfiles)),
	}

	for atk, row := range rc.TypeChart {
		r := make(map[string]float64, len(row))
		for def, mult := range row {
			if mult < 0 {
				return nil, fmt.Errorf("catalog: negative multiplier %s vs %s", atk, def)
			}
			r[key(def)] = mult
		}
		c.chart[key(atk)] = r
	}
	knownType := func(t string) bool {
		if _, ok := c.chart[key(t)]; ok {
			return true
		}
		for _, row := range c.chart {
			if _, ok := row[key(t)]; ok {
				return true
			}
		}
		return false
	}

	for _, s := range rc.Species {
		k := key(s.Name)
		if k == "" {
			return nil, fmt.Errorf("catalog: species entry missing 'name'")
		}
		if _, dup := c.species[k]; dup {
			return nil, fmt.Errorf("catalog: duplicate species '%s'", s.Name)
		}
		if len(s.Types) == 0 || len(s.Types) > 2 {
			return nil, fmt.Errorf("catalog: species '%s' must have one or two types", s.Name)
		}
		for _, t := range s.Types {
			if !knownType(t) {
				return nil, fmt.Errorf("catalog: species '%s' has unknown type '%s'", s.Name, t)
			}
		}
		if s.HP <= 0 || s.Attack <= 0 || s.Defense <= 0 || s.Special <= 0 || s.Speed <= 0 {
			return nil, fmt.Errorf("catalog: species '%s' has non-positive base stats", s.Name)
		}
		s.Name = k
		c.species[k] = s
	}

	for _, m := range rc.Moves {
		k := key(m.Name)
		if k == "" {
			return nil, fmt.Errorf("catalog: move entry missing 'name'")
		}
		if _, dup := c.moves[k]; dup {
			return nil, fmt.Errorf("catalog: duplicate move '%s'", m.Name)
		}
		if !knownType(m.Type) {
			return nil, fmt.Errorf("catalog: move '%s' has unknown type '%s'", m.Name, m.Type)
		}
		if err := m.validate(); err != nil {
			return nil, fmt.Errorf("catalog: move '%s': %w", m.Name, err)
		}
		m.Name = k
		m.Type = key(m.Type)
		c.moves[k] = m
	}

	for _, t := range rc.Teams {
		k := key(t.ID)
		if k == "" {
			return nil, fmt.Errorf("catalog: team entry missing 'id'")
		}
		if _, dup := c.teams[k]; dup {
			return nil, fmt.Errorf("catalog: duplicate team '%s'", t.ID)
		}
		if _, err := c.BuildTeam(t.Members); err != nil {
			return nil, fmt.Errorf("catalog: team '%s': %w", t.ID, err)
		}
		t.ID = k
		c.teams[k] = t
		c.teamOrder = append(c.teamOrder, k)
	}

	for _, p := range rc.NPCProfiles {
		k := key(p.ID)
		if k == "" {
			return nil, fmt.Errorf("catalog: npc profile missing 'id'")
		}
		if _, dup := c.profiles[k]; dup {
			return nil, fmt.Errorf("catalog: duplicate npc profile '%s'", p.ID)
		}
		switch p.Difficulty {
		case game.DifficultyEasy, game.DifficultyMedium, game.DifficultyHard:
		default:
			return nil, fmt.Errorf("catalog: npc profile '%s' has unknown difficulty '%s'", p.ID, p.Difficulty)
		}
		if p.Aggression < 0 || p.Aggression > 1 || p.SwitchThreshold < 0 || p.SwitchThreshold > 1 {
			return nil, fmt.Errorf("catalog: npc profile '%s' has parameters outside [0,1]", p.ID)
		}
		if p.LookAhead < 0 {
			return nil, fmt.Errorf("catalog: npc profile '%s' has negative look_ahead", p.ID)
		}
		if len(p.Teams) == 0 {
			return nil, fmt.Errorf("catalog: npc profile '%s' has no teams", p.ID)
		}
		for i, tid := range p.Teams {
			if _, ok := c.teams[key(tid)]; !ok {
				return nil, fmt.Errorf("catalog: npc profile '%s' references unknown team '%s'", p.ID, tid)
			}
			p.Teams[i] = key(tid)
		}
		p.ID = k
		c.profiles[k] = p
		c.profileOrder = append(c.profileOrder, k)
	}

	return c, nil
}

// Species looks up a species by name.
func (c *Catalog) Species(name string) (Species, bool) {
	s, ok := c.species[key(name)]
	return s, ok
}

// Move looks up a move by name. The struggle fallback is always known.
func (c *Catalog) Move(name string) (Move, bool) {
	if key(name) == StruggleMove.Name {
		return StruggleMove, true
	}
	m, ok := c.moves[key(name)]
	return m, ok
}

// Effectiveness returns the combined multiplier of an attacking type against
// a defender's types. Unknown pairs are neutral; a typeless attack is always 1.
func (c *Catalog) Effectiveness(attackType string, defender []string) float64 {
	if attackType == "" {
		return 1
	}
	row := c.chart[key(attackType)]
	mult := 1.0
	for _, d := range defender {
		if v, ok := row[key(d)]; ok {
			mult *= v
		}
	}
	return mult
}

// Team looks up a prefab team by id.
func (c *Catalog) Team(id string) (PrefabTeam, bool) {
	t, ok := c.teams[key(id)]
	return t, ok
}

// Teams returns the prefab teams in document order.
func (c *Catalog) Teams() []PrefabTeam {
	out := make([]PrefabTeam, 0, len(c.teamOrder))
	for _, id := range c.teamOrder {
		out = append(out, c.teams[id])
	}
	return out
}

// PlayerTeams returns the prefab teams not reserved for an NPC profile.
func (c *Catalog) PlayerTeams() []PrefabTeam {
	npc := make(map[string]bool)
	for _, p := range c.profiles {
		for _, id := range p.Teams {
			npc[id] = true
		}
	}
	out := make([]PrefabTeam, 0, len(c.teamOrder))
	for _, id := range c.teamOrder {
		if !npc[id] {
			out = append(out, c.teams[id])
		}
	}
	return out
}

// Profile looks up an NPC profile by id.
func (c *Catalog) Profile(id string) (game.NPCProfile, bool) {
	p, ok := c.profiles[key(id)]
	return p, ok
}

// Profiles returns the NPC profiles in document order.
func (c *Catalog) Profiles() []game.NPCProfile {
	out := make([]game.NPCProfile, 0, len(c.profileOrder))
	for _, id := range c.profileOrder {
		out = append(out, c.profiles[id])
	}
	return out
}

// SpeciesNames returns all species names sorted.
func (c *Catalog) SpeciesNames() []string {
	out := make([]string, 0, len(c.species))
	for k := range c.species {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
