package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/ericogr/pokemon-arena/internal/game"
)

func mustDefault(t *testing.T) *Catalog {
	t.Helper()
	c, err := Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	return c
}

func TestDefaultCatalogLoads(t *testing.T) {
	c := mustDefault(t)
	if len(c.Profiles()) != 3 {
		t.Fatalf("expected 3 npc profiles, got %d", len(c.Profiles()))
	}
	for _, id := range []string{"gym_leader_easy", "gym_leader_medium", "gym_leader_hard"} {
		if _, ok := c.Profile(id); !ok {
			t.Fatalf("missing profile %s", id)
		}
	}
	if len(c.PlayerTeams()) != 3 {
		t.Fatalf("expected 3 player teams, got %d", len(c.PlayerTeams()))
	}
	for _, tm := range c.Teams() {
		if tm.AverageLevel() != 60 {
			t.Fatalf("team %s average level %d", tm.ID, tm.AverageLevel())
		}
	}
}

func TestEffectiveness(t *testing.T) {
	c := mustDefault(t)
	cases := []struct {
		atk  string
		def  []string
		want float64
	}{
		{"water", []string{"fire"}, 2},
		{"electric", []string{"ground"}, 0},
		{"electric", []string{"water", "flying"}, 4},
		{"grass", []string{"rock", "ground"}, 4},
		{"normal", []string{"ghost", "poison"}, 0},
		{"ghost", []string{"psychic"}, 0},
		{"fire", []string{"water", "dragon"}, 0.25},
		{"psychic", []string{"normal"}, 1},
		{"", []string{"ghost"}, 1},
	}
	for _, tc := range cases {
		if got := c.Effectiveness(tc.atk, tc.def); got != tc.want {
			t.Errorf("%s vs %v = %v, want %v", tc.atk, tc.def, got, tc.want)
		}
	}
}

func TestBuildPokemonStats(t *testing.T) {
	c := mustDefault(t)
	p, err := c.BuildPokemon(TeamMember{Species: "Pikachu", Level: 50, Moves: []string{"thunderbolt", "quick-attack"}})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	// hp: (35+15)*2*50/100 + 50 + 10 = 110
	if p.MaxHP != 110 || p.HP != 110 {
		t.Fatalf("hp = %d/%d, want 110", p.HP, p.MaxHP)
	}
	// speed: (90+15)*2*50/100 + 5 = 110
	if p.Stats.Speed != 110 {
		t.Fatalf("speed = %d, want 110", p.Stats.Speed)
	}
	if p.Species != "pikachu" || p.BaseSpeed != 90 {
		t.Fatalf("unexpected species data %+v", p)
	}
	if len(p.Moves) != 2 || p.Moves[0].PP != 15 || p.Moves[1].MaxPP != 30 {
		t.Fatalf("unexpected moves %+v", p.Moves)
	}
	if p.Volatile.ChargingMove != game.NoChargingMove {
		t.Fatalf("charging move not cleared")
	}
}

func TestBuildPokemonValidation(t *testing.T) {
	c := mustDefault(t)
	cases := []struct {
		name string
		m    TeamMember
	}{
		{"unknown species", TeamMember{Species: "missingno", Level: 10, Moves: []string{"tackle"}}},
		{"level zero", TeamMember{Species: "pikachu", Level: 0, Moves: []string{"tackle"}}},
		{"level too high", TeamMember{Species: "pikachu", Level: 101, Moves: []string{"tackle"}}},
		{"no moves", TeamMember{Species: "pikachu", Level: 10}},
		{"five moves", TeamMember{Species: "pikachu", Level: 10, Moves: []string{"tackle", "swift", "thunder", "thunderbolt", "agility"}}},
		{"unknown move", TeamMember{Species: "pikachu", Level: 10, Moves: []string{"splash"}}},
		{"duplicate move", TeamMember{Species: "pikachu", Level: 10, Moves: []string{"tackle", "Tackle"}}},
		{"struggle not learnable", TeamMember{Species: "pikachu", Level: 10, Moves: []string{"struggle"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.BuildPokemon(tc.m)
			if !errors.Is(err, game.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestBuildTeamSize(t *testing.T) {
	c := mustDefault(t)
	m := TeamMember{Species: "snorlax", Level: 30, Moves: []string{"body-slam"}}
	if _, err := c.BuildTeam(nil); !errors.Is(err, game.ErrValidation) {
		t.Fatalf("empty team: %v", err)
	}
	seven := []TeamMember{m, m, m, m, m, m, m}
	if _, err := c.BuildTeam(seven); !errors.Is(err, game.ErrValidation) {
		t.Fatalf("seven members: %v", err)
	}
	tm, err := c.BuildTeam([]TeamMember{m, m})
	if err != nil {
		t.Fatalf("two members: %v", err)
	}
	if tm.Active != 0 || len(tm.Members) != 2 {
		t.Fatalf("unexpected team %+v", tm)
	}
}

func TestParseRejectsBadDocuments(t *testing.T) {
	base := `{"type_chart":{"normal":{}},"species":[{"name":"a","types":["normal"],"hp":1,"attack":1,"defense":1,"special":1,"speed":1}],"moves":[{"name":"tackle","type":"normal","power":35,"accuracy":95,"pp":35}]%s}`
	cases := map[string]string{
		"duplicate species": strings.Replace(base, `"species":[`, `"species":[{"name":"A","types":["normal"],"hp":1,"attack":1,"defense":1,"special":1,"speed":1},`, 1),
		"unknown team ref":  strings.Replace(base, "%s", `,"npc_profiles":[{"id":"x","difficulty":"easy","teams":["nope"]}]`, 1),
		"bad difficulty":    strings.Replace(base, "%s", `,"teams":[{"id":"t","members":[{"species":"a","level":5,"moves":["tackle"]}]}],"npc_profiles":[{"id":"x","difficulty":"insane","teams":["t"]}]`, 1),
		"bad team member":   strings.Replace(base, "%s", `,"teams":[{"id":"t","members":[{"species":"a","level":500,"moves":["tackle"]}]}]`, 1),
		"not json":          "{",
	}
	for name, doc := range cases {
		doc = strings.Replace(doc, "%s", "", 1)
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
	ok := strings.Replace(base, "%s", "", 1)
	if _, err := Parse([]byte(ok)); err != nil {
		t.Fatalf("minimal document: %v", err)
	}
}

func TestMoveClassification(t *testing.T) {
	c := mustDefault(t)
	tw, _ := c.Move("thunder-wave")
	if !tw.IsStatus() {
		t.Fatalf("thunder-wave should be a status move")
	}
	if st, ok := tw.InflictedStatus(); !ok || st != game.StatusParalysis {
		t.Fatalf("thunder-wave status = %v %v", st, ok)
	}
	st, _ := c.Move("seismic-toss")
	if st.IsStatus() {
		t.Fatalf("fixed damage move is not a status move")
	}
	surf, _ := c.Move("surf")
	if !surf.IsSpecial() {
		t.Fatalf("water moves are special")
	}
	if s, ok := c.Move("Struggle"); !ok || s.Power != 50 {
		t.Fatalf("struggle lookup = %+v %v", s, ok)
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("body-slam"); got != "Body Slam" {
		t.Fatalf("got %q", got)
	}
	if got := DisplayName("pikachu"); got != "Pikachu" {
		t.Fatalf("got %q", got)
	}
}
