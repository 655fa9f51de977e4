package ai

import (
	"testing"

	"github.com/ericogr/pokemon-arena/internal/catalog"
	"github.com/ericogr/pokemon-arena/internal/engine"
	"github.com/ericogr/pokemon-arena/internal/game"
	"github.com/ericogr/pokemon-arena/internal/mechanics"
)

// fixedRand returns v clamped to [0, n).
type fixedRand int

func (f fixedRand) IntN(n int) int { return min(max(int(f), 0), n-1) }

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return c
}

func team(t *testing.T, c *catalog.Catalog, members ...catalog.TeamMember) game.Team {
	t.Helper()
	tm, err := c.BuildTeam(members)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return tm
}

func member(species string, moves ...string) catalog.TeamMember {
	return catalog.TeamMember{Species: species, Level: 60, Moves: moves}
}

func profile(t *testing.T, c *catalog.Catalog, id string) game.NPCProfile {
	t.Helper()
	p, ok := c.Profile(id)
	if !ok {
		t.Fatalf("unknown profile %s", id)
	}
	return p
}

func session(player, npc game.Team) *game.BattleSession {
	s := &game.BattleSession{
		ID:           "battle-ai",
		PlayerName:   "Red",
		NPCProfileID: "gym_leader_easy",
		Teams:        [2]game.Team{player, npc},
		TurnNumber:   1,
		Phase:        game.PhaseWaitingForPlayerAction,
		Seed:         3,
	}
	s.Teams[0].Members[0].Revealed = true
	s.Teams[1].Members[0].Revealed = true
	return s
}

func choose(c *catalog.Catalog, p game.NPCProfile, s *game.BattleSession, rng mechanics.Rand) game.Action {
	return NewSelector(c).ChooseAction(p, engine.ViewFor(s, game.SideNPC), engine.ValidActions(s, game.SideNPC), rng)
}

func TestSingleLegalActionIsReturned(t *testing.T) {
	c := testCatalog(t)
	legal := game.ValidActionSet{Actions: []game.Action{game.Pass()}, Forced: true}
	got := NewSelector(c).ChooseAction(profile(t, c, "gym_leader_hard"), game.BattleView{}, legal, fixedRand(0))
	if !got.Equal(game.Pass()) {
		t.Fatalf("got %s, want pass", got)
	}
}

func TestEasyPicksHighestPower(t *testing.T) {
	c := testCatalog(t)
	s := session(
		team(t, c, member("pikachu", "thunderbolt")),
		team(t, c, member("onix", "rock-slide", "earthquake", "wrap", "tackle"), member("golem", "earthquake")),
	)
	got := choose(c, profile(t, c, "gym_leader_easy"), s, fixedRand(0))
	if !got.Equal(game.UseMove(1)) {
		t.Fatalf("got %s, want move(1)", got)
	}
}

func TestEasyStrugglesWithoutPP(t *testing.T) {
	c := testCatalog(t)
	s := session(
		team(t, c, member("pikachu", "thunderbolt")),
		team(t, c, member("onix", "tackle")),
	)
	s.Teams[1].Members[0].Moves[0].PP = 0
	got := choose(c, profile(t, c, "gym_leader_easy"), s, fixedRand(0))
	if got.Kind != game.ActionStruggle {
		t.Fatalf("got %s, want struggle", got)
	}
}

func TestMediumPrefersSuperEffective(t *testing.T) {
	c := testCatalog(t)
	s := session(
		team(t, c, member("starmie", "surf")),
		team(t, c, member("raichu", "body-slam", "thunderbolt", "quick-attack")),
	)
	for _, v := range []int{0, 50, 1000} {
		got := choose(c, profile(t, c, "gym_leader_medium"), s, fixedRand(v))
		if !got.Equal(game.UseMove(1)) {
			t.Fatalf("rng %d: got %s, want move(1)", v, got)
		}
	}
}

func TestMediumPicksAmongNearBest(t *testing.T) {
	c := testCatalog(t)
	s := session(
		team(t, c, member("snorlax", "body-slam")),
		team(t, c, member("raichu", "surf", "ice-beam", "tackle")),
	)
	p := profile(t, c, "gym_leader_medium")
	if got := choose(c, p, s, fixedRand(0)); !got.Equal(game.UseMove(0)) {
		t.Fatalf("low roll: got %s, want move(0)", got)
	}
	if got := choose(c, p, s, fixedRand(1000)); !got.Equal(game.UseMove(1)) {
		t.Fatalf("high roll: got %s, want move(1)", got)
	}
}

func TestMediumRetreatsToResistantThreat(t *testing.T) {
	c := testCatalog(t)
	s := session(
		team(t, c, member("pikachu", "thunderbolt")),
		team(t, c, member("starmie", "surf"), member("golem", "earthquake")),
	)
	s.Teams[1].Members[0].HP = 5
	got := choose(c, profile(t, c, "gym_leader_medium"), s, fixedRand(0))
	if !got.Equal(game.SwitchTo(1)) {
		t.Fatalf("got %s, want switch(1)", got)
	}

	s.Teams[1].Members[0].HP = s.Teams[1].Members[0].MaxHP
	got = choose(c, profile(t, c, "gym_leader_medium"), s, fixedRand(0))
	if got.Kind != game.ActionMove {
		t.Fatalf("healthy active should attack, got %s", got)
	}
}

func TestHardOpensWithSleep(t *testing.T) {
	c := testCatalog(t)
	s := session(
		team(t, c, member("snorlax", "body-slam")),
		team(t, c, member("venusaur", "razor-leaf", "solar-beam", "sleep-powder", "stun-spore")),
	)
	got := choose(c, profile(t, c, "gym_leader_hard"), s, fixedRand(0))
	if !got.Equal(game.UseMove(2)) {
		t.Fatalf("got %s, want move(2)", got)
	}

	s.Teams[0].Members[0].Status = game.StatusParalysis
	got = choose(c, profile(t, c, "gym_leader_hard"), s, fixedRand(0))
	if got.Equal(game.UseMove(2)) || got.Equal(game.UseMove(3)) {
		t.Fatalf("statused foe should be attacked, got %s", got)
	}
}

func TestHardTakesKnockout(t *testing.T) {
	c := testCatalog(t)
	s := session(
		team(t, c, member("starmie", "surf")),
		team(t, c, member("jolteon", "thunder-wave", "thunderbolt")),
	)
	s.Teams[0].Members[0].HP = 10
	got := choose(c, profile(t, c, "gym_leader_hard"), s, fixedRand(0))
	if !got.Equal(game.UseMove(1)) {
		t.Fatalf("got %s, want move(1)", got)
	}
}

func TestHardRetreatsFromFasterThreat(t *testing.T) {
	c := testCatalog(t)
	s := session(
		team(t, c, member("starmie", "surf")),
		team(t, c, member("golem", "earthquake", "rock-slide"), member("exeggutor", "psychic")),
	)
	s.Teams[1].Members[0].HP = 10
	got := choose(c, profile(t, c, "gym_leader_hard"), s, fixedRand(0))
	if !got.Equal(game.SwitchTo(1)) {
		t.Fatalf("got %s, want switch(1)", got)
	}
}

func TestReplacementByDifficulty(t *testing.T) {
	c := testCatalog(t)
	s := session(
		team(t, c, member("pikachu", "thunderbolt")),
		team(t, c, member("onix", "tackle"), member("starmie", "surf"), member("golem", "earthquake")),
	)
	s.Teams[1].Members[0].HP = 0
	s.Teams[1].Active = game.NoActive

	if got := choose(c, profile(t, c, "gym_leader_easy"), s, fixedRand(0)); !got.Equal(game.SwitchTo(1)) {
		t.Fatalf("easy: got %s, want switch(1)", got)
	}
	if got := choose(c, profile(t, c, "gym_leader_medium"), s, fixedRand(0)); !got.Equal(game.SwitchTo(2)) {
		t.Fatalf("medium: got %s, want switch(2)", got)
	}
}

// Full battles against every profile: the resolver faults if the policy
// ever picks an action outside the legal set.
func TestChoicesAreAlwaysLegal(t *testing.T) {
	c := testCatalog(t)
	r := engine.NewResolver(c, mechanics.NewGen1(c), NewSelector(c), engine.DefaultOptions())
	for _, p := range c.Profiles() {
		npcTeam, _ := c.Team(p.Teams[0])
		for seed := int64(1); seed <= 5; seed++ {
			s := session(
				team(t, c, prefabMembers(c, "venusaur_team")...),
				team(t, c, npcTeam.Members...),
			)
			s.NPCProfileID = p.ID
			s.Seed = seed
			for i := 0; i < 500 && !s.Ended(); i++ {
				legal := r.ValidActions(s, game.SidePlayer)
				next, _, err := r.Apply(s, legal.WithoutForfeit()[0])
				if err != nil {
					t.Fatalf("%s seed %d turn %d: %v", p.ID, seed, s.TurnNumber, err)
				}
				s = next
			}
		}
	}
}

func prefabMembers(c *catalog.Catalog, id string) []catalog.TeamMember {
	pt, _ := c.Team(id)
	return pt.Members
}
