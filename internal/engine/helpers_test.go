package engine

import (
	"errors"
	"testing"

	"github.com/ericogr/pokemon-arena/internal/catalog"
	"github.com/ericogr/pokemon-arena/internal/game"
	"github.com/ericogr/pokemon-arena/internal/mechanics"
)

// firstLegal is an NPC policy that always takes the first legal action.
type firstLegal struct{}

func (firstLegal) ChooseAction(_ game.NPCProfile, _ game.BattleView, legal game.ValidActionSet, _ mechanics.Rand) game.Action {
	return legal.Actions[0]
}

// faultyEngine fails every call.
type faultyEngine struct{}

var errBroken = errors.New("broken team state")

func (faultyEngine) ResolveAction(p mechanics.TeamPair, _ game.Side, _ game.Action, _ mechanics.Rand) (mechanics.TeamPair, []game.Event, error) {
	return p, nil, errBroken
}

func (faultyEngine) ApplyEndOfTurn(p mechanics.TeamPair, _ mechanics.Rand) (mechanics.TeamPair, []game.Event, error) {
	return p, nil, errBroken
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return c
}

func prefab(t *testing.T, c *catalog.Catalog, id string) game.Team {
	t.Helper()
	pt, ok := c.Team(id)
	if !ok {
		t.Fatalf("unknown team %s", id)
	}
	tm, err := c.BuildTeam(pt.Members)
	if err != nil {
		t.Fatalf("build %s: %v", id, err)
	}
	return tm
}

func custom(t *testing.T, c *catalog.Catalog, members ...catalog.TeamMember) game.Team {
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

func newSession(player, npc game.Team) *game.BattleSession {
	s := &game.BattleSession{
		ID:           "battle-1",
		PlayerID:     "player-1",
		PlayerName:   "Red",
		NPCProfileID: "gym_leader_easy",
		NPCName:      "Gym Leader Brock",
		Teams:        [2]game.Team{player, npc},
		TurnNumber:   1,
		Phase:        game.PhaseWaitingForPlayerAction,
		Seed:         7,
	}
	s.Teams[0].Members[0].Revealed = true
	s.Teams[1].Members[0].Revealed = true
	s.AppendEvents(game.Event{Kind: game.EventBattleStarted, Message: "start"})
	return s
}

func newResolver(c *catalog.Catalog, opts Options) *Resolver {
	return NewResolver(c, mechanics.NewGen1(c), firstLegal{}, opts)
}

func count(events []game.Event, kind game.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func countSide(events []game.Event, kind game.EventKind, side game.Side) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind && e.Side == side {
			n++
		}
	}
	return n
}
