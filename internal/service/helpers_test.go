package service

import (
	"context"
	"testing"

	"github.com/ericogr/pokemon-arena/internal/ai"
	"github.com/ericogr/pokemon-arena/internal/catalog"
	"github.com/ericogr/pokemon-arena/internal/engine"
	"github.com/ericogr/pokemon-arena/internal/game"
	"github.com/ericogr/pokemon-arena/internal/mechanics"
	"github.com/ericogr/pokemon-arena/internal/storage"
)

// racingStore lets another writer bump the version right before the first
// `races` saves.
type racingStore struct {
	storage.Store
	races int
	saves int
}

func (r *racingStore) Save(ctx context.Context, s *game.BattleSession, expected int64) (int64, error) {
	r.saves++
	if r.races > 0 {
		r.races--
		other, v, err := r.Store.Load(ctx, s.ID)
		if err != nil {
			return 0, err
		}
		if _, err := r.Store.Save(ctx, other, v); err != nil {
			return 0, err
		}
	}
	return r.Store.Save(ctx, s, expected)
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return c
}

func newManager(t *testing.T, store storage.Store, retries int) *Manager {
	t.Helper()
	c := testCatalog(t)
	r := engine.NewResolver(c, mechanics.NewGen1(c), ai.NewSelector(c), engine.DefaultOptions())
	m := NewManager(store, c, r, retries)
	n := 0
	m.newID = func() string {
		n++
		return "battle-" + string(rune('0'+n))
	}
	m.seed = func() int64 { return 99 }
	return m
}

func createBattle(t *testing.T, m *Manager) *game.BattleSession {
	t.Helper()
	s, err := m.Create(context.Background(), CreateRequest{
		PlayerID:   "ash",
		PlayerName: "Ash",
		TeamID:     "venusaur_team",
		OpponentID: "gym_leader_easy",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return s
}
