// Package service is the battle session lifecycle: it creates battles,
// runs submitted actions through the resolver and persists the result with
// optimistic concurrency.
package service

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/ericogr/pokemon-arena/internal/catalog"
	"github.com/ericogr/pokemon-arena/internal/engine"
	"github.com/ericogr/pokemon-arena/internal/game"
	"github.com/ericogr/pokemon-arena/internal/storage"
)

// DefaultMaxRetries is the number of reload-and-reapply rounds after a
// version conflict.
const DefaultMaxRetries = 3

// Resolver is the part of the turn resolver the manager needs.
type Resolver interface {
	Apply(s *game.BattleSession, action game.Action) (*game.BattleSession, []game.Event, error)
	ValidActions(s *game.BattleSession, side game.Side) game.ValidActionSet
	View(s *game.BattleSession, side game.Side) game.BattleView
}

var _ Resolver = (*engine.Resolver)(nil)

// Manager owns no battle state; every call reloads from the store.
type Manager struct {
	store      storage.Store
	cat        *catalog.Catalog
	resolver   Resolver
	maxRetries int

	newID func() string
	seed  func() int64
	now   func() time.Time
}

func NewManager(store storage.Store, cat *catalog.Catalog, resolver Resolver, maxRetries int) *Manager {
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}
	return &Manager{
		store:      store,
		cat:        cat,
		resolver:   resolver,
		maxRetries: maxRetries,
		newID:      uuid.NewString,
		seed:       rand.Int64,
		now:        time.Now,
	}
}

// load fetches a battle and checks that playerID owns it.
func (m *Manager) load(ctx context.Context, battleID, playerID string) (*game.BattleSession, int64, error) {
	s, v, err := m.store.Load(ctx, battleID)
	if err != nil {
		return nil, 0, err
	}
	if playerID != s.PlayerID {
		return nil, 0, &game.Error{Kind: game.KindValidation, SessionID: battleID, Reason: "player is not part of this battle"}
	}
	return s, v, nil
}
