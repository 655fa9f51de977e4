package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ericogr/pokemon-arena/internal/game"
)

type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]*game.BattleSession
	trainers map[string]*game.Trainer
	now      func() time.Time
}

// NewMemoryStore returns a Store that keeps snapshots in process memory.
// It is meant for tests and single-process development runs.
func NewMemoryStore() Store {
	return &memoryStore{
		sessions: map[string]*game.BattleSession{},
		trainers: map[string]*game.Trainer{},
		now:      time.Now,
	}
}

func (m *memoryStore) Create(_ context.Context, s *game.BattleSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[s.ID]; ok {
		return game.Validation("battle %s already exists", s.ID)
	}
	now := m.now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
	m.sessions[s.ID] = s.Clone()
	return nil
}

func (m *memoryStore) Load(_ context.Context, id string) (*game.BattleSession, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, 0, game.NotFound(id)
	}
	return s.Clone(), s.Version, nil
}

func (m *memoryStore) Save(_ context.Context, s *game.BattleSession, expectedVersion int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev, ok := m.sessions[s.ID]
	if !ok {
		return 0, game.NotFound(s.ID)
	}
	if prev.Version != expectedVersion {
		return 0, game.Conflict(s.ID, expectedVersion)
	}
	next := s.Clone()
	next.Version = expectedVersion + 1
	next.UpdatedAt = m.now().UTC()
	if endsBattle(prev.Phase, next) {
		t, ok := m.trainers[next.PlayerID]
		if !ok {
			t = &game.Trainer{PlayerID: next.PlayerID}
			m.trainers[next.PlayerID] = t
		}
		t.PlayerName = next.PlayerName
		resultOf(next).apply(t)
	}
	m.sessions[s.ID] = next
	s.Version = next.Version
	s.UpdatedAt = next.UpdatedAt
	return next.Version, nil
}

func (m *memoryStore) TrainerStats(_ context.Context, playerID string) (*game.Trainer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.trainers[playerID]; ok {
		c := *t
		return &c, nil
	}
	return &game.Trainer{PlayerID: playerID}, nil
}

func (m *memoryStore) TopTrainers(_ context.Context, limit int) ([]game.Trainer, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}
	m.mu.Lock()
	out := make([]game.Trainer, 0, len(m.trainers))
	for _, t := range m.trainers {
		out = append(out, *t)
	}
	m.mu.Unlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		if out[i].BattlesPlayed != out[j].BattlesPlayed {
			return out[i].BattlesPlayed > out[j].BattlesPlayed
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryStore) PlayerBattles(_ context.Context, playerID string, limit int) ([]game.BattleSummary, error) {
	if limit <= 0 {
		limit = DefaultHistorySize
	}
	m.mu.Lock()
	var out []game.BattleSummary
	for _, s := range m.sessions {
		if s.PlayerID == playerID {
			out = append(out, recordOf(s).summary())
		}
	}
	m.mu.Unlock()
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].BattleID < out[j].BattleID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
