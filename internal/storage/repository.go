package storage

import (
	"context"

	"github.com/ericogr/pokemon-arena/internal/game"
)

const (
	// DefaultLeaderboardSize is used when callers ask for a non-positive limit.
	DefaultLeaderboardSize = 10
	// DefaultHistorySize bounds PlayerBattles for a non-positive limit.
	DefaultHistorySize = 20
)

// Store persists battle session snapshots with optimistic concurrency.
// Every successful Save bumps the version by exactly one.
type Store interface {
	// Create inserts a new session at its current version.
	Create(ctx context.Context, s *game.BattleSession) error
	// Load returns a snapshot and its version, or a SessionNotFound error.
	Load(ctx context.Context, id string) (*game.BattleSession, int64, error)
	// Save writes s only if the stored version still equals expectedVersion
	// and returns the new version. A stale version yields a Conflict error.
	// The save that ends a battle also records the trainer's result.
	Save(ctx context.Context, s *game.BattleSession, expectedVersion int64) (int64, error)

	TrainerStats(ctx context.Context, playerID string) (*game.Trainer, error)
	TopTrainers(ctx context.Context, limit int) ([]game.Trainer, error)
	// PlayerBattles lists a player's battles, most recently updated first.
	PlayerBattles(ctx context.Context, playerID string, limit int) ([]game.BattleSummary, error)
}
