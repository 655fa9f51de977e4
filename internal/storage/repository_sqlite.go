package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ericogr/pokemon-arena/internal/game"
)

// SessionRecord is the persisted row of a battle. The full session is kept
// as a JSON snapshot; the scalar columns mirror it for querying.
type SessionRecord struct {
	ID           string              `gorm:"primaryKey;size:36"`
	PlayerID     string              `gorm:"index"`
	NPCProfileID string              `gorm:"index"`
	Phase        game.Phase          `gorm:"index"`
	Outcome      game.Outcome
	TurnNumber   int
	Version      int64
	State        *game.BattleSession `gorm:"serializer:json"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (SessionRecord) TableName() string { return "battle_sessions" }

func recordOf(s *game.BattleSession) *SessionRecord {
	return &SessionRecord{
		ID:           s.ID,
		PlayerID:     s.PlayerID,
		NPCProfileID: s.NPCProfileID,
		Phase:        s.Phase,
		Outcome:      s.Outcome,
		TurnNumber:   s.TurnNumber,
		Version:      s.Version,
		State:        s,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (rec *SessionRecord) summary() game.BattleSummary {
	return game.BattleSummary{
		BattleID:     rec.ID,
		NPCProfileID: rec.NPCProfileID,
		Phase:        rec.Phase,
		Outcome:      rec.Outcome,
		TurnNumber:   rec.TurnNumber,
		Version:      rec.Version,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

type sqliteStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSQLiteStore returns a Store backed by a migrated gorm database.
func NewSQLiteStore(db *gorm.DB) Store {
	return &sqliteStore{db: db, now: time.Now}
}

func (r *sqliteStore) Create(ctx context.Context, s *game.BattleSession) error {
	now := r.now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
	return r.db.WithContext(ctx).Create(recordOf(s)).Error
}

func (r *sqliteStore) Load(ctx context.Context, id string) (*game.BattleSession, int64, error) {
	var rec SessionRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, game.NotFound(id)
		}
		return nil, 0, err
	}
	if rec.State == nil {
		return nil, 0, game.NotFound(id)
	}
	rec.State.Version = rec.Version
	return rec.State, rec.Version, nil
}

func (r *sqliteStore) Save(ctx context.Context, s *game.BattleSession, expectedVersion int64) (int64, error) {
	next := s.Clone()
	next.Version = expectedVersion + 1
	next.UpdatedAt = r.now().UTC()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var prev SessionRecord
		if err := tx.Select("id", "phase", "version").Where("id = ?", s.ID).First(&prev).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return game.NotFound(s.ID)
			}
			return err
		}
		if prev.Version != expectedVersion {
			return game.Conflict(s.ID, expectedVersion)
		}

		rec := recordOf(next)
		res := tx.Model(&SessionRecord{}).
			Where("id = ? AND version = ?", s.ID, expectedVersion).
			Select("phase", "outcome", "turn_number", "version", "state", "updated_at").
			Updates(rec)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return game.Conflict(s.ID, expectedVersion)
		}

		if endsBattle(prev.Phase, next) {
			return upsertTrainer(tx, next)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.Version = next.Version
	s.UpdatedAt = next.UpdatedAt
	return next.Version, nil
}

// upsertTrainer adds the battle result to the trainer row in one statement.
func upsertTrainer(tx *gorm.DB, s *game.BattleSession) error {
	res := resultOf(s)
	t := game.Trainer{PlayerID: s.PlayerID, PlayerName: s.PlayerName}
	res.apply(&t)
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "player_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"player_name":    s.PlayerName,
			"battles_played": gorm.Expr("battles_played + ?", 1),
			"wins":           gorm.Expr("wins + ?", res.wins),
			"losses":         gorm.Expr("losses + ?", res.losses),
			"forfeits":       gorm.Expr("forfeits + ?", res.forfeits),
			"updated_at":     time.Now().UTC(),
		}),
	}).Create(&t).Error
}

func (r *sqliteStore) TrainerStats(ctx context.Context, playerID string) (*game.Trainer, error) {
	var t game.Trainer
	if err := r.db.WithContext(ctx).Where("player_id = ?", playerID).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &game.Trainer{PlayerID: playerID}, nil
		}
		return nil, err
	}
	return &t, nil
}

// TopTrainers returns the top trainers ordered by wins, then battles played.
func (r *sqliteStore) TopTrainers(ctx context.Context, limit int) ([]game.Trainer, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}
	var out []game.Trainer
	if err := r.db.WithContext(ctx).Model(&game.Trainer{}).
		Order("wins DESC").
		Order("battles_played DESC").
		Order("player_id").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *sqliteStore) PlayerBattles(ctx context.Context, playerID string, limit int) ([]game.BattleSummary, error) {
	if limit <= 0 {
		limit = DefaultHistorySize
	}
	var recs []SessionRecord
	err := r.db.WithContext(ctx).
		Select("id", "npc_profile_id", "phase", "outcome", "turn_number", "version", "created_at", "updated_at").
		Where("player_id = ?", playerID).
		Order("updated_at DESC").Order("id").
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	out := make([]game.BattleSummary, 0, len(recs))
	for i := range recs {
		out = append(out, recs[i].summary())
	}
	return out, nil
}
