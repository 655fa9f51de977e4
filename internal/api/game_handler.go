package api

import (
	"context"

	"github.com/ericogr/pokemon-arena/internal/game"
	"github.com/ericogr/pokemon-arena/internal/service"
)

// Battles is the service surface the handlers call.
type Battles interface {
	Create(ctx context.Context, req service.CreateRequest) (*game.BattleSession, error)
	SubmitAction(ctx context.Context, battleID, playerID string, action game.Action) (*service.SubmitResult, error)
	View(ctx context.Context, battleID, playerID string) (*game.BattleView, error)
	ValidActions(ctx context.Context, battleID, playerID string) (game.ValidActionSet, error)
	TeamInfo(ctx context.Context, battleID, playerID string) (*game.TeamView, error)
	Events(ctx context.Context, battleID, playerID string, lastTurns int) ([]game.Event, error)
	Teams() []service.TeamSummary
	Opponents() []game.NPCProfile
	Leaderboard(ctx context.Context, limit int) ([]game.Trainer, error)
	TrainerStats(ctx context.Context, playerID string) (*game.Trainer, error)
	PlayerBattles(ctx context.Context, playerID string, limit int) ([]game.BattleSummary, error)
}

var _ Battles = (*service.Manager)(nil)

type BattleHandler struct {
	svc Battles
}

func NewBattleHandler(svc Battles) *BattleHandler {
	return &BattleHandler{svc: svc}
}
