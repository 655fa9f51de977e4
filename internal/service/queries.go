package service

import (
	"context"

	"github.com/ericogr/pokemon-arena/internal/catalog"
	"github.com/ericogr/pokemon-arena/internal/game"
)

// View returns the battle as the player sees it.
func (m *Manager) View(ctx context.Context, battleID, playerID string) (*game.BattleView, error) {
	s, _, err := m.load(ctx, battleID, playerID)
	if err != nil {
		return nil, err
	}
	v := m.resolver.View(s, game.SidePlayer)
	return &v, nil
}

// ValidActions returns the player's legal actions; empty once the battle ended.
func (m *Manager) ValidActions(ctx context.Context, battleID, playerID string) (game.ValidActionSet, error) {
	s, _, err := m.load(ctx, battleID, playerID)
	if err != nil {
		return game.ValidActionSet{}, err
	}
	return m.resolver.ValidActions(s, game.SidePlayer), nil
}

// TeamInfo returns the full detail of the player's own team.
func (m *Manager) TeamInfo(ctx context.Context, battleID, playerID string) (*game.TeamView, error) {
	v, err := m.View(ctx, battleID, playerID)
	if err != nil {
		return nil, err
	}
	return &v.Own, nil
}

// Events returns the battle log of the last lastTurns turns, or all of it
// when lastTurns is 0.
func (m *Manager) Events(ctx context.Context, battleID, playerID string, lastTurns int) ([]game.Event, error) {
	if lastTurns < 0 {
		return nil, game.Validation("last_turns must not be negative")
	}
	s, _, err := m.load(ctx, battleID, playerID)
	if err != nil {
		return nil, err
	}
	if lastTurns == 0 {
		return s.Events, nil
	}
	from := s.TurnNumber - lastTurns + 1
	out := make([]game.Event, 0, len(s.Events))
	for _, e := range s.Events {
		if e.Turn >= from {
			out = append(out, e)
		}
	}
	return out, nil
}

// TeamSummary is a prefab team as listed to players.
type TeamSummary struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	Size         int                  `json:"size"`
	AverageLevel int                  `json:"average_level"`
	Members      []catalog.TeamMember `json:"members"`
}

// Teams lists the prefab teams a player can pick.
func (m *Manager) Teams() []TeamSummary {
	teams := m.cat.PlayerTeams()
	out := make([]TeamSummary, 0, len(teams))
	for _, t := range teams {
		out = append(out, TeamSummary{
			ID:           t.ID,
			Name:         t.Name,
			Description:  t.Description,
			Size:         len(t.Members),
			AverageLevel: t.AverageLevel(),
			Members:      t.Members,
		})
	}
	return out
}

// Opponents lists the NPC profiles.
func (m *Manager) Opponents() []game.NPCProfile {
	return m.cat.Profiles()
}

func (m *Manager) Leaderboard(ctx context.Context, limit int) ([]game.Trainer, error) {
	return m.store.TopTrainers(ctx, limit)
}

// PlayerBattles lists the battles of one player, newest first.
func (m *Manager) PlayerBattles(ctx context.Context, playerID string, limit int) ([]game.BattleSummary, error) {
	if playerID == "" {
		return nil, game.Validation("player_id is required")
	}
	return m.store.PlayerBattles(ctx, playerID, limit)
}

func (m *Manager) TrainerStats(ctx context.Context, playerID string) (*game.Trainer, error) {
	if playerID == "" {
		return nil, game.Validation("player_id is required")
	}
	return m.store.TrainerStats(ctx, playerID)
}
