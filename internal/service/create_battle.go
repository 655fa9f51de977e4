package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/ericogr/pokemon-arena/internal/catalog"
	"github.com/ericogr/pokemon-arena/internal/constants"
	"github.com/ericogr/pokemon-arena/internal/game"
	"github.com/ericogr/pokemon-arena/internal/logging"
)

const maxPlayerNameLen = 32

// CreateRequest describes a new battle. Exactly one of TeamID and Members
// selects the player's team. Seed 0 picks a random seed.
type CreateRequest struct {
	PlayerID   string               `json:"player_id"`
	PlayerName string               `json:"player_name"`
	TeamID     string               `json:"team_id,omitempty"`
	Members    []catalog.TeamMember `json:"members,omitempty"`
	OpponentID string               `json:"opponent_id"`
	Seed       int64                `json:"seed,omitempty"`
}

func (r *CreateRequest) normalize() error {
	r.PlayerID = strings.TrimSpace(r.PlayerID)
	r.PlayerName = strings.TrimSpace(r.PlayerName)
	r.TeamID = strings.TrimSpace(r.TeamID)
	r.OpponentID = strings.TrimSpace(r.OpponentID)
	if r.PlayerID == "" {
		return game.Validation("player_id is required")
	}
	if r.PlayerName == "" {
		r.PlayerName = r.PlayerID
	}
	if len(r.PlayerName) > maxPlayerNameLen {
		return game.Validation("player_name exceeds %d characters", maxPlayerNameLen)
	}
	if (r.TeamID == "") == (len(r.Members) == 0) {
		return game.Validation("provide either team_id or members")
	}
	if r.OpponentID == "" {
		return game.Validation("opponent_id is required")
	}
	return nil
}

// Create validates the request, builds both teams and persists the new
// battle at version 0.
func (m *Manager) Create(ctx context.Context, req CreateRequest) (*game.BattleSession, error) {
	if err := req.normalize(); err != nil {
		return nil, err
	}
	profile, ok := m.cat.Profile(req.OpponentID)
	if !ok {
		return nil, game.Validation("unknown opponent %q", req.OpponentID)
	}

	members := req.Members
	if req.TeamID != "" {
		pt, ok := m.cat.Team(req.TeamID)
		if !ok {
			return nil, game.Validation("unknown team %q", req.TeamID)
		}
		members = pt.Members
	}
	player, err := m.cat.BuildTeam(members)
	if err != nil {
		return nil, err
	}

	if len(profile.Teams) == 0 {
		return nil, fmt.Errorf("opponent %s has no teams", profile.ID)
	}
	seed := req.Seed
	if seed == 0 {
		seed = m.seed()
	}
	npcTeamID := profile.Teams[rand.New(rand.NewPCG(uint64(seed), 0)).IntN(len(profile.Teams))]
	pt, ok := m.cat.Team(npcTeamID)
	if !ok {
		return nil, fmt.Errorf("opponent %s references unknown team %s", profile.ID, npcTeamID)
	}
	npc, err := m.cat.BuildTeam(pt.Members)
	if err != nil {
		return nil, fmt.Errorf("opponent %s team: %w", profile.ID, err)
	}

	now := m.now().UTC()
	s := &game.BattleSession{
		ID:           m.newID(),
		PlayerID:     req.PlayerID,
		PlayerName:   req.PlayerName,
		NPCProfileID: profile.ID,
		NPCName:      profile.Name,
		Teams:        [2]game.Team{player, npc},
		TurnNumber:   1,
		Phase:        game.PhaseWaitingForPlayerAction,
		Seed:         seed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for side := range s.Teams {
		s.Teams[side].Members[s.Teams[side].Active].Revealed = true
	}
	lead := s.Team(game.SidePlayer).ActivePokemon()
	foe := s.Team(game.SideNPC).ActivePokemon()
	s.AppendEvents(game.Event{
		Kind:    game.EventBattleStarted,
		Side:    game.SidePlayer,
		Species: lead.Species,
		HP:      lead.HP,
		Message: fmt.Sprintf("%s challenges %s! %s sends out %s. %s sends out %s.",
			s.PlayerName, s.NPCName,
			s.PlayerName, catalog.DisplayName(lead.DisplayName()),
			s.NPCName, catalog.DisplayName(foe.DisplayName())),
	})
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("new battle: %w", err)
	}

	if err := m.store.Create(ctx, s); err != nil {
		logging.Error("failed to create battle", err, logging.Fields{constants.LogFieldPlayerID: s.PlayerID})
		return nil, err
	}
	logging.Info("battle created", logging.Fields{
		constants.LogFieldBattleID: s.ID,
		constants.LogFieldPlayerID: s.PlayerID,
		constants.LogFieldProfile:  profile.ID,
	})
	return s, nil
}
