package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/pokemon-arena/internal/constants"
	"github.com/ericogr/pokemon-arena/internal/game"
	"github.com/ericogr/pokemon-arena/internal/service"
)

// ActionRequest is the body of a submitted action. Index is required for
// move and switch.
type ActionRequest struct {
	PlayerID string `json:"player_id"`
	Type     string `json:"type"`
	Index    *int   `json:"index"`
}

func (r ActionRequest) action() (game.Action, bool) {
	kind, ok := game.ParseActionKind(strings.ToLower(strings.TrimSpace(r.Type)))
	if !ok {
		return game.Action{}, false
	}
	a := game.Action{Kind: kind}
	switch kind {
	case game.ActionMove, game.ActionSwitch:
		if r.Index == nil {
			return game.Action{}, false
		}
		a.Index = *r.Index
	}
	return a, true
}

func battleID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param(constants.ParamBattleID))
	if id == "" {
		badRequest(c, constants.ErrInvalidBattleID)
		return "", false
	}
	return id, true
}

func playerID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Query(constants.QueryPlayerID))
	if id == "" {
		badRequest(c, constants.ErrPlayerIDRequired)
		return "", false
	}
	return id, true
}

// CreateBattle starts a battle from a prefab or custom team.
func (h *BattleHandler) CreateBattle(c *gin.Context) {
	var req service.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	s, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	v, err := h.svc.View(c.Request.Context(), s.ID, s.PlayerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// GetBattle returns the player's view of a battle.
func (h *BattleHandler) GetBattle(c *gin.Context) {
	id, ok := battleID(c)
	if !ok {
		return
	}
	pid, ok := playerID(c)
	if !ok {
		return
	}
	v, err := h.svc.View(c.Request.Context(), id, pid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header(constants.CacheControlHeader, constants.CacheControlNoCache)
	c.JSON(http.StatusOK, v)
}

// SubmitAction applies one player action and returns the new view with
// the events it produced.
func (h *BattleHandler) SubmitAction(c *gin.Context) {
	id, ok := battleID(c)
	if !ok {
		return
	}
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if strings.TrimSpace(req.PlayerID) == "" {
		badRequest(c, constants.ErrPlayerIDRequired)
		return
	}
	a, ok := req.action()
	if !ok {
		badRequest(c, "type must be move, switch, forfeit, struggle or pass; move and switch need an index")
		return
	}
	res, err := h.svc.SubmitAction(c.Request.Context(), id, strings.TrimSpace(req.PlayerID), a)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ValidActions returns the player's legal actions.
func (h *BattleHandler) ValidActions(c *gin.Context) {
	id, ok := battleID(c)
	if !ok {
		return
	}
	pid, ok := playerID(c)
	if !ok {
		return
	}
	set, err := h.svc.ValidActions(c.Request.Context(), id, pid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, set)
}

// TeamInfo returns the player's own team in full.
func (h *BattleHandler) TeamInfo(c *gin.Context) {
	id, ok := battleID(c)
	if !ok {
		return
	}
	pid, ok := playerID(c)
	if !ok {
		return
	}
	team, err := h.svc.TeamInfo(c.Request.Context(), id, pid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// Events returns the battle log, optionally limited with ?last_turns=N.
func (h *BattleHandler) Events(c *gin.Context) {
	id, ok := battleID(c)
	if !ok {
		return
	}
	pid, ok := playerID(c)
	if !ok {
		return
	}
	last := 0
	if s := c.Query(constants.QueryLastTurns); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			badRequest(c, constants.ErrInvalidLastTurns)
			return
		}
		last = n
	}
	events, err := h.svc.Events(c.Request.Context(), id, pid, last)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"battle_id": id, "events": events})
}
