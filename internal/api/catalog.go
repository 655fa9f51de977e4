package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/pokemon-arena/internal/constants"
	"github.com/ericogr/pokemon-arena/internal/logging"
)

const maxLeaderboardLimit = 100

// ListTeams returns the prefab teams a player can pick.
func (h *BattleHandler) ListTeams(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Teams())
}

// ListOpponents returns the NPC opponents.
func (h *BattleHandler) ListOpponents(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Opponents())
}

// ListLeaderboard returns the top trainers by wins (desc), limited to top 10 by default.
func (h *BattleHandler) ListLeaderboard(c *gin.Context) {
	limit := 10
	if s := c.Query(constants.QueryLimit); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			badRequest(c, constants.ErrInvalidLimit)
			return
		}
		limit = min(n, maxLeaderboardLimit)
	}
	trainers, err := h.svc.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		logging.Error(constants.ErrFailedFetchLeaderboard, err, logging.Fields{constants.LogFieldPath: c.FullPath()})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(trainers)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetTrainerStats returns the aggregate results of one player.
func (h *BattleHandler) GetTrainerStats(c *gin.Context) {
	pid := strings.TrimSpace(c.Param(constants.ParamPlayerID))
	t, err := h.svc.TrainerStats(c.Request.Context(), pid)
	if err != nil {
		writeError(c, err)
		return
	}
	out, err := MarshalIntoSnakeTimestamps(t)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchStats})
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListPlayerBattles returns a trainer's battle history, newest first.
func (h *BattleHandler) ListPlayerBattles(c *gin.Context) {
	limit := 0
	if s := c.Query(constants.QueryLimit); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			badRequest(c, constants.ErrInvalidLimit)
			return
		}
		limit = min(n, maxLeaderboardLimit)
	}
	pid := strings.TrimSpace(c.Param(constants.ParamPlayerID))
	battles, err := h.svc.PlayerBattles(c.Request.Context(), pid, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, battles)
}
