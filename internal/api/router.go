package api

import (
	"github.com/gin-gonic/gin"

	"github.com/ericogr/pokemon-arena/internal/constants"
)

// Register mounts every route under the API prefix.
func Register(router gin.IRouter, h *BattleHandler) {
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteHealth, Health)
		apiRoutes.GET(constants.RouteVersion, Version)

		apiRoutes.GET(constants.RouteTeams, h.ListTeams)
		apiRoutes.GET(constants.RouteOpponents, h.ListOpponents)
		apiRoutes.GET(constants.RouteLeaderboard, h.ListLeaderboard)
		apiRoutes.GET(constants.RouteTrainerStats, h.GetTrainerStats)
		apiRoutes.GET(constants.RouteTrainerBattles, h.ListPlayerBattles)

		apiRoutes.POST(constants.RouteBattles, h.CreateBattle)
		apiRoutes.GET(constants.RouteBattleByID, h.GetBattle)
		apiRoutes.POST(constants.RouteBattleAction, h.SubmitAction)
		apiRoutes.GET(constants.RouteBattleValidAction, h.ValidActions)
		apiRoutes.GET(constants.RouteBattleTeam, h.TeamInfo)
		apiRoutes.GET(constants.RouteBattleEvents, h.Events)
	}
}
