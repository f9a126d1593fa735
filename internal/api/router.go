package api

import (
	"github.com/gin-gonic/gin"

	"github.com/thelineup/draft-engine/internal/api/handlers"
	"github.com/thelineup/draft-engine/internal/models"
	"github.com/thelineup/draft-engine/internal/services"
)

// SetupRoutes configures all API routes on the given router group
func SetupRoutes(group *gin.RouterGroup, pool *models.PlayerPool, sessions *services.SessionManager) {
	draftHandler := handlers.NewDraftHandler(sessions)
	analysisHandler := handlers.NewAnalysisHandler(sessions)
	playerHandler := handlers.NewPlayerHandler(pool, sessions)

	// Draft session endpoints
	group.POST("/drafts", draftHandler.CreateDraft)
	group.GET("/drafts/:id", draftHandler.GetDraft)
	group.POST("/drafts/:id/picks", draftHandler.MakePick)
	group.GET("/drafts/:id/suggestions", draftHandler.GetSuggestions)

	// Analysis endpoints
	group.GET("/drafts/:id/analysis/categories", analysisHandler.GetCategories)
	group.GET("/drafts/:id/analysis/punt", analysisHandler.GetPuntStrategy)
	group.GET("/drafts/:id/analysis/risk", analysisHandler.GetRisk)
	group.GET("/drafts/:id/recap", analysisHandler.GetRecap)

	// Player pool endpoints
	group.GET("/players", playerHandler.ListPlayers)
	group.GET("/players/:id", playerHandler.GetPlayer)
}
