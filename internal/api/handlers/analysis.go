package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/thelineup/draft-engine/internal/models"
	"github.com/thelineup/draft-engine/internal/services"
	"github.com/thelineup/draft-engine/pkg/utils"
)

type AnalysisHandler struct {
	sessions *services.SessionManager
}

func NewAnalysisHandler(sessions *services.SessionManager) *AnalysisHandler {
	return &AnalysisHandler{sessions: sessions}
}

// GetCategories returns the user's per-category standings
func (h *AnalysisHandler) GetCategories(c *gin.Context) {
	standings, err := h.sessions.Categories(c.Param("id"))
	if err != nil {
		sendDraftError(c, err)
		return
	}

	// Canonical category order for stable payloads.
	ordered := make([]interface{}, 0, len(models.Categories))
	for _, cat := range models.Categories {
		if standing, ok := standings[cat]; ok {
			ordered = append(ordered, standing)
		}
	}
	utils.SendSuccess(c, gin.H{"categories": ordered})
}

// GetPuntStrategy returns the punt-strategy detection report
func (h *AnalysisHandler) GetPuntStrategy(c *gin.Context) {
	report, err := h.sessions.Punt(c.Param("id"))
	if err != nil {
		sendDraftError(c, err)
		return
	}
	utils.SendSuccess(c, report)
}

// GetRisk returns the roster-construction risk report
func (h *AnalysisHandler) GetRisk(c *gin.Context) {
	report, err := h.sessions.Risk(c.Param("id"))
	if err != nil {
		sendDraftError(c, err)
		return
	}
	utils.SendSuccess(c, report)
}

// GetRecap returns the league-wide post-draft recap
func (h *AnalysisHandler) GetRecap(c *gin.Context) {
	recap, err := h.sessions.Recap(c.Param("id"))
	if err != nil {
		sendDraftError(c, err)
		return
	}
	utils.SendSuccess(c, recap)
}
