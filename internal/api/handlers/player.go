package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/thelineup/draft-engine/internal/models"
	"github.com/thelineup/draft-engine/internal/services"
	"github.com/thelineup/draft-engine/pkg/utils"
)

type PlayerHandler struct {
	pool     *models.PlayerPool
	sessions *services.SessionManager
}

func NewPlayerHandler(pool *models.PlayerPool, sessions *services.SessionManager) *PlayerHandler {
	return &PlayerHandler{pool: pool, sessions: sessions}
}

// ListPlayers returns the projection pool in composite-rating order.
// Optional query filters: position, limit, and draft_id to restrict the
// list to players still available in a live session.
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	position := strings.ToUpper(c.Query("position"))
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			utils.SendValidationError(c, "Invalid limit", limitStr)
			return
		}
		limit = parsed
	}

	all := h.pool.All()
	if draftID := c.Query("draft_id"); draftID != "" {
		available, err := h.sessions.Available(draftID)
		if err != nil {
			sendDraftError(c, err)
			return
		}
		all = available
	}

	players := make([]models.PlayerRecord, 0, len(all))
	for _, p := range all {
		if position != "" && !hasPosition(&p, position) {
			continue
		}
		players = append(players, p)
		if limit > 0 && len(players) >= limit {
			break
		}
	}

	utils.SendList(c, players, &utils.ListMeta{Total: len(players), Limit: limit})
}

// GetPlayer returns one player by ID
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	player := h.pool.Get(c.Param("id"))
	if player == nil {
		utils.SendNotFound(c, "Player not found")
		return
	}
	utils.SendSuccess(c, player)
}

func hasPosition(p *models.PlayerRecord, position string) bool {
	for _, token := range models.SplitPosition(p.Position) {
		if token == position {
			return true
		}
	}
	return false
}
