package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thelineup/draft-engine/internal/draft"
	"github.com/thelineup/draft-engine/internal/services"
	"github.com/thelineup/draft-engine/pkg/utils"
)

type DraftHandler struct {
	sessions *services.SessionManager
}

func NewDraftHandler(sessions *services.SessionManager) *DraftHandler {
	return &DraftHandler{sessions: sessions}
}

type createDraftRequest struct {
	NumTeams      int `json:"num_teams" binding:"required"`
	UserDraftSlot int `json:"draft_slot" binding:"required"`
	RosterSize    int `json:"roster_size" binding:"required"`
}

type pickRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
}

// CreateDraft starts a new draft session
func (h *DraftHandler) CreateDraft(c *gin.Context) {
	var req createDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	session, err := h.sessions.Create(draft.Config{
		NumTeams:      req.NumTeams,
		UserDraftSlot: req.UserDraftSlot,
		RosterSize:    req.RosterSize,
	})
	if err != nil {
		sendDraftError(c, err)
		return
	}
	c.JSON(http.StatusCreated, utils.Response{Success: true, Data: session.Snapshot()})
}

// GetDraft returns the current draft session state
func (h *DraftHandler) GetDraft(c *gin.Context) {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		sendDraftError(c, err)
		return
	}
	utils.SendSuccess(c, session.Snapshot())
}

// MakePick records the user's pick and advances AI opponents
func (h *DraftHandler) MakePick(c *gin.Context) {
	var req pickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	session, err := h.sessions.UserPick(c.Param("id"), req.PlayerID)
	if err != nil {
		sendDraftError(c, err)
		return
	}
	utils.SendSuccess(c, session.Snapshot())
}

// GetSuggestions returns ranked pick suggestions for the user's turn
func (h *DraftHandler) GetSuggestions(c *gin.Context) {
	suggestions, err := h.sessions.Suggestions(c.Param("id"))
	if err != nil {
		sendDraftError(c, err)
		return
	}
	utils.SendSuccess(c, gin.H{"suggestions": suggestions})
}

// sendDraftError maps domain errors onto HTTP status codes.
func sendDraftError(c *gin.Context, err error) {
	var invalidPick *draft.InvalidPickError
	var badConfig *draft.ConfigurationError

	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		utils.SendNotFound(c, err.Error())
	case errors.Is(err, services.ErrNotUserTurn),
		errors.Is(err, services.ErrDraftComplete),
		errors.Is(err, services.ErrDraftNotComplete):
		utils.SendConflict(c, err.Error())
	case errors.As(err, &invalidPick):
		utils.SendError(c, http.StatusConflict, utils.NewAppError(utils.ErrCodeInvalidPick, invalidPick.Reason, invalidPick.Error()))
	case errors.As(err, &badConfig):
		utils.SendValidationError(c, badConfig.Reason, badConfig.Error())
	default:
		utils.SendInternalError(c, err.Error())
	}
}
