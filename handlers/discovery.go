package handlers

import (
	"errors"
	"net/http"

	"craftlink/services/discovery"
	"craftlink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DiscoveryHandler serves the swipe-deck endpoints.
type DiscoveryHandler struct {
	Discovery discovery.DiscoveryService
}

// NewDiscoveryHandler constructs a DiscoveryHandler.
func NewDiscoveryHandler(svc discovery.DiscoveryService) *DiscoveryHandler {
	return &DiscoveryHandler{Discovery: svc}
}

// StartSessionHandler handles POST /api/discovery/session.
func (h *DiscoveryHandler) StartSessionHandler(c *gin.Context) {
	var input struct {
		Specialties []string `json:"specialties"`
	}
	// Body is optional; an empty filter deals the full deck.
	_ = c.ShouldBindJSON(&input)

	session, deck, err := h.Discovery.StartSession(c.Request.Context(), currentUserID(c), input.Specialties)
	if err != nil {
		utils.GetLogger().Error("failed to start discovery session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session, "deck": deck})
}

// SwipeHandler handles POST /api/discovery/session/:sessionID/swipe.
func (h *DiscoveryHandler) SwipeHandler(c *gin.Context) {
	var input struct {
		Action string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Discovery.Swipe(c.Request.Context(), c.Param("sessionID"), input.Action)
	if err != nil {
		switch {
		case errors.Is(err, discovery.ErrUnknownAction):
			utils.JSONError(c, http.StatusBadRequest, "swipe failed", err.Error())
		case errors.Is(err, discovery.ErrSessionNotFound):
			utils.JSONError(c, http.StatusNotFound, "swipe failed", err.Error())
		case errors.Is(err, discovery.ErrDeckExhausted):
			utils.JSONError(c, http.StatusConflict, "swipe failed", err.Error())
		default:
			utils.GetLogger().Error("swipe failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}
