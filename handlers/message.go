package handlers

import (
	"errors"
	"net/http"

	"craftlink/models"
	"craftlink/services/messaging"
	"craftlink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MessageHandler serves the direct-messaging endpoints.
type MessageHandler struct {
	Messaging messaging.MessagingService
}

// NewMessageHandler constructs a MessageHandler.
func NewMessageHandler(svc messaging.MessagingService) *MessageHandler {
	return &MessageHandler{Messaging: svc}
}

// SendMessageHandler handles POST /api/messages/:recipientID.
func (h *MessageHandler) SendMessageHandler(c *gin.Context) {
	var input struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	msg, err := h.Messaging.Send(currentUserID(c), c.Param("recipientID"), input.Content)
	if err != nil {
		if errors.Is(err, messaging.ErrEmptyMessage) {
			utils.JSONError(c, http.StatusBadRequest, "failed to send message", err.Error())
			return
		}
		utils.GetLogger().Error("failed to send message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// ListConversationsHandler handles GET /api/messages.
func (h *MessageHandler) ListConversationsHandler(c *gin.Context) {
	convos, err := h.Messaging.Conversations(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversations": convos})
}

// ConversationHistoryHandler handles GET /api/messages/:recipientID.
func (h *MessageHandler) ConversationHistoryHandler(c *gin.Context) {
	convo, err := h.Messaging.History(currentUserID(c), c.Param("recipientID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if convo == nil {
		c.JSON(http.StatusOK, gin.H{"messages": []models.Message{}})
		return
	}
	c.JSON(http.StatusOK, convo)
}
