package handlers

import (
	"errors"
	"net/http"

	connectionRepo "craftlink/database/repository/connection"
	"craftlink/models"
	"craftlink/services/connection"
	"craftlink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConnectionHandler serves the networking endpoints.
type ConnectionHandler struct {
	Connections connection.ConnectionService
}

// NewConnectionHandler constructs a ConnectionHandler.
func NewConnectionHandler(svc connection.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{Connections: svc}
}

// RequestConnectionHandler handles POST /api/connections/request/:targetID.
func (h *ConnectionHandler) RequestConnectionHandler(c *gin.Context) {
	var input struct {
		WorkHistory models.WorkHistory `json:"workHistory"`
	}
	// Body is optional; an empty work history is fine.
	_ = c.ShouldBindJSON(&input)

	conn, err := h.Connections.Request(currentUserID(c), c.Param("targetID"), input.WorkHistory)
	if err != nil {
		switch {
		case errors.Is(err, connection.ErrSelfConnection):
			utils.JSONError(c, http.StatusBadRequest, "connection failed", err.Error())
		case errors.Is(err, connectionRepo.ErrConnectionExists):
			utils.JSONError(c, http.StatusConflict, "connection failed", err.Error())
		default:
			utils.GetLogger().Error("connection request failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "connection failed", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, conn)
}

// AcceptConnectionHandler handles POST /api/connections/accept/:connectionID.
func (h *ConnectionHandler) AcceptConnectionHandler(c *gin.Context) {
	if err := h.Connections.Accept(currentUserID(c), c.Param("connectionID")); err != nil {
		if errors.Is(err, connectionRepo.ErrConnectionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("connection accept failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Connection accepted"})
}

// ListConnectionsHandler handles GET /api/connections?status=pending|accepted.
func (h *ConnectionHandler) ListConnectionsHandler(c *gin.Context) {
	conns, err := h.Connections.List(currentUserID(c), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"connections": conns})
}

// NetworkHandler handles GET /api/connections/network.
func (h *ConnectionHandler) NetworkHandler(c *gin.Context) {
	ids, err := h.Connections.Network(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"network": ids})
}
