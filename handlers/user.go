package handlers

import (
	"errors"
	"net/http"

	"craftlink/services/user"
	"craftlink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves account endpoints.
type UserHandler struct {
	UserService user.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{UserService: svc}
}

// currentUserID reads the authenticated user id set by the auth middleware.
func currentUserID(c *gin.Context) string {
	id, _ := c.Get("userID")
	s, _ := id.(string)
	return s
}

// RegisterHandler handles POST /api/users/register.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var input user.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	usr, token, err := h.UserService.Register(input)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailTaken), errors.Is(err, user.ErrInvalidRole):
			utils.JSONError(c, http.StatusConflict, "registration failed", err.Error())
		default:
			logger.Error("registration failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "registration failed", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": usr, "token": token})
}

// AuthenticateHandler handles POST /api/users/login.
func (h *UserHandler) AuthenticateHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	usr, token, err := h.UserService.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
			return
		}
		utils.GetLogger().Error("authentication failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "authentication failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": usr, "token": token})
}

// GetUserByIDHandler handles GET /api/users/id/:id.
func (h *UserHandler) GetUserByIDHandler(c *gin.Context) {
	id := c.Param("id")
	usr, err := h.UserService.GetUserByID(id)
	if err != nil {
		utils.GetLogger().Error("User not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// GetUserByEmailHandler handles GET /api/users/email/:email.
func (h *UserHandler) GetUserByEmailHandler(c *gin.Context) {
	email := c.Param("email")
	usr, err := h.UserService.GetUserByEmail(email)
	if err != nil {
		utils.GetLogger().Error("User not found by email", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateProfileHandler handles PATCH /api/users/me.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	var upd user.ProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	usr, err := h.UserService.UpdateProfile(currentUserID(c), upd)
	if err != nil {
		utils.GetLogger().Error("profile update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// DeleteUserHandler handles DELETE /api/users/me.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	id := currentUserID(c)
	if err := h.UserService.DeleteUser(id); err != nil {
		utils.GetLogger().Error("Delete error", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// RevokeTokenHandler handles DELETE /api/users/revoke.
func (h *UserHandler) RevokeTokenHandler(c *gin.Context) {
	token, _ := c.Get("token")
	tokenStr, _ := token.(string)
	if err := h.UserService.RevokeToken(tokenStr); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token revoked"})
}
