package handlers

import (
	"errors"
	"net/http"

	userRepo "docportal/database/repository/user"
	"docportal/models"
	userService "docportal/services/user"
	"docportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves the user endpoints.
type UserHandler struct {
	Service userService.Service
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService.Service) *UserHandler {
	return &UserHandler{Service: svc}
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	logger := utils.GetLogger()

	users, err := h.Service.List()
	if err != nil {
		logger.Error("failed to list users", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch users", err.Error())
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser handles POST /users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	logger := utils.GetLogger()

	var usr models.User
	if err := c.ShouldBindJSON(&usr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.Register(&usr)
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateUser) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("failed to create user", zap.String("email", usr.Email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create user", err.Error())
		return
	}
	c.JSON(http.StatusOK, created)
}

// CheckAdmin handles GET /users/admin/:email.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	logger := utils.GetLogger()
	email := c.Param("email")

	isAdmin, err := h.Service.IsAdmin(email)
	if err != nil {
		logger.Error("failed to check admin role", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to check role", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}

// GrantAdmin handles PUT /users/admin/:id.
func (h *UserHandler) GrantAdmin(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	if err := h.Service.GrantAdmin(id); err != nil {
		logger.Error("failed to grant admin role", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to grant admin role", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin role granted"})
}
