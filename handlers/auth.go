package handlers

import (
	"errors"
	"net/http"

	userService "docportal/services/user"
	"docportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves token issuance.
type AuthHandler struct {
	Service userService.Service
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc userService.Service) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// GetToken handles GET /jwt?email=. Unknown emails get a 403 with an empty
// access token rather than an error payload.
func (h *AuthHandler) GetToken(c *gin.Context) {
	logger := utils.GetLogger()
	email := c.Query("email")

	token, err := h.Service.IssueToken(email)
	if err != nil {
		if errors.Is(err, userService.ErrUnknownUser) {
			c.JSON(http.StatusForbidden, gin.H{"accessToken": ""})
			return
		}
		logger.Error("token issuance failed", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}
