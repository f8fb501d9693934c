package handlers

import (
	"net/http"

	"docportal/models"
	doctorService "docportal/services/doctor"
	"docportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler serves the admin-gated doctor roster endpoints.
type DoctorHandler struct {
	Service doctorService.Service
}

// NewDoctorHandler creates a DoctorHandler.
func NewDoctorHandler(svc doctorService.Service) *DoctorHandler {
	return &DoctorHandler{Service: svc}
}

// ListDoctors handles GET /doctors.
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	logger := utils.GetLogger()

	doctors, err := h.Service.List()
	if err != nil {
		logger.Error("failed to list doctors", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch doctors", err.Error())
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// CreateDoctor handles POST /doctors.
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	logger := utils.GetLogger()

	var doc models.Doctor
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.Register(&doc)
	if err != nil {
		logger.Error("failed to create doctor", zap.String("email", doc.Email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create doctor", err.Error())
		return
	}
	c.JSON(http.StatusOK, created)
}

// DeleteDoctor handles DELETE /doctors/:id.
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	if err := h.Service.Remove(id); err != nil {
		logger.Error("failed to delete doctor", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete doctor", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted"})
}
