package handlers

import (
	"net/http"

	"docportal/services/availability"
	"docportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the appointment-option endpoints.
type AvailabilityHandler struct {
	Service availability.Service
}

// NewAvailabilityHandler creates an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetAppointmentOptions handles GET /appointmentOptions?date= using the
// client-side join strategy.
func (h *AvailabilityHandler) GetAppointmentOptions(c *gin.Context) {
	logger := utils.GetLogger()
	date := c.Query("date")

	options, err := h.Service.Resolve(date)
	if err != nil {
		logger.Error("failed to resolve availability", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch appointment options", err.Error())
		return
	}
	c.JSON(http.StatusOK, options)
}

// GetAppointmentOptionsV2 handles GET /v2/appointmentOptions?date= using the
// store-side aggregation strategy.
func (h *AvailabilityHandler) GetAppointmentOptionsV2(c *gin.Context) {
	logger := utils.GetLogger()
	date := c.Query("date")

	options, err := h.Service.ResolveAggregated(date)
	if err != nil {
		logger.Error("failed to resolve availability (aggregated)", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch appointment options", err.Error())
		return
	}
	c.JSON(http.StatusOK, options)
}

// GetSpecialties handles GET /appointmentSpecialty.
func (h *AvailabilityHandler) GetSpecialties(c *gin.Context) {
	logger := utils.GetLogger()

	names, err := h.Service.Specialties()
	if err != nil {
		logger.Error("failed to fetch specialties", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch specialties", err.Error())
		return
	}
	c.JSON(http.StatusOK, names)
}
