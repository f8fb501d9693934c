package handlers

import (
	"net/http"

	"docportal/middleware"
	"docportal/models"
	"docportal/services/booking"
	"docportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking endpoints.
type BookingHandler struct {
	Service booking.AdmissionService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.AdmissionService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// ListBookings handles GET /bookings?email=. The query email must match the
// bearer token's claim.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	logger := utils.GetLogger()
	email := c.Query("email")

	tokenEmail, ok := middleware.TokenEmail(c)
	if !ok || tokenEmail != email {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
		return
	}

	bookings, err := h.Service.ListByEmail(email)
	if err != nil {
		logger.Error("failed to list bookings", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking handles GET /bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	b, err := h.Service.GetByID(id)
	if err != nil {
		logger.Error("booking not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// CreateBooking handles POST /bookings. A duplicate (date, treatment, email)
// key is a normal rejection with acknowledged=false, not an error status.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	logger := utils.GetLogger()

	var candidate models.Booking
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	admission, err := h.Service.Submit(candidate)
	if err != nil {
		logger.Error("booking submission failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to submit booking", err.Error())
		return
	}

	if !admission.Accepted {
		c.JSON(http.StatusOK, gin.H{"acknowledged": false, "message": admission.Reason})
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "booking": admission.Booking})
}
