package handlers

import (
	"net/http"

	"docportal/models"
	paymentService "docportal/services/payment"
	"docportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves the payment endpoints.
type PaymentHandler struct {
	Service paymentService.Service
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(svc paymentService.Service) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// CreatePaymentIntent handles POST /create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Price float64 `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	secret, err := h.Service.CreateIntent(req.Price)
	if err != nil {
		logger.Error("failed to create payment intent", zap.Float64("price", req.Price), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create payment intent", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// RecordPayment handles POST /payments. When the payment record lands but the
// booking update fails, the partial state is reported back for reconciliation.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	logger := utils.GetLogger()

	var p models.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	recorded, err := h.Service.Record(p)
	if err != nil {
		logger.Error("payment reconciliation failed", zap.String("bookingID", p.BookingID), zap.Error(err))
		if recorded != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Payment recorded but booking not updated",
				"payment": recorded,
				"details": err.Error(),
			})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to record payment", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "payment": recorded})
}
