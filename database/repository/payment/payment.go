package paymentRepo

import (
	"docportal/models"
)

// PaymentRepository defines data access for payment records.
type PaymentRepository interface {
	// Create inserts a new payment record.
	Create(payment *models.Payment) error
	// GetByBookingID retrieves payments recorded against a booking.
	GetByBookingID(bookingID string) ([]models.Payment, error)
}
