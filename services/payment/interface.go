package payment

import (
	"docportal/models"
)

// Service creates payment-gateway intents and reconciles confirmed payments
// against bookings.
type Service interface {
	// CreateIntent creates a payment intent for the given price and returns
	// the gateway client secret.
	CreateIntent(price float64) (string, error)
	// Record inserts the payment record and flags the referenced booking
	// paid. The two writes are not atomic; see DefaultService.Record.
	Record(p models.Payment) (*models.Payment, error)
}
