package payment

import (
	"fmt"

	bookingRepo "docportal/database/repository/booking"
	paymentRepo "docportal/database/repository/payment"
	"docportal/models"
	"docportal/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// DefaultService is the production payment service.
type DefaultService struct {
	Payments paymentRepo.PaymentRepository
	Bookings bookingRepo.BookingRepository
}

// CreateIntent creates a Stripe payment intent for the given price (in the
// catalog's currency units) and returns its client secret.
func (s *DefaultService) CreateIntent(price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(int64(price * 100)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}

// Record inserts the payment record, then flags the referenced booking paid
// with the gateway transaction ID. The insert and the update are separate
// writes with no rollback: when the booking update fails after the payment
// record landed, the error is returned so the caller can reconcile.
func (s *DefaultService) Record(p models.Payment) (*models.Payment, error) {
	logger := utils.GetLogger()

	p.ID = uuid.New().String()

	if err := s.Payments.Create(&p); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	if err := s.Bookings.MarkPaid(p.BookingID, p.TransactionID); err != nil {
		logger.Error("payment recorded but booking update failed",
			zap.String("paymentID", p.ID),
			zap.String("bookingID", p.BookingID),
			zap.Error(err))
		return &p, fmt.Errorf("payment %s recorded but booking %s not updated: %w", p.ID, p.BookingID, err)
	}

	return &p, nil
}
