package models

import "time"

// Payment records a confirmed payment-gateway transaction against a booking.
// Inserting the payment and flagging the booking paid are two separate store
// writes; a failure between them leaves a payment without a paid booking, and
// that state is surfaced to the caller rather than rolled back.
type Payment struct {
	ID            string    `bson:"id" json:"id"`
	BookingID     string    `bson:"bookingId" json:"bookingId"`
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	Email         string    `bson:"email" json:"email"`
	Price         float64   `bson:"price" json:"price"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
