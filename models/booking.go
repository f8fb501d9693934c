package models

import "time"

// Booking represents a patient's reservation of one slot for one treatment on
// one date. At most one booking may exist per (appointmentDate, treatment,
// patientEmail); the bookings collection carries a unique index on that key.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	PatientName     string    `bson:"patientName,omitempty" json:"patientName,omitempty"`
	PatientEmail    string    `bson:"patientEmail" json:"patientEmail"`
	Treatment       string    `bson:"treatment" json:"treatment"`             // references AppointmentOption.Name
	AppointmentDate string    `bson:"appointmentDate" json:"appointmentDate"` // opaque date key, matched by equality
	Slot            string    `bson:"slot" json:"slot"`
	Price           float64   `bson:"price,omitempty" json:"price,omitempty"`
	Paid            bool      `bson:"paid" json:"paid"`
	TransactionID   string    `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	ReminderSent    bool      `bson:"reminderSent,omitempty" json:"reminderSent,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}
