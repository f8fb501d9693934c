package booking

import (
	"docportal/models"
)

// Admission is the accept/reject decision for a submitted booking.
type Admission struct {
	Accepted bool            `json:"acknowledged"`
	Booking  *models.Booking `json:"booking,omitempty"`
	Reason   string          `json:"message,omitempty"`
}

// AdmissionService decides whether a candidate booking may be accepted and
// persists it on pass.
type AdmissionService interface {
	// Submit runs the conflict check and inserts the booking on pass.
	Submit(candidate models.Booking) (Admission, error)
	// GetByID retrieves a booking by its assigned identifier.
	GetByID(id string) (*models.Booking, error)
	// ListByEmail retrieves a patient's bookings.
	ListByEmail(email string) ([]models.Booking, error)
}

// ReminderScheduler enqueues an appointment reminder for an accepted booking.
type ReminderScheduler interface {
	Schedule(booking models.Booking) error
}
