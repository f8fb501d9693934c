package bookingRepo

import (
	"errors"

	"docportal/models"
)

// ErrDuplicateBooking is returned by Create when the unique booking key
// (appointmentDate, treatment, patientEmail) already exists. It catches the
// concurrent submission that slips past the admission controller's explicit
// conflict check.
var ErrDuplicateBooking = errors.New("booking already exists for this patient, treatment and date")

// BookingRepository defines data access for bookings.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetByEmail retrieves all bookings made by a patient.
	GetByEmail(email string) ([]models.Booking, error)
	// GetByDate retrieves all bookings whose appointmentDate equals date.
	GetByDate(date string) ([]models.Booking, error)
	// FindConflict looks up an existing booking with the same admission key.
	// Returns (nil, nil) when no conflict exists.
	FindConflict(date, treatment, email string) (*models.Booking, error)
	// MarkPaid sets the paid flag and transaction ID on a booking.
	MarkPaid(id, transactionID string) error
	// MarkReminderSent flags a booking's reminder as delivered.
	MarkReminderSent(id string) error
}
