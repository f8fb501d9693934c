package booking

import (
	"errors"
	"fmt"

	bookingRepo "docportal/database/repository/booking"
	"docportal/models"
	"docportal/services/availability"
	"docportal/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultAdmissionService is the production admission controller.
//
// The conflict key is (appointmentDate, treatment, patientEmail). The explicit
// check below owns the human-readable rejection; the repository's unique index
// on the same key closes the window where two concurrent submissions both pass
// the check. Slot capacity is deliberately not enforced here: two patients can
// hold the identical (treatment, date, slot), and the resolver's subtraction
// is advisory only.
type DefaultAdmissionService struct {
	Repo bookingRepo.BookingRepository
	// Cache is the availability response cache to invalidate on accept; nil
	// disables invalidation.
	Cache *redis.Client
	// Reminders is optional; nil disables reminder scheduling.
	Reminders ReminderScheduler
}

// Submit checks the candidate against existing bookings and inserts it on
// pass. A conflict is a normal rejection, not an error.
func (s *DefaultAdmissionService) Submit(candidate models.Booking) (Admission, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.FindConflict(candidate.AppointmentDate, candidate.Treatment, candidate.PatientEmail)
	if err != nil {
		return Admission{}, fmt.Errorf("conflict check failed: %w", err)
	}
	if existing != nil {
		return Admission{
			Accepted: false,
			Reason:   fmt.Sprintf("You already have a booking on %s", candidate.AppointmentDate),
		}, nil
	}

	candidate.ID = uuid.New().String()
	candidate.Paid = false

	if err := s.Repo.Create(&candidate); err != nil {
		// A concurrent submission for the same key can land between the check
		// and the insert; the unique index turns it into the same rejection.
		if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
			return Admission{
				Accepted: false,
				Reason:   fmt.Sprintf("You already have a booking on %s", candidate.AppointmentDate),
			}, nil
		}
		return Admission{}, fmt.Errorf("failed to persist booking: %w", err)
	}

	availability.InvalidateDate(s.Cache, candidate.AppointmentDate)

	if s.Reminders != nil {
		if err := s.Reminders.Schedule(candidate); err != nil {
			// Reminder delivery is best-effort and never affects admission.
			logger.Warn("failed to schedule appointment reminder",
				zap.String("bookingID", candidate.ID), zap.Error(err))
		}
	}

	logger.Info("booking accepted",
		zap.String("bookingID", candidate.ID),
		zap.String("treatment", candidate.Treatment),
		zap.String("date", candidate.AppointmentDate))

	return Admission{Accepted: true, Booking: &candidate}, nil
}

// GetByID retrieves a booking by its assigned identifier.
func (s *DefaultAdmissionService) GetByID(id string) (*models.Booking, error) {
	return s.Repo.GetByID(id)
}

// ListByEmail retrieves a patient's bookings.
func (s *DefaultAdmissionService) ListByEmail(email string) ([]models.Booking, error) {
	return s.Repo.GetByEmail(email)
}
