package booking

import (
	"errors"
	"testing"

	bookingRepo "docportal/database/repository/booking"
	"docportal/models"

	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	bookings  []models.Booking
	createErr error
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			return &f.bookings[i], nil
		}
	}
	return nil, errors.New("booking not found")
}

func (f *fakeBookingRepo) GetByEmail(email string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.PatientEmail == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByDate(date string) ([]models.Booking, error) { return nil, nil }

func (f *fakeBookingRepo) FindConflict(date, treatment, email string) (*models.Booking, error) {
	for i := range f.bookings {
		b := f.bookings[i]
		if b.AppointmentDate == date && b.Treatment == treatment && b.PatientEmail == email {
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) MarkPaid(string, string) error    { return nil }
func (f *fakeBookingRepo) MarkReminderSent(id string) error { return nil }

type fakeScheduler struct {
	scheduled []models.Booking
	err       error
}

func (f *fakeScheduler) Schedule(b models.Booking) error {
	if f.err != nil {
		return f.err
	}
	f.scheduled = append(f.scheduled, b)
	return nil
}

func candidate() models.Booking {
	return models.Booking{
		PatientEmail:    "e@x.com",
		Treatment:       "Cleaning",
		AppointmentDate: "2024-01-01",
		Slot:            "9AM",
	}
}

func TestSubmitAcceptsNewKey(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultAdmissionService{Repo: repo}

	adm, err := svc.Submit(candidate())
	require.NoError(t, err)
	require.True(t, adm.Accepted)
	require.NotEmpty(t, adm.Booking.ID)
	require.False(t, adm.Booking.Paid)

	fetched, err := svc.GetByID(adm.Booking.ID)
	require.NoError(t, err)
	require.Equal(t, "Cleaning", fetched.Treatment)
}

func TestSubmitRejectsDuplicateKey(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultAdmissionService{Repo: repo}

	first, err := svc.Submit(candidate())
	require.NoError(t, err)
	require.True(t, first.Accepted)

	// Same key even with a different slot is rejected.
	second := candidate()
	second.Slot = "10AM"
	adm, err := svc.Submit(second)
	require.NoError(t, err)
	require.False(t, adm.Accepted)
	require.Contains(t, adm.Reason, "2024-01-01")
	require.Nil(t, adm.Booking)

	// The existing booking is untouched.
	existing, err := repo.FindConflict("2024-01-01", "Cleaning", "e@x.com")
	require.NoError(t, err)
	require.Equal(t, "9AM", existing.Slot)
}

func TestSubmitMapsRaceToRejection(t *testing.T) {
	// A concurrent insert between the check and the write surfaces as a
	// duplicate-key error, which must read as the same rejection.
	repo := &fakeBookingRepo{createErr: bookingRepo.ErrDuplicateBooking}
	svc := &DefaultAdmissionService{Repo: repo}

	adm, err := svc.Submit(candidate())
	require.NoError(t, err)
	require.False(t, adm.Accepted)
	require.Contains(t, adm.Reason, "2024-01-01")
}

func TestSubmitDoesNotEnforceSlotCapacity(t *testing.T) {
	// Two patients can hold the identical (treatment, date, slot); the
	// resolver's subtraction is the only, advisory, signal.
	repo := &fakeBookingRepo{}
	svc := &DefaultAdmissionService{Repo: repo}

	first, err := svc.Submit(candidate())
	require.NoError(t, err)
	require.True(t, first.Accepted)

	other := candidate()
	other.PatientEmail = "other@x.com"
	adm, err := svc.Submit(other)
	require.NoError(t, err)
	require.True(t, adm.Accepted)
}

func TestSubmitSchedulesReminder(t *testing.T) {
	repo := &fakeBookingRepo{}
	sched := &fakeScheduler{}
	svc := &DefaultAdmissionService{Repo: repo, Reminders: sched}

	adm, err := svc.Submit(candidate())
	require.NoError(t, err)
	require.True(t, adm.Accepted)
	require.Len(t, sched.scheduled, 1)
	require.Equal(t, adm.Booking.ID, sched.scheduled[0].ID)
}

func TestSubmitReminderFailureDoesNotAffectAdmission(t *testing.T) {
	repo := &fakeBookingRepo{}
	sched := &fakeScheduler{err: errors.New("reminder queue unavailable")}
	svc := &DefaultAdmissionService{Repo: repo, Reminders: sched}

	adm, err := svc.Submit(candidate())
	require.NoError(t, err)
	require.True(t, adm.Accepted)
}
