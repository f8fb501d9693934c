package payment

import (
	"errors"
	"testing"

	"docportal/models"

	"github.com/stretchr/testify/require"
)

type fakePaymentRepo struct {
	payments  []models.Payment
	createErr error
}

func (f *fakePaymentRepo) Create(p *models.Payment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.payments = append(f.payments, *p)
	return nil
}

func (f *fakePaymentRepo) GetByBookingID(bookingID string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.payments {
		if p.BookingID == bookingID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeBookingStore struct {
	paid        map[string]string
	markPaidErr error
}

func (f *fakeBookingStore) Create(*models.Booking) error                  { return nil }
func (f *fakeBookingStore) GetByID(string) (*models.Booking, error)       { return nil, nil }
func (f *fakeBookingStore) GetByEmail(string) ([]models.Booking, error)   { return nil, nil }
func (f *fakeBookingStore) GetByDate(string) ([]models.Booking, error)    { return nil, nil }
func (f *fakeBookingStore) FindConflict(string, string, string) (*models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingStore) MarkReminderSent(string) error { return nil }

func (f *fakeBookingStore) MarkPaid(id, transactionID string) error {
	if f.markPaidErr != nil {
		return f.markPaidErr
	}
	if f.paid == nil {
		f.paid = map[string]string{}
	}
	f.paid[id] = transactionID
	return nil
}

func TestRecordMarksBookingPaid(t *testing.T) {
	payments := &fakePaymentRepo{}
	bookings := &fakeBookingStore{}
	svc := &DefaultService{Payments: payments, Bookings: bookings}

	recorded, err := svc.Record(models.Payment{
		BookingID:     "b-1",
		TransactionID: "txn-42",
		Email:         "e@x.com",
		Price:         80,
	})
	require.NoError(t, err)
	require.NotEmpty(t, recorded.ID)
	require.Equal(t, "txn-42", bookings.paid["b-1"])
	require.Len(t, payments.payments, 1)
}

func TestRecordExposesPartialFailure(t *testing.T) {
	// The payment insert lands, the booking update fails: no rollback, the
	// caller gets both the recorded payment and the error to reconcile.
	payments := &fakePaymentRepo{}
	bookings := &fakeBookingStore{markPaidErr: errors.New("write concern failed")}
	svc := &DefaultService{Payments: payments, Bookings: bookings}

	recorded, err := svc.Record(models.Payment{BookingID: "b-1", TransactionID: "txn-42"})
	require.Error(t, err)
	require.NotNil(t, recorded)
	require.Len(t, payments.payments, 1)
	require.Contains(t, err.Error(), "b-1")
}

func TestRecordInsertFailure(t *testing.T) {
	payments := &fakePaymentRepo{createErr: errors.New("connection reset")}
	bookings := &fakeBookingStore{}
	svc := &DefaultService{Payments: payments, Bookings: bookings}

	recorded, err := svc.Record(models.Payment{BookingID: "b-1"})
	require.Error(t, err)
	require.Nil(t, recorded)
	require.Empty(t, bookings.paid)
}
