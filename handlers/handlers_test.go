package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"docportal/middleware"
	"docportal/models"
	"docportal/services/booking"
	userService "docportal/services/user"
	"docportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type stubUserService struct {
	users  map[string]models.User
	admins map[string]bool
}

func (s *stubUserService) Register(u *models.User) (*models.User, error) { return u, nil }

func (s *stubUserService) List() ([]models.User, error) {
	var out []models.User
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *stubUserService) IsAdmin(email string) (bool, error) { return s.admins[email], nil }
func (s *stubUserService) GrantAdmin(string) error            { return nil }

func (s *stubUserService) IssueToken(email string) (string, error) {
	if _, ok := s.users[email]; !ok {
		return "", userService.ErrUnknownUser
	}
	return utils.GenerateToken(email, time.Hour)
}

type stubAdmissionService struct {
	admission booking.Admission
	err       error
	bookings  map[string]models.Booking
}

func (s *stubAdmissionService) Submit(candidate models.Booking) (booking.Admission, error) {
	return s.admission, s.err
}

func (s *stubAdmissionService) GetByID(id string) (*models.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, errors.New("booking not found")
	}
	return &b, nil
}

func (s *stubAdmissionService) ListByEmail(email string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.PatientEmail == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestGetTokenForUnknownUser(t *testing.T) {
	// Unknown emails get 403 with an empty access token, not an error body.
	h := NewAuthHandler(&stubUserService{users: map[string]models.User{}})
	r := newTestRouter()
	r.GET("/jwt", h.GetToken)

	req := httptest.NewRequest(http.MethodGet, "/jwt?email=unknown@x.com", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "", body["accessToken"])
}

func TestGetTokenForKnownUser(t *testing.T) {
	h := NewAuthHandler(&stubUserService{users: map[string]models.User{
		"e@x.com": {ID: "u-1", Email: "e@x.com"},
	}})
	r := newTestRouter()
	r.GET("/jwt", h.GetToken)

	req := httptest.NewRequest(http.MethodGet, "/jwt?email=e@x.com", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body["accessToken"])
}

func TestListBookingsEmailMismatch(t *testing.T) {
	h := NewBookingHandler(&stubAdmissionService{})
	r := newTestRouter()
	r.GET("/bookings", middleware.JWTAuthMiddleware(), h.ListBookings)

	token, err := utils.GenerateToken("someone-else@x.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/bookings?email=e@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListBookingsMatchingEmail(t *testing.T) {
	svc := &stubAdmissionService{bookings: map[string]models.Booking{
		"b-1": {ID: "b-1", PatientEmail: "e@x.com", Treatment: "Cleaning"},
	}}
	h := NewBookingHandler(svc)
	r := newTestRouter()
	r.GET("/bookings", middleware.JWTAuthMiddleware(), h.ListBookings)

	token, err := utils.GenerateToken("e@x.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/bookings?email=e@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Cleaning")
}

func TestCreateBookingConflictIsNotAnErrorStatus(t *testing.T) {
	svc := &stubAdmissionService{admission: booking.Admission{
		Accepted: false,
		Reason:   "You already have a booking on 2024-01-01",
	}}
	h := NewBookingHandler(svc)
	r := newTestRouter()
	r.POST("/bookings", h.CreateBooking)

	payload, _ := json.Marshal(models.Booking{
		PatientEmail:    "e@x.com",
		Treatment:       "Cleaning",
		AppointmentDate: "2024-01-01",
		Slot:            "10AM",
	})
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Acknowledged bool   `json:"acknowledged"`
		Message      string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.False(t, body.Acknowledged)
	require.Contains(t, body.Message, "2024-01-01")
}

func TestCreateBookingAccepted(t *testing.T) {
	accepted := models.Booking{ID: "b-9", PatientEmail: "e@x.com", Treatment: "Cleaning"}
	svc := &stubAdmissionService{admission: booking.Admission{Accepted: true, Booking: &accepted}}
	h := NewBookingHandler(svc)
	r := newTestRouter()
	r.POST("/bookings", h.CreateBooking)

	payload, _ := json.Marshal(accepted)
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"acknowledged":true`)
	require.Contains(t, rec.Body.String(), "b-9")
}
