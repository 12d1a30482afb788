package admin_bookings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjsdetailing/booking-service/internal/api/handlers"
	bookingsService "github.com/tjsdetailing/booking-service/internal/service/bookings"
	"github.com/tjsdetailing/booking-service/internal/service/bookings/models"
)

type fakeService struct {
	listResp   *models.AdminBookingsResponse
	listErr    error
	updateResp *models.BookingResponse
	updateErr  error
	gotUpdate  *models.UpdateBookingRequest
}

func (f *fakeService) ListForAdmin(_ context.Context) (*models.AdminBookingsResponse, error) {
	return f.listResp, f.listErr
}

func (f *fakeService) Update(_ context.Context, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	f.gotUpdate = req
	return f.updateResp, f.updateErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func patchBookings(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/bookings", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.HandleUpdate(rec, req)
	return rec
}

func TestHandleList_SplitsUpcomingAndPast(t *testing.T) {
	svc := &fakeService{listResp: &models.AdminBookingsResponse{
		Upcoming: []*models.BookingResponse{{ID: "b-2", Date: "2026-03-20", Status: "pending"}},
		Past:     []*models.BookingResponse{{ID: "b-1", Date: "2026-02-01", Status: "completed"}},
	}}
	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.AdminBookingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Upcoming, 1)
	require.Len(t, resp.Past, 1)
	assert.Equal(t, "b-2", resp.Upcoming[0].ID)
	assert.Equal(t, "b-1", resp.Past[0].ID)
}

func TestHandleList_ServiceError(t *testing.T) {
	svc := &fakeService{listErr: errors.New("boom")}
	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleUpdate_Success(t *testing.T) {
	svc := &fakeService{updateResp: &models.BookingResponse{
		ID:     "b-1",
		Status: "completed",
	}}
	h := NewHandler(svc, nopLogger{})

	rec := patchBookings(t, h, models.UpdateBookingRequest{ID: "b-1", Status: "completed"})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp UpdateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Booking)
	assert.Equal(t, "b-1", resp.Booking.ID)
	assert.Equal(t, "completed", resp.Booking.Status)

	require.NotNil(t, svc.gotUpdate)
	assert.Equal(t, "b-1", svc.gotUpdate.ID)
	assert.Equal(t, "completed", svc.gotUpdate.Status)
}

func TestHandleUpdate_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", bookingsService.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
		{"slot conflict", bookingsService.ErrSlotConflict, http.StatusConflict, "This time slot is already booked"},
		{"invalid status", bookingsService.ErrInvalidStatus, http.StatusBadRequest, "Invalid status"},
		{"invalid input", bookingsService.ErrInvalidInput, http.StatusBadRequest, "invalid request body"},
		{"internal", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeService{updateErr: tc.err}
			h := NewHandler(svc, nopLogger{})

			rec := patchBookings(t, h, models.UpdateBookingRequest{ID: "b-1", Status: "cancelled"})

			assert.Equal(t, tc.wantStatus, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantMsg, resp.Error)
		})
	}
}

func TestHandleUpdate_MalformedBody(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/bookings", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.HandleUpdate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.gotUpdate)
}
