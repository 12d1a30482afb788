package submit_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjsdetailing/booking-service/internal/api/handlers"
	submitBooking "github.com/tjsdetailing/booking-service/internal/usecase/submit_booking"
)

type fakeUseCase struct {
	resp *submitBooking.Response
	err  error
	got  *submitBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *submitBooking.Request) (*submitBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func postBooking(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func sampleRequest() *SubmitBookingRequest {
	return &SubmitBookingRequest{
		Name:         "Sam Carter",
		Mobile:       "0412 345 678",
		Address:      "12 Wharf St, Brisbane City QLD",
		VehicleYear:  "2021",
		VehicleMake:  "Toyota",
		VehicleModel: "Hilux",
		ServiceType:  "both",
		Scent:        "vanilla",
		Date:         "2026-03-15",
		TimeOfDay:    "morning",
	}
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &submitBooking.Response{
		ID:        "b-1",
		Name:      "Sam Carter",
		Date:      "2026-03-15",
		TimeOfDay: "morning",
		Status:    "pending",
	}}
	h := NewHandler(uc, nopLogger{})

	rec := postBooking(t, h, sampleRequest())

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp SubmitBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "b-1", resp.Booking.ID)
	assert.Equal(t, "pending", resp.Booking.Status)
	require.NotNil(t, uc.got)
	assert.Equal(t, "2026-03-15", uc.got.Date)
}

func TestHandle_ConflictStatuses(t *testing.T) {
	cases := []struct {
		err     error
		message string
	}{
		{submitBooking.ErrSlotTaken, "This time slot is already booked"},
		{submitBooking.ErrSlotBlocked, "This time slot is not available"},
	}

	for _, tc := range cases {
		h := NewHandler(&fakeUseCase{err: tc.err}, nopLogger{})
		rec := postBooking(t, h, sampleRequest())

		assert.Equal(t, http.StatusConflict, rec.Code)

		var resp handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, tc.message, resp.Error)
	}
}

func TestHandle_BadRequestMessages(t *testing.T) {
	cases := []struct {
		err     error
		message string
	}{
		{fmt.Errorf("%w: bookings require at least 24 hours notice", submitBooking.ErrLeadTime), "bookings require at least 24 hours notice"},
		{fmt.Errorf("%w: bookings cannot be made more than 30 days in advance", submitBooking.ErrHorizon), "bookings cannot be made more than 30 days in advance"},
		{fmt.Errorf("%w: invalid mobile number", submitBooking.ErrInvalidInput), "invalid mobile number"},
	}

	for _, tc := range cases {
		h := NewHandler(&fakeUseCase{err: tc.err}, nopLogger{})
		rec := postBooking(t, h, sampleRequest())

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, tc.message, resp.Error)
	}
}

func TestHandle_MalformedBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: fmt.Errorf("%w: db down", submitBooking.ErrInternal)}, nopLogger{})

	rec := postBooking(t, h, sampleRequest())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
