package submit_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjsdetailing/booking-service/internal/domain"
	bookingRepo "github.com/tjsdetailing/booking-service/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	mu        sync.Mutex
	bookings  []*domain.Booking
	createErr error
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *b
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.bookings = append(f.bookings, &stored)
	return &stored, nil
}

func (f *fakeBookingRepo) CountPendingForSlot(_ context.Context, date string, timeframe domain.Timeframe) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, b := range f.bookings {
		if b.Date == date && b.TimeOfDay == timeframe && b.OccupiesSlot() {
			count++
		}
	}
	return count, nil
}

type fakeUnavailableRepo struct {
	blocked []*domain.UnavailableSlot
}

func (f *fakeUnavailableRepo) ExistsCovering(_ context.Context, date string, timeframe domain.Timeframe) (bool, error) {
	for _, s := range f.blocked {
		if s.Date == date && (s.TimeOfDay == timeframe || s.TimeOfDay == domain.TimeframeAll) {
			return true, nil
		}
	}
	return false, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct {
	mu       sync.Mutex
	messages []string
	err      error
}

func (f *fakeNotifier) Send(_ context.Context, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeNotifier) sent() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.messages...)
}

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type testEnv struct {
	uc          *UseCase
	bookingRepo *fakeBookingRepo
	unavailable *fakeUnavailableRepo
	notifier    *fakeNotifier
}

func newTestEnv(now time.Time) *testEnv {
	env := &testEnv{
		bookingRepo: &fakeBookingRepo{},
		unavailable: &fakeUnavailableRepo{},
		notifier:    &fakeNotifier{},
	}
	env.uc = NewUseCase(
		env.bookingRepo,
		env.unavailable,
		&fakeTxManager{},
		env.notifier,
		nopLogger{},
		Config{BaseURL: "https://tjsdetailing.example.com"},
	)
	env.uc.timeProvider = &stubClock{now: now}
	return env
}

func validRequest() *Request {
	return &Request{
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

func testNow() time.Time {
	return time.Date(2026, time.March, 10, 10, 0, 0, 0, domain.BusinessLocation())
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	env := newTestEnv(testNow())

	resp, err := env.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "0412345678", resp.Mobile)
	assert.Equal(t, "2026-03-15", resp.Date)
	assert.Equal(t, "morning", resp.TimeOfDay)
	require.Len(t, env.bookingRepo.bookings, 1)
}

func TestExecute_SendsOwnerNotification(t *testing.T) {
	env := newTestEnv(testNow())

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return len(env.notifier.sent()) == 1
	}, time.Second, 10*time.Millisecond)

	msg := env.notifier.sent()[0]
	assert.Contains(t, msg, "New Booking!")
	assert.Contains(t, msg, "Sam Carter")
	assert.Contains(t, msg, "2026-03-15 (morning)")
	assert.Contains(t, msg, "2021 Toyota Hilux")
	assert.Contains(t, msg, "Full Detail (Interior & Exterior) - vanilla")
	assert.Contains(t, msg, "0412345678")
	assert.Contains(t, msg, "https://tjsdetailing.example.com/dashboard")
}

func TestExecute_ReturningCustomerTagged(t *testing.T) {
	env := newTestEnv(testNow())

	req := validRequest()
	req.ReturningCustomer = true
	_, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return len(env.notifier.sent()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Contains(t, env.notifier.sent()[0], "New Booking [RETURNING]!")
}

func TestExecute_ScentNoneOmittedFromNotification(t *testing.T) {
	env := newTestEnv(testNow())

	req := validRequest()
	req.Scent = domain.ScentNone
	_, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return len(env.notifier.sent()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.NotContains(t, env.notifier.sent()[0], " - none")
}

func TestExecute_NotificationFailureDoesNotFailBooking(t *testing.T) {
	env := newTestEnv(testNow())
	env.notifier.err = errors.New("gateway down")

	resp, err := env.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
}

func TestExecute_SlotTakenByPendingBooking(t *testing.T) {
	env := newTestEnv(testNow())

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Name = "Second Customer"
	_, err = env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_CancelledBookingFreesSlot(t *testing.T) {
	env := newTestEnv(testNow())

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	env.bookingRepo.bookings[0].Status = domain.StatusCancelled

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
}

func TestExecute_OtherTimeframeStaysFree(t *testing.T) {
	env := newTestEnv(testNow())

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.TimeOfDay = "afternoon"
	_, err = env.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_SlotBlockedByOwner(t *testing.T) {
	env := newTestEnv(testNow())
	env.unavailable.blocked = []*domain.UnavailableSlot{
		{Date: "2026-03-15", TimeOfDay: domain.TimeframeMorning},
	}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotBlocked)
}

func TestExecute_AllDayBlockCoversBothTimeframes(t *testing.T) {
	env := newTestEnv(testNow())
	env.unavailable.blocked = []*domain.UnavailableSlot{
		{Date: "2026-03-15", TimeOfDay: domain.TimeframeAll},
	}

	for _, tf := range []string{"morning", "afternoon"} {
		req := validRequest()
		req.TimeOfDay = tf
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotBlocked)
	}
}

func TestExecute_ConcurrentInsertConflictMapped(t *testing.T) {
	env := newTestEnv(testNow())
	env.bookingRepo.createErr = bookingRepo.ErrSlotTaken

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_LeadTimeViolation(t *testing.T) {
	env := newTestEnv(testNow())

	req := validRequest()
	req.Date = "2026-03-10" // today
	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrLeadTime)

	// At 10:00, tomorrow morning starts in 22 hours.
	req = validRequest()
	req.Date = "2026-03-11"
	_, err = env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrLeadTime)
}

func TestExecute_HorizonViolation(t *testing.T) {
	env := newTestEnv(testNow())

	req := validRequest()
	req.Date = "2026-04-10" // today+31
	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrHorizon)

	req = validRequest()
	req.Date = "2026-04-09" // today+30, still bookable
	_, err = env.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_InvalidInputRejectedBeforeStorage(t *testing.T) {
	env := newTestEnv(testNow())

	req := validRequest()
	req.Mobile = "12345"
	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, env.bookingRepo.bookings)
}
