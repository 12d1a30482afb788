package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tjsdetailing/booking-service/internal/domain"
	bookingRepo "github.com/tjsdetailing/booking-service/internal/infra/storage/booking"
)

const notifyTimeout = 15 * time.Second

// Config carries the booking rules and notification settings.
type Config struct {
	MinLeadHours int
	MaxDaysAhead int
	BaseURL      string
}

// UseCase admits a customer booking into a free slot.
type UseCase struct {
	bookingRepo     BookingRepository
	unavailableRepo UnavailableRepository
	txManager       TransactionManager
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
	cfg             Config
}

// NewUseCase creates the booking admission use case.
func NewUseCase(
	bookingRepo BookingRepository,
	unavailableRepo UnavailableRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
	cfg Config,
) *UseCase {
	if cfg.MinLeadHours <= 0 {
		cfg.MinLeadHours = domain.DefaultMinLeadHours
	}
	if cfg.MaxDaysAhead <= 0 {
		cfg.MaxDaysAhead = domain.DefaultMaxDaysAhead
	}
	return &UseCase{
		bookingRepo:     bookingRepo,
		unavailableRepo: unavailableRepo,
		txManager:       txManager,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		cfg:             cfg,
	}
}

// Execute validates the request, checks the slot under a serializable
// transaction and persists the booking. The owner notification is dispatched
// asynchronously; its failure never fails the booking.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: date=%s, timeOfDay=%s, service=%s", req.Date, req.TimeOfDay, req.ServiceType)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	timeframe := domain.Timeframe(req.TimeOfDay)

	if domain.IsLeadTimeViolated(req.Date, timeframe, now, uc.cfg.MinLeadHours) {
		uc.logger.Warn("SubmitBooking: lead time violated for %s (%s)", req.Date, req.TimeOfDay)
		return nil, fmt.Errorf("%w: bookings require at least %d hours notice", ErrLeadTime, uc.cfg.MinLeadHours)
	}

	if domain.IsHorizonExceeded(req.Date, now, uc.cfg.MaxDaysAhead) {
		uc.logger.Warn("SubmitBooking: date %s beyond booking window", req.Date)
		return nil, fmt.Errorf("%w: bookings cannot be made more than %d days in advance", ErrHorizon, uc.cfg.MaxDaysAhead)
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		taken, err := uc.bookingRepo.CountPendingForSlot(txCtx, req.Date, timeframe)
		if err != nil {
			uc.logger.Error("SubmitBooking: failed to count pending bookings: %v", err)
			return fmt.Errorf("%w: failed to count pending bookings: %v", ErrInternal, err)
		}
		if taken > 0 {
			uc.logger.Warn("SubmitBooking: slot %s (%s) already booked", req.Date, req.TimeOfDay)
			return ErrSlotTaken
		}

		blocked, err := uc.unavailableRepo.ExistsCovering(txCtx, req.Date, timeframe)
		if err != nil {
			uc.logger.Error("SubmitBooking: failed to check unavailable slots: %v", err)
			return fmt.Errorf("%w: failed to check unavailable slots: %v", ErrInternal, err)
		}
		if blocked {
			uc.logger.Warn("SubmitBooking: slot %s (%s) is blocked", req.Date, req.TimeOfDay)
			return ErrSlotBlocked
		}

		booking := &domain.Booking{
			ID:                uuid.NewString(),
			Name:              req.Name,
			Mobile:            normalizeMobile(req.Mobile),
			Address:           req.Address,
			ReturningCustomer: req.ReturningCustomer,
			VehicleYear:       req.VehicleYear,
			VehicleMake:       req.VehicleMake,
			VehicleModel:      req.VehicleModel,
			ServiceType:       domain.ServiceType(req.ServiceType),
			Scent:             req.Scent,
			SpecialRequests:   req.SpecialRequests,
			Attachments:       req.Attachments,
			Date:              req.Date,
			TimeOfDay:         timeframe,
			Status:            domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// The partial unique index backstops the availability check when
			// two submissions race past it.
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("SubmitBooking: slot %s (%s) taken by concurrent booking", req.Date, req.TimeOfDay)
				return ErrSlotTaken
			}
			uc.logger.Error("SubmitBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("SubmitBooking: created booking id=%s for %s (%s)", result.ID, result.Date, result.TimeOfDay)

	uc.dispatchNotification(result)

	return toResponse(result), nil
}

// dispatchNotification sends the owner SMS without blocking the response.
// A delivery failure is logged and otherwise ignored.
func (uc *UseCase) dispatchNotification(b *domain.Booking) {
	message := buildNotificationMessage(b, uc.cfg.BaseURL)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := uc.notifier.Send(ctx, message); err != nil {
			uc.logger.Error("SubmitBooking: SMS notification failed for booking id=%s: %v", b.ID, err)
		}
	}()
}
