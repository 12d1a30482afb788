package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/tjsdetailing/booking-service/internal/domain"
	bookingRepo "github.com/tjsdetailing/booking-service/internal/infra/storage/booking"
	"github.com/tjsdetailing/booking-service/internal/service/bookings/models"
)

// Service manages the booking lifecycle for the owner dashboard.
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the bookings service.
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID fetches one booking.
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// ListForAdmin returns the dashboard's upcoming and past lists. Upcoming is
// today or later and still active, everything else is past. "Today" is taken
// in the business timezone.
func (s *Service) ListForAdmin(ctx context.Context) (*models.AdminBookingsResponse, error) {
	today := domain.BusinessDate(s.timeProvider.Now())
	s.logger.Info("ListForAdmin: fetching bookings, today=%s", today)

	upcoming, err := s.bookingRepo.ListUpcoming(ctx, today)
	if err != nil {
		s.logger.Error("ListForAdmin: failed to list upcoming bookings: %v", err)
		return nil, fmt.Errorf("%w: ListForAdmin - repository error: %v", ErrInternal, err)
	}

	past, err := s.bookingRepo.ListPast(ctx, today)
	if err != nil {
		s.logger.Error("ListForAdmin: failed to list past bookings: %v", err)
		return nil, fmt.Errorf("%w: ListForAdmin - repository error: %v", ErrInternal, err)
	}

	return &models.AdminBookingsResponse{
		Upcoming: models.FromDomainBookings(upcoming),
		Past:     models.FromDomainBookings(past),
	}, nil
}

// Update applies a status change. When both Date and TimeOfDay are set the
// booking moves to the new slot in the same update, which is how a cancelled
// job gets rebooked. Moving into an occupied slot fails with ErrSlotConflict.
func (s *Service) Update(ctx context.Context, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: booking id=%s, status=%s", req.ID, req.Status)

	if req.ID == "" {
		s.logger.Warn("Update: missing booking id")
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("Update: invalid status=%s for booking id=%s", req.Status, req.ID)
		return nil, ErrInvalidStatus
	}

	if (req.Date == nil) != (req.TimeOfDay == nil) {
		s.logger.Warn("Update: date and timeOfDay must come together for booking id=%s", req.ID)
		return nil, fmt.Errorf("%w: date and timeOfDay must be provided together", ErrInvalidInput)
	}

	var timeframe *domain.Timeframe
	if req.Date != nil {
		if _, err := domain.ParseDate(*req.Date); err != nil {
			s.logger.Warn("Update: invalid date=%s for booking id=%s", *req.Date, req.ID)
			return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
		}
		tf := domain.Timeframe(*req.TimeOfDay)
		if !domain.IsValidTimeframe(tf) {
			s.logger.Warn("Update: invalid timeOfDay=%s for booking id=%s", *req.TimeOfDay, req.ID)
			return nil, fmt.Errorf("%w: timeOfDay must be morning or afternoon", ErrInvalidInput)
		}
		timeframe = &tf
	}

	updated, err := s.bookingRepo.Update(ctx, req.ID, status, req.Date, timeframe)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Update: booking id=%s not found", req.ID)
			return nil, ErrBookingNotFound
		}
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			s.logger.Warn("Update: slot conflict rebooking id=%s", req.ID)
			return nil, ErrSlotConflict
		}
		s.logger.Error("Update: repository error for booking id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: booking id=%s now %s on %s (%s)", updated.ID, updated.Status, updated.Date, updated.TimeOfDay)
	return models.FromDomainBooking(updated), nil
}
