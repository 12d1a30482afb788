package availability

import (
	"context"
	"fmt"
	"sort"

	"github.com/tjsdetailing/booking-service/internal/domain"
	"github.com/tjsdetailing/booking-service/internal/service/availability/models"
)

// Service resolves which slots are occupied for the public calendar.
type Service struct {
	bookingRepo     BookingRepository
	unavailableRepo UnavailableRepository
	logger          Logger
}

// NewService creates the availability service.
func NewService(
	bookingRepo BookingRepository,
	unavailableRepo UnavailableRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:     bookingRepo,
		unavailableRepo: unavailableRepo,
		logger:          logger,
	}
}

// GetTakenSlots returns the union of pending-booking slots and owner blocks,
// with "all" blocks expanded, deduplicated and sorted by date then timeframe.
// Which side occupies a slot is deliberately not exposed.
func (s *Service) GetTakenSlots(ctx context.Context) (*models.TakenSlotsResponse, error) {
	booked, err := s.bookingRepo.ListPendingSlots(ctx)
	if err != nil {
		s.logger.Error("GetTakenSlots: failed to list pending slots: %v", err)
		return nil, fmt.Errorf("%w: GetTakenSlots - repository error: %v", ErrInternal, err)
	}

	unavailable, err := s.unavailableRepo.List(ctx)
	if err != nil {
		s.logger.Error("GetTakenSlots: failed to list unavailable slots: %v", err)
		return nil, fmt.Errorf("%w: GetTakenSlots - repository error: %v", ErrInternal, err)
	}

	seen := make(map[domain.Slot]struct{}, len(booked))
	combined := make([]domain.Slot, 0, len(booked))

	add := func(slot domain.Slot) {
		if _, ok := seen[slot]; ok {
			return
		}
		seen[slot] = struct{}{}
		combined = append(combined, slot)
	}

	for _, slot := range booked {
		add(slot)
	}
	for _, u := range unavailable {
		for _, slot := range domain.ExpandUnavailable(u) {
			add(slot)
		}
	}

	sort.Slice(combined, func(i, j int) bool {
		if combined[i].Date != combined[j].Date {
			return combined[i].Date < combined[j].Date
		}
		return domain.TimeframeOrder(combined[i].Timeframe) < domain.TimeframeOrder(combined[j].Timeframe)
	})

	resp := &models.TakenSlotsResponse{
		Bookings: make([]models.TakenSlot, 0, len(combined)),
	}
	for _, slot := range combined {
		resp.Bookings = append(resp.Bookings, models.TakenSlot{
			Date:      slot.Date,
			Timeframe: string(slot.Timeframe),
		})
	}

	return resp, nil
}
