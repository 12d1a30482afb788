package unavailable

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tjsdetailing/booking-service/internal/domain"
	"github.com/tjsdetailing/booking-service/internal/service/unavailable/models"
)

// Service manages owner-declared unavailable slots.
type Service struct {
	repo   UnavailableRepository
	logger Logger
}

// NewService creates the unavailable-slots service.
func NewService(repo UnavailableRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Add blocks a batch of slots. Each entry gets its own id; "all" is a valid
// target and covers both timeframes of its date.
func (s *Service) Add(ctx context.Context, req *models.AddSlotsRequest) (int, error) {
	if len(req.Slots) == 0 {
		s.logger.Warn("Add: empty slots batch")
		return 0, fmt.Errorf("%w: slots array is required", ErrInvalidInput)
	}

	slots := make([]*domain.UnavailableSlot, 0, len(req.Slots))
	for _, in := range req.Slots {
		if _, err := domain.ParseDate(in.Date); err != nil {
			s.logger.Warn("Add: invalid date=%s", in.Date)
			return 0, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
		}
		timeframe := domain.Timeframe(in.TimeOfDay)
		if !domain.IsValidBlockTarget(timeframe) {
			s.logger.Warn("Add: invalid timeOfDay=%s", in.TimeOfDay)
			return 0, fmt.Errorf("%w: timeOfDay must be morning, afternoon or all", ErrInvalidInput)
		}
		slots = append(slots, &domain.UnavailableSlot{
			ID:        uuid.NewString(),
			Date:      in.Date,
			TimeOfDay: timeframe,
		})
	}

	if err := s.repo.Add(ctx, slots); err != nil {
		s.logger.Error("Add: failed to store %d slots: %v", len(slots), err)
		return 0, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Add: blocked %d slots", len(slots))
	return len(slots), nil
}

// Remove unblocks a batch of slots by exact (date, timeOfDay) match. Entries
// that match nothing are skipped silently.
func (s *Service) Remove(ctx context.Context, req *models.RemoveSlotsRequest) error {
	if len(req.Slots) == 0 {
		s.logger.Warn("Remove: empty slots batch")
		return fmt.Errorf("%w: slots array is required", ErrInvalidInput)
	}

	for _, in := range req.Slots {
		if _, err := domain.ParseDate(in.Date); err != nil {
			s.logger.Warn("Remove: invalid date=%s", in.Date)
			return fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
		}
		timeframe := domain.Timeframe(in.TimeOfDay)
		if !domain.IsValidBlockTarget(timeframe) {
			s.logger.Warn("Remove: invalid timeOfDay=%s", in.TimeOfDay)
			return fmt.Errorf("%w: timeOfDay must be morning, afternoon or all", ErrInvalidInput)
		}

		if err := s.repo.Remove(ctx, in.Date, timeframe); err != nil {
			s.logger.Error("Remove: failed to remove slot %s (%s): %v", in.Date, in.TimeOfDay, err)
			return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Remove: unblocked %d slots", len(req.Slots))
	return nil
}

// List returns every stored block.
func (s *Service) List(ctx context.Context) (*models.SlotListResponse, error) {
	slots, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return &models.SlotListResponse{Slots: models.FromDomainSlots(slots)}, nil
}
