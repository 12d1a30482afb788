package pricing

import (
	"context"
	"fmt"

	"github.com/tjsdetailing/booking-service/internal/service/pricing/models"
)

// Service exposes the public pricing table.
type Service struct {
	repo   PricingRepository
	logger Logger
}

// NewService creates the pricing service.
func NewService(repo PricingRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List returns the pricing table in display order.
func (s *Service) List(ctx context.Context) (*models.PricingResponse, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: failed to list pricing: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return &models.PricingResponse{Pricing: models.FromDomainEntries(entries)}, nil
}
