package scents

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tjsdetailing/booking-service/internal/domain"
	scentRepo "github.com/tjsdetailing/booking-service/internal/infra/storage/scent"
	"github.com/tjsdetailing/booking-service/internal/service/scents/models"
)

// Service manages the scent catalog.
type Service struct {
	repo   ScentRepository
	logger Logger
}

// NewService creates the scents service.
func NewService(repo ScentRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List returns the full catalog for the dashboard, ordered by name.
func (s *Service) List(ctx context.Context) (*models.ScentListResponse, error) {
	scents, err := s.repo.List(ctx, false)
	if err != nil {
		s.logger.Error("List: failed to list scents: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return &models.ScentListResponse{Scents: models.FromDomainScents(scents)}, nil
}

// ListEnabled returns only the scents offered on the booking form.
func (s *Service) ListEnabled(ctx context.Context) (*models.ScentListResponse, error) {
	scents, err := s.repo.List(ctx, true)
	if err != nil {
		s.logger.Error("ListEnabled: failed to list scents: %v", err)
		return nil, fmt.Errorf("%w: ListEnabled - repository error: %v", ErrInternal, err)
	}

	return &models.ScentListResponse{Scents: models.FromDomainScents(scents)}, nil
}

// Create adds a scent, enabled by default. Names are trimmed and unique.
func (s *Service) Create(ctx context.Context, req *models.CreateScentRequest) (*models.ScentResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		s.logger.Warn("Create: missing scent name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	created, err := s.repo.Create(ctx, &domain.Scent{
		ID:      uuid.NewString(),
		Name:    name,
		Enabled: true,
	})
	if err != nil {
		if errors.Is(err, scentRepo.ErrDuplicateName) {
			s.logger.Warn("Create: scent name %q already exists", name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Create: failed to store scent %q: %v", name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: added scent id=%s name=%q", created.ID, created.Name)
	return models.FromDomainScent(created), nil
}

// SetEnabled toggles a scent's availability on the booking form.
func (s *Service) SetEnabled(ctx context.Context, req *models.ToggleScentRequest) error {
	if req.ID == "" {
		s.logger.Warn("SetEnabled: missing scent id")
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	if err := s.repo.SetEnabled(ctx, req.ID, req.Enabled); err != nil {
		if errors.Is(err, scentRepo.ErrScentNotFound) {
			s.logger.Warn("SetEnabled: scent id=%s not found", req.ID)
			return ErrScentNotFound
		}
		s.logger.Error("SetEnabled: failed for scent id=%s: %v", req.ID, err)
		return fmt.Errorf("%w: SetEnabled - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetEnabled: scent id=%s enabled=%t", req.ID, req.Enabled)
	return nil
}

// Delete removes a scent from the catalog. Existing bookings keep the name
// they were created with.
func (s *Service) Delete(ctx context.Context, req *models.DeleteScentRequest) error {
	if req.ID == "" {
		s.logger.Warn("Delete: missing scent id")
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	if err := s.repo.Delete(ctx, req.ID); err != nil {
		if errors.Is(err, scentRepo.ErrScentNotFound) {
			s.logger.Warn("Delete: scent id=%s not found", req.ID)
			return ErrScentNotFound
		}
		s.logger.Error("Delete: failed for scent id=%s: %v", req.ID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: removed scent id=%s", req.ID)
	return nil
}
