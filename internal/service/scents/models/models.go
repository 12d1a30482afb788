package models

import (
	"time"

	"github.com/tjsdetailing/booking-service/internal/domain"
)

// CreateScentRequest adds a catalog entry.
type CreateScentRequest struct {
	Name string `json:"name"`
}

// ToggleScentRequest flips a scent's availability.
type ToggleScentRequest struct {
	ID      string `json:"id"`
	Enabled bool   `json:"enabled"`
}

// DeleteScentRequest removes a catalog entry.
type DeleteScentRequest struct {
	ID string `json:"id"`
}

// ScentResponse is one catalog entry.
type ScentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"createdAt"`
}

// ScentListResponse is the catalog.
type ScentListResponse struct {
	Scents []*ScentResponse `json:"scents"`
}

// FromDomainScent converts a domain scent into the response view.
func FromDomainScent(s *domain.Scent) *ScentResponse {
	return &ScentResponse{
		ID:        s.ID,
		Name:      s.Name,
		Enabled:   s.Enabled,
		CreatedAt: s.CreatedAt,
	}
}

// FromDomainScents converts a scent list, keeping order.
func FromDomainScents(scents []*domain.Scent) []*ScentResponse {
	result := make([]*ScentResponse, 0, len(scents))
	for _, s := range scents {
		result = append(result, FromDomainScent(s))
	}
	return result
}
