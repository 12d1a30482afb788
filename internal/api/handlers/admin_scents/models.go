package admin_scents

import "github.com/tjsdetailing/booking-service/internal/service/scents/models"

// CreateScentResponse wraps the created scent.
type CreateScentResponse struct {
	Scent *models.ScentResponse `json:"scent"`
}

// SuccessResponse reports a completed toggle or delete.
type SuccessResponse struct {
	Success bool `json:"success"`
}
