package admin_scents

import (
	"errors"
	"net/http"

	"github.com/tjsdetailing/booking-service/internal/api/handlers"
	scentsService "github.com/tjsdetailing/booking-service/internal/service/scents"
	"github.com/tjsdetailing/booking-service/internal/service/scents/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNameRequired       = "Scent name is required"
	msgIDRequired         = "Scent ID is required"
	msgDuplicateName      = "A scent with this name already exists"
	msgScentNotFound      = "Scent not found"
)

type Handler struct {
	service ScentsService
	logger  Logger
}

func NewHandler(service ScentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/scents
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/scents - Failed to fetch scents: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/admin/scents
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateScentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/scents - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, scentsService.ErrDuplicateName):
			h.logger.Warn("POST /admin/scents - Duplicate name: %q", req.Name)
			handlers.RespondBadRequest(w, msgDuplicateName)

		case errors.Is(err, scentsService.ErrInvalidInput):
			h.logger.Warn("POST /admin/scents - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgNameRequired)

		default:
			h.logger.Error("POST /admin/scents - Failed to create scent: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/scents - Scent created: id=%s, name=%q", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusOK, CreateScentResponse{Scent: result})
}

// HandleToggle PATCH /api/v1/admin/scents
func (h *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	var req models.ToggleScentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/scents - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetEnabled(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, scentsService.ErrScentNotFound):
			h.logger.Warn("PATCH /admin/scents - Scent not found: id=%s", req.ID)
			handlers.RespondNotFound(w, msgScentNotFound)

		case errors.Is(err, scentsService.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/scents - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgIDRequired)

		default:
			h.logger.Error("PATCH /admin/scents - Failed to toggle scent id=%s: %v", req.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// HandleDelete DELETE /api/v1/admin/scents
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteScentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /admin/scents - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Delete(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, scentsService.ErrScentNotFound):
			h.logger.Warn("DELETE /admin/scents - Scent not found: id=%s", req.ID)
			handlers.RespondNotFound(w, msgScentNotFound)

		case errors.Is(err, scentsService.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/scents - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgIDRequired)

		default:
			h.logger.Error("DELETE /admin/scents - Failed to delete scent id=%s: %v", req.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
