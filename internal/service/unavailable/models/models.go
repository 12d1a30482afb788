package models

import (
	"time"

	"github.com/tjsdetailing/booking-service/internal/domain"
)

// SlotInput is one date plus block target in a batch request.
type SlotInput struct {
	Date      string `json:"date"`
	TimeOfDay string `json:"timeOfDay"`
}

// AddSlotsRequest blocks a batch of slots.
type AddSlotsRequest struct {
	Slots []SlotInput `json:"slots"`
}

// RemoveSlotsRequest unblocks a batch of slots.
type RemoveSlotsRequest struct {
	Slots []SlotInput `json:"slots"`
}

// SlotResponse is one stored block.
type SlotResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	TimeOfDay string    `json:"timeOfDay"`
	CreatedAt time.Time `json:"createdAt"`
}

// SlotListResponse is the full block list.
type SlotListResponse struct {
	Slots []*SlotResponse `json:"slots"`
}

// FromDomainSlot converts a domain unavailable slot into the response view.
func FromDomainSlot(s *domain.UnavailableSlot) *SlotResponse {
	return &SlotResponse{
		ID:        s.ID,
		Date:      s.Date,
		TimeOfDay: string(s.TimeOfDay),
		CreatedAt: s.CreatedAt,
	}
}

// FromDomainSlots converts a slot list, keeping order.
func FromDomainSlots(slots []*domain.UnavailableSlot) []*SlotResponse {
	result := make([]*SlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, FromDomainSlot(s))
	}
	return result
}
