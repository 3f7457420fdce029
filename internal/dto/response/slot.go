package response

import (
	"time"

	"charging-booking/internal/data/entity"
)

type SlotResponse struct {
	ID          string    `json:"id"`
	ServiceType string    `json:"service_type"`
	SlotDate    string    `json:"slot_date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Capacity    int       `json:"capacity"`
	Enabled     bool      `json:"enabled"`
	CreatedAt   time.Time `json:"created_at"`
}

func SlotToResponse(s *entity.Slot) SlotResponse {
	return SlotResponse{
		ID:          s.ID.String(),
		ServiceType: string(s.ServiceType),
		SlotDate:    s.SlotDate.Format("2006-01-02"),
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		Capacity:    s.Capacity,
		Enabled:     s.Enabled,
		CreatedAt:   s.CreatedAt,
	}
}

// SlotAvailabilityResponse is the rider-facing view: remaining already
// accounts for disabled slots and weekday closures.
type SlotAvailabilityResponse struct {
	ID        string `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Capacity  int    `json:"capacity"`
	Remaining int    `json:"remaining"`
}
