package response

import (
	"time"

	"charging-booking/internal/data/entity"
)

type BookingResponse struct {
	ID              string    `json:"id"`
	BookingNo       string    `json:"booking_no"`
	ServiceType     string    `json:"service_type"`
	RiderID         string    `json:"rider_id"`
	VehicleID       string    `json:"vehicle_id"`
	AddressID       string    `json:"address_id"`
	SlotDate        string    `json:"slot_date"`
	StartTime       string    `json:"start_time"`
	Price           int64     `json:"price"`
	CouponCode      *string   `json:"coupon_code,omitempty"`
	Status          string    `json:"status"`
	AssignedAgentID *string   `json:"assigned_agent_id,omitempty"`
	Rescheduled     bool      `json:"rescheduled"`
	PaymentIntentID *string   `json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:              b.ID.String(),
		BookingNo:       b.BookingNo,
		ServiceType:     string(b.ServiceType),
		RiderID:         b.RiderID.String(),
		VehicleID:       b.VehicleID.String(),
		AddressID:       b.AddressID.String(),
		SlotDate:        b.SlotDate.Format("2006-01-02"),
		StartTime:       b.StartTime,
		Price:           b.Price,
		CouponCode:      b.CouponCode,
		Status:          string(b.Status),
		Rescheduled:     b.Rescheduled,
		PaymentIntentID: b.PaymentIntentID,
		CreatedAt:       b.CreatedAt,
	}
	if b.AssignedAgentID != nil {
		agentID := b.AssignedAgentID.String()
		resp.AssignedAgentID = &agentID
	}
	return resp
}

// HistoryEntryResponse carries the display status: a rescheduled booking's
// last CNF entry is remapped to the service's reschedule label, the stored
// value stays untouched.
type HistoryEntryResponse struct {
	Status     string    `json:"status"`
	Actor      string    `json:"actor"`
	Reason     *string   `json:"reason,omitempty"`
	AgentID    *string   `json:"agent_id,omitempty"`
	Attachment *string   `json:"attachment,omitempty"`
	Remarks    *string   `json:"remarks,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// HistoryToResponses applies the reschedule display remap: when more than one
// CNF row exists, the last one is shown with the policy's reschedule label.
func HistoryToResponses(entries []*entity.BookingHistory, rescheduleLabel string) []HistoryEntryResponse {
	lastConfirmed := -1
	confirmedCount := 0
	for i, e := range entries {
		if e.Status == entity.StatusConfirmed {
			confirmedCount++
			lastConfirmed = i
		}
	}

	responses := make([]HistoryEntryResponse, len(entries))
	for i, e := range entries {
		status := string(e.Status)
		if confirmedCount > 1 && i == lastConfirmed {
			status = rescheduleLabel
		}

		resp := HistoryEntryResponse{
			Status:     status,
			Actor:      string(e.Actor),
			Reason:     e.Reason,
			Attachment: e.Attachment,
			Remarks:    e.Remarks,
			CreatedAt:  e.CreatedAt,
		}
		if e.AgentID != nil {
			agentID := e.AgentID.String()
			resp.AgentID = &agentID
		}
		responses[i] = resp
	}

	return responses
}
