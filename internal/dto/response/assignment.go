package response

import "time"

type AssignmentResponse struct {
	BookingNo    string    `json:"booking_no"`
	AgentID      string    `json:"agent_id"`
	AgentName    string    `json:"agent_name"`
	AssignStatus int       `json:"assign_status"`
	SlotDatetime time.Time `json:"slot_datetime"`
}
