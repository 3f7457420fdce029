package entity

import (
	"time"

	"github.com/google/uuid"
)

type AssignStatus int

const (
	AssignPending  AssignStatus = 0 // awaiting agent acknowledgement
	AssignAccepted AssignStatus = 1
)

// Assignment is the single active agent assignment for a booking. Replacing
// the agent deletes the prior row; assignment history lives in booking_history.
type Assignment struct {
	BaseSimple
	BookingID    uuid.UUID    `db:"booking_id"`
	AgentID      uuid.UUID    `db:"agent_id"`
	RiderID      uuid.UUID    `db:"rider_id"`
	SlotDatetime time.Time    `db:"slot_datetime"`
	AssignStatus AssignStatus `db:"assign_status"`
}
