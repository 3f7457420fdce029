package entity

import "github.com/google/uuid"

// BookingHistory is one row of the append-only audit trail. Rows are never
// updated or deleted; a rescheduled booking accumulates a second CNF row.
type BookingHistory struct {
	BaseSimple
	BookingID  uuid.UUID     `db:"booking_id"`
	Status     BookingStatus `db:"status"`
	Actor      Actor         `db:"actor"`
	Reason     *string       `db:"reason"`
	AgentID    *uuid.UUID    `db:"agent_id"`
	Attachment *string       `db:"attachment"`
	Remarks    *string       `db:"remarks"`
}
