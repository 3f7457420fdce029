package entity

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	Base
	BookingNo       string        `db:"booking_no"` // service-prefixed sequential, e.g. ODC-000042
	ServiceType     ServiceType   `db:"service_type"`
	RiderID         uuid.UUID     `db:"rider_id"`
	VehicleID       uuid.UUID     `db:"vehicle_id"`
	AddressID       uuid.UUID     `db:"address_id"`
	SlotDate        time.Time     `db:"slot_date"`
	StartTime       string        `db:"start_time"`
	Price           int64         `db:"price"` // minor units, server-validated
	CouponCode      *string       `db:"coupon_code"`
	Status          BookingStatus `db:"status"`
	AssignedAgentID *uuid.UUID    `db:"assigned_agent_id"`
	Rescheduled     bool          `db:"rescheduled"`
	PaymentIntentID *string       `db:"payment_intent_id"`
}

// SlotStartsAt returns the booked slot's start instant in the service timezone.
func (b *Booking) SlotStartsAt(loc *time.Location) time.Time {
	return SlotStart(b.SlotDate, b.StartTime, loc)
}
