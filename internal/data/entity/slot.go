package entity

import "time"

// Slot is a bookable time bucket for one service type. Capacity is the max
// number of active bookings admitted for (service_type, slot_date, start_time).
type Slot struct {
	Base
	ServiceType ServiceType `db:"service_type"`
	SlotDate    time.Time   `db:"slot_date"`
	StartTime   string      `db:"start_time"` // "15:04"
	EndTime     string      `db:"end_time"`
	Capacity    int         `db:"capacity"`
	Enabled     bool        `db:"enabled"`
}

// SlotStart combines a slot date and an "HH:MM" start time into a concrete
// instant in the service's operating timezone.
func SlotStart(slotDate time.Time, startTime string, loc *time.Location) time.Time {
	t, err := time.Parse("15:04", startTime)
	if err != nil {
		return time.Time{}
	}
	return time.Date(slotDate.Year(), slotDate.Month(), slotDate.Day(),
		t.Hour(), t.Minute(), 0, 0, loc)
}
