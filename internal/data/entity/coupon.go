package entity

import "time"

type Coupon struct {
	Base
	Code               string      `db:"code"`
	BookingFor         ServiceType `db:"booking_for"`
	DiscountPercentage int64       `db:"discount_percentage"`
	StartDate          time.Time   `db:"start_date"`
	EndDate            time.Time   `db:"end_date"`
	Status             int         `db:"status"`
	UserPerUser        int         `db:"user_per_user"` // per-rider usage cap
}

// Expired reports whether the coupon's validity window has passed. end_date is
// inclusive: a coupon expiring today is still usable today.
func (c *Coupon) Expired(today time.Time) bool {
	y, m, d := today.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	return c.EndDate.Before(startOfDay)
}
