package entity

import "github.com/google/uuid"

// CouponUsage records one redemption. Written only when the booking reaches
// its confirmed-equivalent state, immutable afterwards.
type CouponUsage struct {
	BaseSimple
	CouponCode         string    `db:"coupon_code"`
	RiderID            uuid.UUID `db:"rider_id"`
	BookingID          uuid.UUID `db:"booking_id"`
	DiscountPercentage int64     `db:"discount_percentage"`
}
