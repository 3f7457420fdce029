package request

type CreateBookingRequest struct {
	ServiceType string  `json:"service_type" validate:"required,oneof=mobile_charging pickup_charging roadside_assistance"`
	VehicleID   string  `json:"vehicle_id" validate:"required,uuid"`
	AddressID   string  `json:"address_id" validate:"required,uuid"`
	SlotDate    string  `json:"slot_date" validate:"required,datetime=2006-01-02"`
	StartTime   string  `json:"start_time" validate:"required,datetime=15:04"`
	Price       int64   `json:"price" validate:"gte=0"` // minor units, must match server computation
	CouponCode  *string `json:"coupon_code,omitempty" validate:"omitempty,min=3,max=32"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type AdminCancelBookingRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type RescheduleBookingRequest struct {
	SlotDate  string `json:"slot_date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
}

// ConfirmPaymentRequest is the payment provider's webhook payload.
type ConfirmPaymentRequest struct {
	BookingNo       string `json:"booking_no" validate:"required"`
	PaymentIntentID string `json:"payment_intent_id" validate:"required"`
}
