package apperror

import (
	"errors"
	"fmt"
)

// Code classifies business failures so handlers can map them to HTTP statuses
// without matching on message strings.
type Code string

const (
	CodeValidation             Code = "validation"
	CodePriceMismatch          Code = "price_mismatch"
	CodeCoupon                 Code = "coupon"
	CodeSlotInvalid            Code = "slot_invalid"
	CodeSlotFull               Code = "slot_full"
	CodeSlotInThePast          Code = "slot_in_the_past"
	CodeAlreadyAssigned        Code = "already_assigned_to_same_agent"
	CodeNotFound               Code = "not_found"
	CodeAlreadyRescheduled     Code = "already_rescheduled"
	CodeCancelWindowClosed     Code = "cancellation_window_closed"
	CodeRescheduleWindowClosed Code = "reschedule_window_closed"
	CodeInvalidState           Code = "invalid_state"
	CodeStorage                Code = "storage"
)

// Stable user-facing messages. External clients pattern-match on some of
// these (notably MsgCouponRequired); do not reword.
const (
	MsgCouponRequired     = "coupon_code is required"
	MsgCouponInvalid      = "Invalid coupon code"
	MsgCouponExpired      = "Coupon code is expired"
	MsgCouponWrongService = "This coupon is not applicable on this booking type"
	MsgCouponUsageCap     = "You have used this coupon the maximum number of times"
	MsgPriceMismatch      = "Submitted price does not match the calculated price"
	MsgSlotFull           = "Booking slots are full, please select another slot"
	MsgSlotInvalid        = "Invalid slot selected"
	MsgSlotInThePast      = "Slot time has already passed"
	MsgAlreadyRescheduled = "Booking has already been rescheduled"
	MsgCancelWindow       = "Booking can no longer be cancelled this close to the slot time"
	MsgRescheduleWindow   = "Booking can no longer be rescheduled this close to the slot time"
)

type Error struct {
	Code    Code
	Message string
	Details any   // e.g. the server-computed price on a price mismatch
	Err     error // wrapped cause, optional
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func WithDetails(code Code, message string, details any) *Error {
	return &Error{Code: code, Message: message, Details: details}
}

// Storage wraps an unexpected database/infrastructure failure. Requests
// failing with this code are safe to retry whole.
func Storage(err error) *Error {
	return &Error{Code: CodeStorage, Message: "storage failure", Err: err}
}

// CodeOf extracts the business code from an error chain. Unclassified errors
// report CodeStorage so they surface as 500s.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeStorage
}

func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// DetailsOf returns the Details payload when the chain carries one.
func DetailsOf(err error) any {
	var e *Error
	if errors.As(err, &e) {
		return e.Details
	}
	return nil
}
