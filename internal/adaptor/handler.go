package adaptor

import (
	"errors"
	"net/http"

	"charging-booking/internal/usecase"
	"charging-booking/pkg/apperror"
	"charging-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Booking    *BookingHandler
	Slot       *SlotHandler
	Assignment *AssignmentHandler
	Pricing    *PricingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking:    NewBookingHandler(service.Booking, log),
		Slot:       NewSlotHandler(service.Slot, log),
		Assignment: NewAssignmentHandler(service.Assignment, log),
		Pricing:    NewPricingHandler(service.Pricing, log),
	}
}

// writeServiceError maps a business error code to its HTTP status. Unclassified
// errors are treated as storage failures and hidden behind a generic 500.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		log.Error("Unclassified error", zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	switch appErr.Code {
	case apperror.CodeNotFound:
		utils.ResponseNotFound(w, appErr.Message)
	case apperror.CodeValidation, apperror.CodeSlotInvalid:
		utils.ResponseBadRequest(w, appErr.Message, appErr.Details)
	case apperror.CodeSlotFull,
		apperror.CodeInvalidState,
		apperror.CodeAlreadyAssigned,
		apperror.CodeAlreadyRescheduled:
		utils.ResponseConflict(w, appErr.Message, appErr.Details)
	case apperror.CodePriceMismatch,
		apperror.CodeCoupon,
		apperror.CodeSlotInThePast,
		apperror.CodeCancelWindowClosed,
		apperror.CodeRescheduleWindowClosed:
		utils.ResponseUnprocessable(w, appErr.Message, appErr.Details)
	default:
		log.Error("Storage error", zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
