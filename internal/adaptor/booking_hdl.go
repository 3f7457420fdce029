package adaptor

import (
	"encoding/json"
	"net/http"

	"charging-booking/internal/data/entity"
	"charging-booking/internal/dto/request"
	"charging-booking/internal/usecase"
	"charging-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (protected)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	riderID, ok := utils.GetRiderIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), riderID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetRiderBookings handles GET /api/bookings (protected)
func (h *BookingHandler) GetRiderBookings(w http.ResponseWriter, r *http.Request) {
	riderID, ok := utils.GetRiderIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.service.GetRiderBookings(r.Context(), riderID, req)
	if err != nil {
		writeServiceError(w, h.log, err, "get rider bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBooking handles GET /api/bookings/{bookingNo} (protected)
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	riderID, ok := utils.GetRiderIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingNo := chi.URLParam(r, "bookingNo")

	booking, err := h.service.GetBooking(r.Context(), riderID, bookingNo)
	if err != nil {
		writeServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// GetBookingHistory handles GET /api/bookings/{bookingNo}/history (protected)
func (h *BookingHandler) GetBookingHistory(w http.ResponseWriter, r *http.Request) {
	riderID, ok := utils.GetRiderIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingNo := chi.URLParam(r, "bookingNo")

	history, err := h.service.GetBookingHistory(r.Context(), riderID, bookingNo)
	if err != nil {
		writeServiceError(w, h.log, err, "get booking history")
		return
	}

	utils.ResponseSuccess(w, "success", history)
}

// CancelBooking handles PUT /api/bookings/{bookingNo}/cancel (protected)
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	riderID, ok := utils.GetRiderIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingNo := chi.URLParam(r, "bookingNo")

	var req request.CancelBookingRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.ResponseBadRequest(w, "Invalid request body", nil)
			return
		}
	}

	if err := h.service.CancelBooking(r.Context(), bookingNo, entity.ActorRider, &riderID, req.Reason); err != nil {
		writeServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", nil)
}

// RescheduleBooking handles PUT /api/bookings/{bookingNo}/reschedule (protected)
func (h *BookingHandler) RescheduleBooking(w http.ResponseWriter, r *http.Request) {
	riderID, ok := utils.GetRiderIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingNo := chi.URLParam(r, "bookingNo")

	var req request.RescheduleBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.RescheduleBooking(r.Context(), riderID, bookingNo, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "reschedule booking")
		return
	}

	utils.ResponseSuccess(w, "Booking rescheduled", booking)
}

// ConfirmPayment handles POST /api/payments/webhook (provider callback, no session)
func (h *BookingHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var req request.ConfirmPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.ConfirmBooking(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "confirm payment")
		return
	}

	utils.ResponseSuccess(w, "Booking confirmed", booking)
}

// AdminCancelBooking handles PUT /api/admin/bookings/{bookingNo}/cancel (admin)
func (h *BookingHandler) AdminCancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingNo := chi.URLParam(r, "bookingNo")

	var req request.AdminCancelBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	if validationErrors := utils.ValidateStruct(&req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.CancelBooking(r.Context(), bookingNo, entity.ActorAdmin, nil, req.Reason); err != nil {
		writeServiceError(w, h.log, err, "admin cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", nil)
}

// StartBooking handles PUT /api/admin/bookings/{bookingNo}/start (admin)
func (h *BookingHandler) StartBooking(w http.ResponseWriter, r *http.Request) {
	bookingNo := chi.URLParam(r, "bookingNo")

	if err := h.service.StartBooking(r.Context(), bookingNo); err != nil {
		writeServiceError(w, h.log, err, "start booking")
		return
	}

	utils.ResponseSuccess(w, "Booking started", nil)
}

// CompleteBooking handles PUT /api/admin/bookings/{bookingNo}/complete (admin)
func (h *BookingHandler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	bookingNo := chi.URLParam(r, "bookingNo")

	if err := h.service.CompleteBooking(r.Context(), bookingNo); err != nil {
		writeServiceError(w, h.log, err, "complete booking")
		return
	}

	utils.ResponseSuccess(w, "Booking completed", nil)
}
