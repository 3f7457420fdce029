package wire

import (
	"charging-booking/internal/adaptor"
	"charging-booking/internal/data/repository"
	"charging-booking/pkg/middleware"
	"charging-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/bookings - Create new booking
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/bookings - Rider's own bookings, paginated
		r.Get("/api/bookings", bookingHandler.GetRiderBookings)

		// GET /api/bookings/{bookingNo} - Booking details (owner only)
		r.Get("/api/bookings/{bookingNo}", bookingHandler.GetBooking)

		// GET /api/bookings/{bookingNo}/history - Status timeline
		r.Get("/api/bookings/{bookingNo}/history", bookingHandler.GetBookingHistory)

		// PUT /api/bookings/{bookingNo}/cancel - Rider cancel
		r.Put("/api/bookings/{bookingNo}/cancel", bookingHandler.CancelBooking)

		// PUT /api/bookings/{bookingNo}/reschedule - One-shot reschedule
		r.Put("/api/bookings/{bookingNo}/reschedule", bookingHandler.RescheduleBooking)
	})

	// ==================== WEBHOOK ROUTES ====================
	// Payment provider callback; authenticated by the provider's signature at
	// the edge, not by a rider session.
	r.Post("/api/payments/webhook", bookingHandler.ConfirmPayment)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.Rider, log))

		// PUT /api/admin/bookings/{bookingNo}/cancel - Admin cancel with reason
		r.Put("/api/admin/bookings/{bookingNo}/cancel", bookingHandler.AdminCancelBooking)

		// PUT /api/admin/bookings/{bookingNo}/start - Work begins (ASG -> INP)
		r.Put("/api/admin/bookings/{bookingNo}/start", bookingHandler.StartBooking)

		// PUT /api/admin/bookings/{bookingNo}/complete - Work done (INP -> CMP)
		r.Put("/api/admin/bookings/{bookingNo}/complete", bookingHandler.CompleteBooking)
	})
}
