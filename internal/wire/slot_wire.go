package wire

import (
	"charging-booking/internal/adaptor"
	"charging-booking/internal/data/repository"
	"charging-booking/pkg/middleware"
	"charging-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSlot(
	r chi.Router,
	slotHandler *adaptor.SlotHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/slots?service_type=...&date=... - Availability with remaining capacity
		r.Get("/api/slots", slotHandler.GetAvailability)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/slots", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.Rider, log))

		// POST /api/admin/slots - Create a slot
		r.Post("/", slotHandler.CreateSlot)

		// PUT /api/admin/slots/{slotID} - Update capacity/times/enabled
		r.Put("/{slotID}", slotHandler.UpdateSlot)
	})
}
