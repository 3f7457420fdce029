package wire

import (
	"charging-booking/internal/adaptor"
	"charging-booking/internal/data/repository"
	"charging-booking/pkg/middleware"
	"charging-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAssignment(
	r chi.Router,
	assignmentHandler *adaptor.AssignmentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.Rider, log))

		// PUT /api/admin/bookings/{bookingNo}/assign - Assign or replace the agent
		r.Put("/api/admin/bookings/{bookingNo}/assign", assignmentHandler.AssignAgent)
	})
}
