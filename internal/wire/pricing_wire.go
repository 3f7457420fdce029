package wire

import (
	"charging-booking/internal/adaptor"
	"charging-booking/internal/data/repository"
	"charging-booking/pkg/middleware"
	"charging-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePricing(
	r chi.Router,
	pricingHandler *adaptor.PricingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/price?service_type=...&coupon_code=... - Authoritative quote
		r.Get("/api/price", pricingHandler.GetQuote)
	})
}
