// internal/wire/wire.go
package wire

import (
	"net/http"

	"charging-booking/internal/adaptor"
	"charging-booking/internal/data/repository"
	"charging-booking/internal/gateway"
	"charging-booking/internal/usecase"
	"charging-booking/pkg/middleware"
	"charging-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

func Wiring(repo *repository.Repository, sinks *gateway.Sinks, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, sinks, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireBooking(r, handler.Booking, repo, config, logger)
	wireSlot(r, handler.Slot, repo, config, logger)
	wireAssignment(r, handler.Assignment, repo, config, logger)
	wirePricing(r, handler.Pricing, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
