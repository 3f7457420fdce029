package usecase

import (
	"time"

	"charging-booking/internal/data/entity"
	"charging-booking/internal/data/repository"
	"charging-booking/internal/gateway"
	"charging-booking/pkg/utils"

	"go.uber.org/zap"
)

// Service bundles the application services behind one constructor so wiring
// stays a single call.
type Service struct {
	Booking    BookingService
	Pricing    PricingService
	Slot       SlotService
	Assignment AssignmentService
}

func NewService(repo *repository.Repository, sinks *gateway.Sinks, config *utils.Config, log *zap.Logger) *Service {
	policies := entity.NewPolicySet(
		config.Pricing.MobileChargingBase,
		config.Pricing.PickupChargingBase,
		config.Pricing.RoadsideAssistBase,
	)
	loc := time.FixedZone("operating", config.App.TimezoneOffsetMin*60)

	pricing := NewPricingService(repo, policies, log)
	booking := NewBookingService(repo, pricing, sinks, policies, loc, log)

	return &Service{
		Booking:    booking,
		Pricing:    pricing,
		Slot:       NewSlotService(repo, policies, loc, log),
		Assignment: NewAssignmentService(repo, sinks, loc, log),
	}
}
