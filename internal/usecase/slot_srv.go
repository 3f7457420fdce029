package usecase

import (
	"context"
	"time"

	"charging-booking/internal/data/entity"
	"charging-booking/internal/data/repository"
	"charging-booking/internal/dto/request"
	"charging-booking/internal/dto/response"
	"charging-booking/pkg/apperror"
	"charging-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SlotService interface {
	// Admin surface
	CreateSlot(ctx context.Context, req *request.CreateSlotRequest) (*response.SlotResponse, error)
	UpdateSlot(ctx context.Context, slotID string, req *request.UpdateSlotRequest) (*response.SlotResponse, error)

	// GetAvailability lists slots for a service and date with remaining
	// capacity. Disabled slots and closed weekdays report zero remaining.
	GetAvailability(ctx context.Context, serviceType entity.ServiceType, slotDate string) ([]response.SlotAvailabilityResponse, error)
}

type slotService struct {
	repo     *repository.Repository
	policies entity.PolicySet
	loc      *time.Location
	now      func() time.Time
	log      *zap.Logger
}

func NewSlotService(repo *repository.Repository, policies entity.PolicySet, loc *time.Location, log *zap.Logger) SlotService {
	return &slotService{
		repo:     repo,
		policies: policies,
		loc:      loc,
		now:      time.Now,
		log:      log.With(zap.String("service", "slot")),
	}
}

func (s *slotService) CreateSlot(ctx context.Context, req *request.CreateSlotRequest) (*response.SlotResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.WithDetails(apperror.CodeValidation, "Validation failed", errs)
	}

	slotDate, err := utils.ParseDate(req.SlotDate, s.loc)
	if err != nil {
		return nil, apperror.New(apperror.CodeValidation, "Invalid slot date")
	}

	now := s.now()
	slot := &entity.Slot{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ServiceType: entity.ServiceType(req.ServiceType),
		SlotDate:    slotDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Capacity:    req.Capacity,
		Enabled:     req.Enabled,
	}

	if err := s.repo.Slot.Create(ctx, slot); err != nil {
		return nil, apperror.Storage(err)
	}

	s.log.Info("Slot created",
		zap.String("service_type", req.ServiceType),
		zap.String("slot_date", req.SlotDate),
		zap.String("start_time", req.StartTime),
		zap.Int("capacity", req.Capacity),
	)

	resp := response.SlotToResponse(slot)
	return &resp, nil
}

func (s *slotService) UpdateSlot(ctx context.Context, slotID string, req *request.UpdateSlotRequest) (*response.SlotResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.WithDetails(apperror.CodeValidation, "Validation failed", errs)
	}

	id, err := uuid.Parse(slotID)
	if err != nil {
		return nil, apperror.New(apperror.CodeValidation, "Invalid slot ID")
	}

	slot, err := s.repo.Slot.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	if slot == nil {
		return nil, apperror.Newf(apperror.CodeNotFound, "Slot %s not found", slotID)
	}

	// Capacity reductions do not cancel existing bookings; admitted bookings
	// keep their place even when the new capacity is below the active count.
	if req.StartTime != nil {
		slot.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		slot.EndTime = *req.EndTime
	}
	if req.Capacity != nil {
		slot.Capacity = *req.Capacity
	}
	if req.Enabled != nil {
		slot.Enabled = *req.Enabled
	}
	slot.UpdatedAt = s.now()

	if err := s.repo.Slot.Update(ctx, slot); err != nil {
		return nil, apperror.Storage(err)
	}

	s.log.Info("Slot updated",
		zap.String("slot_id", slotID),
		zap.Int("capacity", slot.Capacity),
		zap.Bool("enabled", slot.Enabled),
	)

	resp := response.SlotToResponse(slot)
	return &resp, nil
}

func (s *slotService) GetAvailability(ctx context.Context, serviceType entity.ServiceType, slotDate string) ([]response.SlotAvailabilityResponse, error) {
	policy, ok := s.policies.Get(serviceType)
	if !ok {
		return nil, apperror.New(apperror.CodeValidation, "Invalid service type")
	}

	date, err := utils.ParseDate(slotDate, s.loc)
	if err != nil {
		return nil, apperror.New(apperror.CodeValidation, "Invalid slot date")
	}

	slots, err := s.repo.Slot.FindByServiceAndDate(ctx, serviceType, date)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	open := policy.OpenOn(date.Weekday())
	responses := make([]response.SlotAvailabilityResponse, 0, len(slots))
	for _, slot := range slots {
		avail := response.SlotAvailabilityResponse{
			ID:        slot.ID.String(),
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Capacity:  slot.Capacity,
		}

		if open && slot.Enabled {
			active, err := s.repo.Booking.CountActiveForSlot(ctx, serviceType, date, slot.StartTime)
			if err != nil {
				return nil, apperror.Storage(err)
			}
			if remaining := slot.Capacity - active; remaining > 0 {
				avail.Remaining = remaining
			}
		}

		responses = append(responses, avail)
	}

	return responses, nil
}
