package usecase

import (
	"context"
	"fmt"
	"time"

	"charging-booking/internal/data/entity"
	"charging-booking/internal/data/repository"
	"charging-booking/internal/dto/request"
	"charging-booking/internal/dto/response"
	"charging-booking/internal/gateway"
	"charging-booking/pkg/apperror"
	"charging-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AssignmentService interface {
	// AssignAgent assigns or replaces the agent on a booking. Re-assigning the
	// same agent is rejected; assigning a different agent replaces the prior one.
	AssignAgent(ctx context.Context, bookingNo string, req *request.AssignAgentRequest) (*response.AssignmentResponse, error)
}

type assignmentService struct {
	repo  *repository.Repository
	sinks *gateway.Sinks
	loc   *time.Location
	now   func() time.Time
	log   *zap.Logger
}

func NewAssignmentService(repo *repository.Repository, sinks *gateway.Sinks, loc *time.Location, log *zap.Logger) AssignmentService {
	return &assignmentService{
		repo:  repo,
		sinks: sinks,
		loc:   loc,
		now:   time.Now,
		log:   log.With(zap.String("service", "assignment")),
	}
}

func (s *assignmentService) AssignAgent(ctx context.Context, bookingNo string, req *request.AssignAgentRequest) (*response.AssignmentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.WithDetails(apperror.CodeValidation, "Validation failed", errs)
	}

	agentID, err := uuid.Parse(req.AgentID)
	if err != nil {
		return nil, apperror.New(apperror.CodeValidation, "Invalid agent ID")
	}

	var (
		booking *entity.Booking
		agent   *entity.Agent
	)
	now := s.now()

	err = s.repo.Tx.InTx(ctx, func(txr *repository.Repository) error {
		var err error
		booking, err = txr.Booking.FindByBookingNoForUpdate(ctx, bookingNo)
		if err != nil {
			return apperror.Storage(err)
		}
		if booking == nil {
			return apperror.Newf(apperror.CodeNotFound, "Booking %s not found", bookingNo)
		}

		switch booking.Status {
		case entity.StatusConfirmed, entity.StatusAssigned:
		default:
			return apperror.Newf(apperror.CodeInvalidState, "Booking %s cannot be assigned from status %s", bookingNo, booking.Status)
		}

		agent, err = txr.Agent.FindByID(ctx, agentID)
		if err != nil {
			return apperror.Storage(err)
		}
		if agent == nil || !agent.IsActive {
			return apperror.New(apperror.CodeValidation, "Invalid agent selected")
		}

		if booking.AssignedAgentID != nil && *booking.AssignedAgentID == agentID {
			return apperror.Newf(apperror.CodeAlreadyAssigned, "Booking is already assigned to %s", agent.Name)
		}

		// Replacement: release the previous agent first
		if booking.AssignedAgentID != nil {
			if err := txr.Assignment.DeleteByBookingAndAgent(ctx, booking.ID, *booking.AssignedAgentID); err != nil {
				return apperror.Storage(err)
			}
			if err := txr.Agent.DecrementRunningOrders(ctx, *booking.AssignedAgentID); err != nil {
				return apperror.Storage(err)
			}
		}

		assignment := &entity.Assignment{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			BookingID:    booking.ID,
			AgentID:      agentID,
			RiderID:      booking.RiderID,
			SlotDatetime: booking.SlotStartsAt(s.loc),
			AssignStatus: entity.AssignPending,
		}
		if err := txr.Assignment.Create(ctx, assignment); err != nil {
			return apperror.Storage(err)
		}

		if err := txr.Agent.IncrementRunningOrders(ctx, agentID); err != nil {
			return apperror.Storage(err)
		}

		if err := txr.Booking.UpdateAssignedAgent(ctx, booking.ID, &agentID); err != nil {
			return apperror.Storage(err)
		}

		// First assignment advances the lifecycle; a replacement keeps the
		// current status.
		if booking.Status == entity.StatusConfirmed {
			if err := txr.Booking.UpdateStatus(ctx, booking.ID, entity.StatusAssigned); err != nil {
				return apperror.Storage(err)
			}
			booking.Status = entity.StatusAssigned
		}

		return txrHistoryCreate(ctx, txr, booking.ID, entity.StatusAssigned, entity.ActorAdmin, &agentID, now)
	})
	if err != nil {
		return nil, err
	}

	booking.AssignedAgentID = &agentID

	s.log.Info("Agent assigned",
		zap.String("booking_no", bookingNo),
		zap.String("agent_id", agentID.String()),
		zap.String("agent_name", agent.Name),
	)

	s.notifyAssignment(ctx, booking, agent)

	return &response.AssignmentResponse{
		BookingNo:    booking.BookingNo,
		AgentID:      agentID.String(),
		AgentName:    agent.Name,
		AssignStatus: int(entity.AssignPending),
		SlotDatetime: booking.SlotStartsAt(s.loc),
	}, nil
}

func (s *assignmentService) notifyAssignment(ctx context.Context, booking *entity.Booking, agent *entity.Agent) {
	heading := "New assignment"
	body := fmt.Sprintf("Booking %s has been assigned to you", booking.BookingNo)

	err := s.sinks.Notification.Notify(ctx, gateway.Notification{
		Heading:    heading,
		Body:       body,
		ModuleName: string(booking.ServiceType),
		ToPanel:    "agent",
		FromPanel:  "admin",
		ToID:       agent.ID,
		DeepLink:   fmt.Sprintf("booking/%s", booking.BookingNo),
	})
	if err != nil {
		s.log.Error("Failed to notify agent of assignment",
			zap.Error(err),
			zap.String("booking_no", booking.BookingNo),
		)
	}

	if agent.DeviceToken != nil {
		if err := s.sinks.Push.Push(ctx, *agent.DeviceToken, heading, body, "assignments", fmt.Sprintf("booking/%s", booking.BookingNo)); err != nil {
			s.log.Error("Failed to push assignment to agent",
				zap.Error(err),
				zap.String("booking_no", booking.BookingNo),
			)
		}
	}
}
