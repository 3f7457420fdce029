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

type BookingService interface {
	// Rider endpoints
	CreateBooking(ctx context.Context, riderID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetRiderBookings(ctx context.Context, riderID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBooking(ctx context.Context, riderID uuid.UUID, bookingNo string) (*response.BookingResponse, error)
	GetBookingHistory(ctx context.Context, riderID uuid.UUID, bookingNo string) ([]response.HistoryEntryResponse, error)
	CancelBooking(ctx context.Context, bookingNo string, actor entity.Actor, riderID *uuid.UUID, reason string) error
	RescheduleBooking(ctx context.Context, riderID uuid.UUID, bookingNo string, req *request.RescheduleBookingRequest) (*response.BookingResponse, error)

	// Payment webhook
	ConfirmBooking(ctx context.Context, req *request.ConfirmPaymentRequest) (*response.BookingResponse, error)

	// Agent workflow transitions (admin surface)
	StartBooking(ctx context.Context, bookingNo string) error
	CompleteBooking(ctx context.Context, bookingNo string) error
}

type bookingService struct {
	repo     *repository.Repository
	pricing  PricingService
	sinks    *gateway.Sinks
	policies entity.PolicySet
	loc      *time.Location
	now      func() time.Time
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, pricing PricingService, sinks *gateway.Sinks, policies entity.PolicySet, loc *time.Location, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		pricing:  pricing,
		sinks:    sinks,
		policies: policies,
		loc:      loc,
		now:      time.Now,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, riderID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, apperror.WithDetails(apperror.CodeValidation, "Validation failed", errs)
	}

	serviceType := entity.ServiceType(req.ServiceType)
	policy, ok := s.policies.Get(serviceType)
	if !ok {
		return nil, apperror.New(apperror.CodeValidation, "Invalid service type")
	}

	slotDate, err := utils.ParseDate(req.SlotDate, s.loc)
	if err != nil {
		return nil, apperror.New(apperror.CodeValidation, "Invalid slot date")
	}

	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return nil, apperror.New(apperror.CodeValidation, "Invalid vehicle ID")
	}

	addressID, err := uuid.Parse(req.AddressID)
	if err != nil {
		return nil, apperror.New(apperror.CodeValidation, "Invalid address ID")
	}

	// Ownership checks before anything touches the slot
	vehicle, err := s.repo.Vehicle.FindByID(ctx, vehicleID)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	if vehicle == nil || vehicle.RiderID != riderID {
		return nil, apperror.New(apperror.CodeValidation, "Invalid vehicle selected")
	}

	address, err := s.repo.Address.FindByID(ctx, addressID)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	if address == nil || address.RiderID != riderID {
		return nil, apperror.New(apperror.CodeValidation, "Invalid address selected")
	}

	// Weekday closures zero out capacity before the guard ever runs
	if !policy.OpenOn(slotDate.Weekday()) {
		return nil, apperror.New(apperror.CodeSlotFull, apperror.MsgSlotFull)
	}

	// Temporal rule precedes any locking
	slotStart := entity.SlotStart(slotDate, req.StartTime, s.loc)
	if slotStart.Before(s.now().In(s.loc)) {
		return nil, apperror.New(apperror.CodeSlotInThePast, apperror.MsgSlotInThePast)
	}

	priceResult, err := s.pricing.ValidateSubmittedPrice(ctx, serviceType, req.Price, req.CouponCode, riderID)
	if err != nil {
		return nil, err
	}

	status := entity.StatusPending
	if policy.ConfirmOnCreate {
		status = entity.StatusConfirmed
	}

	now := s.now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ServiceType: serviceType,
		RiderID:     riderID,
		VehicleID:   vehicleID,
		AddressID:   addressID,
		SlotDate:    slotDate,
		StartTime:   req.StartTime,
		Price:       priceResult.Total,
		CouponCode:  req.CouponCode,
		Status:      status,
	}

	err = s.repo.Tx.InTx(ctx, func(txr *repository.Repository) error {
		if err := reserveSlot(ctx, txr, serviceType, slotDate, req.StartTime); err != nil {
			return err
		}

		seq, err := txr.Booking.NextBookingSeq(ctx, serviceType)
		if err != nil {
			return apperror.Storage(err)
		}
		booking.BookingNo = utils.FormatBookingNo(policy.NumberPrefix, seq)

		if err := txr.Booking.Create(ctx, booking); err != nil {
			return apperror.Storage(err)
		}

		if err := txr.History.Create(ctx, newHistoryEntry(booking.ID, status, entity.ActorRider, nil, nil, now)); err != nil {
			return apperror.Storage(err)
		}

		// Coupon usage is recorded only at the confirmed-equivalent write.
		if policy.ConfirmOnCreate && priceResult.Coupon != nil {
			if err := txr.CouponUsage.Create(ctx, newCouponUsage(booking, priceResult.Coupon, now)); err != nil {
				return apperror.Storage(err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_no", booking.BookingNo),
		zap.String("service_type", string(serviceType)),
		zap.String("rider_id", riderID.String()),
		zap.String("status", string(status)),
		zap.Int64("price", booking.Price),
	)

	// Payment session and notifications happen outside the transaction
	if !policy.ConfirmOnCreate {
		intentID, err := s.sinks.Payment.CreateSession(ctx, booking.BookingNo, booking.Price)
		if err != nil {
			s.log.Error("Failed to create payment session",
				zap.Error(err),
				zap.String("booking_no", booking.BookingNo),
			)
		} else {
			booking.PaymentIntentID = &intentID
			if err := s.repo.Booking.UpdatePaymentIntent(ctx, booking.ID, intentID); err != nil {
				s.log.Error("Failed to store payment intent",
					zap.Error(err),
					zap.String("booking_no", booking.BookingNo),
				)
			}
		}
	}

	s.notifyRider(ctx, booking, "Booking received",
		fmt.Sprintf("Your booking %s has been received", booking.BookingNo))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// reserveSlot is the capacity guard: lock the slot's capacity row, count
// bookings still occupying it, admit only under the limit. Must run inside
// the caller's transaction; the row lock serializes concurrent admissions.
func reserveSlot(ctx context.Context, txr *repository.Repository, serviceType entity.ServiceType, slotDate time.Time, startTime string) error {
	slot, err := txr.Slot.FindForUpdate(ctx, serviceType, slotDate, startTime)
	if err != nil {
		return apperror.Storage(err)
	}
	if slot == nil {
		return apperror.New(apperror.CodeSlotInvalid, apperror.MsgSlotInvalid)
	}
	if !slot.Enabled {
		return apperror.New(apperror.CodeSlotFull, apperror.MsgSlotFull)
	}

	activeCount, err := txr.Booking.CountActiveForSlot(ctx, serviceType, slotDate, startTime)
	if err != nil {
		return apperror.Storage(err)
	}
	if activeCount >= slot.Capacity {
		return apperror.New(apperror.CodeSlotFull, apperror.MsgSlotFull)
	}

	return nil
}

func (s *bookingService) ConfirmBooking(ctx context.Context, req *request.ConfirmPaymentRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.WithDetails(apperror.CodeValidation, "Validation failed", errs)
	}

	var booking *entity.Booking
	now := s.now()

	err := s.repo.Tx.InTx(ctx, func(txr *repository.Repository) error {
		var err error
		booking, err = txr.Booking.FindByBookingNoForUpdate(ctx, req.BookingNo)
		if err != nil {
			return apperror.Storage(err)
		}
		if booking == nil {
			return apperror.Newf(apperror.CodeNotFound, "Booking %s not found", req.BookingNo)
		}

		if booking.Status != entity.StatusPending {
			return apperror.Newf(apperror.CodeInvalidState, "Booking %s cannot be confirmed from status %s", req.BookingNo, booking.Status)
		}

		if err := txr.Booking.UpdateStatus(ctx, booking.ID, entity.StatusConfirmed); err != nil {
			return apperror.Storage(err)
		}

		// The gateway reference is stored verbatim; success is the webhook's word
		if err := txr.Booking.UpdatePaymentIntent(ctx, booking.ID, req.PaymentIntentID); err != nil {
			return apperror.Storage(err)
		}

		if err := txr.History.Create(ctx, newHistoryEntry(booking.ID, entity.StatusConfirmed, entity.ActorSystem, nil, nil, now)); err != nil {
			return apperror.Storage(err)
		}

		if booking.CouponCode != nil {
			coupon, err := txr.Coupon.FindByCode(ctx, *booking.CouponCode)
			if err != nil {
				return apperror.Storage(err)
			}
			if coupon != nil {
				if err := txr.CouponUsage.Create(ctx, newCouponUsage(booking, coupon, now)); err != nil {
					return apperror.Storage(err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	booking.Status = entity.StatusConfirmed
	booking.PaymentIntentID = &req.PaymentIntentID

	s.log.Info("Booking confirmed",
		zap.String("booking_no", booking.BookingNo),
		zap.String("payment_intent_id", req.PaymentIntentID),
	)

	s.notifyRider(ctx, booking, "Booking confirmed",
		fmt.Sprintf("Your booking %s is confirmed", booking.BookingNo))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingNo string, actor entity.Actor, riderID *uuid.UUID, reason string) error {
	var booking *entity.Booking
	now := s.now()

	err := s.repo.Tx.InTx(ctx, func(txr *repository.Repository) error {
		var err error
		booking, err = txr.Booking.FindByBookingNoForUpdate(ctx, bookingNo)
		if err != nil {
			return apperror.Storage(err)
		}
		if booking == nil {
			return apperror.Newf(apperror.CodeNotFound, "Booking %s not found", bookingNo)
		}

		// Riders can only cancel their own bookings
		if riderID != nil && booking.RiderID != *riderID {
			return apperror.Newf(apperror.CodeNotFound, "Booking %s not found", bookingNo)
		}

		if !booking.Status.Cancellable() {
			return apperror.Newf(apperror.CodeInvalidState, "Booking %s cannot be cancelled from status %s", bookingNo, booking.Status)
		}

		policy, ok := s.policies.Get(booking.ServiceType)
		if !ok {
			return apperror.New(apperror.CodeValidation, "Invalid service type")
		}

		if policy.CancelLead > 0 {
			deadline := booking.SlotStartsAt(s.loc).Add(-policy.CancelLead)
			if !s.now().In(s.loc).Before(deadline) {
				return apperror.New(apperror.CodeCancelWindowClosed, apperror.MsgCancelWindow)
			}
		}

		if err := txr.Booking.UpdateStatus(ctx, booking.ID, entity.StatusCancelled); err != nil {
			return apperror.Storage(err)
		}

		var reasonPtr *string
		if reason != "" {
			reasonPtr = &reason
		}
		if err := txr.History.Create(ctx, newHistoryEntry(booking.ID, entity.StatusCancelled, actor, reasonPtr, booking.AssignedAgentID, now)); err != nil {
			return apperror.Storage(err)
		}

		// Release the agent: running-order counter and the active assignment row
		if booking.AssignedAgentID != nil {
			if err := txr.Agent.DecrementRunningOrders(ctx, *booking.AssignedAgentID); err != nil {
				return apperror.Storage(err)
			}
			if err := txr.Assignment.DeleteByBookingID(ctx, booking.ID); err != nil {
				return apperror.Storage(err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_no", bookingNo),
		zap.String("cancel_by", string(actor)),
		zap.String("reason", reason),
	)

	booking.Status = entity.StatusCancelled
	s.notifyRider(ctx, booking, "Booking cancelled",
		fmt.Sprintf("Your booking %s has been cancelled", booking.BookingNo))
	if booking.AssignedAgentID != nil {
		s.notifyAgent(ctx, booking, *booking.AssignedAgentID, "Booking cancelled",
			fmt.Sprintf("Booking %s has been cancelled", booking.BookingNo))
	}

	return nil
}

func (s *bookingService) RescheduleBooking(ctx context.Context, riderID uuid.UUID, bookingNo string, req *request.RescheduleBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.WithDetails(apperror.CodeValidation, "Validation failed", errs)
	}

	newDate, err := utils.ParseDate(req.SlotDate, s.loc)
	if err != nil {
		return nil, apperror.New(apperror.CodeValidation, "Invalid slot date")
	}

	var booking *entity.Booking
	now := s.now()

	err = s.repo.Tx.InTx(ctx, func(txr *repository.Repository) error {
		var err error
		booking, err = txr.Booking.FindByBookingNoForUpdate(ctx, bookingNo)
		if err != nil {
			return apperror.Storage(err)
		}
		if booking == nil || booking.RiderID != riderID {
			return apperror.Newf(apperror.CodeNotFound, "Booking %s not found", bookingNo)
		}

		if booking.Rescheduled {
			return apperror.New(apperror.CodeAlreadyRescheduled, apperror.MsgAlreadyRescheduled)
		}

		if booking.Status != entity.StatusConfirmed {
			return apperror.Newf(apperror.CodeInvalidState, "Booking %s cannot be rescheduled from status %s", bookingNo, booking.Status)
		}

		policy, ok := s.policies.Get(booking.ServiceType)
		if !ok {
			return apperror.New(apperror.CodeValidation, "Invalid service type")
		}

		if policy.RescheduleLead > 0 {
			deadline := booking.SlotStartsAt(s.loc).Add(-policy.RescheduleLead)
			if !s.now().In(s.loc).Before(deadline) {
				return apperror.New(apperror.CodeRescheduleWindowClosed, apperror.MsgRescheduleWindow)
			}
		}

		if booking.SlotDate.Equal(newDate) && booking.StartTime == req.StartTime {
			return apperror.New(apperror.CodeValidation, "New slot must differ from the current slot")
		}

		if !policy.OpenOn(newDate.Weekday()) {
			return apperror.New(apperror.CodeSlotFull, apperror.MsgSlotFull)
		}

		newStart := entity.SlotStart(newDate, req.StartTime, s.loc)
		if newStart.Before(s.now().In(s.loc)) {
			return apperror.New(apperror.CodeSlotInThePast, apperror.MsgSlotInThePast)
		}

		// Fresh reservation against the new slot before touching the booking
		if err := reserveSlot(ctx, txr, booking.ServiceType, newDate, req.StartTime); err != nil {
			return err
		}

		if err := txr.Booking.UpdateSlotForReschedule(ctx, booking.ID, newDate, req.StartTime); err != nil {
			return apperror.Storage(err)
		}

		// A reschedule is recorded as a second CNF row; the display layer
		// remaps it to the service's reschedule label.
		if err := txr.History.Create(ctx, newHistoryEntry(booking.ID, entity.StatusConfirmed, entity.ActorRider, nil, nil, now)); err != nil {
			return apperror.Storage(err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	booking.SlotDate = newDate
	booking.StartTime = req.StartTime
	booking.Rescheduled = true

	s.log.Info("Booking rescheduled",
		zap.String("booking_no", bookingNo),
		zap.String("new_date", req.SlotDate),
		zap.String("new_time", req.StartTime),
	)

	s.notifyRider(ctx, booking, "Booking rescheduled",
		fmt.Sprintf("Your booking %s has been moved to %s %s", booking.BookingNo, req.SlotDate, req.StartTime))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) StartBooking(ctx context.Context, bookingNo string) error {
	_, err := s.transition(ctx, bookingNo, entity.StatusAssigned, entity.StatusInProgress)
	return err
}

func (s *bookingService) CompleteBooking(ctx context.Context, bookingNo string) error {
	booking, err := s.transition(ctx, bookingNo, entity.StatusInProgress, entity.StatusCompleted)
	if err != nil {
		return err
	}

	// Invoice generation and the rider's email run after the terminal state
	// commits; completion never waits on delivery.
	if err := s.sinks.Invoice.GenerateInvoice(ctx, bookingNo); err != nil {
		s.log.Error("Failed to request invoice generation",
			zap.Error(err),
			zap.String("booking_no", bookingNo),
		)
	}
	s.emailInvoice(ctx, booking)

	return nil
}

// transition performs a guarded single-step status move with its history row.
func (s *bookingService) transition(ctx context.Context, bookingNo string, from, to entity.BookingStatus) (*entity.Booking, error) {
	now := s.now()

	var booking *entity.Booking
	err := s.repo.Tx.InTx(ctx, func(txr *repository.Repository) error {
		var err error
		booking, err = txr.Booking.FindByBookingNoForUpdate(ctx, bookingNo)
		if err != nil {
			return apperror.Storage(err)
		}
		if booking == nil {
			return apperror.Newf(apperror.CodeNotFound, "Booking %s not found", bookingNo)
		}

		if booking.Status != from {
			return apperror.Newf(apperror.CodeInvalidState, "Booking %s cannot move from status %s to %s", bookingNo, booking.Status, to)
		}

		if err := txr.Booking.UpdateStatus(ctx, booking.ID, to); err != nil {
			return apperror.Storage(err)
		}

		return txrHistoryCreate(ctx, txr, booking.ID, to, entity.ActorAdmin, booking.AssignedAgentID, now)
	})
	if err != nil {
		return nil, err
	}
	booking.Status = to

	s.log.Info("Booking status updated",
		zap.String("booking_no", bookingNo),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
	)

	return booking, nil
}

func (s *bookingService) GetRiderBookings(ctx context.Context, riderID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindByRiderID(ctx, riderID, req.Limit(), req.Offset())
	if err != nil {
		return nil, apperror.Storage(err)
	}

	total, err := s.repo.Booking.CountByRiderID(ctx, riderID)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	responses := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		responses[i] = response.BookingToResponse(b)
	}

	return response.NewPaginatedResponse(responses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetBooking(ctx context.Context, riderID uuid.UUID, bookingNo string) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByBookingNo(ctx, bookingNo)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	if booking == nil || booking.RiderID != riderID {
		return nil, apperror.Newf(apperror.CodeNotFound, "Booking %s not found", bookingNo)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBookingHistory(ctx context.Context, riderID uuid.UUID, bookingNo string) ([]response.HistoryEntryResponse, error) {
	booking, err := s.repo.Booking.FindByBookingNo(ctx, bookingNo)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	if booking == nil || booking.RiderID != riderID {
		return nil, apperror.Newf(apperror.CodeNotFound, "Booking %s not found", bookingNo)
	}

	entries, err := s.repo.History.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	policy, _ := s.policies.Get(booking.ServiceType)
	return response.HistoryToResponses(entries, policy.RescheduleLabel), nil
}

// ==================== HELPERS ====================

func newHistoryEntry(bookingID uuid.UUID, status entity.BookingStatus, actor entity.Actor, reason *string, agentID *uuid.UUID, now time.Time) *entity.BookingHistory {
	return &entity.BookingHistory{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		BookingID: bookingID,
		Status:    status,
		Actor:     actor,
		Reason:    reason,
		AgentID:   agentID,
	}
}

func txrHistoryCreate(ctx context.Context, txr *repository.Repository, bookingID uuid.UUID, status entity.BookingStatus, actor entity.Actor, agentID *uuid.UUID, now time.Time) error {
	if err := txr.History.Create(ctx, newHistoryEntry(bookingID, status, actor, nil, agentID, now)); err != nil {
		return apperror.Storage(err)
	}
	return nil
}

func newCouponUsage(booking *entity.Booking, coupon *entity.Coupon, now time.Time) *entity.CouponUsage {
	return &entity.CouponUsage{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		CouponCode:         coupon.Code,
		RiderID:            booking.RiderID,
		BookingID:          booking.ID,
		DiscountPercentage: coupon.DiscountPercentage,
	}
}

func (s *bookingService) emailInvoice(ctx context.Context, booking *entity.Booking) {
	rider, err := s.repo.Rider.FindByID(ctx, booking.RiderID)
	if err != nil || rider == nil || rider.Email == "" {
		return
	}

	subject := fmt.Sprintf("Invoice for booking %s", booking.BookingNo)
	htmlBody := fmt.Sprintf("<p>Your booking %s is complete. Your invoice will follow shortly.</p>", booking.BookingNo)
	if err := s.sinks.Email.EnqueueEmail(ctx, []string{rider.Email}, subject, htmlBody, nil); err != nil {
		s.log.Error("Failed to enqueue invoice email",
			zap.Error(err),
			zap.String("booking_no", booking.BookingNo),
		)
	}
}

func (s *bookingService) notifyRider(ctx context.Context, booking *entity.Booking, heading, body string) {
	err := s.sinks.Notification.Notify(ctx, gateway.Notification{
		Heading:    heading,
		Body:       body,
		ModuleName: string(booking.ServiceType),
		ToPanel:    "rider",
		FromPanel:  "system",
		ToID:       booking.RiderID,
		DeepLink:   fmt.Sprintf("booking/%s", booking.BookingNo),
	})
	if err != nil {
		s.log.Error("Failed to notify rider",
			zap.Error(err),
			zap.String("booking_no", booking.BookingNo),
		)
	}

	rider, err := s.repo.Rider.FindByID(ctx, booking.RiderID)
	if err != nil || rider == nil || rider.DeviceToken == nil {
		return
	}
	if err := s.sinks.Push.Push(ctx, *rider.DeviceToken, heading, body, "bookings", fmt.Sprintf("booking/%s", booking.BookingNo)); err != nil {
		s.log.Error("Failed to push to rider",
			zap.Error(err),
			zap.String("booking_no", booking.BookingNo),
		)
	}
}

func (s *bookingService) notifyAgent(ctx context.Context, booking *entity.Booking, agentID uuid.UUID, heading, body string) {
	err := s.sinks.Notification.Notify(ctx, gateway.Notification{
		Heading:    heading,
		Body:       body,
		ModuleName: string(booking.ServiceType),
		ToPanel:    "agent",
		FromPanel:  "system",
		ToID:       agentID,
		DeepLink:   fmt.Sprintf("booking/%s", booking.BookingNo),
	})
	if err != nil {
		s.log.Error("Failed to notify agent",
			zap.Error(err),
			zap.String("booking_no", booking.BookingNo),
		)
	}

	agent, err := s.repo.Agent.FindByID(ctx, agentID)
	if err != nil || agent == nil || agent.DeviceToken == nil {
		return
	}
	if err := s.sinks.Push.Push(ctx, *agent.DeviceToken, heading, body, "assignments", fmt.Sprintf("booking/%s", booking.BookingNo)); err != nil {
		s.log.Error("Failed to push to agent",
			zap.Error(err),
			zap.String("booking_no", booking.BookingNo),
		)
	}
}
