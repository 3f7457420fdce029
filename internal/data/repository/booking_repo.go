package repository

import (
	"context"
	"fmt"
	"time"

	"charging-booking/internal/data/entity"
	"charging-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByBookingNo(ctx context.Context, bookingNo string) (*entity.Booking, error)
	FindByBookingNoForUpdate(ctx context.Context, bookingNo string) (*entity.Booking, error)
	FindByRiderID(ctx context.Context, riderID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByRiderID(ctx context.Context, riderID uuid.UUID) (int64, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
	UpdateAssignedAgent(ctx context.Context, bookingID uuid.UUID, agentID *uuid.UUID) error
	UpdateSlotForReschedule(ctx context.Context, bookingID uuid.UUID, slotDate time.Time, startTime string) error
	UpdatePaymentIntent(ctx context.Context, bookingID uuid.UUID, paymentIntentID string) error

	// Capacity queries - must run inside the slot-guard transaction
	CountActiveForSlot(ctx context.Context, serviceType entity.ServiceType, slotDate time.Time, startTime string) (int, error)
	NextBookingSeq(ctx context.Context, serviceType entity.ServiceType) (int64, error)
}

type bookingRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewBookingRepository(db database.DBTX, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, booking_no, service_type, rider_id, vehicle_id, address_id,
	       slot_date, start_time, price, coupon_code, status, assigned_agent_id,
	       rescheduled, payment_intent_id, created_at, updated_at`

func (r *bookingRepository) scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.BookingNo,
		&booking.ServiceType,
		&booking.RiderID,
		&booking.VehicleID,
		&booking.AddressID,
		&booking.SlotDate,
		&booking.StartTime,
		&booking.Price,
		&booking.CouponCode,
		&booking.Status,
		&booking.AssignedAgentID,
		&booking.Rescheduled,
		&booking.PaymentIntentID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, booking_no, service_type, rider_id, vehicle_id, address_id,
		                      slot_date, start_time, price, coupon_code, status, assigned_agent_id,
		                      rescheduled, payment_intent_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.BookingNo,
		booking.ServiceType,
		booking.RiderID,
		booking.VehicleID,
		booking.AddressID,
		booking.SlotDate,
		booking.StartTime,
		booking.Price,
		booking.CouponCode,
		booking.Status,
		booking.AssignedAgentID,
		booking.Rescheduled,
		booking.PaymentIntentID,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_no", booking.BookingNo),
			zap.String("rider_id", booking.RiderID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookingNo, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := r.scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByBookingNo(ctx context.Context, bookingNo string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_no = $1`

	booking, err := r.scanBooking(r.db.QueryRow(ctx, query, bookingNo))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by booking no",
			zap.Error(err),
			zap.String("booking_no", bookingNo),
		)
		return nil, fmt.Errorf("find booking by booking no %s: %w", bookingNo, err)
	}

	return booking, nil
}

// FindByBookingNoForUpdate locks the booking row so cancel and reschedule
// cannot interleave on the same booking.
func (r *bookingRepository) FindByBookingNoForUpdate(ctx context.Context, bookingNo string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_no = $1 FOR UPDATE`

	booking, err := r.scanBooking(r.db.QueryRow(ctx, query, bookingNo))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to lock booking by booking no",
			zap.Error(err),
			zap.String("booking_no", bookingNo),
		)
		return nil, fmt.Errorf("lock booking %s: %w", bookingNo, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByRiderID(ctx context.Context, riderID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE rider_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, riderID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by rider ID",
			zap.Error(err),
			zap.String("rider_id", riderID.String()),
		)
		return nil, fmt.Errorf("find bookings by rider ID %s: %w", riderID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByRiderID(ctx context.Context, riderID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE rider_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, riderID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by rider ID",
			zap.Error(err),
			zap.String("rider_id", riderID.String()),
		)
		return 0, fmt.Errorf("count bookings by rider ID %s: %w", riderID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) UpdateAssignedAgent(ctx context.Context, bookingID uuid.UUID, agentID *uuid.UUID) error {
	query := `UPDATE bookings SET assigned_agent_id = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, agentID)
	if err != nil {
		r.log.Error("Failed to update assigned agent",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("update booking %s assigned agent: %w", bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) UpdateSlotForReschedule(ctx context.Context, bookingID uuid.UUID, slotDate time.Time, startTime string) error {
	query := `
		UPDATE bookings
		SET slot_date = $2, start_time = $3, rescheduled = TRUE, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, bookingID, slotDate, startTime)
	if err != nil {
		r.log.Error("Failed to reschedule booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("reschedule booking %s: %w", bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) UpdatePaymentIntent(ctx context.Context, bookingID uuid.UUID, paymentIntentID string) error {
	query := `UPDATE bookings SET payment_intent_id = $2, updated_at = NOW() WHERE id = $1`

	_, err := r.db.Exec(ctx, query, bookingID, paymentIntentID)
	if err != nil {
		r.log.Error("Failed to update payment intent",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("update booking %s payment intent: %w", bookingID.String(), err)
	}

	return nil
}

// CountActiveForSlot counts bookings still occupying the slot. Callers must
// hold the slot row lock (SlotRepository.FindForUpdate) in the same
// transaction before relying on this count for admission.
func (r *bookingRepository) CountActiveForSlot(ctx context.Context, serviceType entity.ServiceType, slotDate time.Time, startTime string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE service_type = $1 AND slot_date = $2 AND start_time = $3 AND status <> $4
	`

	var count int
	err := r.db.QueryRow(ctx, query, serviceType, slotDate, startTime, entity.StatusCancelled).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count active bookings for slot",
			zap.Error(err),
			zap.String("service_type", string(serviceType)),
			zap.String("start_time", startTime),
		)
		return 0, fmt.Errorf("count active bookings for slot: %w", err)
	}

	return count, nil
}

// NextBookingSeq increments the per-service counter and returns the new
// sequence number for service-prefixed booking IDs.
func (r *bookingRepository) NextBookingSeq(ctx context.Context, serviceType entity.ServiceType) (int64, error) {
	query := `
		INSERT INTO booking_counters (service_type, seq)
		VALUES ($1, 1)
		ON CONFLICT (service_type) DO UPDATE SET seq = booking_counters.seq + 1
		RETURNING seq
	`

	var seq int64
	err := r.db.QueryRow(ctx, query, serviceType).Scan(&seq)
	if err != nil {
		r.log.Error("Failed to get next booking sequence",
			zap.Error(err),
			zap.String("service_type", string(serviceType)),
		)
		return 0, fmt.Errorf("next booking seq for %s: %w", string(serviceType), err)
	}

	return seq, nil
}
