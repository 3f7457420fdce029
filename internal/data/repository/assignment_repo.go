package repository

import (
	"context"
	"fmt"

	"charging-booking/internal/data/entity"
	"charging-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *entity.Assignment) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Assignment, error)
	DeleteByBookingAndAgent(ctx context.Context, bookingID, agentID uuid.UUID) error
	DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) error
}

type assignmentRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewAssignmentRepository(db database.DBTX, log *zap.Logger) AssignmentRepository {
	return &assignmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "assignment")),
	}
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *entity.Assignment) error {
	query := `
		INSERT INTO assignments (id, booking_id, agent_id, rider_id, slot_datetime, assign_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		assignment.ID,
		assignment.BookingID,
		assignment.AgentID,
		assignment.RiderID,
		assignment.SlotDatetime,
		assignment.AssignStatus,
		assignment.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create assignment",
			zap.Error(err),
			zap.String("booking_id", assignment.BookingID.String()),
			zap.String("agent_id", assignment.AgentID.String()),
		)
		return fmt.Errorf("create assignment for booking %s: %w", assignment.BookingID.String(), err)
	}

	return nil
}

func (r *assignmentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Assignment, error) {
	query := `
		SELECT id, booking_id, agent_id, rider_id, slot_datetime, assign_status, created_at
		FROM assignments
		WHERE booking_id = $1
	`

	var assignment entity.Assignment
	err := r.db.QueryRow(ctx, query, bookingID).Scan(
		&assignment.ID,
		&assignment.BookingID,
		&assignment.AgentID,
		&assignment.RiderID,
		&assignment.SlotDatetime,
		&assignment.AssignStatus,
		&assignment.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find assignment by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find assignment for booking %s: %w", bookingID.String(), err)
	}

	return &assignment, nil
}

func (r *assignmentRepository) DeleteByBookingAndAgent(ctx context.Context, bookingID, agentID uuid.UUID) error {
	query := `DELETE FROM assignments WHERE booking_id = $1 AND agent_id = $2`

	_, err := r.db.Exec(ctx, query, bookingID, agentID)
	if err != nil {
		r.log.Error("Failed to delete assignment",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("agent_id", agentID.String()),
		)
		return fmt.Errorf("delete assignment for booking %s: %w", bookingID.String(), err)
	}

	return nil
}

func (r *assignmentRepository) DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) error {
	query := `DELETE FROM assignments WHERE booking_id = $1`

	_, err := r.db.Exec(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to delete assignments for booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("delete assignments for booking %s: %w", bookingID.String(), err)
	}

	return nil
}
