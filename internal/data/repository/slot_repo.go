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

type SlotRepository interface {
	Create(ctx context.Context, slot *entity.Slot) error
	Update(ctx context.Context, slot *entity.Slot) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Slot, error)
	FindByServiceAndDate(ctx context.Context, serviceType entity.ServiceType, slotDate time.Time) ([]*entity.Slot, error)

	// FindForUpdate locks the slot's capacity row for the rest of the
	// transaction. Concurrent admissions for the same slot serialize here.
	FindForUpdate(ctx context.Context, serviceType entity.ServiceType, slotDate time.Time, startTime string) (*entity.Slot, error)
}

type slotRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewSlotRepository(db database.DBTX, log *zap.Logger) SlotRepository {
	return &slotRepository{
		db:  db,
		log: log.With(zap.String("repository", "slot")),
	}
}

const slotColumns = `id, service_type, slot_date, start_time, end_time, capacity, enabled, created_at, updated_at`

func (r *slotRepository) scanSlot(row pgx.Row) (*entity.Slot, error) {
	var slot entity.Slot
	err := row.Scan(
		&slot.ID,
		&slot.ServiceType,
		&slot.SlotDate,
		&slot.StartTime,
		&slot.EndTime,
		&slot.Capacity,
		&slot.Enabled,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *slotRepository) Create(ctx context.Context, slot *entity.Slot) error {
	query := `
		INSERT INTO slots (id, service_type, slot_date, start_time, end_time, capacity, enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		slot.ID,
		slot.ServiceType,
		slot.SlotDate,
		slot.StartTime,
		slot.EndTime,
		slot.Capacity,
		slot.Enabled,
		slot.CreatedAt,
		slot.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create slot",
			zap.Error(err),
			zap.String("service_type", string(slot.ServiceType)),
			zap.String("start_time", slot.StartTime),
		)
		return fmt.Errorf("create slot: %w", err)
	}

	return nil
}

func (r *slotRepository) Update(ctx context.Context, slot *entity.Slot) error {
	query := `
		UPDATE slots
		SET start_time = $2, end_time = $3, capacity = $4, enabled = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		slot.ID,
		slot.StartTime,
		slot.EndTime,
		slot.Capacity,
		slot.Enabled,
		slot.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update slot",
			zap.Error(err),
			zap.String("slot_id", slot.ID.String()),
		)
		return fmt.Errorf("update slot %s: %w", slot.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("slot %s not found", slot.ID.String())
	}

	return nil
}

func (r *slotRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM slots WHERE id = $1`

	slot, err := r.scanSlot(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find slot by ID",
			zap.Error(err),
			zap.String("slot_id", id.String()),
		)
		return nil, fmt.Errorf("find slot by ID %s: %w", id.String(), err)
	}

	return slot, nil
}

func (r *slotRepository) FindByServiceAndDate(ctx context.Context, serviceType entity.ServiceType, slotDate time.Time) ([]*entity.Slot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM slots
		WHERE service_type = $1 AND slot_date = $2
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query, serviceType, slotDate)
	if err != nil {
		r.log.Error("Failed to find slots by service and date",
			zap.Error(err),
			zap.String("service_type", string(serviceType)),
		)
		return nil, fmt.Errorf("find slots for %s: %w", string(serviceType), err)
	}
	defer rows.Close()

	var slots []*entity.Slot
	for rows.Next() {
		slot, err := r.scanSlot(rows)
		if err != nil {
			r.log.Error("Failed to scan slot row", zap.Error(err))
			return nil, fmt.Errorf("scan slot row: %w", err)
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

func (r *slotRepository) FindForUpdate(ctx context.Context, serviceType entity.ServiceType, slotDate time.Time, startTime string) (*entity.Slot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM slots
		WHERE service_type = $1 AND slot_date = $2 AND start_time = $3
		FOR UPDATE
	`

	slot, err := r.scanSlot(r.db.QueryRow(ctx, query, serviceType, slotDate, startTime))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to lock slot",
			zap.Error(err),
			zap.String("service_type", string(serviceType)),
			zap.String("start_time", startTime),
		)
		return nil, fmt.Errorf("lock slot for %s %s: %w", string(serviceType), startTime, err)
	}

	return slot, nil
}
