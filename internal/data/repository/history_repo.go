package repository

import (
	"context"
	"fmt"

	"charging-booking/internal/data/entity"
	"charging-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HistoryRepository is append-only: no update or delete methods exist, and
// none may be added. Reschedules and cancellations always add rows.
type HistoryRepository interface {
	Create(ctx context.Context, hist *entity.BookingHistory) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingHistory, error)
}

type historyRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewHistoryRepository(db database.DBTX, log *zap.Logger) HistoryRepository {
	return &historyRepository{
		db:  db,
		log: log.With(zap.String("repository", "history")),
	}
}

func (r *historyRepository) Create(ctx context.Context, hist *entity.BookingHistory) error {
	query := `
		INSERT INTO booking_history (id, booking_id, status, actor, reason, agent_id, attachment, remarks, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		hist.ID,
		hist.BookingID,
		hist.Status,
		hist.Actor,
		hist.Reason,
		hist.AgentID,
		hist.Attachment,
		hist.Remarks,
		hist.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create history entry",
			zap.Error(err),
			zap.String("booking_id", hist.BookingID.String()),
			zap.String("status", string(hist.Status)),
		)
		return fmt.Errorf("create history entry for %s: %w", hist.BookingID.String(), err)
	}

	return nil
}

func (r *historyRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingHistory, error) {
	query := `
		SELECT id, booking_id, status, actor, reason, agent_id, attachment, remarks, created_at
		FROM booking_history
		WHERE booking_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find history by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find history for booking %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var entries []*entity.BookingHistory
	for rows.Next() {
		var hist entity.BookingHistory
		err := rows.Scan(
			&hist.ID,
			&hist.BookingID,
			&hist.Status,
			&hist.Actor,
			&hist.Reason,
			&hist.AgentID,
			&hist.Attachment,
			&hist.Remarks,
			&hist.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan history row", zap.Error(err))
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		entries = append(entries, &hist)
	}

	return entries, nil
}
