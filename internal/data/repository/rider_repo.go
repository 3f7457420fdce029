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

type RiderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Rider, error)
}

type riderRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewRiderRepository(db database.DBTX, log *zap.Logger) RiderRepository {
	return &riderRepository{
		db:  db,
		log: log.With(zap.String("repository", "rider")),
	}
}

func (r *riderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rider, error) {
	query := `
		SELECT id, name, email, phone, role, device_token, is_active, created_at, updated_at
		FROM riders
		WHERE id = $1 AND deleted_at IS NULL
	`

	var rider entity.Rider
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rider.ID,
		&rider.Name,
		&rider.Email,
		&rider.Phone,
		&rider.Role,
		&rider.DeviceToken,
		&rider.IsActive,
		&rider.CreatedAt,
		&rider.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rider by ID",
			zap.Error(err),
			zap.String("rider_id", id.String()),
		)
		return nil, fmt.Errorf("find rider by ID %s: %w", id.String(), err)
	}

	return &rider, nil
}
