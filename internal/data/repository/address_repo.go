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

type AddressRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)
}

type addressRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewAddressRepository(db database.DBTX, log *zap.Logger) AddressRepository {
	return &addressRepository{
		db:  db,
		log: log.With(zap.String("repository", "address")),
	}
}

func (r *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	query := `
		SELECT id, rider_id, label, line1, city, latitude, longitude, created_at, updated_at
		FROM addresses
		WHERE id = $1 AND deleted_at IS NULL
	`

	var address entity.Address
	err := r.db.QueryRow(ctx, query, id).Scan(
		&address.ID,
		&address.RiderID,
		&address.Label,
		&address.Line1,
		&address.City,
		&address.Latitude,
		&address.Longitude,
		&address.CreatedAt,
		&address.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find address by ID",
			zap.Error(err),
			zap.String("address_id", id.String()),
		)
		return nil, fmt.Errorf("find address by ID %s: %w", id.String(), err)
	}

	return &address, nil
}
