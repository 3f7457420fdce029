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

type VehicleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
}

type vehicleRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewVehicleRepository(db database.DBTX, log *zap.Logger) VehicleRepository {
	return &vehicleRepository{
		db:  db,
		log: log.With(zap.String("repository", "vehicle")),
	}
}

func (r *vehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	query := `
		SELECT id, rider_id, plate_number, model, connector_type, created_at, updated_at
		FROM vehicles
		WHERE id = $1 AND deleted_at IS NULL
	`

	var vehicle entity.Vehicle
	err := r.db.QueryRow(ctx, query, id).Scan(
		&vehicle.ID,
		&vehicle.RiderID,
		&vehicle.PlateNumber,
		&vehicle.Model,
		&vehicle.ConnectorType,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find vehicle by ID",
			zap.Error(err),
			zap.String("vehicle_id", id.String()),
		)
		return nil, fmt.Errorf("find vehicle by ID %s: %w", id.String(), err)
	}

	return &vehicle, nil
}
