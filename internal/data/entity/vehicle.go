package entity

import "github.com/google/uuid"

type Vehicle struct {
	Base
	RiderID       uuid.UUID `db:"rider_id"`
	PlateNumber   string    `db:"plate_number"`
	Model         string    `db:"model"`
	ConnectorType *string   `db:"connector_type"`
}
