package entity

import "github.com/google/uuid"

type Address struct {
	Base
	RiderID   uuid.UUID `db:"rider_id"`
	Label     string    `db:"label"`
	Line1     string    `db:"line1"`
	City      string    `db:"city"`
	Latitude  float64   `db:"latitude"`
	Longitude float64   `db:"longitude"`
}
