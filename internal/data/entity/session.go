package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is validated here but issued by the external auth service.
type Session struct {
	BaseSimple
	RiderID   uuid.UUID  `db:"rider_id"`
	Token     uuid.UUID  `db:"token"`
	UserAgent *string    `db:"user_agent"`
	IPAddress *string    `db:"ip_address"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
