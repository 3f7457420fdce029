package entity

type Role string

const (
	RoleRider Role = "rider"
	RoleAdmin Role = "admin"
)

type Rider struct {
	Base
	Name        string  `db:"name"`
	Email       string  `db:"email"`
	Phone       *string `db:"phone"`
	Role        Role    `db:"role"`
	DeviceToken *string `db:"device_token"`
	IsActive    bool    `db:"is_active"`
}
