package entity

// Agent is the field technician fulfilling assigned bookings. RunningOrders
// counts bookings currently on the agent's plate; cancellation releases one.
type Agent struct {
	Base
	Name          string  `db:"name"`
	Phone         string  `db:"phone"`
	DeviceToken   *string `db:"device_token"`
	RunningOrders int     `db:"running_orders"`
	IsActive      bool    `db:"is_active"`
}
