package domain

import "time"

// Device is a physical unit brought in for repair. DeviceType is a free-form
// category (smartphone, laptop, tablet, ...), not an enum.
type Device struct {
	ID           int64     `json:"device_id"`
	DeviceType   string    `json:"device_type" validate:"required"`
	Model        string    `json:"model" validate:"required"`
	SerialNumber string    `json:"serial_number" validate:"required"`
	CreatedAt    time.Time `json:"created_at"`
}
