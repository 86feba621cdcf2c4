package domain

import "time"

type Customer struct {
	ID        int64     `json:"customer_id"`
	Name      string    `json:"name" validate:"required"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}
