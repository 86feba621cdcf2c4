package domain

// Service is a billable service type from the shop's catalog.
type Service struct {
	ID          int64   `json:"service_id"`
	Description string  `json:"description" validate:"required"`
	Charge      float64 `json:"charge" validate:"gte=0"`
}

// Part is an inventory item consumed by services.
type Part struct {
	ID              int64   `json:"part_id"`
	PartNumber      string  `json:"part_number" validate:"required"`
	Description     string  `json:"description" validate:"required"`
	QuantityInStock int     `json:"quantity_in_stock" validate:"gte=0"`
	Cost            float64 `json:"cost" validate:"gte=0"`
}

// ServicePart is one bill-of-materials row: a part a service consumes and
// how many of it.
type ServicePart struct {
	ID               int64 `json:"id"`
	ServiceID        int64 `json:"service_id"`
	PartID           int64 `json:"part_id"`
	QuantityRequired int   `json:"quantity_required" validate:"gte=1"`

	Part *Part `json:"part,omitempty"`
}
