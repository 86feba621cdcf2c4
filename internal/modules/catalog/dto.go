package catalog

type CreateServiceRequest struct {
	Description string  `json:"description" binding:"required"`
	Charge      float64 `json:"charge" binding:"gte=0"`
}

type CreatePartRequest struct {
	PartNumber      string  `json:"part_number" binding:"required"`
	Description     string  `json:"description" binding:"required"`
	QuantityInStock int     `json:"quantity_in_stock" binding:"gte=0"`
	Cost            float64 `json:"cost" binding:"gte=0"`
}

type AddPartRequest struct {
	PartID           int64 `json:"part_id" binding:"required"`
	QuantityRequired int   `json:"quantity_required" binding:"omitempty,gte=1"`
}
