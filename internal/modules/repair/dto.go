package repair

type CreateRepairRequest struct {
	CustomerID         int64  `json:"customer_id" binding:"required"`
	DeviceID           int64  `json:"device_id" binding:"required"`
	ProblemDescription string `json:"problem_description" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in_progress completed"`
}

type AddServiceRequest struct {
	ServiceID int64 `json:"service_id" binding:"required"`
}
