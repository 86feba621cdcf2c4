package customer

type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone" binding:"required"`
}
