package device

type CreateDeviceRequest struct {
	DeviceType   string `json:"device_type" binding:"required"`
	Model        string `json:"model" binding:"required"`
	SerialNumber string `json:"serial_number" binding:"required"`
}
