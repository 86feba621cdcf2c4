package device

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("device not found")
	ErrSerialNumberExists = errors.New("serial number already exists")
)
