package repair

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("repair not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrDeviceNotFound     = errors.New("device not found")
	ErrServiceNotFound    = errors.New("service not found")
	ErrInvalidStatus      = errors.New("invalid repair status")
	ErrReferenceExhausted = errors.New("could not generate a unique reference number")
)
