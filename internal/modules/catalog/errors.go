package catalog

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrServiceNotFound  = errors.New("service not found")
	ErrPartNotFound     = errors.New("part not found")
	ErrPartNumberExists = errors.New("part number already exists")
)
