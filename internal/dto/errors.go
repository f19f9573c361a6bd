package dto

import (
	"errors"
)

var (
	ErrNotFound      = errors.New("errRecordNotFound")
	ErrAlreadyExists = errors.New("errAlreadyExists")
)

// FieldError is a single failed validation rule on an inbound payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
