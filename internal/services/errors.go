// internal/services/errors.go
package services

import "errors"

// Sentinel errors that handlers map onto HTTP responses. Everything else
// surfaces as an internal failure. None of these propagate past the handler
// of the triggering request.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrInvalidPIN = errors.New("incorrect PIN")
)
