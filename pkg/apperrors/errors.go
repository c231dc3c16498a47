package apperrors

import "errors"

// Sentinel errors shared across services and handlers. Services wrap
// them with context via fmt.Errorf("%w: ...") and the HTTP layer maps
// each one to a status code.
var (
	ErrValidation       = errors.New("validation failed")
	ErrUnauthenticated  = errors.New("authentication required")
	ErrInvalidToken     = errors.New("invalid token")
	ErrForbidden        = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)
