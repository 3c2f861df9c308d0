package apperrors

import "errors"

// Typed outcomes shared by the repository and controller layers. Handlers map
// these onto HTTP statuses; nothing in the stack retries them.
var (
	ErrNotFound        = errors.New("record not found")
	ErrConflict        = errors.New("record already exists")
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("insufficient permissions")
)
