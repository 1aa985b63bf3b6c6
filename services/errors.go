package services

import "errors"

// Closed set of error kinds the HTTP layer maps to status codes. Anything
// not wrapping one of these is treated as internal: logged in full,
// surfaced to the caller as a generic message.
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("service unavailable")
)
