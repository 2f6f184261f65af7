package dispatch

import "errors"

var (
	// ErrMissingContactFields is returned when name, email, or company is absent.
	ErrMissingContactFields = errors.New("name, email, and company are required")

	// ErrSenderNotConfigured is returned when no email provider credential is available.
	ErrSenderNotConfigured = errors.New("email sender is not configured")
)
