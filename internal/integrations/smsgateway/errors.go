package smsgateway

import "errors"

var (
	// ErrNotConfigured is returned when the gateway credentials are missing.
	ErrNotConfigured = errors.New("smsgateway client: not configured")

	// ErrInternal is returned on internal client errors.
	ErrInternal = errors.New("smsgateway client: internal error")

	// ErrInvalidResponse is returned when the gateway rejects the message.
	ErrInvalidResponse = errors.New("smsgateway client: invalid response")
)
