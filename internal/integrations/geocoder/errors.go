package geocoder

import "errors"

var (
	// ErrNotConfigured is returned when the API key is missing.
	ErrNotConfigured = errors.New("geocoder client: not configured")

	// ErrInternal is returned on internal client errors.
	ErrInternal = errors.New("geocoder client: internal error")

	// ErrInvalidResponse is returned on an unexpected geocoder reply.
	ErrInvalidResponse = errors.New("geocoder client: invalid response")
)
