package unavailable

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("unavailable service: invalid input data")

	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("unavailable service: internal error")
)
