package pricing

import "errors"

var (
	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("pricing service: internal error")
)
