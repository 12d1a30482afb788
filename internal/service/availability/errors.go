package availability

import "errors"

var (
	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("availability service: internal error")
)
