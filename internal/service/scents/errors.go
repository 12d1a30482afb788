package scents

import "errors"

var (
	// ErrScentNotFound is returned when no scent has the given id.
	ErrScentNotFound = errors.New("scents service: scent not found")

	// ErrDuplicateName is returned when a scent with the name already exists.
	ErrDuplicateName = errors.New("scents service: scent name already exists")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("scents service: invalid input data")

	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("scents service: internal error")
)
