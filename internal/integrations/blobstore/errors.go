package blobstore

import "errors"

var (
	// ErrNotConfigured is returned when the store token is missing.
	ErrNotConfigured = errors.New("blobstore client: not configured")

	// ErrInternal is returned on internal client errors.
	ErrInternal = errors.New("blobstore client: internal error")

	// ErrInvalidResponse is returned when the store rejects the upload.
	ErrInvalidResponse = errors.New("blobstore client: invalid response")
)
