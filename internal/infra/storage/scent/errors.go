package scent

import "errors"

var (
	// ErrScentNotFound is returned when no scent matches the given id.
	ErrScentNotFound = errors.New("scent.repository: scent not found")

	// ErrDuplicateName is returned when an insert violates the unique scent
	// name constraint.
	ErrDuplicateName = errors.New("scent.repository: scent name already exists")

	// ErrBuildQuery is returned when SQL query construction fails.
	ErrBuildQuery = errors.New("scent.repository: failed to build query")

	// ErrExecQuery is returned when SQL query execution fails.
	ErrExecQuery = errors.New("scent.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("scent.repository: failed to scan row")
)
