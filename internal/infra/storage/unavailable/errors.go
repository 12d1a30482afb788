package unavailable

import "errors"

var (
	// ErrBuildQuery is returned when SQL query construction fails.
	ErrBuildQuery = errors.New("unavailable.repository: failed to build query")

	// ErrExecQuery is returned when SQL query execution fails.
	ErrExecQuery = errors.New("unavailable.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("unavailable.repository: failed to scan row")
)
