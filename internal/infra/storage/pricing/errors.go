package pricing

import "errors"

var (
	// ErrBuildQuery is returned when SQL query construction fails.
	ErrBuildQuery = errors.New("pricing.repository: failed to build query")

	// ErrExecQuery is returned when SQL query execution fails.
	ErrExecQuery = errors.New("pricing.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("pricing.repository: failed to scan row")
)
