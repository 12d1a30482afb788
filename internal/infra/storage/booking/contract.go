package booking

import (
	"context"
	"database/sql"

	"github.com/tjsdetailing/booking-service/pkg/dbmetrics"
)

// Reuse the dbmetrics interfaces so the repository works over *sql.DB and the
// instrumented wrapper alike.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions. Implemented by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
