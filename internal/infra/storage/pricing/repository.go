package pricing

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tjsdetailing/booking-service/internal/domain"
	"github.com/tjsdetailing/booking-service/pkg/dbmetrics"
	"github.com/tjsdetailing/booking-service/pkg/psqlbuilder"
)

// Repository is the pricing table access layer.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List returns the pricing table ordered for display.
func (r *Repository) List(ctx context.Context) ([]*domain.PricingEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"vehicle_type",
		"interior_price",
		"exterior_price",
		"both_price",
		"sort_order",
		"created_at",
	).
		From("pricing").
		OrderBy("sort_order ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.PricingEntry, 0)
	for rows.Next() {
		var e domain.PricingEntry
		var createdAt sql.NullTime
		err := rows.Scan(
			&e.ID,
			&e.VehicleType,
			&e.InteriorPrice,
			&e.ExteriorPrice,
			&e.BothPrice,
			&e.SortOrder,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		e.CreatedAt = createdAt.Time
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
