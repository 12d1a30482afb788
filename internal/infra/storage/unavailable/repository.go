package unavailable

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/tjsdetailing/booking-service/internal/domain"
	"github.com/tjsdetailing/booking-service/pkg/dbmetrics"
	"github.com/tjsdetailing/booking-service/pkg/psqlbuilder"
)

// Repository is the unavailable_slots table access layer.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Add inserts one row per slot. Duplicates are allowed; they are harmless for
// availability purposes.
func (r *Repository) Add(ctx context.Context, slots []*domain.UnavailableSlot) error {
	if len(slots) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("unavailable_slots").
		Columns("id", "date", "time_of_day")
	for _, s := range slots {
		insertBuilder = insertBuilder.Values(s.ID, s.Date, s.TimeOfDay)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Add - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Add - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Remove deletes rows matching (date, time_of_day) exactly. Removing a slot
// that does not exist is a no-op.
func (r *Repository) Remove(ctx context.Context, date string, timeOfDay domain.Timeframe) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("unavailable_slots").
		Where(squirrel.Eq{"date": date, "time_of_day": timeOfDay}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Remove - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Remove - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// List returns every unavailable slot entry.
func (r *Repository) List(ctx context.Context) ([]*domain.UnavailableSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "date", "time_of_day", "created_at").
		From("unavailable_slots").
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.UnavailableSlot, 0)
	for rows.Next() {
		var s domain.UnavailableSlot
		var createdAt sql.NullTime
		if err := rows.Scan(&s.ID, &s.Date, &s.TimeOfDay, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		s.CreatedAt = createdAt.Time
		slots = append(slots, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// ExistsCovering reports whether an entry blocks (date, timeframe), either
// directly or through an "all" row.
func (r *Repository) ExistsCovering(ctx context.Context, date string, timeframe domain.Timeframe) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("unavailable_slots").
		Where(squirrel.Eq{
			"date":        date,
			"time_of_day": []string{string(timeframe), string(domain.TimeframeAll)},
		}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsCovering - build select query: %v", ErrBuildQuery, err)
	}

	var id string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsCovering - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}
