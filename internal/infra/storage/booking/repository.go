package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/tjsdetailing/booking-service/internal/domain"
	"github.com/tjsdetailing/booking-service/pkg/dbmetrics"
	"github.com/tjsdetailing/booking-service/pkg/psqlbuilder"
)

// Postgres error code for unique_violation.
const codeUniqueViolation = "23505"

const pendingSlotIndex = "booking_pending_slot_idx"

var bookingColumns = []string{
	"id",
	"name",
	"mobile",
	"address",
	"returning_customer",
	"vehicle_year",
	"vehicle_make",
	"vehicle_model",
	"service_type",
	"scent",
	"special_requests",
	"attachments",
	"date",
	"time_of_day",
	"status",
	"created_at",
	"updated_at",
}

// Repository is the bookings table access layer.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking. When the context carries an active
// transaction it is used, which is how the admission usecase serializes the
// conflict check and the insert. A unique violation on the pending slot index
// is reported as ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	attachments, err := marshalAttachments(b.Attachments)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal attachments: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"name",
			"mobile",
			"address",
			"returning_customer",
			"vehicle_year",
			"vehicle_make",
			"vehicle_model",
			"service_type",
			"scent",
			"special_requests",
			"attachments",
			"date",
			"time_of_day",
			"status",
		).
		Values(
			b.ID,
			b.Name,
			b.Mobile,
			b.Address,
			b.ReturningCustomer,
			b.VehicleYear,
			b.VehicleMake,
			b.VehicleModel,
			b.ServiceType,
			b.Scent,
			b.SpecialRequests,
			attachments,
			b.Date,
			b.TimeOfDay,
			b.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if isPendingSlotViolation(err) {
		return nil, ErrSlotTaken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID returns the booking with the given id.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// ListPendingSlots returns the (date, timeframe) pairs occupied by pending
// bookings, for the availability view.
func (r *Repository) ListPendingSlots(ctx context.Context) ([]domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("date", "time_of_day").
		From("bookings").
		Where(squirrel.Eq{"status": domain.StatusPending}).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListPendingSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPendingSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.Slot, 0)
	for rows.Next() {
		var s domain.Slot
		if err := rows.Scan(&s.Date, &s.Timeframe); err != nil {
			return nil, fmt.Errorf("%w: ListPendingSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPendingSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// CountPendingForSlot counts pending bookings on (date, timeframe). Inside a
// transaction the matched rows are locked FOR UPDATE so a concurrent
// admission serializes behind this check.
func (r *Repository) CountPendingForSlot(ctx context.Context, date string, timeframe domain.Timeframe) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("bookings").
		Where(squirrel.Eq{
			"date":        date,
			"time_of_day": timeframe,
			"status":      domain.StatusPending,
		})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountPendingForSlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CountPendingForSlot - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		count++
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("%w: CountPendingForSlot - rows error: %v", ErrScanRow, err)
	}

	return count, nil
}

// ListUpcoming returns bookings with date >= today that are neither completed
// nor cancelled, ascending by date with morning before afternoon.
func (r *Repository) ListUpcoming(ctx context.Context, today string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.And{
			squirrel.GtOrEq{"date": today},
			squirrel.NotEq{"status": statusStrings(domain.HistoricalStatuses)},
		}).
		OrderBy("date ASC", "CASE time_of_day WHEN 'afternoon' THEN 1 ELSE 0 END ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcoming - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcoming - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListPast returns bookings with a past date or a historical status,
// descending by date with afternoon before morning.
func (r *Repository) ListPast(ctx context.Context, today string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Or{
			squirrel.Lt{"date": today},
			squirrel.Eq{"status": statusStrings(domain.HistoricalStatuses)},
		}).
		OrderBy("date DESC", "CASE time_of_day WHEN 'afternoon' THEN 1 ELSE 0 END DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListPast - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPast - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Update applies a status change, optionally moving the booking to a new
// (date, timeframe) in the same statement, which is how rebooking works.
// Moving into an occupied slot trips the pending slot index and surfaces as
// ErrSlotTaken.
func (r *Repository) Update(ctx context.Context, id string, status domain.BookingStatus, date *string, timeOfDay *domain.Timeframe) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if date != nil {
		updateBuilder = updateBuilder.Set("date", *date)
	}
	if timeOfDay != nil {
		updateBuilder = updateBuilder.Set("time_of_day", *timeOfDay)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if isPendingSlotViolation(err) {
		return nil, ErrSlotTaken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var attachments []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Mobile,
		&b.Address,
		&b.ReturningCustomer,
		&b.VehicleYear,
		&b.VehicleMake,
		&b.VehicleModel,
		&b.ServiceType,
		&b.Scent,
		&b.SpecialRequests,
		&attachments,
		&b.Date,
		&b.TimeOfDay,
		&b.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(attachments) > 0 {
		if err := json.Unmarshal(attachments, &b.Attachments); err != nil {
			return nil, fmt.Errorf("unmarshal attachments: %v", err)
		}
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func marshalAttachments(attachments []domain.Attachment) (interface{}, error) {
	if len(attachments) == 0 {
		return nil, nil
	}
	return json.Marshal(attachments)
}

func isPendingSlotViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == codeUniqueViolation && pqErr.Constraint == pendingSlotIndex
	}
	return false
}

func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
