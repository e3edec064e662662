package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
	"github.com/m04kA/SMC-SlotEngine/pkg/psqlbuilder"
)

// Repository журнал записей в PostgreSQL (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActiveBookings получает активные записи всех мастеров providerIDs, пересекающие [from, to)
// Все мастера читаются одним запросом (provider_id IN (...)).
// Записи без end_at считаются длительностью domain.DefaultBookingDuration.
func (r *Repository) ListActiveBookings(ctx context.Context, providerIDs []int64, from, to time.Time) ([]*domain.ExistingBooking, error) {
	if len(providerIDs) == 0 {
		return []*domain.ExistingBooking{}, nil
	}

	inactive := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		inactive[i] = string(s)
	}

	defaultMinutes := int(domain.DefaultBookingDuration / time.Minute)

	query, args, err := psqlbuilder.Select(
		"id",
		"provider_id",
		"start_at",
		"end_at",
		"status",
	).
		From("bookings").
		Where(squirrel.Eq{"provider_id": providerIDs}).
		Where(squirrel.NotEq{"status": inactive}).
		Where(squirrel.Lt{"start_at": to}).
		Where(squirrel.Expr(
			fmt.Sprintf("COALESCE(end_at, start_at + interval '%d minutes') > ?", defaultMinutes),
			from,
		)).
		OrderBy("provider_id ASC", "start_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveBookings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveBookings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.ExistingBooking, 0)
	for rows.Next() {
		var (
			b     domain.ExistingBooking
			endAt sql.NullTime
		)
		if err := rows.Scan(&b.ID, &b.ProviderID, &b.StartAt, &endAt, &b.Status); err != nil {
			return nil, fmt.Errorf("%w: ListActiveBookings - scan row: %v", ErrScanRow, err)
		}
		if endAt.Valid {
			end := endAt.Time
			b.EndAt = &end
		}
		bookings = append(bookings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
