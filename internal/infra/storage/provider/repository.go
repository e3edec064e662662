package provider

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
	"github.com/m04kA/SMC-SlotEngine/pkg/psqlbuilder"
)

const specializationsColumn = "ARRAY(SELECT ps.category FROM provider_specializations ps " +
	"WHERE ps.provider_id = p.id ORDER BY ps.category) AS specializations"

// Repository справочник мастеров в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListEligibleProviders получает активных мастеров салона со специализацией category
// Расписания всех мастеров читаются одним дополнительным запросом
func (r *Repository) ListEligibleProviders(ctx context.Context, salonID int64, category string) ([]*domain.Provider, error) {
	query, args, err := psqlbuilder.Select(
		"p.id",
		"p.salon_id",
		"p.name",
		"p.is_active",
		specializationsColumn,
	).
		From("providers p").
		Where(squirrel.Eq{"p.salon_id": salonID}).
		Where(squirrel.Eq{"p.is_active": true}).
		Where(squirrel.Expr(
			"EXISTS (SELECT 1 FROM provider_specializations s WHERE s.provider_id = p.id AND s.category = ?)",
			category,
		)).
		OrderBy("p.name ASC", "p.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListEligibleProviders - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEligibleProviders - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	providers := make([]*domain.Provider, 0)
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListEligibleProviders - scan provider: %v", ErrScanRow, err)
		}
		providers = append(providers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListEligibleProviders - rows error: %v", ErrScanRow, err)
	}

	if err := r.attachSchedules(ctx, providers); err != nil {
		return nil, err
	}

	return providers, nil
}

// GetProvider получает мастера по ID вместе с расписанием
func (r *Repository) GetProvider(ctx context.Context, providerID int64) (*domain.Provider, error) {
	query, args, err := psqlbuilder.Select(
		"p.id",
		"p.salon_id",
		"p.name",
		"p.is_active",
		specializationsColumn,
	).
		From("providers p").
		Where(squirrel.Eq{"p.id": providerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetProvider - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanProvider(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetProvider - scan provider: %v", ErrScanRow, err)
	}

	if err := r.attachSchedules(ctx, []*domain.Provider{p}); err != nil {
		return nil, err
	}

	return p, nil
}

// attachSchedules заполняет недельные расписания мастеров
// Дни без строки в provider_schedules или с NULL границами считаются выходными
func (r *Repository) attachSchedules(ctx context.Context, providers []*domain.Provider) error {
	if len(providers) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.Provider, len(providers))
	ids := make([]int64, 0, len(providers))
	for _, p := range providers {
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	query, args, err := psqlbuilder.Select(
		"provider_id",
		"weekday",
		"to_char(start_time, 'HH24:MI')",
		"to_char(end_time, 'HH24:MI')",
	).
		From("provider_schedules").
		Where(squirrel.Eq{"provider_id": ids}).
		OrderBy("provider_id ASC", "weekday ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachSchedules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachSchedules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			providerID int64
			isoWeekday int
			start, end sql.NullString
		)
		if err := rows.Scan(&providerID, &isoWeekday, &start, &end); err != nil {
			return fmt.Errorf("%w: attachSchedules - scan schedule: %v", ErrScanRow, err)
		}

		p, ok := byID[providerID]
		if !ok {
			continue
		}
		p.Schedule.Set(domain.Weekday(isoWeekday-1), toDaySchedule(start, end))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachSchedules - rows error: %v", ErrScanRow, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProvider(row rowScanner) (*domain.Provider, error) {
	var p domain.Provider
	if err := row.Scan(&p.ID, &p.SalonID, &p.Name, &p.IsActive, pq.Array(&p.Specializations)); err != nil {
		return nil, err
	}
	return &p, nil
}

// toDaySchedule разбирает границы дня; некорректные данные дают выходной
func toDaySchedule(start, end sql.NullString) domain.DaySchedule {
	if !start.Valid || !end.Valid {
		return domain.Closed()
	}
	s, err := domain.ParseClockTime(start.String)
	if err != nil {
		return domain.Closed()
	}
	e, err := domain.ParseClockTime(end.String)
	if err != nil {
		return domain.Closed()
	}
	return domain.Open(s, e)
}
