package salon

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
	"github.com/m04kA/SMC-SlotEngine/pkg/psqlbuilder"
)

// Repository настройки салонов в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория салонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetOperatingHours получает общее окно работы салона
// Если хотя бы одна граница не задана, салон не ограничивает расписание мастеров (nil).
// Перевернутое окно возвращается как есть: генератор пропустит такие даты.
func (r *Repository) GetOperatingHours(ctx context.Context, salonID int64) (*domain.TimeWindow, error) {
	query, args, err := psqlbuilder.Select(
		"to_char(open_time, 'HH24:MI')",
		"to_char(close_time, 'HH24:MI')",
	).
		From("salons").
		Where(squirrel.Eq{"id": salonID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOperatingHours - build select query: %v", ErrBuildQuery, err)
	}

	var openTime, closeTime sql.NullString
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&openTime, &closeTime)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSalonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetOperatingHours - scan hours: %v", ErrScanRow, err)
	}

	if !openTime.Valid || !closeTime.Valid {
		return nil, nil
	}

	start, err := domain.ParseClockTime(openTime.String)
	if err != nil {
		return nil, fmt.Errorf("%w: open_time %q", ErrInvalidHours, openTime.String)
	}
	end, err := domain.ParseClockTime(closeTime.String)
	if err != nil {
		return nil, fmt.Errorf("%w: close_time %q", ErrInvalidHours, closeTime.String)
	}

	return &domain.TimeWindow{Start: start, End: end}, nil
}

// GetSlotInterval получает шаг генерации слотов салона в минутах
func (r *Repository) GetSlotInterval(ctx context.Context, salonID int64) (int, error) {
	query, args, err := psqlbuilder.Select("slot_interval_minutes").
		From("salons").
		Where(squirrel.Eq{"id": salonID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: GetSlotInterval - build select query: %v", ErrBuildQuery, err)
	}

	var interval sql.NullInt64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&interval)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrSalonNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: GetSlotInterval - scan interval: %v", ErrScanRow, err)
	}

	if !interval.Valid {
		return domain.DefaultSlotIntervalMinutes, nil
	}
	return int(interval.Int64), nil
}
