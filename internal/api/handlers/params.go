package handlers

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
	"github.com/m04kA/SMC-SlotEngine/pkg/ptr"
)

// ParseID разбирает положительный идентификатор
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}

// OptionalID разбирает необязательный query параметр с идентификатором
func OptionalID(q url.Values, key string) (*int64, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	id, err := ParseID(raw)
	if err != nil {
		return nil, err
	}
	return ptr.Ptr(id), nil
}

// OptionalInt разбирает необязательный целочисленный query параметр
// Диапазон проверяется в usecase
func OptionalInt(q url.Values, key string) (*int, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return ptr.Ptr(v), nil
}

// OptionalDate разбирает необязательную дату YYYY-MM-DD
func OptionalDate(q url.Values, key string) (*time.Time, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return nil, err
	}
	return ptr.Ptr(d), nil
}

// OptionalClockTime разбирает необязательное время HH:MM
func OptionalClockTime(q url.Values, key string) (*domain.ClockTime, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	c, err := ParseClockTime(raw)
	if err != nil {
		return nil, err
	}
	return ptr.Ptr(c), nil
}

// ParseClockTime разбирает время строго в формате HH:MM
func ParseClockTime(raw string) (domain.ClockTime, error) {
	t, err := time.Parse(domain.TimeFormat, raw)
	if err != nil {
		return 0, err
	}
	return domain.ClockTimeOf(t), nil
}

// OptionalBool разбирает необязательный логический параметр; пустое значение - false
func OptionalBool(q url.Values, key string) (bool, error) {
	raw := q.Get(key)
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}
