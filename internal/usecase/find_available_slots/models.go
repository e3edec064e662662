package find_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
)

// searchMode метка режима в метриках
const searchMode = "exact"

// Request модель запроса на поиск свободных слотов
// Nil поля означают отсутствие предпочтения или значение по умолчанию
type Request struct {
	SalonID   int64 `validate:"gt=0"`
	ServiceID int64 `validate:"gt=0"`

	// Предпочтения клиента
	ProviderID    *int64 `validate:"omitnil,gt=0"`
	PreferredDate *time.Time
	PreferredTime *domain.ClockTime `validate:"omitnil,gte=0,lt=1440"`

	// Горизонт и размер ответа
	FromDate     *time.Time // По умолчанию сегодня
	MaxDaysAhead *int       `validate:"omitnil,gt=0"`
	Limit        *int       `validate:"omitnil,gt=0"`
}

// Options ограничения поиска из конфигурации
type Options struct {
	Location            *time.Location
	DefaultMaxDaysAhead int
	MaxDaysAhead        int
	DefaultLimit        int
	MaxLimit            int
}

// DefaultOptions значения по умолчанию без конфигурации
func DefaultOptions() Options {
	return Options{
		Location:            time.UTC,
		DefaultMaxDaysAhead: domain.DefaultMaxDaysAhead,
		MaxDaysAhead:        domain.MaxDaysAheadCeiling,
		DefaultLimit:        domain.DefaultLimit,
		MaxLimit:            domain.MaxLimitCeiling,
	}
}
