package find_nearby_alternatives

import (
	"time"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
	"github.com/m04kA/SMC-SlotEngine/internal/service/ranking"
)

// searchMode метка режима в метриках
const searchMode = "alternatives"

// Request модель запроса на подбор альтернатив к занятому времени
type Request struct {
	SalonID    int64  `validate:"gt=0"`
	ServiceID  int64  `validate:"gt=0"`
	ProviderID *int64 `validate:"omitnil,gt=0"`

	// Желаемые дата и время, которые оказались заняты
	TargetDate time.Time        `validate:"required"`
	TargetTime domain.ClockTime `validate:"gte=0,lt=1440"`

	FromDate        *time.Time // По умолчанию сегодня
	MaxDaysAhead    *int       `validate:"omitnil,gt=0"`
	MaxAlternatives *int       `validate:"omitnil,gt=0"`
	Weighting       ranking.Weighting
}

// Response модель ответа со списком альтернатив
type Response struct {
	TargetDate      time.Time
	TargetTime      domain.ClockTime
	Alternatives    []domain.RankedSlot
	TotalCandidates int // Свободных кандидатов до отбора альтернатив
	SearchedDays    int
}

// Options ограничения подбора из конфигурации
type Options struct {
	Location               *time.Location
	DefaultMaxDaysAhead    int
	MaxDaysAhead           int
	DefaultMaxAlternatives int
	MaxAlternatives        int
	HighlightThreshold     int
}

// DefaultOptions значения по умолчанию без конфигурации
func DefaultOptions() Options {
	return Options{
		Location:               time.UTC,
		DefaultMaxDaysAhead:    domain.DefaultMaxDaysAhead,
		MaxDaysAhead:           domain.MaxDaysAheadCeiling,
		DefaultMaxAlternatives: domain.DefaultMaxAlternatives,
		MaxAlternatives:        domain.MaxLimitCeiling,
		HighlightThreshold:     domain.DefaultHighlightThreshold,
	}
}
