package find_nearby_alternatives

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SlotEngine/internal/service/availability"
)

// AvailabilityService конвейер поиска свободных кандидатов
type AvailabilityService interface {
	Search(ctx context.Context, q availability.Query) (*availability.Snapshot, error)
}

// Metrics интерфейс сбора метрик поиска (может быть nil)
type Metrics interface {
	ObserveSearch(mode string, duration time.Duration, generated, conflicting, returned int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
