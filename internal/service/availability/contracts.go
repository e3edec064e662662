package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
)

// ServiceCatalog источник услуг салона
type ServiceCatalog interface {
	// GetService возвращает catalogservice.ErrServiceNotFound для неизвестной услуги
	GetService(ctx context.Context, serviceID int64) (*domain.Service, error)
}

// ProviderDirectory справочник мастеров
type ProviderDirectory interface {
	// ListEligibleProviders возвращает активных мастеров салона со специализацией category
	ListEligibleProviders(ctx context.Context, salonID int64, category string) ([]*domain.Provider, error)
	// GetProvider возвращает provider.ErrProviderNotFound для неизвестного мастера
	GetProvider(ctx context.Context, providerID int64) (*domain.Provider, error)
}

// BookingLedger журнал записей
type BookingLedger interface {
	// ListActiveBookings возвращает активные записи всех мастеров providerIDs, пересекающие [from, to)
	ListActiveBookings(ctx context.Context, providerIDs []int64, from, to time.Time) ([]*domain.ExistingBooking, error)
}

// SalonConfig настройки салона
type SalonConfig interface {
	// GetOperatingHours возвращает nil, если у салона нет общего окна работы
	GetOperatingHours(ctx context.Context, salonID int64) (*domain.TimeWindow, error)
	// GetSlotInterval возвращает шаг генерации слотов в минутах
	GetSlotInterval(ctx context.Context, salonID int64) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
