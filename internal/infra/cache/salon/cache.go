package salon

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
)

// noHours значение в кэше для салона без общего окна работы
const noHours = "none"

// Source источник настроек салона (репозиторий PostgreSQL)
type Source interface {
	GetOperatingHours(ctx context.Context, salonID int64) (*domain.TimeWindow, error)
	GetSlotInterval(ctx context.Context, salonID int64) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Cache read-through кэш настроек салона в Redis
// Ошибки Redis не прерывают поиск: запрос уходит в Source
type Cache struct {
	next   Source
	client *redis.Client
	ttl    time.Duration
	logger Logger
}

// NewCache создает новый экземпляр кэша
func NewCache(next Source, client *redis.Client, ttl time.Duration, logger Logger) *Cache {
	return &Cache{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// GetOperatingHours возвращает окно работы салона из кэша или из Source
func (c *Cache) GetOperatingHours(ctx context.Context, salonID int64) (*domain.TimeWindow, error) {
	key := hoursKey(salonID)

	cached, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		hours, decodeErr := decodeHours(cached)
		if decodeErr == nil {
			return hours, nil
		}
		c.logger.Warn("SalonCache: broken value for key=%s: %v", key, decodeErr)
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("SalonCache: get key=%s failed: %v", key, err)
	}

	hours, err := c.next.GetOperatingHours(ctx, salonID)
	if err != nil {
		return nil, err
	}

	if err := c.client.Set(ctx, key, encodeHours(hours), c.ttl).Err(); err != nil {
		c.logger.Warn("SalonCache: set key=%s failed: %v", key, err)
	}
	return hours, nil
}

// GetSlotInterval возвращает шаг слотов из кэша или из Source
func (c *Cache) GetSlotInterval(ctx context.Context, salonID int64) (int, error) {
	key := intervalKey(salonID)

	cached, err := c.client.Get(ctx, key).Int()
	switch {
	case err == nil:
		return cached, nil
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("SalonCache: get key=%s failed: %v", key, err)
	}

	interval, err := c.next.GetSlotInterval(ctx, salonID)
	if err != nil {
		return 0, err
	}

	if err := c.client.Set(ctx, key, interval, c.ttl).Err(); err != nil {
		c.logger.Warn("SalonCache: set key=%s failed: %v", key, err)
	}
	return interval, nil
}

// Invalidate удаляет настройки салона из кэша
func (c *Cache) Invalidate(ctx context.Context, salonID int64) error {
	if err := c.client.Del(ctx, hoursKey(salonID), intervalKey(salonID)).Err(); err != nil {
		return fmt.Errorf("salon cache: invalidate salon=%d: %w", salonID, err)
	}
	return nil
}

func hoursKey(salonID int64) string {
	return "salon:" + strconv.FormatInt(salonID, 10) + ":hours"
}

func intervalKey(salonID int64) string {
	return "salon:" + strconv.FormatInt(salonID, 10) + ":slot_interval"
}

func encodeHours(hours *domain.TimeWindow) string {
	if hours == nil {
		return noHours
	}
	return hours.Start.String() + "-" + hours.End.String()
}

func decodeHours(value string) (*domain.TimeWindow, error) {
	if value == noHours {
		return nil, nil
	}

	startStr, endStr, ok := strings.Cut(value, "-")
	if !ok {
		return nil, fmt.Errorf("unexpected format %q", value)
	}
	start, err := domain.ParseClockTime(startStr)
	if err != nil {
		return nil, err
	}
	end, err := domain.ParseClockTime(endStr)
	if err != nil {
		return nil, err
	}
	return &domain.TimeWindow{Start: start, End: end}, nil
}
