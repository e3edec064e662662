package find_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
	"github.com/m04kA/SMC-SlotEngine/internal/service/availability"
	"github.com/m04kA/SMC-SlotEngine/internal/service/ranking"
)

// UseCase use case поиска свободных слотов с ранжированием по предпочтениям
type UseCase struct {
	availability AvailabilityService
	metrics      Metrics
	timeProvider TimeProvider
	opts         Options
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil, если метрики выключены
func NewUseCase(
	availabilitySvc AvailabilityService,
	metrics Metrics,
	opts Options,
	logger Logger,
) *UseCase {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &UseCase{
		availability: availabilitySvc,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		opts:         opts,
		logger:       logger,
	}
}

// Execute выполняет поиск свободных слотов
// Ненайденные салон, услуга или мастера дают пустой результат без ошибки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.SlotSearchResult, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req, uc.opts); err != nil {
		uc.logger.Warn("FindAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	started := time.Now()
	now := uc.timeProvider.Now().In(uc.opts.Location)
	days := resolveDays(req, uc.opts)
	limit := resolveLimit(req, uc.opts)

	horizonStart := domain.DateOf(now)
	if req.FromDate != nil {
		horizonStart = domain.DateIn(*req.FromDate, uc.opts.Location)
	}

	uc.logger.Info("FindAvailableSlots: salon=%d, service=%d, from=%s, days=%d, limit=%d",
		req.SalonID, req.ServiceID, horizonStart.Format(domain.DateFormat), days, limit)

	// 2. Кандидаты без пересечений с записями
	snapshot, err := uc.availability.Search(ctx, availability.Query{
		SalonID:      req.SalonID,
		ServiceID:    req.ServiceID,
		ProviderID:   req.ProviderID,
		HorizonStart: horizonStart,
		Days:         days,
		Now:          now,
	})
	if err != nil {
		if errors.Is(err, availability.ErrUpstreamUnavailable) {
			uc.logger.Error("FindAvailableSlots: upstream unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
		}
		uc.logger.Error("FindAvailableSlots: search failed: %v", err)
		return nil, fmt.Errorf("%w: search: %v", ErrInternal, err)
	}

	if snapshot.Service == nil {
		uc.logger.Info("FindAvailableSlots: nothing to search for salon=%d, service=%d", req.SalonID, req.ServiceID)
		uc.observe(started, snapshot, 0)
		return domain.EmptySearchResult(days), nil
	}

	// 3. Ранжирование по предпочтениям
	policy := ranking.NewExactPreferencePolicy(uc.preferences(req), now)
	slots, total, hasMore := ranking.Rank(snapshot.Candidates, policy, limit)

	uc.observe(started, snapshot, len(slots))
	uc.logger.Info("FindAvailableSlots: salon=%d, service=%d: %d found, %d returned",
		req.SalonID, req.ServiceID, total, len(slots))

	return &domain.SlotSearchResult{
		Slots:        slots,
		TotalFound:   total,
		SearchedDays: days,
		HasMore:      hasMore,
	}, nil
}

func (uc *UseCase) preferences(req *Request) ranking.Preferences {
	prefs := ranking.Preferences{
		ProviderID: req.ProviderID,
		Time:       req.PreferredTime,
	}
	if req.PreferredDate != nil {
		date := domain.DateIn(*req.PreferredDate, uc.opts.Location)
		prefs.Date = &date
	}
	return prefs
}

func (uc *UseCase) observe(started time.Time, snapshot *availability.Snapshot, returned int) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.ObserveSearch(searchMode, time.Since(started), snapshot.Generated, snapshot.Conflicting, returned)
}
