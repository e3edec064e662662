package find_nearby_alternatives

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
	"github.com/m04kA/SMC-SlotEngine/internal/service/availability"
	"github.com/m04kA/SMC-SlotEngine/internal/service/ranking"
)

// UseCase use case подбора ближайших альтернатив к занятому времени
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

// Execute ищет свободных кандидатов и подбирает среди них ближайшие к цели
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req, uc.opts); err != nil {
		uc.logger.Warn("FindNearbyAlternatives: validation failed: %v", err)
		return nil, err
	}

	started := time.Now()
	now := uc.timeProvider.Now().In(uc.opts.Location)

	days := uc.opts.DefaultMaxDaysAhead
	if req.MaxDaysAhead != nil {
		days = *req.MaxDaysAhead
	}
	maxAlternatives := uc.opts.DefaultMaxAlternatives
	if req.MaxAlternatives != nil {
		maxAlternatives = *req.MaxAlternatives
	}

	horizonStart := domain.DateOf(now)
	if req.FromDate != nil {
		horizonStart = domain.DateIn(*req.FromDate, uc.opts.Location)
	}
	targetDate := domain.DateIn(req.TargetDate, uc.opts.Location)

	uc.logger.Info("FindNearbyAlternatives: salon=%d, service=%d, target=%s %s, days=%d",
		req.SalonID, req.ServiceID, targetDate.Format(domain.DateFormat), req.TargetTime, days)

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
			uc.logger.Error("FindNearbyAlternatives: upstream unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
		}
		uc.logger.Error("FindNearbyAlternatives: search failed: %v", err)
		return nil, fmt.Errorf("%w: search: %v", ErrInternal, err)
	}

	// 3. Отбор альтернатив
	target := ranking.Target{Date: targetDate, Time: req.TargetTime}
	alternatives, err := uc.Suggest(snapshot.Candidates, target, maxAlternatives, req.Weighting)
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ObserveSearch(searchMode, time.Since(started), snapshot.Generated, snapshot.Conflicting, len(alternatives))
	}
	uc.logger.Info("FindNearbyAlternatives: salon=%d, service=%d: %d candidates, %d alternatives",
		req.SalonID, req.ServiceID, len(snapshot.Candidates), len(alternatives))

	return &Response{
		TargetDate:      targetDate,
		TargetTime:      req.TargetTime,
		Alternatives:    alternatives,
		TotalCandidates: len(snapshot.Candidates),
		SearchedDays:    days,
	}, nil
}

// Suggest упорядочивает переданных кандидатов по близости к target
// Кандидаты должны быть уже отфильтрованы по записям; функция не обращается к хранилищам
func (uc *UseCase) Suggest(
	candidates []domain.SlotCandidate,
	target ranking.Target,
	maxAlternatives int,
	weighting ranking.Weighting,
) ([]domain.RankedSlot, error) {
	if err := validateMaxAlternatives(maxAlternatives, uc.opts); err != nil {
		return nil, err
	}
	if err := validateTargetTime(target.Time); err != nil {
		return nil, err
	}

	return ranking.SuggestAlternatives(candidates, ranking.AlternativesOptions{
		Target:             target,
		MaxAlternatives:    maxAlternatives,
		Weighting:          weighting,
		HighlightThreshold: uc.opts.HighlightThreshold,
	}), nil
}
