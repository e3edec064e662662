package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
	salonRepo "github.com/m04kA/SMC-SlotEngine/internal/infra/storage/salon"
)

// Query параметры поиска свободных слотов
type Query struct {
	SalonID      int64
	ServiceID    int64
	ProviderID   *int64
	HorizonStart time.Time
	Days         int
	Now          time.Time
}

// Snapshot отфильтрованные кандидаты одного поиска
type Snapshot struct {
	Service     *domain.Service // nil, если салон или услуга не найдены
	Providers   []*domain.Provider
	Candidates  []domain.SlotCandidate
	Generated   int // Кандидатов до фильтрации по записям
	Conflicting int // Кандидатов, отброшенных из-за пересечений
}

// Service конвейер Resolver -> генератор -> ConflictFilter
type Service struct {
	salonConfig SalonConfig
	resolver    *Resolver
	filter      *ConflictFilter
	logger      Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	catalog ServiceCatalog,
	directory ProviderDirectory,
	ledger BookingLedger,
	salonConfig SalonConfig,
	logger Logger,
) *Service {
	return &Service{
		salonConfig: salonConfig,
		resolver:    NewResolver(catalog, directory, logger),
		filter:      NewConflictFilter(ledger, logger),
		logger:      logger,
	}
}

// Search возвращает свободных от записей кандидатов по запросу
// Ненайденные салон, услуга или мастера дают пустой Snapshot без ошибки
func (s *Service) Search(ctx context.Context, q Query) (*Snapshot, error) {
	empty := &Snapshot{Candidates: []domain.SlotCandidate{}}

	hours, err := s.salonConfig.GetOperatingHours(ctx, q.SalonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("Search: salon id=%d not found", q.SalonID)
			return empty, nil
		}
		s.logger.Error("Search: failed to get operating hours for salon=%d: %v", q.SalonID, err)
		return nil, fmt.Errorf("%w: Search - get operating hours: %v", ErrUpstreamUnavailable, err)
	}

	interval, err := s.salonConfig.GetSlotInterval(ctx, q.SalonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("Search: salon id=%d not found", q.SalonID)
			return empty, nil
		}
		s.logger.Error("Search: failed to get slot interval for salon=%d: %v", q.SalonID, err)
		return nil, fmt.Errorf("%w: Search - get slot interval: %v", ErrUpstreamUnavailable, err)
	}
	if interval <= 0 {
		s.logger.Warn("Search: salon=%d has invalid slot interval %d, using default %d",
			q.SalonID, interval, domain.DefaultSlotIntervalMinutes)
		interval = domain.DefaultSlotIntervalMinutes
	}

	resolution, err := s.resolver.Resolve(ctx, q.SalonID, q.ServiceID, q.ProviderID)
	if err != nil {
		return nil, err
	}
	if resolution.Service == nil || len(resolution.Providers) == 0 {
		return empty, nil
	}

	horizonStart := domain.DateOf(q.HorizonStart.In(q.Now.Location()))
	horizonEnd := horizonStart.AddDate(0, 0, q.Days)

	candidates := Generate(GenerateParams{
		Providers:       resolution.Providers,
		Service:         resolution.Service,
		HorizonStart:    horizonStart,
		Days:            q.Days,
		SalonHours:      hours,
		IntervalMinutes: interval,
		Now:             q.Now,
	})

	logCandidatesPerProvider(s.logger, q.SalonID, candidates)

	free, err := s.filter.Filter(ctx, candidates, resolution.Providers, horizonStart, horizonEnd)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Search: salon=%d, service=%d, days=%d: %d candidates, %d free",
		q.SalonID, q.ServiceID, q.Days, len(candidates), len(free))

	return &Snapshot{
		Service:     resolution.Service,
		Providers:   resolution.Providers,
		Candidates:  free,
		Generated:   len(candidates),
		Conflicting: len(candidates) - len(free),
	}, nil
}

func logCandidatesPerProvider(log Logger, salonID int64, candidates []domain.SlotCandidate) {
	perProvider := make(map[int64]int)
	order := make([]int64, 0)
	for _, c := range candidates {
		if _, seen := perProvider[c.ProviderID]; !seen {
			order = append(order, c.ProviderID)
		}
		perProvider[c.ProviderID]++
	}
	for _, id := range order {
		log.Debug("Search: salon=%d, provider=%d: %d candidates", salonID, id, perProvider[id])
	}
}
