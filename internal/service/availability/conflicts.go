package availability

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
)

// ConflictFilter убирает кандидатов, пересекающихся с существующими записями
type ConflictFilter struct {
	ledger BookingLedger
	logger Logger
}

// NewConflictFilter создает новый экземпляр ConflictFilter
func NewConflictFilter(ledger BookingLedger, logger Logger) *ConflictFilter {
	return &ConflictFilter{
		ledger: ledger,
		logger: logger,
	}
}

// Filter читает записи всех мастеров за [from, to) одним запросом и возвращает
// кандидатов без пересечений. Касание границ записи пересечением не считается.
// Ошибка чтения возвращается как ErrUpstreamUnavailable.
func (f *ConflictFilter) Filter(
	ctx context.Context,
	candidates []domain.SlotCandidate,
	providers []*domain.Provider,
	from, to time.Time,
) ([]domain.SlotCandidate, error) {
	if len(candidates) == 0 || len(providers) == 0 {
		return []domain.SlotCandidate{}, nil
	}

	providerIDs := uniqueProviderIDs(providers)

	bookings, err := f.ledger.ListActiveBookings(ctx, providerIDs, from, to)
	if err != nil {
		f.logger.Error("Filter: failed to list bookings for %d providers: %v", len(providerIDs), err)
		return nil, fmt.Errorf("%w: Filter - list bookings: %v", ErrUpstreamUnavailable, err)
	}

	busy := groupByProvider(bookings)

	result := make([]domain.SlotCandidate, 0, len(candidates))
	for _, c := range candidates {
		if !conflicts(c, busy[c.ProviderID]) {
			result = append(result, c)
		}
	}

	f.logger.Info("Filter: %d bookings checked, %d of %d candidates kept", len(bookings), len(result), len(candidates))
	return result, nil
}

// groupByProvider группирует активные записи по мастеру, отсортированные по началу
func groupByProvider(bookings []*domain.ExistingBooking) map[int64][]*domain.ExistingBooking {
	busy := make(map[int64][]*domain.ExistingBooking)
	for _, b := range bookings {
		if b == nil || !b.IsActive() {
			continue
		}
		busy[b.ProviderID] = append(busy[b.ProviderID], b)
	}
	for _, list := range busy {
		sort.Slice(list, func(i, j int) bool { return list[i].StartAt.Before(list[j].StartAt) })
	}
	return busy
}

func conflicts(c domain.SlotCandidate, bookings []*domain.ExistingBooking) bool {
	for _, b := range bookings {
		// Записи отсортированы по началу: дальше пересечений быть не может
		if !b.StartAt.Before(c.EndAt) {
			return false
		}
		if b.Overlaps(c.StartAt, c.EndAt) {
			return true
		}
	}
	return false
}

func uniqueProviderIDs(providers []*domain.Provider) []int64 {
	seen := make(map[int64]struct{}, len(providers))
	ids := make([]int64, 0, len(providers))
	for _, p := range providers {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		ids = append(ids, p.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
