package find_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
	"github.com/m04kA/SMC-SlotEngine/internal/service/availability"
	"github.com/m04kA/SMC-SlotEngine/pkg/logger/loggertest"
	"github.com/m04kA/SMC-SlotEngine/pkg/ptr"
)

// monday 2024-01-15
var monday = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeAvailability struct {
	snapshot *availability.Snapshot
	err      error
	queries  []availability.Query
}

func (f *fakeAvailability) Search(_ context.Context, q availability.Query) (*availability.Snapshot, error) {
	f.queries = append(f.queries, q)
	return f.snapshot, f.err
}

type searchObservation struct {
	mode                             string
	generated, conflicting, returned int
}

type fakeMetrics struct {
	observed []searchObservation
}

func (f *fakeMetrics) ObserveSearch(mode string, _ time.Duration, generated, conflicting, returned int) {
	f.observed = append(f.observed, searchObservation{mode, generated, conflicting, returned})
}

func candidate(providerID int64, date time.Time, hour, minute int) domain.SlotCandidate {
	return domain.NewSlotCandidate(providerID, 10, date, domain.MustClockTime(hour, minute), 60)
}

func newUseCase(t *testing.T, svc AvailabilityService, m Metrics) *UseCase {
	t.Helper()
	uc := NewUseCase(svc, m, DefaultOptions(), loggertest.New(t))
	uc.timeProvider = fixedTime{now: monday.Add(8 * time.Hour)}
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	svc := &fakeAvailability{snapshot: &availability.Snapshot{
		Service: &domain.Service{ID: 10, DurationMinutes: 60, Category: "hair"},
		Candidates: []domain.SlotCandidate{
			candidate(2, monday, 9, 0),
			candidate(1, monday, 9, 0),
			candidate(1, monday, 14, 0),
			candidate(2, monday.AddDate(0, 0, 1), 14, 0),
		},
		Generated:   6,
		Conflicting: 2,
	}}
	m := &fakeMetrics{}
	uc := newUseCase(t, svc, m)

	res, err := uc.Execute(context.Background(), &Request{
		SalonID:       1,
		ServiceID:     10,
		ProviderID:    ptr.Ptr(int64(1)),
		PreferredDate: ptr.Ptr(monday),
		PreferredTime: ptr.Ptr(domain.MustClockTime(14, 0)),
		Limit:         ptr.Ptr(3),
	})
	require.NoError(t, err)

	require.Len(t, res.Slots, 3)
	assert.Equal(t, 4, res.TotalFound)
	assert.True(t, res.HasMore)
	assert.Equal(t, domain.DefaultMaxDaysAhead, res.SearchedDays)

	first := res.Slots[0]
	assert.Equal(t, int64(1), first.ProviderID)
	assert.Equal(t, "14:00", first.Start.String())
	assert.Equal(t, 100, first.Score)
	assert.Equal(t, domain.LabelExact, first.Label)
	assert.True(t, first.IsPreferred)
	assert.Equal(t, 1, first.Rank)

	require.Len(t, svc.queries, 1)
	q := svc.queries[0]
	assert.Equal(t, monday, q.HorizonStart)
	assert.Equal(t, domain.DefaultMaxDaysAhead, q.Days)
	assert.Equal(t, ptr.Ptr(int64(1)), q.ProviderID)

	assert.Equal(t, []searchObservation{{mode: "exact", generated: 6, conflicting: 2, returned: 3}}, m.observed)
}

func TestUseCase_Execute_FromDateAndDays(t *testing.T) {
	svc := &fakeAvailability{snapshot: &availability.Snapshot{Candidates: []domain.SlotCandidate{}}}
	uc := newUseCase(t, svc, nil)

	from := monday.AddDate(0, 0, 3)
	res, err := uc.Execute(context.Background(), &Request{
		SalonID:      1,
		ServiceID:    10,
		FromDate:     &from,
		MaxDaysAhead: ptr.Ptr(3),
	})
	require.NoError(t, err)

	require.Len(t, svc.queries, 1)
	assert.Equal(t, from, svc.queries[0].HorizonStart)
	assert.Equal(t, 3, svc.queries[0].Days)

	// Услуга не найдена: пустой, но корректный результат
	assert.Equal(t, domain.EmptySearchResult(3), res)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{name: "nil request", req: nil},
		{name: "zero salon", req: &Request{ServiceID: 10}},
		{name: "zero service", req: &Request{SalonID: 1}},
		{name: "zero limit", req: &Request{SalonID: 1, ServiceID: 10, Limit: ptr.Ptr(0)}},
		{name: "negative limit", req: &Request{SalonID: 1, ServiceID: 10, Limit: ptr.Ptr(-1)}},
		{name: "limit above ceiling", req: &Request{SalonID: 1, ServiceID: 10, Limit: ptr.Ptr(101)}},
		{name: "zero days", req: &Request{SalonID: 1, ServiceID: 10, MaxDaysAhead: ptr.Ptr(0)}},
		{name: "days above ceiling", req: &Request{SalonID: 1, ServiceID: 10, MaxDaysAhead: ptr.Ptr(61)}},
		{name: "negative provider", req: &Request{SalonID: 1, ServiceID: 10, ProviderID: ptr.Ptr(int64(-3))}},
		{name: "time past midnight", req: &Request{SalonID: 1, ServiceID: 10, PreferredTime: ptr.Ptr(domain.ClockTime(1440))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeAvailability{}
			uc := newUseCase(t, svc, nil)

			res, err := uc.Execute(context.Background(), tt.req)

			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, svc.queries)
		})
	}
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "upstream unavailable",
			err:     errors.Join(availability.ErrUpstreamUnavailable, errors.New("timeout")),
			wantErr: ErrUpstreamUnavailable,
		},
		{
			name:    "unexpected error",
			err:     errors.New("boom"),
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(t, &fakeAvailability{err: tt.err}, nil)

			res, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 10})

			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
