package find_nearby_alternatives

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
	"github.com/m04kA/SMC-SlotEngine/internal/service/availability"
	"github.com/m04kA/SMC-SlotEngine/internal/service/ranking"
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

func candidate(date time.Time, hour, minute int) domain.SlotCandidate {
	return domain.NewSlotCandidate(1, 10, date, domain.MustClockTime(hour, minute), 60)
}

func newUseCase(t *testing.T, svc AvailabilityService) *UseCase {
	t.Helper()
	uc := NewUseCase(svc, nil, DefaultOptions(), loggertest.New(t))
	uc.timeProvider = fixedTime{now: monday.Add(8 * time.Hour)}
	return uc
}

func starts(slots []domain.RankedSlot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Date.Format("01-02") + " " + s.Start.String()
	}
	return out
}

func TestUseCase_Execute(t *testing.T) {
	svc := &fakeAvailability{snapshot: &availability.Snapshot{
		Service: &domain.Service{ID: 10, DurationMinutes: 60, Category: "hair"},
		Candidates: []domain.SlotCandidate{
			candidate(monday, 9, 0),
			candidate(monday, 13, 30),
			candidate(monday, 16, 0),
			candidate(monday.AddDate(0, 0, 1), 14, 0),
		},
	}}
	uc := newUseCase(t, svc)

	res, err := uc.Execute(context.Background(), &Request{
		SalonID:         1,
		ServiceID:       10,
		TargetDate:      monday,
		TargetTime:      domain.MustClockTime(14, 0),
		MaxAlternatives: ptr.Ptr(3),
		Weighting:       ranking.Weighting{PreferSameDay: true},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"01-15 13:30", "01-15 16:00", "01-15 09:00"}, starts(res.Alternatives))
	assert.Equal(t, 4, res.TotalCandidates)
	assert.Equal(t, domain.DefaultMaxDaysAhead, res.SearchedDays)
	assert.True(t, res.Alternatives[0].Highlighted)
	assert.Equal(t, &domain.ProximityOffset{Minutes: -30}, res.Alternatives[0].Offset)

	require.Len(t, svc.queries, 1)
	assert.Equal(t, monday, svc.queries[0].HorizonStart)
}

func TestUseCase_Execute_DefaultMaxAlternatives(t *testing.T) {
	candidates := make([]domain.SlotCandidate, 0, 9)
	for h := 9; h < 18; h++ {
		candidates = append(candidates, candidate(monday, h, 0))
	}
	uc := newUseCase(t, &fakeAvailability{snapshot: &availability.Snapshot{Candidates: candidates}})

	res, err := uc.Execute(context.Background(), &Request{
		SalonID:    1,
		ServiceID:  10,
		TargetDate: monday,
		TargetTime: domain.MustClockTime(12, 0),
	})
	require.NoError(t, err)

	assert.Len(t, res.Alternatives, domain.DefaultMaxAlternatives)
	assert.Equal(t, "01-15 12:00", starts(res.Alternatives)[0])
	assert.Equal(t, domain.LabelExact, res.Alternatives[0].Label)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	valid := func() *Request {
		return &Request{SalonID: 1, ServiceID: 10, TargetDate: monday, TargetTime: domain.MustClockTime(14, 0)}
	}

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "zero salon", mutate: func(r *Request) { r.SalonID = 0 }},
		{name: "missing target date", mutate: func(r *Request) { r.TargetDate = time.Time{} }},
		{name: "target time past midnight", mutate: func(r *Request) { r.TargetTime = domain.ClockTime(1500) }},
		{name: "zero alternatives", mutate: func(r *Request) { r.MaxAlternatives = ptr.Ptr(0) }},
		{name: "too many alternatives", mutate: func(r *Request) { r.MaxAlternatives = ptr.Ptr(1000) }},
		{name: "zero days", mutate: func(r *Request) { r.MaxDaysAhead = ptr.Ptr(0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeAvailability{}
			uc := newUseCase(t, svc)
			req := valid()
			tt.mutate(req)

			res, err := uc.Execute(context.Background(), req)

			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, svc.queries)
		})
	}
}

func TestUseCase_Execute_UpstreamUnavailable(t *testing.T) {
	err := errors.Join(availability.ErrUpstreamUnavailable, errors.New("db down"))
	uc := newUseCase(t, &fakeAvailability{err: err})

	res, gotErr := uc.Execute(context.Background(), &Request{
		SalonID:    1,
		ServiceID:  10,
		TargetDate: monday,
		TargetTime: domain.MustClockTime(14, 0),
	})

	assert.Nil(t, res)
	assert.ErrorIs(t, gotErr, ErrUpstreamUnavailable)
}

func TestUseCase_Suggest(t *testing.T) {
	uc := newUseCase(t, &fakeAvailability{})
	target := ranking.Target{Date: monday, Time: domain.MustClockTime(14, 0)}
	candidates := []domain.SlotCandidate{
		candidate(monday, 16, 0),
		candidate(monday.AddDate(0, 0, 1), 14, 0),
		candidate(monday, 13, 30),
	}

	got, err := uc.Suggest(candidates, target, 2, ranking.Weighting{PreferSameTime: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"01-16 14:00", "01-15 13:30"}, starts(got))

	_, err = uc.Suggest(candidates, target, 0, ranking.Weighting{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Suggest(candidates, ranking.Target{Date: monday, Time: domain.ClockTime(-5)}, 2, ranking.Weighting{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
