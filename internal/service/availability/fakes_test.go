package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
	providerRepo "github.com/m04kA/SMC-SlotEngine/internal/infra/storage/provider"
	salonRepo "github.com/m04kA/SMC-SlotEngine/internal/infra/storage/salon"
	catalogClient "github.com/m04kA/SMC-SlotEngine/internal/integrations/catalogservice"
)

type fakeCatalog struct {
	services map[int64]*domain.Service
	err      error
}

func (f *fakeCatalog) GetService(_ context.Context, serviceID int64) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.services[serviceID]
	if !ok {
		return nil, catalogClient.ErrServiceNotFound
	}
	return s, nil
}

type fakeDirectory struct {
	providers []*domain.Provider
	listErr   error
	getErr    error
}

func (f *fakeDirectory) ListEligibleProviders(_ context.Context, salonID int64, category string) ([]*domain.Provider, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	result := make([]*domain.Provider, 0)
	for _, p := range f.providers {
		if p.SalonID == salonID && p.IsActive && p.CanPerform(category) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakeDirectory) GetProvider(_ context.Context, providerID int64) (*domain.Provider, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, p := range f.providers {
		if p.ID == providerID {
			return p, nil
		}
	}
	return nil, providerRepo.ErrProviderNotFound
}

type ledgerCall struct {
	providerIDs []int64
	from, to    time.Time
}

type fakeLedger struct {
	bookings []*domain.ExistingBooking
	err      error
	calls    []ledgerCall
}

func (f *fakeLedger) ListActiveBookings(_ context.Context, providerIDs []int64, from, to time.Time) ([]*domain.ExistingBooking, error) {
	f.calls = append(f.calls, ledgerCall{providerIDs: providerIDs, from: from, to: to})
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type fakeSalonConfig struct {
	hours    *domain.TimeWindow
	interval int
	missing  bool
	err      error
}

func (f *fakeSalonConfig) GetOperatingHours(_ context.Context, _ int64) (*domain.TimeWindow, error) {
	if f.missing {
		return nil, salonRepo.ErrSalonNotFound
	}
	return f.hours, f.err
}

func (f *fakeSalonConfig) GetSlotInterval(_ context.Context, _ int64) (int, error) {
	if f.missing {
		return 0, salonRepo.ErrSalonNotFound
	}
	return f.interval, f.err
}

// monday 2024-01-15
var monday = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

func weekdays(start, end domain.ClockTime) domain.WeeklySchedule {
	var s domain.WeeklySchedule
	for d := domain.Monday; d <= domain.Friday; d++ {
		s.Set(d, domain.Open(start, end))
	}
	return s
}

func newProvider(id int64, name string, specializations ...string) *domain.Provider {
	return &domain.Provider{
		ID:              id,
		SalonID:         1,
		Name:            name,
		Specializations: specializations,
		Schedule:        weekdays(domain.MustClockTime(9, 0), domain.MustClockTime(18, 0)),
		IsActive:        true,
	}
}

func haircut() *domain.Service {
	return &domain.Service{ID: 10, Name: "Haircut", DurationMinutes: 60, Category: "hair"}
}

func at(day time.Time, hour, minute int) time.Time {
	return domain.MustClockTime(hour, minute).On(day)
}

func starts(candidates []domain.SlotCandidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.Start.String()
	}
	return out
}
