package ranking

import (
	"time"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
)

// monday 2024-01-15
var monday = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return monday.AddDate(0, 0, offset)
}

func slot(providerID int64, date time.Time, hour, minute int) domain.SlotCandidate {
	return domain.NewSlotCandidate(providerID, 10, date, domain.MustClockTime(hour, minute), 60)
}

func clock(hour, minute int) *domain.ClockTime {
	c := domain.MustClockTime(hour, minute)
	return &c
}

type view struct {
	Provider int64
	Date     string
	Start    string
	Score    int
}

func views(slots []domain.RankedSlot) []view {
	out := make([]view, len(slots))
	for i, s := range slots {
		out[i] = view{Provider: s.ProviderID, Date: s.Date.Format(domain.DateFormat), Start: s.Start.String(), Score: s.Score}
	}
	return out
}
