package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// slotNamespace пространство имен UUIDv5 для идентификаторов слотов
var slotNamespace = uuid.MustParse("6f1c2a52-93f4-4c5e-9a55-0c1d8a7b3e21")

// SlotCandidate generated time window for a provider, service and date
type SlotCandidate struct {
	ID         uuid.UUID
	ProviderID int64
	ServiceID  int64
	Date       time.Time // Полночь даты в часовом поясе салона
	Start      ClockTime
	End        ClockTime
	StartAt    time.Time
	EndAt      time.Time
}

// NewSlotCandidate builds a candidate starting at start on date for durationMinutes
func NewSlotCandidate(providerID, serviceID int64, date time.Time, start ClockTime, durationMinutes int) SlotCandidate {
	day := DateOf(date)
	end := start.Add(durationMinutes)
	return SlotCandidate{
		ID:         SlotID(providerID, serviceID, day, start),
		ProviderID: providerID,
		ServiceID:  serviceID,
		Date:       day,
		Start:      start,
		End:        end,
		StartAt:    start.On(day),
		EndAt:      end.On(day),
	}
}

// SlotID is stable across searches for the same provider, service, date and start
func SlotID(providerID, serviceID int64, date time.Time, start ClockTime) uuid.UUID {
	key := fmt.Sprintf("%d|%d|%s|%s", providerID, serviceID, date.Format(DateFormat), start)
	return uuid.NewSHA1(slotNamespace, []byte(key))
}

// ProximityLabel enumerated closeness category of a ranked slot
type ProximityLabel string

const (
	LabelExact       ProximityLabel = "exact"
	LabelClose       ProximityLabel = "close"
	LabelSameDay     ProximityLabel = "same-day"
	LabelSameWeek    ProximityLabel = "same-week"
	LabelAlternative ProximityLabel = "alternative"
)

// ProximityOffset signed distance of a slot from the requested target
// Minutes < 0 - раньше целевого времени, Days > 0 - позже целевой даты
type ProximityOffset struct {
	Minutes int
	Days    int
}

// RankedSlot candidate with its score and final position
type RankedSlot struct {
	SlotCandidate
	Score       int
	Label       ProximityLabel
	IsPreferred bool
	Rank        int

	// Заполняются только в режиме подбора альтернатив
	Highlighted bool
	Offset      *ProximityOffset
}

// SlotSearchResult result of a ranked search
type SlotSearchResult struct {
	Slots        []RankedSlot
	TotalFound   int
	SearchedDays int
	HasMore      bool
}

// EmptySearchResult well-formed result for not-found conditions
func EmptySearchResult(searchedDays int) *SlotSearchResult {
	return &SlotSearchResult{
		Slots:        []RankedSlot{},
		TotalFound:   0,
		SearchedDays: searchedDays,
		HasMore:      false,
	}
}
