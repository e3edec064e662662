package find_available_slots

import (
	"net/url"
	"time"

	"github.com/m04kA/SMC-SlotEngine/internal/api/handlers"
	"github.com/m04kA/SMC-SlotEngine/internal/domain"
	findAvailableSlots "github.com/m04kA/SMC-SlotEngine/internal/usecase/find_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Slots        []RankedSlot `json:"slots"`
	TotalFound   int          `json:"totalFound"`
	SearchedDays int          `json:"searchedDays"`
	HasMore      bool         `json:"hasMore"`
}

// RankedSlot модель слота с оценкой
type RankedSlot struct {
	ID          string    `json:"id"`
	ProviderID  int64     `json:"providerId"`
	ServiceID   int64     `json:"serviceId"`
	Date        string    `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	StartAt     time.Time `json:"startAt"`
	EndAt       time.Time `json:"endAt"`
	Score       int       `json:"score"`
	Label       string    `json:"label"`
	IsPreferred bool      `json:"isPreferred"`
	Rank        int       `json:"rank"`
}

// FromDomainSlot конвертирует слот домена в HTTP модель
func FromDomainSlot(s domain.RankedSlot) RankedSlot {
	return RankedSlot{
		ID:          s.ID.String(),
		ProviderID:  s.ProviderID,
		ServiceID:   s.ServiceID,
		Date:        s.Date.Format(domain.DateFormat),
		StartTime:   s.Start.String(),
		EndTime:     s.End.String(),
		StartAt:     s.StartAt,
		EndAt:       s.EndAt,
		Score:       s.Score,
		Label:       string(s.Label),
		IsPreferred: s.IsPreferred,
		Rank:        s.Rank,
	}
}

// FromUseCaseResponse конвертирует результат use case в HTTP response
func FromUseCaseResponse(res *domain.SlotSearchResult) *AvailableSlotsResponse {
	slots := make([]RankedSlot, len(res.Slots))
	for i, s := range res.Slots {
		slots[i] = FromDomainSlot(s)
	}

	return &AvailableSlotsResponse{
		Slots:        slots,
		TotalFound:   res.TotalFound,
		SearchedDays: res.SearchedDays,
		HasMore:      res.HasMore,
	}
}

// queryError ошибка разбора конкретного query параметра
type queryError struct {
	param string
	err   error
}

func (e *queryError) Error() string {
	return e.param + ": " + e.err.Error()
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(salonID, serviceID int64, q url.Values) (*findAvailableSlots.Request, error) {
	req := &findAvailableSlots.Request{
		SalonID:   salonID,
		ServiceID: serviceID,
	}

	var err error
	if req.ProviderID, err = handlers.OptionalID(q, "providerId"); err != nil {
		return nil, &queryError{param: "providerId", err: err}
	}
	if req.PreferredDate, err = handlers.OptionalDate(q, "date"); err != nil {
		return nil, &queryError{param: "date", err: err}
	}
	if req.PreferredTime, err = handlers.OptionalClockTime(q, "time"); err != nil {
		return nil, &queryError{param: "time", err: err}
	}
	if req.FromDate, err = handlers.OptionalDate(q, "from"); err != nil {
		return nil, &queryError{param: "from", err: err}
	}
	if req.MaxDaysAhead, err = handlers.OptionalInt(q, "days"); err != nil {
		return nil, &queryError{param: "days", err: err}
	}
	if req.Limit, err = handlers.OptionalInt(q, "limit"); err != nil {
		return nil, &queryError{param: "limit", err: err}
	}

	return req, nil
}
