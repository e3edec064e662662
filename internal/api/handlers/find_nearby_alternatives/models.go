package find_nearby_alternatives

import (
	"errors"
	"net/url"
	"time"

	"github.com/m04kA/SMC-SlotEngine/internal/api/handlers"
	"github.com/m04kA/SMC-SlotEngine/internal/domain"
	findNearbyAlternatives "github.com/m04kA/SMC-SlotEngine/internal/usecase/find_nearby_alternatives"
)

var errRequired = errors.New("required")

// AlternativesResponse HTTP response model
type AlternativesResponse struct {
	TargetDate      string        `json:"targetDate"`
	TargetTime      string        `json:"targetTime"`
	Alternatives    []Alternative `json:"alternatives"`
	TotalCandidates int           `json:"totalCandidates"`
	SearchedDays    int           `json:"searchedDays"`
}

// Alternative модель альтернативного слота
type Alternative struct {
	ID          string    `json:"id"`
	ProviderID  int64     `json:"providerId"`
	ServiceID   int64     `json:"serviceId"`
	Date        string    `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	StartAt     time.Time `json:"startAt"`
	Score       int       `json:"score"`
	Label       string    `json:"label"`
	IsPreferred bool      `json:"isPreferred"`
	Rank        int       `json:"rank"`
	Highlighted bool      `json:"highlighted"`
	Proximity   string    `json:"proximity,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findNearbyAlternatives.Response) *AlternativesResponse {
	alternatives := make([]Alternative, len(resp.Alternatives))
	for i, s := range resp.Alternatives {
		alternatives[i] = Alternative{
			ID:          s.ID.String(),
			ProviderID:  s.ProviderID,
			ServiceID:   s.ServiceID,
			Date:        s.Date.Format(domain.DateFormat),
			StartTime:   s.Start.String(),
			EndTime:     s.End.String(),
			StartAt:     s.StartAt,
			Score:       s.Score,
			Label:       string(s.Label),
			IsPreferred: s.IsPreferred,
			Rank:        s.Rank,
			Highlighted: s.Highlighted,
			Proximity:   ProximityText(s.Offset),
		}
	}

	return &AlternativesResponse{
		TargetDate:      resp.TargetDate.Format(domain.DateFormat),
		TargetTime:      resp.TargetTime.String(),
		Alternatives:    alternatives,
		TotalCandidates: resp.TotalCandidates,
		SearchedDays:    resp.SearchedDays,
	}
}

type queryError struct {
	param string
	err   error
}

func (e *queryError) Error() string {
	return e.param + ": " + e.err.Error()
}

// ToUseCaseRequest создает запрос use case из query параметров
// date и time обязательны: это желаемое, но занятое время
func ToUseCaseRequest(salonID, serviceID int64, q url.Values) (*findNearbyAlternatives.Request, error) {
	req := &findNearbyAlternatives.Request{
		SalonID:   salonID,
		ServiceID: serviceID,
	}

	date, err := handlers.OptionalDate(q, "date")
	if err != nil {
		return nil, &queryError{param: "date", err: err}
	}
	if date == nil {
		return nil, &queryError{param: "date", err: errRequired}
	}
	req.TargetDate = *date

	clock, err := handlers.OptionalClockTime(q, "time")
	if err != nil {
		return nil, &queryError{param: "time", err: err}
	}
	if clock == nil {
		return nil, &queryError{param: "time", err: errRequired}
	}
	req.TargetTime = *clock

	if req.ProviderID, err = handlers.OptionalID(q, "providerId"); err != nil {
		return nil, &queryError{param: "providerId", err: err}
	}
	if req.FromDate, err = handlers.OptionalDate(q, "from"); err != nil {
		return nil, &queryError{param: "from", err: err}
	}
	if req.MaxDaysAhead, err = handlers.OptionalInt(q, "days"); err != nil {
		return nil, &queryError{param: "days", err: err}
	}
	if req.MaxAlternatives, err = handlers.OptionalInt(q, "max"); err != nil {
		return nil, &queryError{param: "max", err: err}
	}
	if req.Weighting.PreferSameTime, err = handlers.OptionalBool(q, "preferSameTime"); err != nil {
		return nil, &queryError{param: "preferSameTime", err: err}
	}
	if req.Weighting.PreferSameDay, err = handlers.OptionalBool(q, "preferSameDay"); err != nil {
		return nil, &queryError{param: "preferSameDay", err: err}
	}

	return req, nil
}
