package availability

import (
	"iter"
	"slices"
	"time"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
)

// GenerateParams входные данные генератора кандидатов
type GenerateParams struct {
	Providers       []*domain.Provider
	Service         *domain.Service
	HorizonStart    time.Time          // Первая дата поиска (время суток игнорируется)
	Days            int                // Количество дат начиная с HorizonStart
	SalonHours      *domain.TimeWindow // nil - без общего ограничения салона
	IntervalMinutes int
	Now             time.Time // Задает "сегодня" и часовой пояс расчета
}

// Candidates возвращает ленивую последовательность кандидатов в порядке мастер, дата, время
// Последовательность конечна и может перебираться повторно
func Candidates(p GenerateParams) iter.Seq[domain.SlotCandidate] {
	return func(yield func(domain.SlotCandidate) bool) {
		if p.Service == nil || p.Service.DurationMinutes <= 0 || p.IntervalMinutes <= 0 || p.Days <= 0 {
			return
		}

		loc := p.Now.Location()
		today := domain.DateOf(p.Now)
		horizon := domain.DateOf(p.HorizonStart.In(loc))

		for _, provider := range p.Providers {
			for offset := 0; offset < p.Days; offset++ {
				date := horizon.AddDate(0, 0, offset)
				if date.Before(today) {
					continue
				}

				window, ok := effectiveWindow(provider, date, p.SalonHours, p.IntervalMinutes, p.Now)
				if !ok {
					continue
				}

				for start := window.Start; start.Add(p.Service.DurationMinutes) <= window.End; start = start.Add(p.IntervalMinutes) {
					candidate := domain.NewSlotCandidate(provider.ID, p.Service.ID, date, start, p.Service.DurationMinutes)
					// Защита от граничных случаев округления
					if candidate.StartAt.Before(p.Now) {
						continue
					}
					// Начало в пропущенном при переводе часов интервале не существует на часах салона
					if !candidate.EndAt.After(candidate.StartAt) || domain.ClockTimeOf(candidate.StartAt) != start {
						continue
					}
					if !yield(candidate) {
						return
					}
				}
			}
		}
	}
}

// Generate собирает все кандидаты горизонта в слайс
func Generate(p GenerateParams) []domain.SlotCandidate {
	return slices.Collect(Candidates(p))
}

// effectiveWindow возвращает окно генерации мастера на дату
// Окно - пересечение расписания мастера и часов салона; для сегодняшней даты
// начало сдвигается на ближайшую границу шага не раньше текущего времени
func effectiveWindow(provider *domain.Provider, date time.Time, salonHours *domain.TimeWindow, interval int, now time.Time) (domain.TimeWindow, bool) {
	window, open := provider.Schedule.On(date).Window()
	if !open {
		return domain.TimeWindow{}, false
	}

	if salonHours != nil {
		window = window.Intersect(*salonHours)
	}
	if window.IsEmpty() {
		return domain.TimeWindow{}, false
	}

	if domain.SameDate(date, now) && now.After(window.Start.On(date)) {
		// Округление считается от минут с полуночи, без переноса через поле часов
		window.Start = domain.ClockTimeOf(now).CeilTo(interval)
		if window.Start >= window.End {
			return domain.TimeWindow{}, false
		}
	}

	return window, true
}
