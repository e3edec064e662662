package ranking

import (
	"time"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
)

// Параметры шкалы подбора альтернатив
const (
	proximityBase = 1000

	// Временная составляющая по умолчанию
	withinHourBonus     = 500
	withinTwoHoursBonus = 300
	withinRangeBonus    = 150
	minutePenalty       = 2

	// Дневная составляющая по умолчанию
	sameDayBonus  = 200
	nextDayBonus  = 100
	sameWeekBonus = 50
	dayPenalty    = 10

	// Режимы PreferSameTime / PreferSameDay
	exactMatchBonus       = 1000
	sameTimeMinutePenalty = 5
	sameDayDayPenalty     = 100

	// ProximityRangeMinutes окно, в котором кандидат получает Offset и метку close
	ProximityRangeMinutes = 180

	// HighlightCount сколько первых альтернатив могут быть выделены
	HighlightCount = 3

	sameWeekDays = 7
)

// Weighting режим весов подбора альтернатив
type Weighting struct {
	PreferSameTime bool // То же время в другой день важнее близости по времени
	PreferSameDay  bool // Тот же день важнее близости по дням
}

// Target желаемые дата и время, которые оказались заняты
type Target struct {
	Date time.Time
	Time domain.ClockTime
}

// ProximityPolicy оценивает близость кандидата к Target
type ProximityPolicy struct {
	target    Target
	weighting Weighting
}

// NewProximityPolicy создает политику подбора альтернатив
func NewProximityPolicy(target Target, weighting Weighting) *ProximityPolicy {
	return &ProximityPolicy{
		target:    Target{Date: domain.DateOf(target.Date), Time: target.Time},
		weighting: weighting,
	}
}

// Assess реализует Policy
func (p *ProximityPolicy) Assess(c domain.SlotCandidate) Assessment {
	minutes := abs(minuteOffset(c.Start, p.target.Time))
	days := abs(dayOffset(c.Date, p.target.Date))

	score := proximityBase + p.timeTerm(minutes) + p.dateTerm(days)
	label := proximityLabel(minutes, days)

	return Assessment{
		Score:       score,
		Label:       label,
		IsPreferred: label == domain.LabelExact,
	}
}

func (p *ProximityPolicy) timeTerm(minutes int) int {
	if p.weighting.PreferSameTime {
		if minutes == 0 {
			return exactMatchBonus
		}
		return -sameTimeMinutePenalty * minutes
	}

	bonus := 0
	switch {
	case minutes <= 60:
		bonus = withinHourBonus
	case minutes <= 120:
		bonus = withinTwoHoursBonus
	case minutes <= ProximityRangeMinutes:
		bonus = withinRangeBonus
	}
	return bonus - minutePenalty*minutes
}

func (p *ProximityPolicy) dateTerm(days int) int {
	if p.weighting.PreferSameDay {
		if days == 0 {
			return exactMatchBonus
		}
		return -sameDayDayPenalty * days
	}

	bonus := 0
	switch {
	case days == 0:
		bonus = sameDayBonus
	case days == 1:
		bonus = nextDayBonus
	case days <= sameWeekDays:
		bonus = sameWeekBonus
	}
	return bonus - dayPenalty*days
}

func proximityLabel(minutes, days int) domain.ProximityLabel {
	switch {
	case days == 0 && minutes == 0:
		return domain.LabelExact
	case days == 0 && minutes <= ProximityRangeMinutes:
		return domain.LabelClose
	case days == 0:
		return domain.LabelSameDay
	case days <= sameWeekDays:
		return domain.LabelSameWeek
	default:
		return domain.LabelAlternative
	}
}

// AlternativesOptions параметры SuggestAlternatives
type AlternativesOptions struct {
	Target             Target
	MaxAlternatives    int
	Weighting          Weighting
	HighlightThreshold int
}

// SuggestAlternatives упорядочивает кандидатов по близости к цели
// Первые HighlightCount альтернатив со score выше порога выделяются,
// кандидаты в пределах ProximityRangeMinutes от целевого времени получают Offset.
// Результат обрезается до MaxAlternatives.
func SuggestAlternatives(candidates []domain.SlotCandidate, opts AlternativesOptions) []domain.RankedSlot {
	policy := NewProximityPolicy(opts.Target, opts.Weighting)
	ranked := Sort(candidates, policy)

	if opts.MaxAlternatives > 0 && len(ranked) > opts.MaxAlternatives {
		ranked = ranked[:opts.MaxAlternatives]
	}

	for i := range ranked {
		slot := &ranked[i]
		if i < HighlightCount && slot.Score > opts.HighlightThreshold {
			slot.Highlighted = true
		}

		minutes := minuteOffset(slot.Start, policy.target.Time)
		if abs(minutes) <= ProximityRangeMinutes {
			slot.Offset = &domain.ProximityOffset{
				Minutes: minutes,
				Days:    dayOffset(slot.Date, policy.target.Date),
			}
		}
	}

	return ranked
}
