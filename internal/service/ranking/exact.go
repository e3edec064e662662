package ranking

import (
	"time"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
)

// TimeMatchToleranceMinutes допуск совпадения времени начала с предпочтением
const TimeMatchToleranceMinutes = 60

// Preferences предпочтения клиента; nil поле не участвует в оценке
type Preferences struct {
	ProviderID *int64
	Date       *time.Time
	Time       *domain.ClockTime
}

type preferenceRule struct {
	provider, date, time bool
	score                int
	label                domain.ProximityLabel
	preferred            bool
}

// preferenceRules проверяются сверху вниз, срабатывает первое правило,
// все требуемые признаки которого совпали
var preferenceRules = []preferenceRule{
	{provider: true, date: true, time: true, score: 100, label: domain.LabelExact, preferred: true},
	{provider: true, date: true, score: 90, label: domain.LabelClose, preferred: true},
	{provider: true, time: true, score: 85, label: domain.LabelClose, preferred: true},
	{provider: true, score: 75, label: domain.LabelSameWeek, preferred: true},
	{date: true, time: true, score: 70, label: domain.LabelClose},
	{date: true, score: 60, label: domain.LabelSameDay},
	{time: true, score: 50, label: domain.LabelSameWeek},
}

const (
	fallbackBaseScore   = 40
	fallbackDayPenalty  = 2
	fallbackSameWeekMax = 3
)

// ExactPreferencePolicy оценивает кандидатов по таблице правил предпочтений
type ExactPreferencePolicy struct {
	prefs Preferences
	today time.Time
}

// NewExactPreferencePolicy создает политику; today задает точку отсчета для кандидатов без совпадений
func NewExactPreferencePolicy(prefs Preferences, today time.Time) *ExactPreferencePolicy {
	return &ExactPreferencePolicy{
		prefs: prefs,
		today: domain.DateOf(today),
	}
}

// Assess реализует Policy
func (p *ExactPreferencePolicy) Assess(c domain.SlotCandidate) Assessment {
	providerMatch := p.prefs.ProviderID != nil && c.ProviderID == *p.prefs.ProviderID
	dateMatch := p.prefs.Date != nil && domain.SameDate(c.Date, *p.prefs.Date)
	timeMatch := p.prefs.Time != nil && abs(minuteOffset(c.Start, *p.prefs.Time)) <= TimeMatchToleranceMinutes

	for _, r := range preferenceRules {
		if r.provider && !providerMatch || r.date && !dateMatch || r.time && !timeMatch {
			continue
		}
		return Assessment{Score: r.score, Label: r.label, IsPreferred: r.preferred}
	}

	return p.fallback(c)
}

func (p *ExactPreferencePolicy) fallback(c domain.SlotCandidate) Assessment {
	days := abs(dayOffset(c.Date, p.today))

	label := domain.LabelAlternative
	switch {
	case days == 0:
		label = domain.LabelSameDay
	case days <= fallbackSameWeekMax:
		label = domain.LabelSameWeek
	}

	return Assessment{
		Score: max(0, fallbackBaseScore-fallbackDayPenalty*days),
		Label: label,
	}
}
