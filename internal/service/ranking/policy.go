package ranking

import "github.com/m04kA/SMC-SlotEngine/internal/domain"

// Assessment оценка одного кандидата политикой ранжирования
type Assessment struct {
	Score       int
	Label       domain.ProximityLabel
	IsPreferred bool
}

// Policy стратегия оценки кандидатов
// Реализации: ExactPreferencePolicy (шкала 0-100) и ProximityPolicy (база 1000)
type Policy interface {
	Assess(candidate domain.SlotCandidate) Assessment
}
