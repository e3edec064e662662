package ranking

import (
	"cmp"
	"slices"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
)

// Sort оценивает кандидатов политикой и возвращает их в итоговом порядке
// Порядок: score по убыванию, затем дата, время начала и ID мастера по возрастанию.
// Rank назначается плотно начиная с 1.
func Sort(candidates []domain.SlotCandidate, policy Policy) []domain.RankedSlot {
	ranked := make([]domain.RankedSlot, 0, len(candidates))
	for _, c := range candidates {
		a := policy.Assess(c)
		ranked = append(ranked, domain.RankedSlot{
			SlotCandidate: c,
			Score:         a.Score,
			Label:         a.Label,
			IsPreferred:   a.IsPreferred,
		})
	}

	slices.SortStableFunc(ranked, compareRanked)

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// Rank упорядочивает кандидатов и оставляет первые limit
// totalFound - количество до ограничения; limit <= 0 не ограничивает результат
func Rank(candidates []domain.SlotCandidate, policy Policy, limit int) (slots []domain.RankedSlot, totalFound int, hasMore bool) {
	ranked := Sort(candidates, policy)
	totalFound = len(ranked)

	if limit <= 0 || totalFound <= limit {
		return ranked, totalFound, false
	}
	return ranked[:limit], totalFound, true
}

func compareRanked(a, b domain.RankedSlot) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}
	if c := cmp.Compare(a.ProviderID, b.ProviderID); c != 0 {
		return c
	}
	return cmp.Compare(a.ServiceID, b.ServiceID)
}
