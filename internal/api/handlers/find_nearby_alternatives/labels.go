package find_nearby_alternatives

import (
	"fmt"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
)

// ProximityText человекочитаемое описание смещения альтернативы от желаемого времени
// Для nil offset возвращается пустая строка
func ProximityText(offset *domain.ProximityOffset) string {
	if offset == nil {
		return ""
	}

	minutes := minutesText(offset.Minutes)
	if offset.Days == 0 {
		if offset.Minutes == 0 {
			return "exact time"
		}
		return minutes
	}

	if offset.Minutes == 0 {
		return daysText(offset.Days) + ", same time"
	}
	return daysText(offset.Days) + ", " + minutes
}

func minutesText(m int) string {
	direction := "later"
	if m < 0 {
		direction = "earlier"
		m = -m
	}

	hours, rest := m/60, m%60
	switch {
	case hours == 0:
		return fmt.Sprintf("%d min %s", rest, direction)
	case rest == 0:
		return fmt.Sprintf("%d h %s", hours, direction)
	default:
		return fmt.Sprintf("%d h %d min %s", hours, rest, direction)
	}
}

func daysText(d int) string {
	switch {
	case d == 1:
		return "next day"
	case d == -1:
		return "previous day"
	case d > 1:
		return fmt.Sprintf("in %d days", d)
	default:
		return fmt.Sprintf("%d days earlier", -d)
	}
}
