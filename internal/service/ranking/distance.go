package ranking

import (
	"time"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
)

// minuteOffset разница времени начала кандидата и целевого времени в минутах
// Отрицательное значение - кандидат раньше цели
func minuteOffset(start, target domain.ClockTime) int {
	return start.Minutes() - target.Minutes()
}

// dayOffset разница в календарных днях между датой кандидата и целевой датой
func dayOffset(date, target time.Time) int {
	return domain.DaysBetween(target, date)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
