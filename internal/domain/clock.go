package domain

import (
	"fmt"
	"time"
)

// MinutesPerDay количество минут в сутках; ClockTime(MinutesPerDay) означает "24:00"
const MinutesPerDay = 24 * 60

// ClockTime wall-clock time of day stored as minutes since midnight, in [0, 1440]
type ClockTime int

// NewClockTime builds a ClockTime from hours and minutes
func NewClockTime(hour, minute int) (ClockTime, error) {
	c := ClockTime(hour*60 + minute)
	if hour < 0 || minute < 0 || minute > 59 || !c.Valid() {
		return 0, fmt.Errorf("%w: %02d:%02d", ErrInvalidClockTime, hour, minute)
	}
	return c, nil
}

// MustClockTime is NewClockTime for constants and tests
func MustClockTime(hour, minute int) ClockTime {
	c, err := NewClockTime(hour, minute)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseClockTime parses "HH:MM" (and "HH:MM:SS" as returned by PostgreSQL TIME columns)
func ParseClockTime(s string) (ClockTime, error) {
	var hour, minute, second int
	n, err := fmt.Sscanf(s, "%d:%d:%d", &hour, &minute, &second)
	if n < 2 {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidClockTime, s, err)
	}
	return NewClockTime(hour, minute)
}

// ClockTimeOf returns the time-of-day of t in t's location, truncated to the minute
func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime(t.Hour()*60 + t.Minute())
}

// Valid reports whether c lies in [00:00, 24:00]
func (c ClockTime) Valid() bool {
	return c >= 0 && c <= MinutesPerDay
}

// Minutes returns minutes since midnight
func (c ClockTime) Minutes() int {
	return int(c)
}

// Add returns c shifted by minutes, without wrapping past midnight
func (c ClockTime) Add(minutes int) ClockTime {
	return c + ClockTime(minutes)
}

// On returns the instant at c on the calendar date of day, in day's location
func (c ClockTime) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, int(c)/60, int(c)%60, 0, 0, day.Location())
}

// CeilTo rounds c up to the next multiple of step minutes counted from midnight
func (c ClockTime) CeilTo(step int) ClockTime {
	if step <= 0 {
		return c
	}
	m := int(c)
	return ClockTime((m + step - 1) / step * step)
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// TimeWindow half-open wall-clock interval [Start, End)
type TimeWindow struct {
	Start ClockTime
	End   ClockTime
}

// IsEmpty reports whether the window has no room at all (empty or inverted)
func (w TimeWindow) IsEmpty() bool {
	return w.End <= w.Start
}

// Intersect returns the overlap of two windows; the result may be empty
func (w TimeWindow) Intersect(other TimeWindow) TimeWindow {
	out := w
	if other.Start > out.Start {
		out.Start = other.Start
	}
	if other.End < out.End {
		out.End = other.End
	}
	return out
}

// Contains reports whether [start, end) lies entirely within the window
func (w TimeWindow) Contains(start, end ClockTime) bool {
	return start >= w.Start && end <= w.End && start <= end
}

func (w TimeWindow) String() string {
	return w.Start.String() + "-" + w.End.String()
}

// DateOf returns midnight of t's calendar date in t's location
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DateIn returns midnight of t's calendar date as seen in t's own location, placed in loc
// Used for dates parsed without a zone ("2024-01-15") so the calendar day never shifts
func DateIn(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// SameDate reports whether a and b fall on the same calendar date
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DaysBetween returns the number of calendar days from a to b (b - a)
// Computed on UTC midnights so DST shifts never produce fractional days
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
