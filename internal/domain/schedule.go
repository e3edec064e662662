package domain

import (
	"fmt"
	"time"
)

// Weekday day of week indexed from Monday, used as WeeklySchedule index
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysInWeek размер WeeklySchedule
const DaysInWeek = 7

var weekdayNames = [DaysInWeek]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// WeekdayOf returns the Weekday of t's calendar date
func WeekdayOf(t time.Time) Weekday {
	// time.Weekday считает от воскресенья
	return Weekday((int(t.Weekday()) + 6) % DaysInWeek)
}

// ParseWeekday accepts lowercase English names ("monday") and ISO numbers 1..7
func ParseWeekday(s string) (Weekday, error) {
	for i, name := range weekdayNames {
		if s == name {
			return Weekday(i), nil
		}
	}
	var iso int
	if _, err := fmt.Sscanf(s, "%d", &iso); err == nil && iso >= 1 && iso <= DaysInWeek {
		return Weekday(iso - 1), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}

func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// DaySchedule is either Closed or Open{start, end}; the zero value is Closed
type DaySchedule struct {
	open   bool
	window TimeWindow
}

// Closed returns a day off
func Closed() DaySchedule {
	return DaySchedule{}
}

// Open returns a working day; an empty or inverted window is treated as Closed
func Open(start, end ClockTime) DaySchedule {
	w := TimeWindow{Start: start, End: end}
	if !start.Valid() || !end.Valid() || w.IsEmpty() {
		return Closed()
	}
	return DaySchedule{open: true, window: w}
}

// ScheduleFromNullable builds a DaySchedule from optionally missing bounds
// Missing start or end means the day is closed
func ScheduleFromNullable(start, end *ClockTime) DaySchedule {
	if start == nil || end == nil {
		return Closed()
	}
	return Open(*start, *end)
}

// Window returns the working window and true for an open day
func (d DaySchedule) Window() (TimeWindow, bool) {
	return d.window, d.open
}

func (d DaySchedule) IsOpen() bool {
	return d.open
}

func (d DaySchedule) String() string {
	if !d.open {
		return "closed"
	}
	return d.window.String()
}

// WeeklySchedule per-weekday working hours
type WeeklySchedule [DaysInWeek]DaySchedule

// On returns the schedule for the weekday of date
func (s WeeklySchedule) On(date time.Time) DaySchedule {
	return s[WeekdayOf(date)]
}

// Set replaces the schedule of one weekday; invalid weekdays are ignored
func (s *WeeklySchedule) Set(day Weekday, schedule DaySchedule) {
	if !day.Valid() {
		return
	}
	s[day] = schedule
}
