package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayOf(t *testing.T) {
	// 2026-10-12 - понедельник
	monday := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, Monday, WeekdayOf(monday))
	assert.Equal(t, Saturday, WeekdayOf(monday.AddDate(0, 0, 5)))
	assert.Equal(t, Sunday, WeekdayOf(monday.AddDate(0, 0, 6)))
}

func TestParseWeekday(t *testing.T) {
	d, err := ParseWeekday("friday")
	require.NoError(t, err)
	assert.Equal(t, Friday, d)

	d, err = ParseWeekday("7")
	require.NoError(t, err)
	assert.Equal(t, Sunday, d)

	_, err = ParseWeekday("funday")
	assert.ErrorIs(t, err, ErrInvalidWeekday)

	_, err = ParseWeekday("0")
	assert.ErrorIs(t, err, ErrInvalidWeekday)
}

func TestDaySchedule(t *testing.T) {
	nine, six := MustClockTime(9, 0), MustClockTime(18, 0)

	open := Open(nine, six)
	w, ok := open.Window()
	assert.True(t, ok)
	assert.Equal(t, TimeWindow{Start: nine, End: six}, w)

	_, ok = Closed().Window()
	assert.False(t, ok)

	assert.False(t, Open(six, nine).IsOpen(), "inverted window is a day off")
	assert.False(t, ScheduleFromNullable(&nine, nil).IsOpen(), "missing end is a day off")
	assert.False(t, ScheduleFromNullable(nil, &six).IsOpen(), "missing start is a day off")
	assert.True(t, ScheduleFromNullable(&nine, &six).IsOpen())

	var zero DaySchedule
	assert.False(t, zero.IsOpen())
}

func TestWeeklySchedule_On(t *testing.T) {
	var s WeeklySchedule
	s.Set(Tuesday, Open(MustClockTime(10, 0), MustClockTime(16, 0)))
	s.Set(Weekday(9), Open(MustClockTime(10, 0), MustClockTime(16, 0)))

	tuesday := time.Date(2026, 10, 13, 12, 0, 0, 0, time.UTC)
	assert.True(t, s.On(tuesday).IsOpen())
	assert.False(t, s.On(tuesday.AddDate(0, 0, 1)).IsOpen())
}
