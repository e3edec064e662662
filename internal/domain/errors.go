package domain

import "errors"

var (
	// ErrInvalidClockTime возвращается при некорректном времени суток
	ErrInvalidClockTime = errors.New("domain: invalid clock time")

	// ErrInvalidWeekday возвращается при некорректном дне недели
	ErrInvalidWeekday = errors.New("domain: invalid weekday")
)
