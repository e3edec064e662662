package domain

import "time"

// Default search values
const (
	DefaultSlotIntervalMinutes = 30
	DefaultMaxDaysAhead        = 7
	DefaultLimit               = 10
	DefaultMaxAlternatives     = 5
	DefaultHighlightThreshold  = 1500
	DefaultBookingDuration     = 60 * time.Minute
)

// Business validation constants
const (
	MaxDaysAheadCeiling = 60
	MaxLimitCeiling     = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
