package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending           BookingStatus = "pending"
	StatusConfirmed         BookingStatus = "confirmed"
	StatusInProgress        BookingStatus = "in_progress"
	StatusCompleted         BookingStatus = "completed"
	StatusCancelledByClient BookingStatus = "cancelled_by_client"
	StatusCancelledBySalon  BookingStatus = "cancelled_by_salon"
	StatusNoShow            BookingStatus = "no_show"
)

// InactiveStatuses статусы, не участвующие в проверке пересечений
var InactiveStatuses = []BookingStatus{
	StatusCancelledByClient,
	StatusCancelledBySalon,
	StatusNoShow,
}

// ExistingBooking snapshot of an appointment already in the ledger
type ExistingBooking struct {
	ID         int64
	ProviderID int64
	StartAt    time.Time
	EndAt      *time.Time // nil - конец неизвестен, используется DefaultBookingDuration
	Status     BookingStatus
}

// IsActive returns true if the booking blocks the provider's time
func (b *ExistingBooking) IsActive() bool {
	for _, s := range InactiveStatuses {
		if b.Status == s {
			return false
		}
	}
	return true
}

// EffectiveEnd returns EndAt, or StartAt + DefaultBookingDuration when the end is missing
func (b *ExistingBooking) EffectiveEnd() time.Time {
	if b.EndAt == nil {
		return b.StartAt.Add(DefaultBookingDuration)
	}
	return *b.EndAt
}

// Overlaps reports open-interval overlap with [start, end); touching boundaries do not overlap
func (b *ExistingBooking) Overlaps(start, end time.Time) bool {
	return start.Before(b.EffectiveEnd()) && end.After(b.StartAt)
}
