package domain

import "github.com/shopspring/decimal"

// Service услуга салона
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
	Category        string
	Price           decimal.Decimal // Передается без изменений
}

// Provider мастер салона
type Provider struct {
	ID              int64
	SalonID         int64
	Name            string
	Specializations []string
	Schedule        WeeklySchedule
	IsActive        bool
}

// CanPerform reports whether category is in the provider's specialization set
func (p *Provider) CanPerform(category string) bool {
	for _, s := range p.Specializations {
		if s == category {
			return true
		}
	}
	return false
}

// IsEligible reports whether the provider may be offered for a service of category in salonID
func (p *Provider) IsEligible(salonID int64, category string) bool {
	return p.IsActive && p.SalonID == salonID && p.CanPerform(category)
}
