package catalogservice

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
)

// Service модель услуги из CatalogService
type Service struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	DurationMinutes int             `json:"duration_minutes"`
	Category        string          `json:"category"`
	Price           decimal.Decimal `json:"price"`
}

// ToDomain конвертирует услугу каталога в доменную модель
func (s *Service) ToDomain() *domain.Service {
	return &domain.Service{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		Category:        s.Category,
		Price:           s.Price,
	}
}
