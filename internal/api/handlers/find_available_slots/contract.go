package find_available_slots

import (
	"context"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
	findAvailableSlots "github.com/m04kA/SMC-SlotEngine/internal/usecase/find_available_slots"
)

type FindAvailableSlotsUseCase interface {
	Execute(ctx context.Context, req *findAvailableSlots.Request) (*domain.SlotSearchResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
