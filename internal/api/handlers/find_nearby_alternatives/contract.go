package find_nearby_alternatives

import (
	"context"

	findNearbyAlternatives "github.com/m04kA/SMC-SlotEngine/internal/usecase/find_nearby_alternatives"
)

type FindNearbyAlternativesUseCase interface {
	Execute(ctx context.Context, req *findNearbyAlternatives.Request) (*findNearbyAlternatives.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
