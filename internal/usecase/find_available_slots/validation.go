package find_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-SlotEngine/pkg/validator"
)

var requestValidator = validator.New()

// validateRequest валидирует входные данные запроса и ограничения конфигурации
func validateRequest(req *Request, opts Options) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if err := requestValidator.Validate(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.MaxDaysAhead != nil && *req.MaxDaysAhead > opts.MaxDaysAhead {
		return fmt.Errorf("%w: MaxDaysAhead must be less than or equal to %d", ErrInvalidInput, opts.MaxDaysAhead)
	}

	if req.Limit != nil && *req.Limit > opts.MaxLimit {
		return fmt.Errorf("%w: Limit must be less than or equal to %d", ErrInvalidInput, opts.MaxLimit)
	}

	return nil
}

func resolveDays(req *Request, opts Options) int {
	if req.MaxDaysAhead == nil {
		return opts.DefaultMaxDaysAhead
	}
	return *req.MaxDaysAhead
}

func resolveLimit(req *Request, opts Options) int {
	if req.Limit == nil {
		return opts.DefaultLimit
	}
	return *req.Limit
}
