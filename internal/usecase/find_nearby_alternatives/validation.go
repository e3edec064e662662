package find_nearby_alternatives

import (
	"fmt"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
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

	if req.MaxAlternatives != nil {
		return validateMaxAlternatives(*req.MaxAlternatives, opts)
	}

	return nil
}

func validateMaxAlternatives(maxAlternatives int, opts Options) error {
	if maxAlternatives <= 0 || maxAlternatives > opts.MaxAlternatives {
		return fmt.Errorf("%w: MaxAlternatives must be in [1, %d]", ErrInvalidInput, opts.MaxAlternatives)
	}
	return nil
}

func validateTargetTime(target domain.ClockTime) error {
	if !target.Valid() || target.Minutes() == domain.MinutesPerDay {
		return fmt.Errorf("%w: target time %d is out of range", ErrInvalidInput, target.Minutes())
	}
	return nil
}
