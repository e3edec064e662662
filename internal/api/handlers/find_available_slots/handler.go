package find_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SlotEngine/internal/api/handlers"
	findAvailableSlots "github.com/m04kA/SMC-SlotEngine/internal/usecase/find_available_slots"
)

const (
	msgInvalidSalonID   = "некорректный ID салона"
	msgMissingServiceID = "ID услуги обязателен"
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidQuery     = "некорректный параметр запроса"
	msgInvalidSearch    = "некорректные параметры поиска"
)

type Handler struct {
	useCase FindAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase FindAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/available-slots
// Query params: serviceId (required), providerId, date (YYYY-MM-DD), time (HH:MM), from (YYYY-MM-DD), days, limit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID, err := handlers.ParseID(mux.Vars(r)["salonId"])
	if err != nil {
		h.logger.Warn("GET /salons/{id}/available-slots - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	q := r.URL.Query()
	serviceIDStr := q.Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /salons/{id}/available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}
	serviceID, err := handlers.ParseID(serviceIDStr)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(salonID, serviceID, q)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/available-slots - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery+": "+err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, findAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/available-slots - Invalid search: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidSearch+": "+err.Error())

		case errors.Is(err, findAvailableSlots.ErrUpstreamUnavailable):
			h.logger.Error("GET /salons/{id}/available-slots - Upstream unavailable: salon_id=%d, error=%v", salonID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /salons/{id}/available-slots - Failed to find slots: salon_id=%d, service_id=%d, error=%v",
				salonID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/available-slots - Slots found: salon_id=%d, service_id=%d, returned=%d, total=%d",
		salonID, serviceID, len(result.Slots), result.TotalFound)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
