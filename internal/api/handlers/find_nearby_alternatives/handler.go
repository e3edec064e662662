package find_nearby_alternatives

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SlotEngine/internal/api/handlers"
	findNearbyAlternatives "github.com/m04kA/SMC-SlotEngine/internal/usecase/find_nearby_alternatives"
)

const (
	msgInvalidSalonID   = "некорректный ID салона"
	msgMissingServiceID = "ID услуги обязателен"
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidQuery     = "некорректный параметр запроса"
	msgInvalidSearch    = "некорректные параметры поиска"
)

type Handler struct {
	useCase FindNearbyAlternativesUseCase
	logger  Logger
}

func NewHandler(useCase FindNearbyAlternativesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/alternatives
// Query params: serviceId, date (YYYY-MM-DD), time (HH:MM) (required), providerId, from, days, max,
// preferSameTime, preferSameDay
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID, err := handlers.ParseID(mux.Vars(r)["salonId"])
	if err != nil {
		h.logger.Warn("GET /salons/{id}/alternatives - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	q := r.URL.Query()
	serviceIDStr := q.Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /salons/{id}/alternatives - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}
	serviceID, err := handlers.ParseID(serviceIDStr)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/alternatives - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(salonID, serviceID, q)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/alternatives - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery+": "+err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, findNearbyAlternatives.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/alternatives - Invalid search: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidSearch+": "+err.Error())

		case errors.Is(err, findNearbyAlternatives.ErrUpstreamUnavailable):
			h.logger.Error("GET /salons/{id}/alternatives - Upstream unavailable: salon_id=%d, error=%v", salonID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /salons/{id}/alternatives - Failed to find alternatives: salon_id=%d, service_id=%d, error=%v",
				salonID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/alternatives - Alternatives found: salon_id=%d, service_id=%d, returned=%d, candidates=%d",
		salonID, serviceID, len(result.Alternatives), result.TotalCandidates)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
