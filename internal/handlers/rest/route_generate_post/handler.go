package route_generate_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"deliveryhub/internal/generated/dto"
	"deliveryhub/internal/service/entry"
	"deliveryhub/internal/service/route"
	"deliveryhub/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	service  Service
	guidance Guidance
}

func New(log handlerLogger, service Service, guidance Guidance) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		service:  service,
		guidance: guidance,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	planned, err := h.service.GenerateRoute(r.Context())
	if err != nil {
		if errors.Is(err, route.ErrGenerationInFlight) {
			// Повторный запрос во время генерации не ставится в очередь.
			w.WriteHeader(http.StatusConflict)
			return
		}

		fault := entry.Classify(err)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(h.guidance.HTTPStatusFor(fault.Kind))
		encodeErr := json.NewEncoder(w).Encode(dto.Fault{
			Kind:     fault.Kind.String(),
			Message:  fault.Message,
			Guidance: h.guidance.GuidanceFor(fault.Kind),
		})
		if encodeErr != nil {
			h.log.With(
				logger.NewField("error", encodeErr),
			).Error("encode JSON response")
		}
		return
	}

	response := dto.Route{
		RouteID:           planned.RouteID,
		RouteName:         planned.RouteName,
		DeliveryAddresses: planned.DeliveryAddresses,
		TotalDistance:     planned.TotalDistance,
		EstimatedDuration: planned.EstimatedDuration,
		Status:            planned.Status,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
