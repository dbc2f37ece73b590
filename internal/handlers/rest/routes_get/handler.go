package routes_get

import (
	"encoding/json"
	"net/http"

	"deliveryhub/internal/generated/dto"
	"deliveryhub/internal/service/entry"
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
	routeEntities, err := h.service.ListRoutes(r.Context())
	if err != nil {
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

	routeDTOs := make([]dto.Route, len(routeEntities))
	for i, routeEntity := range routeEntities {
		routeDTOs[i].RouteID = routeEntity.RouteID
		routeDTOs[i].RouteName = routeEntity.RouteName
		routeDTOs[i].DeliveryAddresses = routeEntity.DeliveryAddresses
		routeDTOs[i].TotalDistance = routeEntity.TotalDistance
		routeDTOs[i].EstimatedDuration = routeEntity.EstimatedDuration
		routeDTOs[i].Status = routeEntity.Status
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(routeDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
