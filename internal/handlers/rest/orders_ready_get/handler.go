package orders_ready_get

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
	orderEntities, err := h.service.ListCandidates(r.Context())
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

	filtered := h.service.FilterCandidates(orderEntities, r.URL.Query().Get("query"))

	orderDTOs := make([]dto.Order, len(filtered))
	for i, orderEntity := range filtered {
		orderDTOs[i].OrderID = orderEntity.OrderID
		orderDTOs[i].MerchantID = orderEntity.MerchantID
		orderDTOs[i].SupplierID = orderEntity.SupplierID
		orderDTOs[i].MerchantName = orderEntity.MerchantName
		orderDTOs[i].SupplierName = orderEntity.SupplierName
		orderDTOs[i].DeliveryAddress = orderEntity.DeliveryAddress
		orderDTOs[i].Route = orderEntity.Route
		orderDTOs[i].TotalAmount = orderEntity.TotalAmount
		orderDTOs[i].ContactNumber = orderEntity.ContactNumber
		orderDTOs[i].Status = orderEntity.Status.String()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
