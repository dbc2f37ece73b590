package entries_get

import (
	"encoding/json"
	"errors"
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
	// Фильтр статуса нормализуется на входе: "Out for delivery" и
	// "out-for-delivery" должны давать один и тот же результат.
	searchQuery := r.URL.Query().Get("query")
	statusFilter := entry.NormalizeStatus(r.URL.Query().Get("status"))

	entryEntities, err := h.service.ListEntries(r.Context(), searchQuery, statusFilter)
	if err != nil {
		var fault *entry.Fault
		if errors.As(err, &fault) {
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
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	entryDTOs := make([]dto.DeliveryEntry, len(entryEntities))
	for i, entryEntity := range entryEntities {
		entryDTOs[i].DeliveryID = entryEntity.DeliveryID
		entryDTOs[i].OrderID = entryEntity.OrderID
		entryDTOs[i].MerchantName = entryEntity.MerchantName
		entryDTOs[i].SupplierName = entryEntity.SupplierName
		entryDTOs[i].DeliveryAddress = entryEntity.DeliveryAddress
		entryDTOs[i].Status = entryEntity.Status.String()
		entryDTOs[i].CreatedAt = entryEntity.CreatedAt
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(entryDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
