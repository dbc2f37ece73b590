package intake_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"deliveryhub/internal/generated/dto"
	"deliveryhub/internal/service/entry"
	"deliveryhub/internal/service/intake"
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
	var intakeDTO dto.IntakeRequest
	err := json.NewDecoder(r.Body).Decode(&intakeDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	created, err := h.service.IntakeOne(r.Context(), intakeDTO.OrderID)
	if err != nil {
		if errors.Is(err, intake.ErrInvalidOrderID) {
			w.WriteHeader(http.StatusBadRequest)
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

	response := dto.DeliveryEntry{
		DeliveryID:      created.DeliveryID,
		OrderID:         created.OrderID,
		MerchantName:    created.MerchantName,
		SupplierName:    created.SupplierName,
		DeliveryAddress: created.DeliveryAddress,
		Status:          created.Status.String(),
		CreatedAt:       created.CreatedAt,
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
