package entry_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"deliveryhub/internal/entities"
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
	var statusUpdateDTO dto.EntryStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.UpdateStatus(r.Context(), statusUpdateDTO.DeliveryID, entities.EntryStatusType(statusUpdateDTO.Status))
	if err != nil {
		switch {
		case errors.Is(err, entry.ErrInvalidDeliveryID),
			errors.Is(err, entry.ErrEmptyStatus),
			errors.Is(err, entry.ErrUnknownStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.writeFault(w, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeFault(w http.ResponseWriter, err error) {
	var fault *entry.Fault
	if !errors.As(err, &fault) {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

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
}
