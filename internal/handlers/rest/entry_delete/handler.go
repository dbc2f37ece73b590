package entry_delete

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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
	idStr := mux.Vars(r)["deliveryId"]
	deliveryID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))

	err = h.service.DeleteEntry(r.Context(), deliveryID, confirmed)
	if err != nil {
		switch {
		case errors.Is(err, entry.ErrDeleteNotConfirmed):
			// Удаление без явного подтверждения отклоняется на нашей
			// стороне, до какого-либо сетевого вызова.
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, entry.ErrInvalidDeliveryID):
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
