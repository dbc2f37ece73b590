package intake_all_post

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

// ServeHTTP converts the whole current candidate set. The set is re-fetched
// on every call; the optional query parameter narrows it the same way the
// candidate list endpoint does.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.service.ListCandidates(r.Context())
	if err != nil {
		h.writeFault(w, err)
		return
	}

	candidates = h.service.FilterCandidates(candidates, r.URL.Query().Get("query"))

	summary, err := h.service.IntakeAll(r.Context(), candidates)
	if err != nil {
		if errors.Is(err, intake.ErrNothingToIntake) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.writeFault(w, err)
		return
	}

	response := dto.IntakeSummary{
		Succeeded: summary.Succeeded,
		Failed:    summary.Failed,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeFault(w http.ResponseWriter, err error) {
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
}
