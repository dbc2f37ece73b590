package fault_guidance

import (
	"net/http"

	"deliveryhub/internal/service/entry"
)

// GuidanceFactory maps a classified backend fault to the remediation text
// shown to the operator alongside the verbatim error message.
type GuidanceFactory struct{}

func New() *GuidanceFactory {
	return &GuidanceFactory{}
}

func (g *GuidanceFactory) GuidanceFor(kind entry.FaultKind) string {
	switch kind {
	case entry.FaultRouteConstraint:
		return "The entry is part of an active route. Remove it from the route before deleting."
	case entry.FaultBusinessConstraint:
		return "The operation violates a business rule. Contact the administrator if the rule looks wrong."
	case entry.FaultGenericConstraint:
		return "The request was rejected by the backend. Review the entry and try again."
	case entry.FaultAlreadyGone:
		return "The entry no longer exists. Refresh the list to see the current state."
	case entry.FaultServerFault:
		return "The backend failed to process the request. Retry later."
	case entry.FaultConnectivity:
		return "The backend is unreachable. Check the connection and retry."
	default:
		return "Unexpected error. Retry, and contact the administrator if it persists."
	}
}

// HTTPStatusFor maps a fault kind to the status code of the operator surface.
func (g *GuidanceFactory) HTTPStatusFor(kind entry.FaultKind) int {
	switch kind {
	case entry.FaultRouteConstraint, entry.FaultBusinessConstraint:
		return http.StatusConflict
	case entry.FaultGenericConstraint:
		return http.StatusBadRequest
	case entry.FaultAlreadyGone:
		return http.StatusNotFound
	case entry.FaultServerFault, entry.FaultConnectivity:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
