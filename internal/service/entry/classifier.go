package entry

import (
	"errors"
	"net/http"
	"strings"

	"deliveryhub/internal/gateway/rest/marketplace"
)

// Classify maps a gateway failure onto the fault taxonomy.
//
// 400-ответы классифицируются эвристикой по подстрокам в свободном тексте
// сообщения бэкенда ("route" / "business"). Пока бэкенд не отдает
// структурированный код ошибки, это единственный доступный сигнал;
// все нераспознанное падает в FaultUnclassified.
func Classify(err error) *Fault {
	var statusErr *marketplace.StatusError
	if errors.As(err, &statusErr) {
		return classifyStatus(statusErr, err)
	}

	if errors.Is(err, marketplace.ErrBackendUnreachable) {
		return &Fault{
			Kind:    FaultConnectivity,
			Message: "backend unreachable",
			cause:   err,
		}
	}

	return &Fault{
		Kind:    FaultUnclassified,
		Message: err.Error(),
		cause:   err,
	}
}

func classifyStatus(statusErr *marketplace.StatusError, cause error) *Fault {
	fault := &Fault{
		Message: statusErr.Message,
		cause:   cause,
	}

	switch {
	case statusErr.Code == http.StatusNotFound:
		fault.Kind = FaultAlreadyGone
	case statusErr.Code >= http.StatusInternalServerError:
		fault.Kind = FaultServerFault
	case statusErr.Code == http.StatusBadRequest:
		fault.Kind = classifyConstraint(statusErr.Message)
	default:
		fault.Kind = FaultUnclassified
	}

	return fault
}

func classifyConstraint(message string) FaultKind {
	lowered := strings.ToLower(message)
	switch {
	case strings.Contains(lowered, "route"):
		return FaultRouteConstraint
	case strings.Contains(lowered, "business"):
		return FaultBusinessConstraint
	default:
		return FaultGenericConstraint
	}
}
