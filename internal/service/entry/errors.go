package entry

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyStatus        = errors.New("empty status")
	ErrUnknownStatus      = errors.New("unknown delivery status")
	ErrInvalidDeliveryID  = errors.New("invalid delivery id")
	ErrDeleteNotConfirmed = errors.New("delete not confirmed")
)

// FaultKind is the operator-facing failure taxonomy. Presentation code maps
// each kind to one banner and one remediation text.
type FaultKind string

const (
	FaultRouteConstraint    FaultKind = "route_constraint"
	FaultBusinessConstraint FaultKind = "business_constraint"
	FaultGenericConstraint  FaultKind = "generic_constraint"
	FaultAlreadyGone        FaultKind = "already_gone"
	FaultServerFault        FaultKind = "server_fault"
	FaultConnectivity       FaultKind = "connectivity"
	FaultUnclassified       FaultKind = "unclassified"
)

func (k FaultKind) String() string {
	return string(k)
}

// Fault is a classified backend failure. Message keeps the backend text
// verbatim so the operator sees exactly what the server said.
type Fault struct {
	Kind    FaultKind
	Message string
	cause   error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

func (f *Fault) Unwrap() error {
	return f.cause
}
