//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=intake_post_test
package intake_post

import (
	"context"

	"deliveryhub/internal/entities"
	"deliveryhub/internal/service/entry"
	"deliveryhub/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	IntakeOne(ctx context.Context, orderID string) (*entities.DeliveryEntry, error)
}

type Guidance interface {
	GuidanceFor(kind entry.FaultKind) string
	HTTPStatusFor(kind entry.FaultKind) int
}
