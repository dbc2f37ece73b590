//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=entry_delete_test
package entry_delete

import (
	"context"

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
	DeleteEntry(ctx context.Context, deliveryID int64, confirmed bool) error
}

type Guidance interface {
	GuidanceFor(kind entry.FaultKind) string
	HTTPStatusFor(kind entry.FaultKind) int
}
