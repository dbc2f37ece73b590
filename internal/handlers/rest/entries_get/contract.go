//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=entries_get_test
package entries_get

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
	ListEntries(ctx context.Context, searchQuery, statusFilter string) ([]entities.DeliveryEntry, error)
}

type Guidance interface {
	GuidanceFor(kind entry.FaultKind) string
	HTTPStatusFor(kind entry.FaultKind) int
}
