//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=intake_all_post_test
package intake_all_post

import (
	"context"

	"deliveryhub/internal/entities"
	"deliveryhub/internal/service/entry"
	"deliveryhub/internal/service/intake"
	"deliveryhub/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListCandidates(ctx context.Context) ([]entities.Order, error)
	FilterCandidates(orders []entities.Order, query string) []entities.Order
	IntakeAll(ctx context.Context, orders []entities.Order) (*intake.Summary, error)
}

type Guidance interface {
	GuidanceFor(kind entry.FaultKind) string
	HTTPStatusFor(kind entry.FaultKind) int
}
