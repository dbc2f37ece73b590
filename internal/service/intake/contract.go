//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=intake_test
package intake

import (
	"context"

	"deliveryhub/internal/entities"
)

type Gateway interface {
	ListReadyOrders(ctx context.Context) ([]entities.Order, error)
	CreateEntry(ctx context.Context, orderID string) (*entities.DeliveryEntry, error)
}

// EntryRefresher re-fetches the delivery-entry list after intake mutations.
// Implemented by the entry lifecycle service.
type EntryRefresher interface {
	Refresh(ctx context.Context) error
}
