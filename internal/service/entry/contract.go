//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=entry_test
package entry

import (
	"context"

	"deliveryhub/internal/entities"
)

type Gateway interface {
	ListEntries(ctx context.Context) ([]entities.DeliveryEntry, error)
	UpdateEntryStatus(ctx context.Context, deliveryID int64, status entities.EntryStatusType) error
	DeleteEntry(ctx context.Context, deliveryID int64) error
}

type Cache interface {
	Replace(entries []entities.DeliveryEntry)
	Snapshot() ([]entities.DeliveryEntry, bool)
	Invalidate()
}
