package intake

import (
	"context"
	"strings"

	"deliveryhub/internal/entities"
)

// Service converts ready-for-pickup orders into delivery entries.
type Service struct {
	gateway   Gateway
	refresher EntryRefresher
}

func New(gateway Gateway, refresher EntryRefresher) *Service {
	return &Service{
		gateway:   gateway,
		refresher: refresher,
	}
}

// Summary aggregates the outcome of a bulk intake run.
type Summary struct {
	Succeeded int
	Failed    int
}

func (s *Service) ListCandidates(ctx context.Context) ([]entities.Order, error) {
	return s.gateway.ListReadyOrders(ctx)
}

// FilterCandidates applies a case-insensitive substring match over the
// order's display fields.
func (s *Service) FilterCandidates(orders []entities.Order, query string) []entities.Order {
	lowered := strings.ToLower(strings.TrimSpace(query))
	if lowered == "" {
		return orders
	}

	filtered := make([]entities.Order, 0, len(orders))
	for i := range orders {
		if orderMatchesQuery(&orders[i], lowered) {
			filtered = append(filtered, orders[i])
		}
	}
	return filtered
}

func (s *Service) IntakeOne(ctx context.Context, orderID string) (*entities.DeliveryEntry, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}

	created, err := s.gateway.CreateEntry(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// Отказ refresh не отменяет успешное создание: кэш инвалидирован,
	// следующий ListEntries сам перечитает список.
	_ = s.refresher.Refresh(ctx)

	return created, nil
}

// IntakeAll converts the candidate set strictly sequentially. Each request's
// outcome is independent: a failure does not abort the remaining iterations
// and earlier successes are never rolled back. Exactly one refresh runs at
// the end regardless of partial failure.
func (s *Service) IntakeAll(ctx context.Context, orders []entities.Order) (*Summary, error) {
	if len(orders) == 0 {
		return nil, ErrNothingToIntake
	}

	summary := &Summary{}
	for i := range orders {
		if _, err := s.gateway.CreateEntry(ctx, orders[i].OrderID); err != nil {
			summary.Failed++
			continue
		}
		summary.Succeeded++
	}

	_ = s.refresher.Refresh(ctx)

	return summary, nil
}

func orderMatchesQuery(o *entities.Order, loweredQuery string) bool {
	fields := []string{
		o.OrderID,
		o.MerchantName,
		o.SupplierName,
		o.DeliveryAddress,
		o.Route,
	}

	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), loweredQuery) {
			return true
		}
	}
	return false
}
