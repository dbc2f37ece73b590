package entry

import (
	"context"
	"strings"

	"deliveryhub/internal/entities"
)

// Service owns the delivery-entry lifecycle: listing with in-memory filters,
// status updates and confirmed deletes. Every successful mutation invalidates
// the cached list and re-fetches it, so reads only ever show confirmed server
// state.
type Service struct {
	gateway Gateway
	cache   Cache
}

func New(gateway Gateway, cache Cache) *Service {
	return &Service{
		gateway: gateway,
		cache:   cache,
	}
}

// ListEntries returns the entry set filtered by a case-insensitive substring
// query and an exact normalized-status filter. The full set comes from the
// cache when fresh, otherwise from the backend.
func (s *Service) ListEntries(ctx context.Context, searchQuery, statusFilter string) ([]entities.DeliveryEntry, error) {
	entries, fresh := s.cache.Snapshot()
	if !fresh {
		var err error
		entries, err = s.fetch(ctx)
		if err != nil {
			return nil, Classify(err)
		}
	}

	return filterEntries(entries, searchQuery, statusFilter), nil
}

// UpdateStatus validates the new status against the closed enumeration before
// any network call is made.
func (s *Service) UpdateStatus(ctx context.Context, deliveryID int64, status entities.EntryStatusType) error {
	if deliveryID <= 0 {
		return ErrInvalidDeliveryID
	}
	if strings.TrimSpace(status.String()) == "" {
		return ErrEmptyStatus
	}
	if !isValidEntryStatus(status) {
		return ErrUnknownStatus
	}

	if err := s.gateway.UpdateEntryStatus(ctx, deliveryID, status); err != nil {
		return Classify(err)
	}

	s.refreshAfterMutate(ctx)
	return nil
}

// DeleteEntry refuses unconfirmed requests client-side; the confirmation gate
// belongs to the operator, not the backend.
func (s *Service) DeleteEntry(ctx context.Context, deliveryID int64, confirmed bool) error {
	if !confirmed {
		return ErrDeleteNotConfirmed
	}
	if deliveryID <= 0 {
		return ErrInvalidDeliveryID
	}

	if err := s.gateway.DeleteEntry(ctx, deliveryID); err != nil {
		return Classify(err)
	}

	s.refreshAfterMutate(ctx)
	return nil
}

// Refresh drops the cached snapshot and re-fetches the entry list. Intake and
// route generation call this after their mutations instead of re-implementing
// the refresh-after-mutate policy.
func (s *Service) Refresh(ctx context.Context) error {
	if _, err := s.fetch(ctx); err != nil {
		s.cache.Invalidate()
		return Classify(err)
	}
	return nil
}

func (s *Service) fetch(ctx context.Context) ([]entities.DeliveryEntry, error) {
	entries, err := s.gateway.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Replace(entries)
	return entries, nil
}

// refreshAfterMutate перечитывает список после подтвержденной мутации.
// Ошибка перечитывания не отменяет успех мутации: кэш остается
// инвалидированным, и следующий ListEntries сам сходит к бэкенду.
func (s *Service) refreshAfterMutate(ctx context.Context) {
	s.cache.Invalidate()
	if entries, err := s.gateway.ListEntries(ctx); err == nil {
		s.cache.Replace(entries)
	}
}
