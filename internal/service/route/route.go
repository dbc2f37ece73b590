package route

import (
	"context"
	"sync"
	"sync/atomic"

	"deliveryhub/internal/entities"
)

// Service plans delivery routes over the current entry set and keeps the
// last known route list warm for listing.
type Service struct {
	gateway   Gateway
	presenter Presenter

	// inFlight guards GenerateRoute against concurrent re-entry: the guard is
	// an explicit flag, not a side effect of transport state.
	inFlight atomic.Bool

	mu     sync.RWMutex
	routes []entities.Route
}

func New(gateway Gateway, presenter Presenter) *Service {
	return &Service{
		gateway:   gateway,
		presenter: presenter,
	}
}

func (s *Service) ListRoutes(ctx context.Context) ([]entities.Route, error) {
	routes, err := s.gateway.ListRoutes(ctx)
	if err != nil {
		return nil, err
	}

	s.storeRoutes(routes)
	return routes, nil
}

// GenerateRoute requests a new planned route from the backend. At most one
// generation runs at a time: a request that arrives while another is in
// flight performs zero network calls and reports ErrGenerationInFlight.
func (s *Service) GenerateRoute(ctx context.Context) (*entities.Route, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrGenerationInFlight
	}
	defer s.inFlight.Store(false)

	planned, err := s.gateway.GenerateRoute(ctx)
	if err != nil {
		return nil, err
	}

	// Отказ перечитывания списка не отменяет успешную генерацию: маршрут
	// уже создан на бэкенде, список догонит при следующем ListRoutes.
	if routes, err := s.gateway.ListRoutes(ctx); err == nil {
		s.storeRoutes(routes)
	}

	s.presenter.RoutePlanned(planned)

	return planned, nil
}

// CachedRoutes returns the last successfully fetched route list.
func (s *Service) CachedRoutes() []entities.Route {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]entities.Route, len(s.routes))
	copy(snapshot, s.routes)
	return snapshot
}

func (s *Service) storeRoutes(routes []entities.Route) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.routes = make([]entities.Route, len(routes))
	copy(s.routes, routes)
}
