//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_test
package route

import (
	"context"

	"deliveryhub/internal/entities"
)

type Gateway interface {
	ListRoutes(ctx context.Context) ([]entities.Route, error)
	GenerateRoute(ctx context.Context) (*entities.Route, error)
}

// Presenter receives a freshly planned route for visualization. The service
// does not care how it is rendered.
type Presenter interface {
	RoutePlanned(route *entities.Route)
}
