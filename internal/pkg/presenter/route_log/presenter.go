package route_log

import (
	"deliveryhub/internal/entities"
	"deliveryhub/pkg/logger"
)

// Presenter logs a planned route instead of drawing it. Map rendering lives
// on the operator side; the service only needs a handoff point.
type Presenter struct {
	log logger.Logger
}

func New(log logger.Logger) *Presenter {
	return &Presenter{log: log}
}

func (p *Presenter) RoutePlanned(route *entities.Route) {
	if route == nil {
		return
	}

	p.log.With(
		logger.NewField("route_id", route.RouteID),
		logger.NewField("route_name", route.RouteName),
		logger.NewField("stops", len(route.DeliveryAddresses)),
		logger.NewField("total_distance", route.TotalDistance),
		logger.NewField("estimated_duration", route.EstimatedDuration),
	).Info("route planned")
}
