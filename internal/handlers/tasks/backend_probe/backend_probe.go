package backend_probe

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"deliveryhub/pkg/logger"
)

var backendReachable = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "marketplace_backend_reachable",
		Help: "Whether the marketplace backend answered the last probe (1/0)",
	},
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// BackendProbe periodically checks marketplace reachability so connectivity
// loss is visible before an operator hits it.
type BackendProbe struct {
	log      logger.Logger
	pinger   Pinger
	interval time.Duration
}

func NewBackendProbe(log logger.Logger, pinger Pinger, interval time.Duration) *BackendProbe {
	return &BackendProbe{
		log:      log,
		pinger:   pinger,
		interval: interval,
	}
}

func (b *BackendProbe) TTL() time.Duration {
	return b.interval
}

func (b *BackendProbe) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, b.interval)
	defer cancel()

	err := b.pinger.Ping(ctxWithTimeout)
	if err != nil {
		backendReachable.Set(0)
		b.log.With(
			logger.NewField("error", err),
		).Warn("backend probe failed")
		return nil
	}

	backendReachable.Set(1)
	return nil
}

func (b *BackendProbe) Info() string {
	return "backend probe"
}
