package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"deliveryhub/internal/pkg/config"
	"deliveryhub/pkg/logger"
	retrierconfig "deliveryhub/pkg/retrier"
	"deliveryhub/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 1 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

// NewClient builds the shared HTTP client for the marketplace backend and
// probes it with retries before the service starts serving traffic. Startup
// is the only place where retries happen; operator-triggered requests go out
// exactly once.
func NewClient(ctx context.Context, log logger.Logger, cfg *config.Marketplace) (*http.Client, error) {
	client := &http.Client{
		Timeout: cfg.RequestTimeout,
	}

	probeLog := log.With(
		logger.NewField("component", "http-client"),
		logger.NewField("base_url", cfg.BaseURL),
	)

	err := probeBackend(ctx, probeLog, client, cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("backend connection: %w", err)
	}

	return client, nil
}

func probeBackend(ctx context.Context, log logger.Logger, client *http.Client, baseURL string) error {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // все ошибки ретраим
	}

	retrier := backoff_adapter.New(retryConfig)

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting backend connection")

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, http.NoBody)
		if err != nil {
			return err
		}

		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		// Любой HTTP-ответ означает достижимость, код не важен.
		return resp.Body.Close()
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("backend connection failed after retries")
		return fmt.Errorf("failed to reach backend: %w", err)
	}

	log.With(logger.NewField(
		"attempts", attempt),
	).Info("backend connection established")
	return nil
}
