package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"deliveryhub/internal/entities"
)

const serviceName = "marketplace"

// Gateway is the HTTP client for the wholesale-marketplace backend. It never
// retries on its own: a failed call is returned to the operator as-is.
type Gateway struct {
	client  httpClient
	baseURL string
}

func New(client httpClient, baseURL string) *Gateway {
	return &Gateway{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (g *Gateway) ListEntries(ctx context.Context) ([]entities.DeliveryEntry, error) {
	var payloads []entryPayload

	err := g.executeWithMetrics(ctx, "ListEntries", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodGet, "/delivery/entries", nil, &payloads)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway marketplace, list entries: %w", err)
	}

	return toEntryDomainList(payloads), nil
}

func (g *Gateway) CreateEntry(ctx context.Context, orderID string) (*entities.DeliveryEntry, error) {
	req := createEntryRequest{OrderID: orderID}

	var payload entryPayload

	err := g.executeWithMetrics(ctx, "CreateEntry", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodPost, "/delivery/entries", req, &payload)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway marketplace, create entry for order %s: %w", orderID, err)
	}

	return toEntryDomain(&payload), nil
}

func (g *Gateway) UpdateEntryStatus(ctx context.Context, deliveryID int64, status entities.EntryStatusType) error {
	req := updateEntryStatusRequest{Status: status.String()}
	path := fmt.Sprintf("/delivery/entries/%d/status", deliveryID)

	err := g.executeWithMetrics(ctx, "UpdateEntryStatus", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodPut, path, req, nil)
	})
	if err != nil {
		return fmt.Errorf("gateway marketplace, update entry %d status: %w", deliveryID, err)
	}

	return nil
}

func (g *Gateway) DeleteEntry(ctx context.Context, deliveryID int64) error {
	path := fmt.Sprintf("/delivery/entries/%d", deliveryID)

	err := g.executeWithMetrics(ctx, "DeleteEntry", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodDelete, path, nil, nil)
	})
	if err != nil {
		return fmt.Errorf("gateway marketplace, delete entry %d: %w", deliveryID, err)
	}

	return nil
}

func (g *Gateway) ListReadyOrders(ctx context.Context) ([]entities.Order, error) {
	var payloads []orderPayload

	err := g.executeWithMetrics(ctx, "ListReadyOrders", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodGet, "/delivery/orders/ready-for-pickup", nil, &payloads)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway marketplace, list ready orders: %w", err)
	}

	return toOrderDomainList(payloads), nil
}

func (g *Gateway) ListRoutes(ctx context.Context) ([]entities.Route, error) {
	var payloads []routePayload

	err := g.executeWithMetrics(ctx, "ListRoutes", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodGet, "/delivery/routes", nil, &payloads)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway marketplace, list routes: %w", err)
	}

	return toRouteDomainList(payloads), nil
}

func (g *Gateway) GenerateRoute(ctx context.Context) (*entities.Route, error) {
	var payload routePayload

	// Тело пустое: бэкенд сам выбирает подходящие entries для маршрута
	err := g.executeWithMetrics(ctx, "GenerateRoute", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodPost, "/delivery/routes/generate", nil, &payload)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway marketplace, generate route: %w", err)
	}

	return toRouteDomain(&payload), nil
}

// Ping checks plain reachability. Любой HTTP-ответ считается успехом:
// здесь важен только сам факт соединения, не код.
func (g *Gateway) Ping(ctx context.Context) error {
	return g.executeWithMetrics(ctx, "Ping", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/", http.NoBody)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}

		resp, err := g.client.Do(req)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBackendUnreachable, err)
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.Body.Close()
	})
}

func (g *Gateway) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBackendUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return newStatusError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	start := time.Now()

	err := fn(ctx)

	httpCode := getHTTPCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, httpCode).Observe(time.Since(start).Seconds())
	if err != nil {
		GatewayErrorsTotal.WithLabelValues(serviceName, method, httpCode).Inc()
	}

	return err
}

func getHTTPCode(err error) string {
	if err == nil {
		return "OK"
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.Code)
	}

	if errors.Is(err, ErrBackendUnreachable) {
		return "UNREACHABLE"
	}
	return "UNKNOWN"
}
