package marketplace

import (
	"encoding/json"
	"strings"

	"deliveryhub/internal/entities"
)

func toEntryDomain(p *entryPayload) *entities.DeliveryEntry {
	if p == nil {
		return nil
	}
	return &entities.DeliveryEntry{
		DeliveryID:      p.DeliveryID,
		OrderID:         p.OrderID,
		MerchantName:    p.MerchantName,
		SupplierName:    p.SupplierName,
		DeliveryAddress: p.DeliveryAddress,
		Status:          entities.EntryStatusType(p.Status),
		CreatedAt:       p.CreatedAt,
	}
}

func toEntryDomainList(payloads []entryPayload) []entities.DeliveryEntry {
	entries := make([]entities.DeliveryEntry, 0, len(payloads))
	for i := range payloads {
		entry := toEntryDomain(&payloads[i])
		if entry != nil {
			entries = append(entries, *entry)
		}
	}
	return entries
}

func toOrderDomainList(payloads []orderPayload) []entities.Order {
	orders := make([]entities.Order, 0, len(payloads))
	for _, p := range payloads {
		orders = append(orders, entities.Order{
			OrderID:         p.OrderID,
			MerchantID:      p.MerchantID,
			SupplierID:      p.SupplierID,
			MerchantName:    p.MerchantName,
			SupplierName:    p.SupplierName,
			DeliveryAddress: p.DeliveryAddress,
			Route:           p.Route,
			TotalAmount:     p.TotalAmount,
			ContactNumber:   p.ContactNumber,
			Status:          entities.OrderStatusType(p.Status),
		})
	}
	return orders
}

func toRouteDomain(p *routePayload) *entities.Route {
	if p == nil {
		return nil
	}
	return &entities.Route{
		RouteID:           p.RouteID,
		RouteName:         p.RouteName,
		DeliveryAddresses: decodeAddressSequence(p.DeliveryAddresses),
		TotalDistance:     p.TotalDistance,
		EstimatedDuration: p.EstimatedDuration,
		Status:            p.Status,
	}
}

func toRouteDomainList(payloads []routePayload) []entities.Route {
	routes := make([]entities.Route, 0, len(payloads))
	for i := range payloads {
		route := toRouteDomain(&payloads[i])
		if route != nil {
			routes = append(routes, *route)
		}
	}
	return routes
}

// decodeAddressSequence разбирает строковое представление списка адресов:
// сначала как JSON-массив, иначе как список через запятую.
func decodeAddressSequence(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}

	var addresses []string
	if err := json.Unmarshal([]byte(raw), &addresses); err == nil {
		return addresses
	}

	parts := strings.Split(raw, ",")
	addresses = make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			addresses = append(addresses, trimmed)
		}
	}
	return addresses
}
