package marketplace

import "time"

type entryPayload struct {
	DeliveryID      int64     `json:"deliveryId"`
	OrderID         string    `json:"orderId"`
	MerchantName    string    `json:"merchantName"`
	SupplierName    string    `json:"supplierName"`
	DeliveryAddress string    `json:"deliveryAddress"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

type orderPayload struct {
	OrderID         string  `json:"orderId"`
	MerchantID      string  `json:"merchantId"`
	SupplierID      string  `json:"supplierId"`
	MerchantName    string  `json:"merchantName"`
	SupplierName    string  `json:"supplierName"`
	DeliveryAddress string  `json:"deliveryAddress"`
	Route           string  `json:"route"`
	TotalAmount     float64 `json:"totalAmount"`
	ContactNumber   string  `json:"contactNumber"`
	Status          string  `json:"status"`
}

type routePayload struct {
	RouteID   int64  `json:"routeId"`
	RouteName string `json:"routeName"`
	// Бэкенд сериализует последовательность адресов строкой
	DeliveryAddresses string `json:"deliveryAddresses"`
	TotalDistance     string `json:"totalDistance"`
	EstimatedDuration string `json:"estimatedDuration"`
	Status            string `json:"status"`
}

type createEntryRequest struct {
	OrderID string `json:"orderId"`
}

type updateEntryStatusRequest struct {
	Status string `json:"status"`
}
