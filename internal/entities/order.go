package entities

// Order is a read-only projection of a marketplace order. The workflow never
// mutates orders; it only converts ready ones into delivery entries.
type Order struct {
	OrderID         string
	MerchantID      string
	SupplierID      string
	MerchantName    string
	SupplierName    string
	DeliveryAddress string
	Route           string
	TotalAmount     float64
	ContactNumber   string
	Status          OrderStatusType
}

type OrderStatusType string

// OrderReadyToPick marks an order eligible for intake into delivery.
const OrderReadyToPick OrderStatusType = "Ready to Pick"

func (s OrderStatusType) String() string {
	return string(s)
}
