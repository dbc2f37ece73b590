package entities

import "time"

// DeliveryEntry is one order handed over for physical delivery. Its status
// lives independently of the order's own status.
type DeliveryEntry struct {
	DeliveryID      int64
	OrderID         string
	MerchantName    string
	SupplierName    string
	DeliveryAddress string
	Status          EntryStatusType
	CreatedAt       time.Time
}

type EntryStatusType string

const (
	EntryReadyForDelivery EntryStatusType = "Ready for delivery"
	EntryOutForDelivery   EntryStatusType = "Out for delivery"
	EntryDelivered        EntryStatusType = "Delivered"
	EntryFailedDelivery   EntryStatusType = "Failed delivery"
	EntryReturned         EntryStatusType = "Returned"
)

func (s EntryStatusType) String() string {
	return string(s)
}

// EntryStatuses lists the closed status enumeration in lifecycle order.
func EntryStatuses() []EntryStatusType {
	return []EntryStatusType{
		EntryReadyForDelivery,
		EntryOutForDelivery,
		EntryDelivered,
		EntryFailedDelivery,
		EntryReturned,
	}
}
