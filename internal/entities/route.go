package entities

// Route is produced exclusively by the marketplace route generator. The
// ordered address sequence plus the summary fields are the whole contract a
// map renderer needs.
type Route struct {
	RouteID           int64
	RouteName         string
	DeliveryAddresses []string
	TotalDistance     string
	EstimatedDuration string
	Status            string
}
