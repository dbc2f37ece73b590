package entry

import (
	"strconv"
	"strings"

	"deliveryhub/internal/entities"
)

// filterEntries applies the search query and the status filter in memory.
// Both filters are ANDed; an empty filter passes everything through.
func filterEntries(entries []entities.DeliveryEntry, searchQuery, statusFilter string) []entities.DeliveryEntry {
	query := strings.ToLower(strings.TrimSpace(searchQuery))
	status := strings.TrimSpace(statusFilter)

	if query == "" && status == "" {
		return entries
	}

	filtered := make([]entities.DeliveryEntry, 0, len(entries))
	for i := range entries {
		if query != "" && !entryMatchesQuery(&entries[i], query) {
			continue
		}
		if status != "" && NormalizeStatus(entries[i].Status.String()) != status {
			continue
		}
		filtered = append(filtered, entries[i])
	}
	return filtered
}

func entryMatchesQuery(e *entities.DeliveryEntry, loweredQuery string) bool {
	fields := []string{
		strconv.FormatInt(e.DeliveryID, 10),
		e.OrderID,
		e.MerchantName,
		e.SupplierName,
		e.DeliveryAddress,
		e.Status.String(),
	}

	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), loweredQuery) {
			return true
		}
	}
	return false
}
