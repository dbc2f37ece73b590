package entry

import (
	"strings"

	"deliveryhub/internal/entities"
)

func isValidEntryStatus(status entities.EntryStatusType) bool {
	for _, known := range entities.EntryStatuses() {
		if status == known {
			return true
		}
	}
	return false
}

// NormalizeStatus converts a display status to its filter form:
// lowercase with spaces replaced by hyphens ("Out for delivery" ->
// "out-for-delivery").
func NormalizeStatus(status string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(status)), " ", "-")
}
