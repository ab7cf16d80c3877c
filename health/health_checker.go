// Package health provides health checking functionality for the dosing API.
package health

import (
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/dozhesap/dosing-api/interfaces"
)

// HealthCheckerImpl implements the interfaces.HealthChecker interface
type HealthCheckerImpl struct {
	catalog interfaces.CatalogStore
}

// NewHealthChecker creates a new health checker with injected dependencies
func NewHealthChecker(catalog interfaces.CatalogStore) interfaces.HealthChecker {
	return &HealthCheckerImpl{
		catalog: catalog,
	}
}

// HealthCheck returns health data for the /health HTTP endpoint. An empty
// catalog means the service cannot answer anything and is unhealthy; a
// catalog that has not been reloaded for days is only degraded, the rules
// themselves do not go stale within hours.
func (h *HealthCheckerImpl) HealthCheck() (status string, data map[string]any, httpStatus int) {
	drugs := h.catalog.GetDrugs()
	lastUpdate := h.catalog.GetLastUpdated()
	isUpdating := h.catalog.IsUpdating()

	ruleCount := 0
	for _, d := range drugs {
		ruleCount += len(d.Rules)
	}

	dataAge := time.Since(lastUpdate)

	switch {
	case len(drugs) == 0:
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable

	case dataAge > 72*time.Hour:
		status = "degraded"
		httpStatus = http.StatusOK

	default:
		status = "healthy"
		httpStatus = http.StatusOK
	}

	data = map[string]any{
		"last_update":    lastUpdate.Format(time.RFC3339),
		"data_age_hours": math.Round(dataAge.Hours()*10) / 10,
		"next_update":    h.CalculateNextUpdate().Format(time.RFC3339),
		"drugs":          len(drugs),
		"rules":          ruleCount,
		"is_updating":    isUpdating,
		"uptime":         formatUptimeHuman(time.Since(h.catalog.GetServerStartTime())),
	}

	return status, data, httpStatus
}

// CalculateNextUpdate returns the next scheduled catalog reload time.
// Reloads run daily at 06:00 local time.
func (h *HealthCheckerImpl) CalculateNextUpdate() time.Time {
	now := time.Now()

	sixAM := time.Date(now.Year(), now.Month(), now.Day(), 6, 0, 0, 0, now.Location())
	if now.Before(sixAM) {
		return sixAM
	}

	return sixAM.AddDate(0, 0, 1)
}

// formatUptimeHuman formats duration into a human-readable string
func formatUptimeHuman(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	var parts []string

	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 || hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	parts = append(parts, fmt.Sprintf("%ds", seconds))

	return strings.Join(parts, " ")
}
