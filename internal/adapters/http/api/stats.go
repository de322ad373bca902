package api

import (
	"math"
	"net/http"
	"time"
)

// StatsProvider exposes service counters.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// StatsHandler handles GET /stats.
type StatsHandler struct {
	provider StatsProvider
	since    time.Time
}

// NewStatsHandler creates a stats handler; uptime counts from this call.
func NewStatsHandler(provider StatsProvider) *StatsHandler {
	return &StatsHandler{provider: provider, since: time.Now()}
}

// HandleStats returns the service counters plus the API uptime.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, _ *http.Request) {
	stats := h.provider.GetStats()
	stats["uptimeSeconds"] = math.Floor(time.Since(h.since).Seconds())
	writeJSON(w, http.StatusOK, stats)
}
