package api

import (
	"net/http"

	"github.com/okian/careerlens/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthHandler serves the metrics exposition as the liveness probe.
type HealthHandler struct {
	exposition http.Handler
}

// NewHealthHandler creates a health handler bound to the service registry.
func NewHealthHandler() *HealthHandler {
	reg := metrics.GetRegistry()
	return &HealthHandler{
		exposition: promhttp.HandlerFor(reg, promhttp.HandlerOpts{
			Registry:          reg,
			EnableOpenMetrics: true,
		}),
	}
}

// HandleHealth handles GET /healthz.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.exposition.ServeHTTP(w, r)
}
