package httpd

import (
	"net/http"
	"time"

	"github.com/HarshXTrisha/vericheck-pro/internal/models"
)

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthCheckResponse{
		Status:            "healthy",
		GatewayConfigured: h.gateway.Configured(),
		StoredReports:     h.reportService.ReportCount(),
		Uptime:            time.Since(h.startedAt).Round(time.Second).String(),
		Timestamp:         time.Now(),
	})
}
