package httpd

import (
	"net/http"
	"time"

	"github.com/HarshXTrisha/vericheck-pro/internal/service"
	"github.com/HarshXTrisha/vericheck-pro/internal/service/integration"
	"github.com/HarshXTrisha/vericheck-pro/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	analysisService service.AnalysisService
	reportService   service.ReportService
	gateway         integration.ModelGateway
	startedAt       time.Time
	logger          zerolog.Logger
}

func NewHandler(
	analysisService service.AnalysisService,
	reportService service.ReportService,
	gateway integration.ModelGateway,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		analysisService: analysisService,
		reportService:   reportService,
		gateway:         gateway,
		startedAt:       time.Now(),
		logger:          logger,
	}
}

// RegisterRoutes mounts the API. The submission quota applies to the
// analysis endpoints only; report reads are unmetered.
func (h *Handler) RegisterRoutes(router chi.Router, rateLimit func(http.Handler) http.Handler) {
	router.Get("/health", h.HealthCheck)

	router.Route("/api/v1", func(api chi.Router) {
		api.Route("/analysis", func(r chi.Router) {
			r.Use(rateLimit)
			r.Post("/", h.AnalyzeText)
			r.Post("/upload", h.AnalyzeUpload)
		})

		api.Route("/reports", func(r chi.Router) {
			r.Get("/", h.ListReports)
			r.Delete("/", h.ClearHistory)
			r.Get("/{report_id}", h.GetReport)
			r.Get("/{report_id}/segments", h.GetSegments)
			r.Get("/{report_id}/sources", h.GetSources)
		})
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	utils.WriteJSON(w, status, data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	utils.ErrorResponse(w, status, message)
}
