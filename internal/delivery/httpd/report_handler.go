package httpd

import (
	"errors"
	"net/http"

	"github.com/HarshXTrisha/vericheck-pro/internal/service"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.reportService.ListReports())
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	reportID := chi.URLParam(r, "report_id")

	report, err := h.reportService.GetReport(reportID)
	if err != nil {
		h.handleReportError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) GetSegments(w http.ResponseWriter, r *http.Request) {
	reportID := chi.URLParam(r, "report_id")

	segments, err := h.reportService.GetSegments(reportID)
	if err != nil {
		h.handleReportError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, segments)
}

func (h *Handler) GetSources(w http.ResponseWriter, r *http.Request) {
	reportID := chi.URLParam(r, "report_id")

	sources, err := h.reportService.GetSources(reportID)
	if err != nil {
		h.handleReportError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sources)
}

func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	cleared := h.reportService.ClearHistory()
	writeJSON(w, http.StatusOK, map[string]int{"cleared": cleared})
}

func (h *Handler) handleReportError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrReportNotFound) {
		writeError(w, http.StatusNotFound, "Report not found")
		return
	}
	h.logger.Error().Err(err).Msg("Report lookup failed")
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
