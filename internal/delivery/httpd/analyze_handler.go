package httpd

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/HarshXTrisha/vericheck-pro/internal/models"
	"github.com/HarshXTrisha/vericheck-pro/internal/service"
)

func (h *Handler) AnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Text == "" || req.FileName == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields: text and fileName")
		return
	}

	report, err := h.analysisService.AnalyzeText(r.Context(), req.Text, req.FileName)
	if err != nil {
		h.handleAnalysisError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) handleAnalysisError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyText):
		writeError(w, http.StatusBadRequest, "Missing required fields: text and fileName")
	case errors.Is(err, service.ErrEmptyFileName):
		writeError(w, http.StatusBadRequest, "Missing required fields: text and fileName")
	case errors.Is(err, service.ErrTextTooLong):
		writeError(w, http.StatusBadRequest, "Text too long. Maximum 50,000 characters allowed.")
	case errors.Is(err, service.ErrGatewayNotConfigured):
		h.logger.Error().Msg("Model gateway API key not configured")
		writeError(w, http.StatusInternalServerError, "Server configuration error")
	default:
		// Both-or-nothing: any gateway failure kills the whole analysis,
		// so the caller just sees a retryable error.
		h.logger.Error().Err(err).Msg("Analysis failed")
		writeError(w, http.StatusBadGateway, "Analysis failed. Please try again.")
	}
}
