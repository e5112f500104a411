package httpd

import (
	"errors"
	"net/http"

	"github.com/HarshXTrisha/vericheck-pro/internal/extractor"
)

// maxUploadBytes bounds the multipart form held in memory; the extracted
// text is still subject to the analysis character limit.
const maxUploadBytes = 10 << 20

// AnalyzeUpload accepts a document file, extracts its text server-side,
// and runs the same analysis pipeline as the raw-text endpoint. An
// unsupported format is a recoverable caller error and leaves the report
// history untouched.
func (h *Handler) AnalyzeUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart request")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing required field: file")
		return
	}
	defer file.Close()

	textExtractor, err := extractor.ForFile(header.Filename)
	if err != nil {
		if errors.Is(err, extractor.ErrUnsupportedFormat) {
			writeError(w, http.StatusBadRequest, "Unsupported file format. Use TXT, MD, PDF, or DOCX.")
			return
		}
		writeError(w, http.StatusBadRequest, "Unable to read uploaded file")
		return
	}

	text, err := textExtractor.Extract(file)
	if err != nil {
		h.logger.Error().Err(err).Str("file_name", header.Filename).Msg("Text extraction failed")
		writeError(w, http.StatusBadRequest, "Unable to extract text from the uploaded file")
		return
	}

	report, err := h.analysisService.AnalyzeText(r.Context(), text, header.Filename)
	if err != nil {
		h.handleAnalysisError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}
