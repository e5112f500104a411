// Package extractor turns uploaded document files into plain text for the
// analysis pipeline. Extraction happens once at the upload boundary; only
// the extracted text is retained.
package extractor

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

type TextExtractor interface {
	Extract(r io.Reader) (string, error)
}

// ForFile picks an extractor by file extension. Unknown extensions are a
// recoverable caller error, not a pipeline failure.
func ForFile(name string) (TextExtractor, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".md":
		return &PlainTextExtractor{}, nil
	case ".pdf":
		return &PDFExtractor{}, nil
	case ".docx":
		return &DocxExtractor{}, nil
	default:
		return nil, ErrUnsupportedFormat
	}
}
