package extractor

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForFile(t *testing.T) {
	cases := map[string]interface{}{
		"essay.txt":   &PlainTextExtractor{},
		"notes.MD":    &PlainTextExtractor{},
		"paper.pdf":   &PDFExtractor{},
		"thesis.docx": &DocxExtractor{},
	}

	for name, want := range cases {
		got, err := ForFile(name)
		require.NoError(t, err, name)
		assert.IsType(t, want, got, name)
	}

	_, err := ForFile("image.png")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ForFile("no-extension")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestPlainTextExtractor(t *testing.T) {
	e := &PlainTextExtractor{}

	text, err := e.Extract(strings.NewReader("plain document body\nsecond line"))
	require.NoError(t, err)
	assert.Equal(t, "plain document body\nsecond line", text)
}

func buildDocx(t *testing.T, documentXML string) *bytes.Reader {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return bytes.NewReader(buf.Bytes())
}

func TestDocxExtractor(t *testing.T) {
	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second</w:t></w:r><w:r><w:t> paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`

	e := &DocxExtractor{}
	text, err := e.Extract(buildDocx(t, doc))
	require.NoError(t, err)

	assert.Contains(t, text, "First paragraph.\n")
	assert.Contains(t, text, "Second paragraph.\n")
}

func TestDocxExtractor_MissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/styles.xml")
	require.NoError(t, err)
	f.Write([]byte("<styles/>"))
	require.NoError(t, w.Close())

	e := &DocxExtractor{}
	_, err = e.Extract(bytes.NewReader(buf.Bytes()))
	assert.Error(t, err)
}

func TestDocxExtractor_NotAnArchive(t *testing.T) {
	e := &DocxExtractor{}
	_, err := e.Extract(strings.NewReader("definitely not a zip"))
	assert.Error(t, err)
}
