package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Reader hands back the plain-text content of a report file.
type Reader interface {
	ReadText(path string) (string, error)
}

// PDFReader extracts text from PDF reports page by page.
type PDFReader struct{}

// NewPDFReader creates a PDF-backed Reader.
func NewPDFReader() *PDFReader {
	return &PDFReader{}
}

// ReadText returns the concatenated plain text of every page, each page
// followed by a newline. Pages with no extractable text (scanned images)
// contribute nothing, so an image-only PDF yields an empty string and no
// error.
func (r *PDFReader) ReadText(path string) (text string, err error) {
	// The pdf library panics on some malformed files; treat that as a
	// per-file read error rather than taking down the batch.
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("read pdf %s: %v", path, rec)
		}
	}()

	f, doc, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil || content == "" {
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
