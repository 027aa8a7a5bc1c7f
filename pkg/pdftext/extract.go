package pdftext

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extract pulls plain text from a PDF document, reading at most maxPages
// pages (0 means all). Pages that fail text extraction are skipped rather
// than failing the whole document; scanned PDFs simply yield less text.
func Extract(data []byte, maxPages int) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	total := r.NumPage()
	if maxPages > 0 && total > maxPages {
		total = maxPages
	}

	var sb strings.Builder
	for i := 1; i <= total; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}
