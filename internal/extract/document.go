package extract

import (
	"bytes"
	"fmt"
	"strings"

	docx "github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
)

// extractPDFText concatenates per-page plain text in page order,
// separated by line breaks.
func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &FileReadError{Cause: err}
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", &FileReadError{Cause: fmt.Errorf("page %d: %w", i, err)}
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

// extractDOCXText concatenates paragraph text in document order,
// separated by line breaks. Tables and other body items are skipped.
func extractDOCXText(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &FileReadError{Cause: err}
	}

	var builder strings.Builder
	for _, item := range doc.Document.Body.Items {
		paragraph, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		builder.WriteString(paragraph.String())
		builder.WriteString("\n")
	}
	return builder.String(), nil
}
