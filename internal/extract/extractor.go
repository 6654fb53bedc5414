// Package extract converts uploaded document bytes into an ordered
// sequence of independently scorable text units.
package extract

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// ReviewColumn is the column tabular uploads must carry.
const ReviewColumn = "Review"

// Extractor turns raw upload bytes into text units. The sentence
// tokenizer is trained once at construction and read-only afterwards.
type Extractor struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

func NewExtractor() (*Extractor, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("loading sentence tokenizer: %w", err)
	}
	return &Extractor{tokenizer: tokenizer}, nil
}

// Extract dispatches on the detected format and returns the document's
// text units in source order. Tabular formats yield one unit per
// non-empty Review cell; flowing-text formats yield sentences. Sources
// with no extractable text yield an empty slice, not an error.
func (e *Extractor) Extract(filename string, data []byte) (units []string, err error) {
	// The underlying PDF parser panics on some malformed inputs; a
	// corrupt upload must surface as a FileReadError, not a crash.
	defer func() {
		if r := recover(); r != nil {
			units = nil
			err = &FileReadError{Cause: fmt.Errorf("%v", r)}
		}
	}()

	switch DetectFormat(filename) {
	case FormatCSV:
		return extractCSV(data)
	case FormatXLSX:
		return extractXLSX(data)
	case FormatPDF:
		text, err := extractPDFText(data)
		if err != nil {
			return nil, err
		}
		return e.splitSentences(text), nil
	case FormatDOCX:
		text, err := extractDOCXText(data)
		if err != nil {
			return nil, err
		}
		return e.splitSentences(text), nil
	default:
		return nil, &UnsupportedFormatError{Filename: filename}
	}
}

// splitSentences tokenizes flowing document text into sentence units.
func (e *Extractor) splitSentences(text string) []string {
	var units []string
	for _, s := range e.tokenizer.Tokenize(text) {
		unit := strings.TrimSpace(s.Text)
		if unit == "" {
			continue
		}
		units = append(units, unit)
	}
	return units
}
