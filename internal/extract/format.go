package extract

import "strings"

// Format identifies a supported upload format.
type Format int

const (
	FormatUnknown Format = iota
	FormatCSV
	FormatXLSX
	FormatPDF
	FormatDOCX
)

// AcceptedExtensions lists recognized filename suffixes in dispatch
// priority order: tabular formats first, then PDF, then word documents.
var AcceptedExtensions = []string{".csv", ".xlsx", ".pdf", ".docx"}

var formatByExtension = map[string]Format{
	".csv":  FormatCSV,
	".xlsx": FormatXLSX,
	".pdf":  FormatPDF,
	".docx": FormatDOCX,
}

// DetectFormat maps a filename onto a Format by case-sensitive suffix
// match. Unrecognized names map to FormatUnknown.
func DetectFormat(filename string) Format {
	for _, ext := range AcceptedExtensions {
		if strings.HasSuffix(filename, ext) {
			return formatByExtension[ext]
		}
	}
	return FormatUnknown
}
