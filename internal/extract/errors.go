package extract

import (
	"fmt"
	"strings"
)

// UnsupportedFormatError reports an upload whose filename does not
// match any recognized extension.
type UnsupportedFormatError struct {
	Filename string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q: accepted extensions are %s",
		e.Filename, strings.Join(AcceptedExtensions, ", "))
}

// MissingColumnError reports tabular input without the required column.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("file must contain a %q column", e.Column)
}

// FileReadError reports bytes that do not parse as the detected format.
type FileReadError struct {
	Cause error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("error reading file: %v", e.Cause)
}

func (e *FileReadError) Unwrap() error { return e.Cause }
