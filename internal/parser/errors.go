package parser

import (
	"errors"
	"fmt"
)

// Base error categories for file text extraction.
var (
	// ErrUnsupportedFormat means the file type is not PDF, DOCX or TXT.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrParseFailure means a supported file could not be read.
	ErrParseFailure = errors.New("file parse failure")
)

// User-facing remediation messages, surfaced verbatim on 400 responses.
const (
	MsgUnsupportedFormat = "Unsupported file type. Use PDF, DOCX, or TXT."
	MsgPDFUnreadable     = "This PDF could not be read. Try exporting as a new PDF, saving as DOCX, or copying the text into a .txt file. Some PDFs (e.g. scanned images, password-protected) are not supported."
	MsgPDFGeneric        = "Could not parse this PDF. Try using DOCX or TXT format instead."
	MsgDocxGeneric       = "Could not read this DOCX file. Try saving as a new file or exporting as PDF/TXT."
)

// ExtractError carries the user-facing remediation text for an extraction
// failure alongside the base category and the underlying parser error.
type ExtractError struct {
	Filename string
	BaseErr  error  // ErrUnsupportedFormat or ErrParseFailure
	Message  string // remediation text shown to the end user
	Cause    error  // underlying library error, if any
}

func (e *ExtractError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (file: %s): %v", e.Message, e.Filename, e.Cause)
	}
	return fmt.Sprintf("%s (file: %s)", e.Message, e.Filename)
}

func (e *ExtractError) Unwrap() error {
	return e.BaseErr
}

// Is supports errors.Is comparison against the base categories.
func (e *ExtractError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// UserMessage returns the remediation text without internal detail.
func UserMessage(err error) string {
	var extractErr *ExtractError
	if errors.As(err, &extractErr) {
		return extractErr.Message
	}
	return err.Error()
}

func newUnsupportedFormatError(filename string) error {
	return &ExtractError{
		Filename: filename,
		BaseErr:  ErrUnsupportedFormat,
		Message:  MsgUnsupportedFormat,
	}
}

func newParseFailureError(filename, message string, cause error) error {
	return &ExtractError{
		Filename: filename,
		BaseErr:  ErrParseFailure,
		Message:  message,
		Cause:    cause,
	}
}
