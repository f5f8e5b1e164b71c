package parser

import (
	"context"
	"log"
	"os"
	"strings"
)

// Accepted MIME types for resume uploads.
const (
	MIMEPDF  = "application/pdf"
	MIMEDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEText = "text/plain"
)

// ResumeTextExtractor converts an uploaded resume payload into plain text,
// dispatching on the declared MIME type and the filename suffix. It holds
// no per-request state.
type ResumeTextExtractor struct {
	pdf    *EinoPDFTextExtractor
	docx   *DocxTextExtractor
	logger *log.Logger
}

// ResumeExtractorOption configures the extractor.
type ResumeExtractorOption func(*ResumeTextExtractor)

// WithExtractorLogger sets a custom logger, shared with the format
// specific extractors.
func WithExtractorLogger(logger *log.Logger) ResumeExtractorOption {
	return func(r *ResumeTextExtractor) {
		r.logger = logger
	}
}

// NewResumeTextExtractor builds the extractor with its PDF and DOCX
// backends.
func NewResumeTextExtractor(ctx context.Context, options ...ResumeExtractorOption) (*ResumeTextExtractor, error) {
	extractor := &ResumeTextExtractor{
		logger: log.New(os.Stderr, "[ResumeExtractor] ", log.LstdFlags),
	}

	for _, option := range options {
		option(extractor)
	}

	pdfExtractor, err := NewEinoPDFTextExtractor(ctx, WithEinoLogger(extractor.logger))
	if err != nil {
		return nil, err
	}
	extractor.pdf = pdfExtractor
	extractor.docx = NewDocxTextExtractor(WithDocxLogger(extractor.logger))

	return extractor, nil
}

// ExtractText produces unicode text from the payload, or an ExtractError
// classified as ErrUnsupportedFormat or ErrParseFailure. There is no
// content sniffing: only the declared type and the filename suffix decide
// the format.
func (r *ResumeTextExtractor) ExtractText(ctx context.Context, data []byte, mimeType, filename string) (string, error) {
	lowerName := strings.ToLower(filename)

	switch {
	case mimeType == MIMEText || strings.HasSuffix(filename, ".txt"):
		// Plain text always succeeds; empty input yields an empty string.
		return string(data), nil

	case mimeType == MIMEPDF || strings.HasSuffix(lowerName, ".pdf"):
		text, err := r.pdf.ExtractTextFromBytes(ctx, data, filename)
		if err != nil {
			return "", newParseFailureError(filename, classifyPDFMessage(err), err)
		}
		return text, nil

	case mimeType == MIMEDocx || strings.HasSuffix(lowerName, ".docx"):
		text, err := r.docx.ExtractTextFromBytes(data, filename)
		if err != nil {
			return "", newParseFailureError(filename, MsgDocxGeneric, err)
		}
		return text, nil

	default:
		return "", newUnsupportedFormatError(filename)
	}
}

// pdfStructuralIndicators are substrings of parser errors that point at a
// structurally damaged or protected document rather than a transient
// problem; they select the more specific remediation message.
var pdfStructuralIndicators = []string{
	"xref",
	"invalid",
	"corrupt",
	"password",
	"encrypt",
	"malformed",
}

func classifyPDFMessage(err error) string {
	msg := strings.ToLower(err.Error())
	for _, indicator := range pdfStructuralIndicators {
		if strings.Contains(msg, indicator) {
			return MsgPDFUnreadable
		}
	}
	return MsgPDFGeneric
}
