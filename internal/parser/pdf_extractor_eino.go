package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"
)

// EinoPDFTextExtractor extracts plain text from PDF payloads using the
// eino PDF parser, configured to return the whole document as one string.
type EinoPDFTextExtractor struct {
	parser       *pdf.PDFParser
	logger       *log.Logger
	parseTimeout time.Duration
}

// EinoPDFOption configures the PDF extractor.
type EinoPDFOption func(*EinoPDFTextExtractor)

// WithEinoLogger sets a custom logger.
func WithEinoLogger(logger *log.Logger) EinoPDFOption {
	return func(e *EinoPDFTextExtractor) {
		e.logger = logger
	}
}

// WithParseTimeout bounds a single parse call.
func WithParseTimeout(d time.Duration) EinoPDFOption {
	return func(e *EinoPDFTextExtractor) {
		e.parseTimeout = d
	}
}

// NewEinoPDFTextExtractor initializes the extractor. ToPages is disabled:
// the analysis prompts want the continuous text of the whole document.
func NewEinoPDFTextExtractor(ctx context.Context, options ...EinoPDFOption) (*EinoPDFTextExtractor, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{
		ToPages: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create eino PDF parser: %w", err)
	}

	extractor := &EinoPDFTextExtractor{
		parser:       p,
		logger:       log.New(os.Stderr, "[PDFExtractor] ", log.LstdFlags),
		parseTimeout: 30 * time.Second,
	}

	for _, option := range options {
		option(extractor)
	}

	return extractor, nil
}

// ExtractTextFromReader extracts the full plain text from a PDF stream.
func (e *EinoPDFTextExtractor) ExtractTextFromReader(ctx context.Context, reader io.Reader, uri string) (string, error) {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, e.parseTimeout)
	defer cancel()

	docs, err := e.parser.Parse(ctx, reader,
		einoParser.WithURI(uri),
	)

	duration := time.Since(startTime)
	if err != nil {
		e.logger.Printf("PDF extraction failed for %s after %.2fs: %v", uri, duration.Seconds(), err)
		return "", fmt.Errorf("eino PDF parser failed for %s: %w", uri, err)
	}

	if len(docs) == 0 {
		return "", fmt.Errorf("eino PDF parser returned no documents for %s", uri)
	}

	// Merge content in case the parser still returned multiple documents.
	var fullContent string
	for i, doc := range docs {
		fullContent += doc.Content
		if i < len(docs)-1 {
			fullContent += "\n\n"
		}
	}

	e.logger.Printf("PDF extraction done for %s: %d chars in %.2fs", uri, len(fullContent), duration.Seconds())
	return fullContent, nil
}

// ExtractTextFromBytes extracts the full plain text from a PDF payload.
func (e *EinoPDFTextExtractor) ExtractTextFromBytes(ctx context.Context, data []byte, uri string) (string, error) {
	return e.ExtractTextFromReader(ctx, bytes.NewReader(data), uri)
}
