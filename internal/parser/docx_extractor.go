package parser

import (
	"bytes"
	"fmt"
	"html"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// DocxTextExtractor extracts raw text from DOCX payloads. The library
// returns the underlying document.xml, so paragraph and line-break markup
// is converted to newlines and the remaining tags are stripped.
type DocxTextExtractor struct {
	logger *log.Logger
}

// DocxOption configures the DOCX extractor.
type DocxOption func(*DocxTextExtractor)

// WithDocxLogger sets a custom logger.
func WithDocxLogger(logger *log.Logger) DocxOption {
	return func(d *DocxTextExtractor) {
		d.logger = logger
	}
}

// NewDocxTextExtractor creates a DOCX text extractor.
func NewDocxTextExtractor(options ...DocxOption) *DocxTextExtractor {
	extractor := &DocxTextExtractor{
		logger: log.New(os.Stderr, "[DocxExtractor] ", log.LstdFlags),
	}

	for _, option := range options {
		option(extractor)
	}

	return extractor
}

var (
	docxParagraphRe = regexp.MustCompile(`</w:p>`)
	docxBreakRe     = regexp.MustCompile(`<w:br[^>]*/?>`)
	docxTabRe       = regexp.MustCompile(`<w:tab[^>]*/?>`)
	docxTagRe       = regexp.MustCompile(`<[^>]+>`)
)

// ExtractTextFromBytes extracts the plain text content of a DOCX payload.
func (d *DocxTextExtractor) ExtractTextFromBytes(data []byte, uri string) (string, error) {
	reader := bytes.NewReader(data)

	doc, err := docx.ReadDocxFromMemory(reader, int64(len(data)))
	if err != nil {
		d.logger.Printf("DOCX read failed for %s: %v", uri, err)
		return "", fmt.Errorf("failed to read docx %s: %w", uri, err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	text := stripDocxMarkup(content)

	d.logger.Printf("DOCX extraction done for %s: %d chars", uri, len(text))
	return text, nil
}

// stripDocxMarkup flattens WordprocessingML into plain text.
func stripDocxMarkup(content string) string {
	text := docxParagraphRe.ReplaceAllString(content, "\n")
	text = docxBreakRe.ReplaceAllString(text, "\n")
	text = docxTabRe.ReplaceAllString(text, "\t")
	text = docxTagRe.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	return strings.TrimRight(text, "\n")
}
