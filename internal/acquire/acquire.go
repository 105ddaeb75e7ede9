// Package acquire obtains normalized text from report documents, using an
// embedded-text extractor first and falling back to OCR for sparse PDFs.
package acquire

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/medletter/labsense/internal/models"
	"go.uber.org/zap"
)

const (
	// DefaultMinTextLength is the primary-output length below which the OCR
	// fallback runs.
	DefaultMinTextLength = 40
	// DefaultDPI is the rasterization resolution for OCR.
	DefaultDPI = 300.0
	// DefaultWorkers bounds concurrent page recognitions.
	DefaultWorkers = 2
	// DefaultOCRTimeout caps the whole OCR pass; page counts are unbounded.
	DefaultOCRTimeout = 120 * time.Second
)

// Extraction is the result of text acquisition.
type Extraction struct {
	Text   string
	Method models.Method
}

// Acquirer extracts normalized text from document bytes. It operates on an
// owned copy of the input, so both extraction passes can read it
// independently.
type Acquirer struct {
	recognizer Recognizer // nil disables the OCR fallback
	minText    int
	dpi        float64
	workers    int
	ocrTimeout time.Duration
	logger     *zap.Logger

	// replaceable for tests
	ocrText func(ctx context.Context, content []byte) string
}

// AcquirerOption configures an Acquirer.
type AcquirerOption func(*Acquirer)

// WithRecognizer enables the OCR fallback with the given recognizer.
func WithRecognizer(r Recognizer) AcquirerOption {
	return func(a *Acquirer) { a.recognizer = r }
}

// WithLogger sets a logger for degraded-path diagnostics.
func WithLogger(l *zap.Logger) AcquirerOption {
	return func(a *Acquirer) { a.logger = l }
}

// WithMinTextLength overrides the OCR fallback threshold.
func WithMinTextLength(n int) AcquirerOption {
	return func(a *Acquirer) { a.minText = n }
}

// WithDPI overrides the OCR rasterization resolution.
func WithDPI(dpi float64) AcquirerOption {
	return func(a *Acquirer) { a.dpi = dpi }
}

// WithWorkers overrides the OCR worker limit.
func WithWorkers(n int) AcquirerOption {
	return func(a *Acquirer) { a.workers = n }
}

// WithOCRTimeout overrides the OCR pass timeout.
func WithOCRTimeout(d time.Duration) AcquirerOption {
	return func(a *Acquirer) { a.ocrTimeout = d }
}

// NewAcquirer returns an Acquirer. Without WithRecognizer, sparse PDFs are
// returned as-is instead of being OCRed.
func NewAcquirer(opts ...AcquirerOption) *Acquirer {
	a := &Acquirer{
		minText:    DefaultMinTextLength,
		dpi:        DefaultDPI,
		workers:    DefaultWorkers,
		ocrTimeout: DefaultOCRTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.ocrText = func(ctx context.Context, content []byte) string {
		return ocrPDF(ctx, content, a.recognizer, a.dpi, a.workers, a.logger)
	}
	return a
}

// ExtForPath returns the lowercase file extension for path, including the
// leading dot.
func ExtForPath(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// Acquire extracts text from content. ext is the lowercase extension
// including the dot (".pdf", ".docx", ".txt"; anything else is treated as
// plain text). The primary extractor runs first; any failure degrades to
// empty text. When the primary text is shorter than the minimum threshold
// and content is a PDF, an OCR pass runs and the longer of the two
// candidates wins. Acquire never returns an error.
func (a *Acquirer) Acquire(ctx context.Context, content []byte, ext string) Extraction {
	text, err := a.primaryText(content, ext)
	method := models.MethodPrimary
	if err != nil {
		if a.logger != nil {
			a.logger.Debug("primary extraction failed", zap.String("ext", ext), zap.Error(err))
		}
		text = ""
		method = models.MethodNone
	}
	text = CleanText(text)

	if len(text) < a.minText && ext == ".pdf" && a.recognizer != nil {
		octx, cancel := context.WithTimeout(ctx, a.ocrTimeout)
		ocrText := CleanText(a.ocrText(octx, content))
		cancel()
		if len(ocrText) > len(text) {
			text = ocrText
			method = models.MethodOCR
		}
	}

	if text == "" {
		method = models.MethodNone
	}
	return Extraction{Text: text, Method: method}
}

func (a *Acquirer) primaryText(content []byte, ext string) (string, error) {
	switch ext {
	case ".pdf":
		return extractPDF(content)
	case ".docx":
		return extractDOCX(content)
	default:
		return extractPlain(content)
	}
}
