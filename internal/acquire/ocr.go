package acquire

import (
	"context"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Recognizer turns a rendered page image (PNG bytes) into text.
type Recognizer interface {
	Recognize(png []byte) (string, error)
}

// TesseractRecognizer implements Recognizer with a Tesseract client per
// call, so concurrent page recognitions share no state.
type TesseractRecognizer struct {
	Languages []string
}

// Recognize runs OCR over one page image.
func (r *TesseractRecognizer) Recognize(png []byte) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()
	if len(r.Languages) > 0 {
		if err := client.SetLanguage(r.Languages...); err != nil {
			return "", err
		}
	}
	if err := client.SetImageFromBytes(png); err != nil {
		return "", err
	}
	return client.Text()
}

// ocrPDF rasterizes each PDF page and recognizes it with rec, fanning page
// recognition out over a bounded worker group. Pages that fail to render or
// recognize are skipped; a document that fails to open yields empty text.
// Rasterization stays on the calling goroutine because the fitz document
// handle is not safe for concurrent use.
func ocrPDF(ctx context.Context, content []byte, rec Recognizer, dpi float64, workers int, logger *zap.Logger) string {
	doc, err := fitz.NewFromMemory(content)
	if err != nil {
		if logger != nil {
			logger.Debug("ocr: open document failed", zap.Error(err))
		}
		return ""
	}
	defer doc.Close()

	if workers < 1 {
		workers = 1
	}
	numPages := doc.NumPage()
	texts := make([]string, numPages)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < numPages; i++ {
		png, err := doc.ImagePNG(i, dpi)
		if err != nil {
			if logger != nil {
				logger.Warn("ocr: render page failed", zap.Int("page", i+1), zap.Error(err))
			}
			continue
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			text, err := rec.Recognize(png)
			if err != nil {
				if logger != nil {
					logger.Warn("ocr: recognize page failed", zap.Int("page", i+1), zap.Error(err))
				}
				return nil
			}
			texts[i] = text
			return nil
		})
	}
	_ = g.Wait()
	return strings.Join(texts, "\n")
}
