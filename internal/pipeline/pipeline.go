// Package pipeline wires the extraction, classification, safety, symptom,
// and narrative stages into one synchronous per-request run.
package pipeline

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/medletter/labsense/internal/acquire"
	"github.com/medletter/labsense/internal/fields"
	"github.com/medletter/labsense/internal/models"
	"github.com/medletter/labsense/internal/narrative"
	"github.com/medletter/labsense/internal/reference"
	"github.com/medletter/labsense/internal/safety"
	"github.com/medletter/labsense/internal/symptom"
	"github.com/medletter/labsense/pkg/utils"
	"go.uber.org/zap"
)

// Pipeline runs the full analysis for one document plus optional symptom
// text. It holds no mutable state across requests.
type Pipeline struct {
	acquirer *acquire.Acquirer
	logger   *zap.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a logger for per-request diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// New creates a Pipeline using the given acquirer.
func New(acquirer *acquire.Acquirer, opts ...Option) *Pipeline {
	p := &Pipeline{acquirer: acquirer}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Analyze runs extraction, classification, safety scanning, symptom
// correlation, and narrative generation over content. ext is the lowercase
// file extension including the dot. Analyze never fails: acquisition and
// parse problems degrade to nil fields and explanatory narrative.
func (p *Pipeline) Analyze(ctx context.Context, content []byte, ext string, symptomText string) *models.GuidanceBundle {
	requestID := uuid.NewString()

	extraction := p.acquirer.Acquire(ctx, content, ext)
	patient, labs := fields.Extract(extraction.Text)
	if patient.GenderInferred && p.logger != nil {
		p.logger.Warn("gender taken from bare male/female fallback; may be a false positive",
			zap.String("request_id", requestID))
	}

	statuses := reference.Statuses(labs, patient.Gender)
	safetyResult := safety.Scan(symptomText)
	correlation := symptom.Correlate(symptomText, statuses)
	interpretation := narrative.Interpret(statuses, patient.Gender, patient.Age)
	navigation := narrative.Navigate(statuses, correlation.Summary, safetyResult)
	explainability := narrative.Explain(statuses, correlation)

	if p.logger != nil {
		p.logger.Debug("analysis complete",
			zap.String("request_id", requestID),
			zap.String("extraction_method", string(extraction.Method)),
			zap.Int("text_length", len(extraction.Text)),
			zap.String("text_preview", utils.Truncate(extraction.Text, 120)),
			zap.Bool("red_flags", safetyResult.HasRedFlags),
		)
	}

	return &models.GuidanceBundle{
		RequestID: requestID,
		Report: models.ReportData{
			Patient:          patient,
			Labs:             labs,
			RawText:          extraction.Text,
			ExtractionMethod: extraction.Method,
		},
		LabStatuses:    statuses,
		Safety:         safetyResult,
		Correlation:    correlation,
		Interpretation: interpretation,
		Navigation:     navigation,
		Explainability: explainability,
	}
}

// AnalyzeFile reads the document at path and analyzes it. The extension is
// derived from the file name.
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string, symptomText string) (*models.GuidanceBundle, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return p.Analyze(ctx, content, acquire.ExtForPath(path), symptomText), nil
}
