package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/medletter/labsense/internal/acquire"
	"github.com/medletter/labsense/internal/models"
)

func newTestPipeline() *Pipeline {
	return New(acquire.NewAcquirer())
}

const anemicFemaleReport = `Global Diagnostic Laboratory
Age: 34
Gender: Female
Hemoglobin: 9.5 g/dL
MCV 95 fL
MCH 28 pg
MCHC: 33.5 g/dL`

func TestAnalyze_lowHemoglobinReport(t *testing.T) {
	p := newTestPipeline()
	got := p.Analyze(context.Background(), []byte(anemicFemaleReport), ".txt", "")

	if got.RequestID == "" {
		t.Error("request id missing")
	}
	if got.Report.ExtractionMethod != models.MethodPrimary {
		t.Errorf("method = %q, want primary", got.Report.ExtractionMethod)
	}
	if got.Report.Patient.Age == nil || *got.Report.Patient.Age != 34 {
		t.Errorf("age = %v, want 34", got.Report.Patient.Age)
	}

	hb := got.LabStatuses.Hemoglobin
	if hb.Status == nil || *hb.Status != models.StatusLow {
		t.Fatalf("hemoglobin status = %v, want low (female range)", hb.Status)
	}
	if hb.RefHigh == nil || *hb.RefHigh != 15.0 {
		t.Errorf("ref high = %v, want gender-specific 15.0", hb.RefHigh)
	}

	if len(got.Interpretation.Details) != 4 {
		t.Errorf("details = %d sentences, want one per analyte", len(got.Interpretation.Details))
	}
	if !strings.Contains(got.Interpretation.Details[0], "below the typical reference range") {
		t.Errorf("first detail = %q", got.Interpretation.Details[0])
	}

	foundAbnormalLine := false
	for _, line := range got.Navigation {
		if strings.Contains(line, "outside the usual reference") {
			foundAbnormalLine = true
		}
	}
	if !foundAbnormalLine {
		t.Errorf("navigation missing abnormal-value line: %v", got.Navigation)
	}

	// No symptoms supplied.
	if got.Safety.HasRedFlags {
		t.Error("unexpected red flags")
	}
	if got.Correlation.Summary != nil {
		t.Errorf("correlation = %+v, want empty", got.Correlation)
	}
}

func TestAnalyze_symptomCorrelation(t *testing.T) {
	p := newTestPipeline()
	report := "Gender: Female\nHemoglobin: 6.5 g/dL"
	got := p.Analyze(context.Background(), []byte(report), ".txt", "I am extremely tired and weak")

	if got.Correlation.Relevance == nil || *got.Correlation.Relevance != models.RelevanceHigh {
		t.Errorf("relevance = %v, want high for hemoglobin 6.5", got.Correlation.Relevance)
	}
	if got.Explainability.MatchedSymptoms == nil || *got.Explainability.MatchedSymptoms != "tired, weak" {
		t.Errorf("explainability matched = %v", got.Explainability.MatchedSymptoms)
	}
	foundSymptomLine := false
	for _, line := range got.Navigation {
		if strings.Contains(line, "brief written summary") {
			foundSymptomLine = true
		}
	}
	if !foundSymptomLine {
		t.Errorf("navigation missing symptom line: %v", got.Navigation)
	}
}

func TestAnalyze_redFlagSymptoms(t *testing.T) {
	p := newTestPipeline()
	got := p.Analyze(context.Background(), []byte("Hemoglobin: 14.0 g/dL"), ".txt", "I have chest pain")

	if !got.Safety.HasRedFlags {
		t.Fatal("expected red flags")
	}
	if got.Safety.UrgentMessage == nil {
		t.Fatal("urgent message missing")
	}
	foundUrgentLine := false
	for _, line := range got.Navigation {
		if strings.Contains(line, "urgent attention") {
			foundUrgentLine = true
		}
	}
	if !foundUrgentLine {
		t.Errorf("navigation missing urgent line: %v", got.Navigation)
	}
}

func TestAnalyze_unreadableDocument(t *testing.T) {
	p := newTestPipeline()
	got := p.Analyze(context.Background(), []byte{0xff, 0xfe, 0x00, 0x01}, ".pdf", "")

	if got.Report.ExtractionMethod != models.MethodNone {
		t.Errorf("method = %q, want none", got.Report.ExtractionMethod)
	}
	if got.LabStatuses.AnyValue() {
		t.Error("no values should be extracted")
	}
	if len(got.Interpretation.Overview) == 0 ||
		!strings.Contains(got.Interpretation.Overview[len(got.Interpretation.Overview)-1], "not able to confidently locate") {
		t.Errorf("overview = %v, want extraction limitation", got.Interpretation.Overview)
	}
	if len(got.Interpretation.Details) != 0 {
		t.Errorf("details = %v, want none", got.Interpretation.Details)
	}
}

func TestAnalyze_jsonFieldNames(t *testing.T) {
	p := newTestPipeline()
	got := p.Analyze(context.Background(), []byte(anemicFemaleReport), ".txt", "tired")

	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{
		`"request_id"`,
		`"extraction_method":"primary"`,
		`"lab_statuses"`,
		`"ref_low"`,
		`"has_red_flags"`,
		`"symptom_correlation"`,
		`"matched_symptoms"`,
		`"safety_note"`,
		`"explainability"`,
	} {
		if !strings.Contains(string(data), key) {
			t.Errorf("JSON missing %s", key)
		}
	}
}

func TestAnalyzeFile_missingFile(t *testing.T) {
	p := newTestPipeline()
	if _, err := p.AnalyzeFile(context.Background(), "/nonexistent/report.pdf", ""); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestAnalyzeFile_textReport(t *testing.T) {
	p := newTestPipeline()
	path := filepath.Join(t.TempDir(), "report.txt")
	if err := os.WriteFile(path, []byte(anemicFemaleReport), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := p.AnalyzeFile(context.Background(), path, "")
	if err != nil {
		t.Fatalf("AnalyzeFile: %v", err)
	}
	if got.Report.ExtractionMethod != models.MethodPrimary {
		t.Errorf("method = %q, want primary", got.Report.ExtractionMethod)
	}
}
