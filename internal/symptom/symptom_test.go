package symptom

import (
	"reflect"
	"strings"
	"testing"

	"github.com/medletter/labsense/internal/models"
)

func labsWithHemoglobin(value float64, status models.Status) models.LabStatuses {
	var labs models.LabStatuses
	labs.Hemoglobin = models.LabStatus{
		Value:  models.Float(value),
		Status: &status,
	}
	return labs
}

func TestCorrelate_emptyText(t *testing.T) {
	got := Correlate("", labsWithHemoglobin(6.5, models.StatusLow))
	if got.Summary != nil || got.Relevance != nil || got.MatchedSymptoms != nil {
		t.Errorf("empty symptom text should yield an all-nil correlation: %+v", got)
	}
}

func TestCorrelate_lowHemoglobinWithFatigue(t *testing.T) {
	got := Correlate("I am extremely tired and weak", labsWithHemoglobin(6.5, models.StatusLow))
	if got.Relevance == nil || *got.Relevance != models.RelevanceHigh {
		t.Errorf("relevance = %v, want high for hemoglobin below 8.0", got.Relevance)
	}
	if got.Summary == nil || !strings.Contains(*got.Summary, "does not indicate a diagnosis") {
		t.Errorf("summary = %v", got.Summary)
	}
	if got.MatchedSymptoms == nil || *got.MatchedSymptoms != "tired, weak" {
		t.Errorf("matched = %v, want \"tired, weak\"", got.MatchedSymptoms)
	}
}

func TestCorrelate_moderateAboveThreshold(t *testing.T) {
	got := Correlate("feeling tired lately", labsWithHemoglobin(9.5, models.StatusLow))
	if got.Relevance == nil || *got.Relevance != models.RelevanceModerate {
		t.Errorf("relevance = %v, want moderate for low hemoglobin at 9.5", got.Relevance)
	}
}

func TestCorrelate_thresholdBoundary(t *testing.T) {
	// Exactly 8.0 is not below the threshold.
	got := Correlate("so tired", labsWithHemoglobin(8.0, models.StatusLow))
	if got.Relevance == nil || *got.Relevance != models.RelevanceModerate {
		t.Errorf("relevance = %v, want moderate at the 8.0 boundary", got.Relevance)
	}
}

func TestCorrelate_fatigueWithoutLowHemoglobin(t *testing.T) {
	got := Correlate("exhausted all the time", labsWithHemoglobin(14.0, models.StatusNormal))
	if got.Relevance == nil || *got.Relevance != models.RelevanceLow {
		t.Errorf("relevance = %v, want low", got.Relevance)
	}
	if got.Summary == nil || !strings.Contains(*got.Summary, "cannot determine") {
		t.Errorf("summary = %v", got.Summary)
	}
	if got.MatchedSymptoms == nil || !strings.Contains(*got.MatchedSymptoms, "exhausted") {
		t.Errorf("matched = %v", got.MatchedSymptoms)
	}
}

func TestCorrelate_fatigueWithMissingHemoglobin(t *testing.T) {
	got := Correlate("very tired", models.LabStatuses{})
	if got.Relevance == nil || *got.Relevance != models.RelevanceLow {
		t.Errorf("relevance = %v, want low when hemoglobin absent", got.Relevance)
	}
}

func TestCorrelate_noKeywordMatch(t *testing.T) {
	got := Correlate("occasional headache", labsWithHemoglobin(6.5, models.StatusLow))
	if got.Relevance == nil || *got.Relevance != models.RelevanceLow {
		t.Errorf("relevance = %v, want low", got.Relevance)
	}
	if got.Summary == nil || !strings.Contains(*got.Summary, "No specific rule-based links") {
		t.Errorf("summary = %v", got.Summary)
	}
	if got.MatchedSymptoms != nil {
		t.Errorf("matched = %q, want nil", *got.MatchedSymptoms)
	}
}

func TestMatchKeywords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Tired and TIRED again", []string{"tired"}},
		{"weakness and low energy", []string{"low energy", "weak", "weakness"}},
		{"headache", nil},
	}
	for _, tt := range tests {
		got := matchKeywords(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("matchKeywords(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
