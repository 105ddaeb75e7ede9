package models

// SafetyAssessment is the result of the red-flag scan over symptom text.
// It is a keyword-based advisory, not a clinical triage decision.
type SafetyAssessment struct {
	HasRedFlags   bool     `json:"has_red_flags"`
	MatchedLabels []string `json:"matched_labels"`
	UrgentMessage *string  `json:"urgent_message"`
}

// Relevance is a coarse qualitative strength of a rule-based symptom-lab
// correlation. It is not a clinical severity score.
type Relevance string

const (
	RelevanceLow      Relevance = "Low"
	RelevanceModerate Relevance = "Moderate"
	RelevanceHigh     Relevance = "High"
)

// SymptomCorrelation is the output of the rule-based symptom engine.
// All fields are nil when no symptom text was supplied.
type SymptomCorrelation struct {
	Summary         *string    `json:"summary"`
	Relevance       *Relevance `json:"relevance"`
	MatchedSymptoms *string    `json:"matched_symptoms"`
}

// Interpretation holds the educational narrative for the classified labs.
type Interpretation struct {
	Overview   []string `json:"overview"`
	Details    []string `json:"details"`
	SafetyNote []string `json:"safety_note"`
}

// Explainability records why guidance was generated: the abnormal values
// considered, the symptom keywords that matched, and the reference ranges
// that were applied.
type Explainability struct {
	AbnormalLabs    []string `json:"abnormal_labs"`
	MatchedSymptoms *string  `json:"matched_symptoms"`
	SymptomSummary  *string  `json:"symptom_summary"`
	ReferenceRanges []string `json:"reference_ranges"`
}

// GuidanceBundle aggregates every pipeline stage's output for one request.
// It is assembled once per request and never mutated afterwards.
type GuidanceBundle struct {
	RequestID      string             `json:"request_id"`
	Report         ReportData         `json:"report"`
	LabStatuses    LabStatuses        `json:"lab_statuses"`
	Safety         SafetyAssessment   `json:"safety"`
	Correlation    SymptomCorrelation `json:"symptom_correlation"`
	Interpretation Interpretation     `json:"interpretation"`
	Navigation     []string           `json:"navigation"`
	Explainability Explainability     `json:"explainability"`
}
