// Package cli renders a guidance bundle for terminal consumption.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/medletter/labsense/internal/models"
	"github.com/medletter/labsense/internal/narrative"
)

// OutputFormat is the format for analysis output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// WriteBundle writes the guidance bundle to w in the given format.
// Use OutputJSON for parseable output consumable by other apps.
func WriteBundle(w io.Writer, bundle *models.GuidanceBundle, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(bundle)
	default:
		writeBundleText(w, bundle)
		return nil
	}
}

func writeBundleText(w io.Writer, bundle *models.GuidanceBundle) {
	fmt.Fprintf(w, "\nExtraction method: %s\n", bundle.Report.ExtractionMethod)

	fmt.Fprintln(w, "\n--- Patient details (from report) ---")
	age := "Not found"
	if bundle.Report.Patient.Age != nil {
		age = fmt.Sprintf("%d", *bundle.Report.Patient.Age)
	}
	gender := "Not found"
	if bundle.Report.Patient.Gender != nil {
		gender = string(*bundle.Report.Patient.Gender)
	}
	fmt.Fprintf(w, "Age: %s\nGender: %s\n", age, gender)

	fmt.Fprintln(w, "\n--- Key lab indices ---")
	for _, a := range models.Analytes {
		s := bundle.LabStatuses.Get(a)
		refStr := narrative.FormatRange(s)
		if refStr == "" {
			refStr = "Not available"
		}
		fmt.Fprintf(w, "%-10s  %-16s  %-24s  reference: %s\n",
			a.DisplayName(),
			narrative.FormatValue(s.Value, s.Unit),
			narrative.StatusLabel(s.Status),
			refStr,
		)
	}

	if bundle.Safety.UrgentMessage != nil {
		fmt.Fprintf(w, "\n!!! %s\n", *bundle.Safety.UrgentMessage)
	}

	fmt.Fprintln(w, "\n--- Interpretation (educational only) ---")
	for _, para := range bundle.Interpretation.Overview {
		fmt.Fprintln(w, para)
	}
	for _, msg := range bundle.Interpretation.Details {
		fmt.Fprintf(w, "- %s\n", msg)
	}
	for _, note := range bundle.Interpretation.SafetyNote {
		fmt.Fprintln(w, note)
	}

	if bundle.Correlation.Summary != nil {
		fmt.Fprintln(w, "\n--- Symptom correlation (rule-based) ---")
		fmt.Fprintln(w, *bundle.Correlation.Summary)
		if bundle.Correlation.Relevance != nil {
			fmt.Fprintf(w, "Relevance level (qualitative): %s\n", *bundle.Correlation.Relevance)
		}
		if bundle.Correlation.MatchedSymptoms != nil {
			fmt.Fprintf(w, "Keywords detected: %s\n", *bundle.Correlation.MatchedSymptoms)
		}
	}

	fmt.Fprintln(w, "\n--- Care navigation ---")
	for _, line := range bundle.Navigation {
		fmt.Fprintln(w, line)
	}

	fmt.Fprintln(w, "\n--- Explainability ---")
	fmt.Fprintln(w, "Abnormal lab values considered:")
	if len(bundle.Explainability.AbnormalLabs) > 0 {
		for _, item := range bundle.Explainability.AbnormalLabs {
			fmt.Fprintf(w, "- %s\n", item)
		}
	} else {
		fmt.Fprintln(w, "- No clearly abnormal values were identified based on the reference ranges used here.")
	}
	fmt.Fprintln(w, "Matched symptoms:")
	if bundle.Explainability.MatchedSymptoms != nil {
		fmt.Fprintf(w, "- %s\n", *bundle.Explainability.MatchedSymptoms)
	} else {
		fmt.Fprintln(w, "- No specific symptom keywords matched the current rule set.")
	}
	fmt.Fprintln(w, "Reference ranges used:")
	for _, item := range bundle.Explainability.ReferenceRanges {
		fmt.Fprintf(w, "- %s\n", item)
	}

	fmt.Fprintln(w, "\n"+strings.Repeat("─", 57))
	fmt.Fprintln(w, "This tool provides educational information only and does not replace professional medical advice, diagnosis, or treatment. It should not be used for emergencies.")
}
