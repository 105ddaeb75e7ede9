package narrative

import (
	"fmt"

	"github.com/medletter/labsense/internal/models"
)

// Explain records why guidance was generated: abnormal values considered,
// symptom keywords matched, and the reference ranges applied.
func Explain(labs models.LabStatuses, correlation models.SymptomCorrelation) models.Explainability {
	abnormal := []string{}
	ranges := []string{}
	for _, a := range models.Analytes {
		s := labs.Get(a)
		if s.Abnormal() {
			descriptor := fmt.Sprintf("%s: %s — classified here as %s",
				a.DisplayName(), FormatValue(s.Value, s.Unit), *s.Status)
			if s.RefLow != nil && s.RefHigh != nil {
				descriptor += fmt.Sprintf(" (approximate reference %s)", FormatRange(s))
			}
			abnormal = append(abnormal, descriptor)
		}
		if s.RefLow != nil && s.RefHigh != nil {
			ranges = append(ranges, fmt.Sprintf("%s: %s", a.DisplayName(), FormatRange(s)))
		}
	}

	return models.Explainability{
		AbnormalLabs:    abnormal,
		MatchedSymptoms: correlation.MatchedSymptoms,
		SymptomSummary:  correlation.Summary,
		ReferenceRanges: ranges,
	}
}
