package narrative

import (
	"fmt"
	"strings"

	"github.com/medletter/labsense/internal/models"
)

const (
	extractionLimitation = "This tool was not able to confidently locate the target lab values in the uploaded report. " +
		"Formatting differences or image-based PDFs can limit automated extraction. " +
		"You may wish to review the report directly or provide it to a healthcare professional."

	withinRangesDetail = "The values detected appear to fall within the reference ranges provided in the report. " +
		"Only a licensed healthcare professional can confirm whether these results are appropriate " +
		"for you personally."

	safetyNote = "This assistant does not provide diagnoses, treatment decisions, or a substitute for in-person " +
		"clinical assessment. Any concerns about your health or your lab results should be discussed " +
		"with a qualified healthcare professional."
)

// Interpret creates cautious, educational narrative for the classified
// labs: an overview, one detail sentence per classified value, and a fixed
// safety note. When no value was extracted at all, the overview explains
// the extraction limitation instead.
func Interpret(labs models.LabStatuses, gender *models.Gender, age *int) models.Interpretation {
	var overview []string

	if demo := demographicsClause(gender, age); demo != "" {
		overview = append(overview,
			"The following comments are based on values reported in your lab document "+
				"and general reference ranges, considering the information available ("+demo+").")
	}

	if !labs.AnyValue() {
		overview = append(overview, extractionLimitation)
	}

	var details []string
	for _, a := range models.Analytes {
		if msg := labSentence(a, labs.Get(a)); msg != "" {
			details = append(details, msg)
		}
	}
	if len(details) == 0 && labs.AnyValue() {
		details = append(details, withinRangesDetail)
	}

	return models.Interpretation{
		Overview:   overview,
		Details:    details,
		SafetyNote: []string{safetyNote},
	}
}

// demographicsClause renders "age 34, female" style content for the
// overview sentence, or "" when neither field is known.
func demographicsClause(gender *models.Gender, age *int) string {
	var parts []string
	if age != nil {
		parts = append(parts, fmt.Sprintf("age %d", *age))
	}
	if gender != nil {
		parts = append(parts, string(*gender))
	}
	return strings.Join(parts, ", ")
}

// labSentence emits the low/high/normal template for one classified value,
// or "" when the analyte has no status or value.
func labSentence(analyte models.Analyte, s models.LabStatus) string {
	if s.Status == nil || s.Value == nil {
		return ""
	}

	name := analyte.DisplayName()
	unitDisplay := ""
	if s.Unit != nil {
		unitDisplay = *s.Unit
	} else if s.RefUnit != nil {
		unitDisplay = *s.RefUnit
	}
	valueStr := strings.TrimSpace(fmt.Sprintf("%.2f %s", *s.Value, unitDisplay))

	refStr := ""
	if s.RefLow != nil && s.RefHigh != nil {
		refUnitDisplay := unitDisplay
		if s.RefUnit != nil {
			refUnitDisplay = *s.RefUnit
		}
		refStr = fmt.Sprintf(" (typical reference range approximately %.1f–%.1f %s)",
			*s.RefLow, *s.RefHigh, refUnitDisplay)
	}

	switch *s.Status {
	case models.StatusLow:
		return fmt.Sprintf(
			"Your %s value is below the typical reference range at %s.%s "+
				"Lower %s levels can sometimes be associated with certain health conditions, "+
				"such as anemia in the case of hemoglobin. This information is educational and does not "+
				"confirm any diagnosis. A healthcare professional can review this result in the context of "+
				"your overall health.",
			name, valueStr, refStr, name)
	case models.StatusHigh:
		return fmt.Sprintf(
			"Your %s value is above the typical reference range at %s.%s "+
				"Higher %s levels may occasionally be seen in some medical situations. This tool "+
				"cannot determine the cause or provide a diagnosis. Discussing this value with a qualified "+
				"healthcare professional can help put it into proper context.",
			name, valueStr, refStr, name)
	case models.StatusNormal:
		return fmt.Sprintf(
			"Your %s value of %s%s falls within the usual "+
				"reference range reported here. While this can be reassuring, only a healthcare professional "+
				"can interpret lab results alongside your symptoms and medical history.",
			name, valueStr, refStr)
	}
	return ""
}
