package narrative

import "github.com/medletter/labsense/internal/models"

const (
	navBaseline = "A good first step for most questions about lab results is to speak with a " +
		"general physician or primary care clinician. They can review your full report, " +
		"your symptoms, and your medical history."

	navAbnormal = "Because at least one value here is shown as outside the usual reference " +
		"range, it may be reasonable to schedule a non-urgent appointment with a " +
		"general physician to discuss these results."

	navUrgent = "Some of the symptoms described may require urgent attention. In such " +
		"situations, emergency or urgent-care services are more appropriate than " +
		"routine appointments or online tools."

	navSymptomSummary = "Bringing a brief written summary of your main symptoms, when they started, " +
		"and what makes them better or worse can help your clinician understand your " +
		"situation more clearly."

	navQuestions = "You may consider asking your doctor questions such as:\n" +
		"- \"How do these lab results fit with my symptoms and overall health?\"\n" +
		"- \"Are there any additional tests or follow-up you would recommend?\"\n" +
		"- \"Is there anything I can monitor at home while we follow up on these results?\""
)

// Navigate builds the ordered, cumulative care-navigation guidance: a
// baseline line, conditional lines for abnormal values, red flags, and
// supplied symptoms, and a fixed closing list of suggested questions.
func Navigate(labs models.LabStatuses, symptomSummary *string, safety models.SafetyAssessment) []string {
	lines := []string{navBaseline}

	if labs.AnyAbnormal() {
		lines = append(lines, navAbnormal)
	}
	if safety.HasRedFlags {
		lines = append(lines, navUrgent)
	}
	if symptomSummary != nil && *symptomSummary != "" {
		lines = append(lines, navSymptomSummary)
	}

	lines = append(lines, navQuestions)
	return lines
}
