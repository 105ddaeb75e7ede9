// Package safety scans free-text symptom input for emergency-indicating
// phrases. The output is a templated advisory, not a clinical assessment.
package safety

import (
	"fmt"
	"sort"
	"strings"

	"github.com/medletter/labsense/internal/models"
)

// redFlagPhrases maps an advisory label to the phrases that trigger it.
// Matching is case-insensitive substring search.
var redFlagPhrases = map[string][]string{
	"chest pain": {"chest pain", "pressure in chest", "tight chest"},
	"fainting":   {"fainting", "passed out", "loss of consciousness", "blackout"},
	"severe shortness of breath": {
		"severe shortness of breath",
		"struggling to breathe",
		"cannot catch my breath",
		"difficulty breathing",
	},
	"uncontrolled bleeding": {
		"uncontrolled bleeding",
		"bleeding that will not stop",
		"very heavy bleeding",
	},
}

const urgentTemplate = "Some of the symptoms you described (for example: %s) can sometimes be " +
	"associated with medical emergencies. This tool cannot assess emergencies or provide " +
	"real-time clinical triage. If you are experiencing these symptoms now, please seek " +
	"urgent in-person medical care or contact your local emergency services immediately."

// Scan checks symptomText for red-flag phrases. A label matches when any of
// its phrases appears anywhere in the text. When at least one label
// matches, an urgent advisory naming the matched labels is generated.
func Scan(symptomText string) models.SafetyAssessment {
	text := strings.ToLower(symptomText)
	matched := []string{}
	for label, phrases := range redFlagPhrases {
		for _, phrase := range phrases {
			if strings.Contains(text, phrase) {
				matched = append(matched, label)
				break
			}
		}
	}
	sort.Strings(matched)

	result := models.SafetyAssessment{
		HasRedFlags:   len(matched) > 0,
		MatchedLabels: matched,
	}
	if result.HasRedFlags {
		result.UrgentMessage = models.Str(fmt.Sprintf(urgentTemplate, strings.Join(matched, ", ")))
	}
	return result
}
