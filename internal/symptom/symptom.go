// Package symptom correlates reported symptoms with classified lab values
// through a fixed, ordered rule chain.
package symptom

import (
	"sort"
	"strings"

	"github.com/medletter/labsense/internal/models"
)

// fatigueKeywords are matched as case-insensitive substrings of the symptom
// text.
var fatigueKeywords = []string{
	"fatigue",
	"tired",
	"tiredness",
	"exhausted",
	"exhaustion",
	"weak",
	"weakness",
	"low energy",
}

// highRelevanceHemoglobin is the hemoglobin value below which a low
// classification plus fatigue keywords upgrades relevance to High.
const highRelevanceHemoglobin = 8.0

const (
	lowHemoglobinSummary = "The combination of a hemoglobin value classified here as below the usual " +
		"reference range and reported fatigue-like symptoms may be relevant. " +
		"This does not indicate a diagnosis. Only a healthcare professional can " +
		"assess how these findings relate to your overall health."

	fatigueOnlySummary = "Some symptoms you described, such as fatigue or low energy, are sometimes " +
		"mentioned in relation to blood count changes. This tool cannot determine " +
		"whether your symptoms are related to your lab values. A clinician can review " +
		"both together for you."

	noLinkSummary = "No specific rule-based links between the symptoms described and the extracted " +
		"lab values were identified. This does not rule out any condition. Any persistent " +
		"or concerning symptoms should be discussed with a healthcare professional."
)

type ruleInput struct {
	matched    []string // sorted, de-duplicated fatigue keywords found in the text
	hemoglobin models.LabStatus
}

// A rule pairs a predicate with its outcome. Rules are evaluated in order
// and the first applicable rule wins.
type rule struct {
	applies func(in ruleInput) bool
	outcome func(in ruleInput) models.SymptomCorrelation
}

var rules = []rule{
	{
		// Low hemoglobin together with fatigue-like symptoms.
		applies: func(in ruleInput) bool {
			return len(in.matched) > 0 &&
				in.hemoglobin.Status != nil && *in.hemoglobin.Status == models.StatusLow
		},
		outcome: func(in ruleInput) models.SymptomCorrelation {
			relevance := models.RelevanceModerate
			if in.hemoglobin.Value != nil && *in.hemoglobin.Value < highRelevanceHemoglobin {
				relevance = models.RelevanceHigh
			}
			return models.SymptomCorrelation{
				Summary:         models.Str(lowHemoglobinSummary),
				Relevance:       &relevance,
				MatchedSymptoms: models.Str(strings.Join(in.matched, ", ")),
			}
		},
	},
	{
		// Fatigue keywords without the lab correlation.
		applies: func(in ruleInput) bool { return len(in.matched) > 0 },
		outcome: func(in ruleInput) models.SymptomCorrelation {
			relevance := models.RelevanceLow
			return models.SymptomCorrelation{
				Summary:         models.Str(fatigueOnlySummary),
				Relevance:       &relevance,
				MatchedSymptoms: models.Str(strings.Join(in.matched, ", ")),
			}
		},
	},
	{
		// Nothing matched.
		applies: func(ruleInput) bool { return true },
		outcome: func(ruleInput) models.SymptomCorrelation {
			relevance := models.RelevanceLow
			return models.SymptomCorrelation{
				Summary:   models.Str(noLinkSummary),
				Relevance: &relevance,
			}
		},
	},
}

// Correlate applies the rule chain to symptomText and the classified labs.
// Empty symptom text yields an all-nil correlation.
func Correlate(symptomText string, labs models.LabStatuses) models.SymptomCorrelation {
	if symptomText == "" {
		return models.SymptomCorrelation{}
	}
	in := ruleInput{
		matched:    matchKeywords(symptomText),
		hemoglobin: labs.Hemoglobin,
	}
	for _, r := range rules {
		if r.applies(in) {
			return r.outcome(in)
		}
	}
	return models.SymptomCorrelation{}
}

func matchKeywords(symptomText string) []string {
	text := strings.ToLower(symptomText)
	seen := map[string]bool{}
	var matched []string
	for _, kw := range fatigueKeywords {
		if strings.Contains(text, kw) && !seen[kw] {
			seen[kw] = true
			matched = append(matched, kw)
		}
	}
	sort.Strings(matched)
	return matched
}
