// Package fields pattern-matches demographic and analyte values out of
// normalized report text.
package fields

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/medletter/labsense/internal/models"
)

// Each analyte pattern requires the label (whole word for the
// abbreviations), an optional ":"/"-"/whitespace separator, a signed
// decimal number accepting "," as decimal separator, and an optional
// analyte-specific unit token.
var (
	hemoglobinPattern = regexp.MustCompile(`(?i)\bhemoglobin\b(?:\s*[:\-]|\s+)\s*(-?\d+(?:[.,]\d+)?)\s*(g/?dL|g per dL|g\s*/\s*dL)?`)
	mcvPattern        = regexp.MustCompile(`(?i)\bMCV\b(?:\s*[:\-]|\s+)\s*(-?\d+(?:[.,]\d+)?)\s*(fL)?`)
	mchPattern        = regexp.MustCompile(`(?i)\bMCH\b(?:\s*[:\-]|\s+)\s*(-?\d+(?:[.,]\d+)?)\s*(pg)?`)
	mchcPattern       = regexp.MustCompile(`(?i)\bMCHC\b(?:\s*[:\-]|\s+)\s*(-?\d+(?:[.,]\d+)?)\s*(g/?dL|g per dL|g\s*/\s*dL)?`)

	genderPattern = regexp.MustCompile(`(?i)(?:gender|sex)\s*[:\-]?\s*(male|female)`)
	// Bare-token fallback when no labeled gender is present. Known
	// false-positive source; callers get the inferred flag.
	bareGenderPattern = regexp.MustCompile(`(?i)\b(male|female)\b`)

	agePattern = regexp.MustCompile(`(?i)\bage\b\s*[:\-]?\s*(\d{1,3})`)

	numberToken = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
)

type analyteSpec struct {
	pattern     *regexp.Regexp
	defaultUnit string
}

var analyteSpecs = map[models.Analyte]analyteSpec{
	models.Hemoglobin: {hemoglobinPattern, "g/dL"},
	models.MCV:        {mcvPattern, "fL"},
	models.MCH:        {mchPattern, "pg"},
	models.MCHC:       {mchcPattern, "g/dL"},
}

// Extract parses demographics and one field per analyte out of text.
// Only the first match per analyte is used. Missing fields stay nil.
func Extract(text string) (models.PatientContext, models.Labs) {
	patient := models.PatientContext{Age: parseAge(text)}
	patient.Gender, patient.GenderInferred = parseGender(text)

	var labs models.Labs
	for _, a := range models.Analytes {
		spec := analyteSpecs[a]
		labs.SetField(a, parseAnalyte(spec.pattern, text, spec.defaultUnit))
	}
	return patient, labs
}

func parseAnalyte(pattern *regexp.Regexp, text, defaultUnit string) models.AnalyteField {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return models.AnalyteField{Unit: models.Str(defaultUnit)}
	}
	unit := m[2]
	if unit != "" {
		unit = strings.ReplaceAll(unit, " ", "")
		unit = strings.ReplaceAll(unit, "per", "/")
	}
	if unit == "" {
		unit = defaultUnit
	}
	return models.AnalyteField{Value: parseFloat(m[1]), Unit: models.Str(unit)}
}

// parseFloat parses a numeric token tolerantly: commas count as decimal
// separators, and anything that does not yield a finite float becomes nil.
func parseFloat(raw string) *float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	token := numberToken.FindString(cleaned)
	if token == "" {
		return nil
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// parseGender finds a labeled "gender:"/"sex:" value, falling back to the
// first standalone "male"/"female" token anywhere in the text. The second
// return is true when the fallback produced the result.
func parseGender(text string) (*models.Gender, bool) {
	if m := genderPattern.FindStringSubmatch(text); m != nil {
		return normalizeGender(m[1]), false
	}
	if m := bareGenderPattern.FindStringSubmatch(text); m != nil {
		g := normalizeGender(m[1])
		return g, g != nil
	}
	return nil, false
}

func normalizeGender(raw string) *models.Gender {
	t := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.HasPrefix(t, "m"):
		g := models.GenderMale
		return &g
	case strings.HasPrefix(t, "f"):
		g := models.GenderFemale
		return &g
	}
	return nil
}

func parseAge(text string) *int {
	m := agePattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}
