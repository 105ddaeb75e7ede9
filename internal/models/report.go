// Package models defines core data structures for extracted reports, lab
// classifications, and generated guidance.
package models

// Method identifies which text-acquisition path produced the report text.
type Method string

const (
	// MethodPrimary means the primary (embedded text) extractor succeeded.
	MethodPrimary Method = "primary"
	// MethodOCR means the OCR fallback produced the text.
	MethodOCR Method = "ocr"
	// MethodNone means neither path yielded usable text.
	MethodNone Method = "none"
)

// Gender is a normalized patient gender label.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Analyte names a measured blood parameter.
type Analyte string

const (
	Hemoglobin Analyte = "hemoglobin"
	MCV        Analyte = "mcv"
	MCH        Analyte = "mch"
	MCHC       Analyte = "mchc"
)

// Analytes lists all supported analytes in canonical display order.
var Analytes = []Analyte{Hemoglobin, MCV, MCH, MCHC}

// DisplayName returns the uppercase label used in narrative text.
func (a Analyte) DisplayName() string {
	switch a {
	case Hemoglobin:
		return "HEMOGLOBIN"
	case MCV:
		return "MCV"
	case MCH:
		return "MCH"
	case MCHC:
		return "MCHC"
	}
	return string(a)
}

// PatientContext holds demographics parsed from the report text.
// Absent fields stay nil; nothing is guessed beyond the extraction heuristics.
type PatientContext struct {
	Age    *int    `json:"age"`
	Gender *Gender `json:"gender"`

	// GenderInferred marks that Gender came from the bare male/female
	// fallback rather than an explicit "gender:"/"sex:" label. The fallback
	// can match inside unrelated contexts, so callers should log it rather
	// than trust it silently. Not part of the output schema.
	GenderInferred bool `json:"-"`
}

// AnalyteField is a single extracted lab value with its unit.
// Value is nil when the analyte was not found; Unit falls back to the
// analyte's canonical default when no unit token was recognized.
type AnalyteField struct {
	Value *float64 `json:"value"`
	Unit  *string  `json:"unit"`
}

// Labs holds one AnalyteField per supported analyte.
type Labs struct {
	Hemoglobin AnalyteField `json:"hemoglobin"`
	MCV        AnalyteField `json:"mcv"`
	MCH        AnalyteField `json:"mch"`
	MCHC       AnalyteField `json:"mchc"`
}

// Field returns the AnalyteField for a.
func (l *Labs) Field(a Analyte) AnalyteField {
	switch a {
	case Hemoglobin:
		return l.Hemoglobin
	case MCV:
		return l.MCV
	case MCH:
		return l.MCH
	case MCHC:
		return l.MCHC
	}
	return AnalyteField{}
}

// SetField stores f as the AnalyteField for a.
func (l *Labs) SetField(a Analyte, f AnalyteField) {
	switch a {
	case Hemoglobin:
		l.Hemoglobin = f
	case MCV:
		l.MCV = f
	case MCH:
		l.MCH = f
	case MCHC:
		l.MCHC = f
	}
}

// ReportData is the extraction-stage output handed to classification and
// display: demographics, per-analyte fields, the normalized text, and which
// acquisition path produced it.
type ReportData struct {
	Patient          PatientContext `json:"patient"`
	Labs             Labs           `json:"labs"`
	RawText          string         `json:"raw_text"`
	ExtractionMethod Method         `json:"extraction_method"`
}

// Float returns a pointer to v. Convenience for building optional fields.
func Float(v float64) *float64 { return &v }

// Str returns a pointer to s.
func Str(s string) *string { return &s }

// Int returns a pointer to i.
func Int(i int) *int { return &i }
