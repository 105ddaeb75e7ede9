// Package reference classifies lab values against static reference ranges.
package reference

import "github.com/medletter/labsense/internal/models"

// Range is a closed [Low, High] reference interval with its unit.
type Range struct {
	Low  float64
	High float64
	Unit string
}

// Hemoglobin is gender-conditioned; the generic range applies when gender
// is unknown. The remaining indices use single fixed ranges.
var (
	hemoglobinRanges = map[models.Gender]Range{
		models.GenderMale:   {13.0, 17.0, "g/dL"},
		models.GenderFemale: {12.0, 15.0, "g/dL"},
	}
	hemoglobinGeneric = Range{12.0, 17.0, "g/dL"}

	mcvRange  = Range{80.0, 100.0, "fL"}
	mchRange  = Range{27.0, 33.0, "pg"}
	mchcRange = Range{32.0, 36.0, "g/dL"}
)

// RangeFor returns the reference range for analyte, or false when none is
// defined.
func RangeFor(analyte models.Analyte, gender *models.Gender) (Range, bool) {
	switch analyte {
	case models.Hemoglobin:
		if gender != nil {
			if r, ok := hemoglobinRanges[*gender]; ok {
				return r, true
			}
		}
		return hemoglobinGeneric, true
	case models.MCV:
		return mcvRange, true
	case models.MCH:
		return mchRange, true
	case models.MCHC:
		return mchcRange, true
	}
	return Range{}, false
}

// Classify maps value to low/normal/high against the applicable range.
// Boundary values classify normal. Nil values and unknown analytes return
// nil.
func Classify(analyte models.Analyte, value *float64, gender *models.Gender) *models.Status {
	if value == nil {
		return nil
	}
	r, ok := RangeFor(analyte, gender)
	if !ok {
		return nil
	}
	status := models.StatusNormal
	switch {
	case *value < r.Low:
		status = models.StatusLow
	case *value > r.High:
		status = models.StatusHigh
	}
	return &status
}

// Statuses joins every extracted AnalyteField with its classification and
// reference range. When no range is defined, RefUnit falls back to the
// field's own unit.
func Statuses(labs models.Labs, gender *models.Gender) models.LabStatuses {
	var out models.LabStatuses
	for _, a := range models.Analytes {
		f := labs.Field(a)
		s := models.LabStatus{
			Value:  f.Value,
			Unit:   f.Unit,
			Status: Classify(a, f.Value, gender),
		}
		if r, ok := RangeFor(a, gender); ok {
			s.RefLow = models.Float(r.Low)
			s.RefHigh = models.Float(r.High)
			s.RefUnit = models.Str(r.Unit)
		} else {
			s.RefUnit = f.Unit
		}
		out.Set(a, s)
	}
	return out
}
