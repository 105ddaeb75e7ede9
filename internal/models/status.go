package models

// Status classifies a lab value against its reference range.
type Status string

const (
	StatusLow    Status = "low"
	StatusNormal Status = "normal"
	StatusHigh   Status = "high"
)

// LabStatus joins an extracted AnalyteField with its reference-range
// classification. Status is nil whenever Value is nil or no range applies,
// so a non-nil Status always implies a value and a range were present.
type LabStatus struct {
	Value   *float64 `json:"value"`
	Unit    *string  `json:"unit"`
	Status  *Status  `json:"status"`
	RefLow  *float64 `json:"ref_low"`
	RefHigh *float64 `json:"ref_high"`
	RefUnit *string  `json:"ref_unit"`
}

// Abnormal reports whether the status is low or high.
func (s LabStatus) Abnormal() bool {
	return s.Status != nil && (*s.Status == StatusLow || *s.Status == StatusHigh)
}

// LabStatuses holds one LabStatus per supported analyte.
type LabStatuses struct {
	Hemoglobin LabStatus `json:"hemoglobin"`
	MCV        LabStatus `json:"mcv"`
	MCH        LabStatus `json:"mch"`
	MCHC       LabStatus `json:"mchc"`
}

// Get returns the LabStatus for a.
func (l *LabStatuses) Get(a Analyte) LabStatus {
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
	return LabStatus{}
}

// Set stores s as the LabStatus for a.
func (l *LabStatuses) Set(a Analyte, s LabStatus) {
	switch a {
	case Hemoglobin:
		l.Hemoglobin = s
	case MCV:
		l.MCV = s
	case MCH:
		l.MCH = s
	case MCHC:
		l.MCHC = s
	}
}

// AnyValue reports whether any analyte has a non-nil value.
func (l *LabStatuses) AnyValue() bool {
	for _, a := range Analytes {
		if l.Get(a).Value != nil {
			return true
		}
	}
	return false
}

// AnyAbnormal reports whether any analyte is classified low or high.
func (l *LabStatuses) AnyAbnormal() bool {
	for _, a := range Analytes {
		if l.Get(a).Abnormal() {
			return true
		}
	}
	return false
}
