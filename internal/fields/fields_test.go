package fields

import (
	"testing"

	"github.com/medletter/labsense/internal/models"
)

func TestExtract_typicalReport(t *testing.T) {
	text := "Global Diagnostic Laboratory\n" +
		"Age: 34\n" +
		"Gender: Female\n" +
		"Hemoglobin: 9.5 g/dL\n" +
		"MCV 95 fL\n" +
		"MCH - 28 pg\n" +
		"MCHC: 33.5 g/dL"

	patient, labs := Extract(text)

	if patient.Age == nil || *patient.Age != 34 {
		t.Errorf("age = %v, want 34", patient.Age)
	}
	if patient.Gender == nil || *patient.Gender != models.GenderFemale {
		t.Errorf("gender = %v, want female", patient.Gender)
	}
	if patient.GenderInferred {
		t.Error("gender was labeled, should not be marked inferred")
	}

	tests := []struct {
		analyte models.Analyte
		value   float64
		unit    string
	}{
		{models.Hemoglobin, 9.5, "g/dL"},
		{models.MCV, 95, "fL"},
		{models.MCH, 28, "pg"},
		{models.MCHC, 33.5, "g/dL"},
	}
	for _, tt := range tests {
		f := labs.Field(tt.analyte)
		if f.Value == nil || *f.Value != tt.value {
			t.Errorf("%s value = %v, want %v", tt.analyte, f.Value, tt.value)
		}
		if f.Unit == nil || *f.Unit != tt.unit {
			t.Errorf("%s unit = %v, want %q", tt.analyte, f.Unit, tt.unit)
		}
	}
}

func TestExtract_commaDecimalSeparator(t *testing.T) {
	_, commaLabs := Extract("Hemoglobin: 9,5 g/dL")
	_, dotLabs := Extract("Hemoglobin: 9.5 g/dL")
	c, d := commaLabs.Hemoglobin.Value, dotLabs.Hemoglobin.Value
	if c == nil || d == nil || *c != *d {
		t.Errorf("comma parse %v != dot parse %v", c, d)
	}
}

func TestExtract_firstMatchWins(t *testing.T) {
	_, labs := Extract("Hemoglobin: 9.5 g/dL\nHemoglobin: 14.0 g/dL")
	if labs.Hemoglobin.Value == nil || *labs.Hemoglobin.Value != 9.5 {
		t.Errorf("value = %v, want first match 9.5", labs.Hemoglobin.Value)
	}
}

func TestExtract_defaultUnits(t *testing.T) {
	_, labs := Extract("Hemoglobin: 9.5\nMCV 95\nMCH 28\nMCHC 33")
	for _, tt := range []struct {
		analyte models.Analyte
		unit    string
	}{
		{models.Hemoglobin, "g/dL"},
		{models.MCV, "fL"},
		{models.MCH, "pg"},
		{models.MCHC, "g/dL"},
	} {
		f := labs.Field(tt.analyte)
		if f.Unit == nil || *f.Unit != tt.unit {
			t.Errorf("%s unit = %v, want default %q", tt.analyte, f.Unit, tt.unit)
		}
	}
}

func TestExtract_spelledOutUnit(t *testing.T) {
	_, labs := Extract("Hemoglobin: 9.5 g per dL")
	if labs.Hemoglobin.Unit == nil || *labs.Hemoglobin.Unit != "g/dL" {
		t.Errorf("unit = %v, want g/dL", labs.Hemoglobin.Unit)
	}
}

func TestExtract_missingAnalytes(t *testing.T) {
	_, labs := Extract("MCV 95 fL")
	if labs.Hemoglobin.Value != nil {
		t.Errorf("hemoglobin value = %v, want nil", labs.Hemoglobin.Value)
	}
	if labs.MCV.Value == nil || *labs.MCV.Value != 95 {
		t.Errorf("mcv value = %v, want 95", labs.MCV.Value)
	}
}

func TestExtract_labelMustBeWholeWord(t *testing.T) {
	_, labs := Extract("Oxyhemoglobin 95.2")
	if labs.Hemoglobin.Value != nil {
		t.Errorf("hemoglobin value = %v, want nil for embedded label", *labs.Hemoglobin.Value)
	}
}

func TestExtract_mchLabelDoesNotMatchMCHC(t *testing.T) {
	_, labs := Extract("MCHC: 33.5 g/dL")
	if labs.MCH.Value != nil {
		t.Errorf("MCH value = %v, want nil (only MCHC present)", labs.MCH.Value)
	}
	if labs.MCHC.Value == nil || *labs.MCHC.Value != 33.5 {
		t.Errorf("MCHC value = %v, want 33.5", labs.MCHC.Value)
	}
}

func TestExtract_genderFallback(t *testing.T) {
	patient, _ := Extract("The patient is a 34 year old female with fatigue.")
	if patient.Gender == nil || *patient.Gender != models.GenderFemale {
		t.Fatalf("gender = %v, want female", patient.Gender)
	}
	if !patient.GenderInferred {
		t.Error("bare-token fallback should be marked inferred")
	}
}

func TestExtract_genderFallbackRequiresWholeWord(t *testing.T) {
	patient, _ := Extract("Patient admired the maleficent artwork.")
	if patient.Gender != nil {
		t.Errorf("gender = %v, want nil", *patient.Gender)
	}
}

func TestExtract_sexLabel(t *testing.T) {
	patient, _ := Extract("Sex: MALE")
	if patient.Gender == nil || *patient.Gender != models.GenderMale {
		t.Errorf("gender = %v, want male", patient.Gender)
	}
	if patient.GenderInferred {
		t.Error("labeled gender should not be marked inferred")
	}
}

func TestExtract_ageMissing(t *testing.T) {
	patient, _ := Extract("No demographics here.")
	if patient.Age != nil {
		t.Errorf("age = %v, want nil", *patient.Age)
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in   string
		want *float64
	}{
		{"9.5", models.Float(9.5)},
		{"9,5", models.Float(9.5)},
		{"-3", models.Float(-3)},
		{" 12 ", models.Float(12)},
		{"abc", nil},
		{"", nil},
	}
	for _, tt := range tests {
		got := parseFloat(tt.in)
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("parseFloat(%q) = %v, want nil", tt.in, *got)
		case tt.want != nil && (got == nil || *got != *tt.want):
			t.Errorf("parseFloat(%q) = %v, want %v", tt.in, got, *tt.want)
		}
	}
}
