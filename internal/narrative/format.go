// Package narrative turns classified lab values, safety results, and
// symptom correlations into templated educational text.
package narrative

import (
	"fmt"
	"strings"

	"github.com/medletter/labsense/internal/models"
)

// FormatValue renders a value with its unit for display, or "Not found".
func FormatValue(value *float64, unit *string) string {
	if value == nil {
		return "Not found"
	}
	if unit != nil && *unit != "" {
		return fmt.Sprintf("%.2f %s", *value, *unit)
	}
	return fmt.Sprintf("%.2f", *value)
}

// StatusLabel returns the human-friendly label for a classification.
func StatusLabel(status *models.Status) string {
	if status == nil {
		return "Not classified"
	}
	switch *status {
	case models.StatusLow:
		return "Below reference range"
	case models.StatusNormal:
		return "Within reference range"
	case models.StatusHigh:
		return "Above reference range"
	}
	return string(*status)
}

// FormatRange renders a reference range for display, or "" when the status
// carries no range.
func FormatRange(s models.LabStatus) string {
	if s.RefLow == nil || s.RefHigh == nil {
		return ""
	}
	unit := ""
	if s.RefUnit != nil {
		unit = *s.RefUnit
	} else if s.Unit != nil {
		unit = *s.Unit
	}
	return strings.TrimSpace(fmt.Sprintf("%.1f–%.1f %s", *s.RefLow, *s.RefHigh, unit))
}
