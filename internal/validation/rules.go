package validation

import (
	"strings"

	"marineval/internal/extraction"
	"marineval/internal/vessels"
)

// Business rule bounds. Dates outside the year range and values outside the
// monetary range are treated as garbage extractions even when well-formed.
const (
	minYear         = 1900
	maxYear         = 2100
	maxDurationDays = 50 * 365
	minInsuredValue = 1.0
	maxInsuredValue = 1e15
)

// Rules are pure, stateless functions over the extracted fields. Absent
// fields always fail the rule that needs them; no rule ever returns an error.

// DateOrderOK reports whether both dates are present and the end date falls
// on or after the start date.
func DateOrderOK(start, end *extraction.Date) bool {
	if start == nil || end == nil {
		return false
	}
	return !end.Before(*start)
}

// DateInRange reports whether the date is present with a year in [1900, 2100].
func DateInRange(d *extraction.Date) bool {
	if d == nil {
		return false
	}
	return d.Year() >= minYear && d.Year() <= maxYear
}

// DurationOK reports whether both dates are present, ordered, and no more
// than 50 years apart.
func DurationOK(start, end *extraction.Date) bool {
	if start == nil || end == nil {
		return false
	}
	if end.Before(*start) {
		return false
	}
	return start.DaysUntil(*end) <= maxDurationDays
}

// InsuredValueOK reports whether the value is present and positive.
func InsuredValueOK(v *float64) bool {
	return v != nil && *v > 0
}

// InsuredValueInRange reports whether the value is present and within
// [1, 1e15].
func InsuredValueInRange(v *float64) bool {
	if v == nil {
		return false
	}
	return *v >= minInsuredValue && *v <= maxInsuredValue
}

// PolicyNumberOK reports whether the policy number is present and non-blank.
func PolicyNumberOK(n *string) bool {
	return n != nil && strings.TrimSpace(*n) != ""
}

// VesselAllowed reports whether the vessel name is present, non-blank, and
// registered. An empty registry rejects every name.
func VesselAllowed(name *string, registry *vessels.Registry) bool {
	if name == nil || strings.TrimSpace(*name) == "" {
		return false
	}
	return registry.Contains(*name)
}
