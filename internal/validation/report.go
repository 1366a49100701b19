package validation

import (
	"fmt"

	"marineval/internal/extraction"
	"marineval/internal/vessels"
)

// BuildReport computes the four rule checks plus the range and duration
// sub-checks and assembles the report. Overall validity is the conjunction of
// all eight, so a missing field always fails the report even when its boolean
// check is trivially satisfied in isolation.
func BuildReport(fields extraction.ExtractedFields, registry *vessels.Registry) Report {
	checks := Checks{
		DateOrderOK:    DateOrderOK(fields.PolicyStartDate, fields.PolicyEndDate),
		InsuredValueOK: InsuredValueOK(fields.InsuredValue),
		VesselAllowed:  VesselAllowed(fields.VesselName, registry),
		PolicyNumberOK: PolicyNumberOK(fields.PolicyNumber),
	}

	isValid := checks.DateOrderOK &&
		checks.InsuredValueOK &&
		checks.VesselAllowed &&
		checks.PolicyNumberOK &&
		DateInRange(fields.PolicyStartDate) &&
		DateInRange(fields.PolicyEndDate) &&
		DurationOK(fields.PolicyStartDate, fields.PolicyEndDate) &&
		InsuredValueInRange(fields.InsuredValue)

	return Report{
		Extracted: fields,
		Checks:    checks,
		IsValid:   isValid,
		Errors:    collectErrors(fields, checks),
	}
}

// collectErrors emits exactly one message per root cause in a fixed order so
// responses are deterministic. A missing field suppresses every downstream
// message about the same field: ordering and duration messages only fire when
// both dates are present, range messages only when the field is present.
func collectErrors(fields extraction.ExtractedFields, checks Checks) []string {
	errs := []string{}

	if !checks.PolicyNumberOK {
		errs = append(errs, "policy_number is missing or invalid")
	}

	switch {
	case fields.VesselName == nil:
		errs = append(errs, "vessel_name is missing or invalid")
	case !checks.VesselAllowed:
		errs = append(errs, fmt.Sprintf("vessel_name '%s' is not in the allowed list", *fields.VesselName))
	}

	start, end := fields.PolicyStartDate, fields.PolicyEndDate
	switch {
	case start == nil:
		errs = append(errs, "policy_start_date is missing or invalid")
	case !DateInRange(start):
		errs = append(errs, fmt.Sprintf("policy_start_date (%s) is outside the reasonable range (1900-2100)", start))
	}
	switch {
	case end == nil:
		errs = append(errs, "policy_end_date is missing or invalid")
	case !DateInRange(end):
		errs = append(errs, fmt.Sprintf("policy_end_date (%s) is outside the reasonable range (1900-2100)", end))
	}
	if start != nil && end != nil {
		switch {
		case end.Before(*start):
			errs = append(errs, fmt.Sprintf("policy_end_date (%s) must be on or after policy_start_date (%s)", end, start))
		case !DurationOK(start, end):
			errs = append(errs, "policy duration exceeds the maximum of 50 years")
		}
	}

	switch {
	case fields.InsuredValue == nil:
		errs = append(errs, "insured_value is missing or invalid")
	case !checks.InsuredValueOK:
		errs = append(errs, fmt.Sprintf("insured_value (%g) must be greater than zero", *fields.InsuredValue))
	case !InsuredValueInRange(fields.InsuredValue):
		errs = append(errs, fmt.Sprintf("insured_value (%g) is outside the reasonable range (1 to 1e15)", *fields.InsuredValue))
	}

	return errs
}
