package validation

import "marineval/internal/extraction"

// Checks holds the boolean outcome of each business rule. Every check is an
// independent function of the extracted fields; none depends on another's
// outcome. The booleans reflect intrinsic validity of present data, while
// overall validity additionally requires presence (see BuildReport).
type Checks struct {
	DateOrderOK    bool `json:"date_order_ok"`
	InsuredValueOK bool `json:"insured_value_ok"`
	VesselAllowed  bool `json:"vessel_allowed"`
	PolicyNumberOK bool `json:"policy_number_ok"`
}

// Report is the full validation outcome for one document. Errors is ordered
// deterministically (policy number, vessel, start date, end date,
// order/duration, insured value) and is never nil so it serializes as [].
// Reports live for one request only; nothing is persisted.
type Report struct {
	Extracted extraction.ExtractedFields `json:"extracted"`
	Checks    Checks                     `json:"checks"`
	IsValid   bool                       `json:"is_valid"`
	Errors    []string                   `json:"errors"`
}
