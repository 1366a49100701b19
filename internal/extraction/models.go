package extraction

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time component. The zero value is the
// zero time's date; fields that may be absent use *Date.
type Date struct {
	t time.Time
}

// NewDate builds a date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Year returns the calendar year.
func (d Date) Year() int { return d.t.Year() }

// Before reports whether d falls before other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// Equal reports whether d and other are the same day.
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

// DaysUntil returns the number of days from d to other, negative when other
// falls before d.
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t) / (24 * time.Hour))
}

// String renders the date in ISO-8601 form (YYYY-MM-DD).
func (d Date) String() string { return d.t.Format(dateLayout) }

// MarshalJSON renders the date as an ISO-8601 string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts strict ISO-8601 date strings only.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("decode date: %w", err)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	d.t = t
	return nil
}

// ExtractedFields holds the candidate policy fields pulled out of a document.
// Every field is independently optional: nil means the field was either not
// found in the text or failed normalization. A non-nil field is always a
// clean, normalized value; partially-valid values are never stored.
type ExtractedFields struct {
	PolicyNumber    *string  `json:"policy_number"`
	VesselName      *string  `json:"vessel_name"`
	PolicyStartDate *Date    `json:"policy_start_date"`
	PolicyEndDate   *Date    `json:"policy_end_date"`
	InsuredValue    *float64 `json:"insured_value"`
}
