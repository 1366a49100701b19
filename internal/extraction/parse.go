package extraction

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Field caps and value guards. Values breaching these are treated as
// extraction noise and coerced to absence rather than stored.
const (
	maxPolicyNumberLen = 100
	maxVesselNameLen   = 200
	maxInsuredValue    = 1e15
)

// ParseDate normalizes a raw string into a calendar date. Surrounding
// whitespace and one layer of matching quotes are stripped before parsing.
// Anything that is not a strict, calendar-valid ISO-8601 date (including
// shapes like 2024-02-31) yields nil, never an error.
func ParseDate(raw string) *Date {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(stripMatchingQuotes(s))
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	d := Date{t: t}
	return &d
}

func stripMatchingQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '\'' || first == '"') {
		return s[1 : len(s)-1]
	}
	return s
}

// ParseMoney normalizes a raw string into a positive monetary amount. A
// direct numeric parse is attempted first so plain and scientific notation
// pass through; on failure every rune that is not a digit, dot, or minus is
// stripped (currency symbols, thousands separators) and dots before the last
// one are collapsed, so "1.234.567,89"-style input keeps its integer part.
// Negative, zero, empty, and out-of-range values yield nil.
func ParseMoney(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return moneyInRange(v)
	}

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if strings.Contains(clean, "-") {
		return nil
	}
	if clean == "" || clean == "." {
		return nil
	}
	if strings.Count(clean, ".") > 1 {
		last := strings.LastIndex(clean, ".")
		clean = strings.ReplaceAll(clean[:last], ".", "") + clean[last:]
	}
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return nil
	}
	return moneyInRange(v)
}

func moneyInRange(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	if v <= 0 || v > maxInsuredValue {
		return nil
	}
	return &v
}

// CleanPolicyNumber collapses whitespace runs and trims the ends. Empty and
// over-long identifiers yield nil.
func CleanPolicyNumber(raw string) *string {
	s := collapseSpace(raw)
	if s == "" || utf8.RuneCountInString(s) > maxPolicyNumberLen {
		return nil
	}
	return &s
}

// CleanVesselName collapses whitespace runs and trims the ends. Empty,
// over-long, and pure-punctuation names yield nil; a name needs at least one
// alphanumeric rune.
func CleanVesselName(raw string) *string {
	s := collapseSpace(raw)
	if s == "" || utf8.RuneCountInString(s) > maxVesselNameLen {
		return nil
	}
	if !hasAlphanumeric(s) {
		return nil
	}
	return &s
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func hasAlphanumeric(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
