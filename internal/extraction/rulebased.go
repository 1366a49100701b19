package extraction

import (
	"context"
	"log/slog"
	"regexp"
)

// Label variants recognized for each field. Matching is case-insensitive and
// the first match in text order wins; fields are fully independent, so a
// missing label never blocks the others.
var (
	policyNumberPattern = regexp.MustCompile(
		`(?i)(?:policy\s*number|policy\s*id|contract\s*no)[:\-]?\s*(?P<value>[\w\-./]+)`)
	vesselNamePattern = regexp.MustCompile(
		`(?i)(?:vessel\s*name|ship\s*name|vessel)[:\-]?\s*(?P<value>[\w \t.\-']+)`)
	startDatePattern = regexp.MustCompile(
		`(?i)(?:policy\s*start|effective\s*date|from)[:\-]?\s*(?P<value>\d{4}-\d{2}-\d{2})`)
	endDatePattern = regexp.MustCompile(
		`(?i)(?:policy\s*end|expiry\s*date|to)[:\-]?\s*(?P<value>\d{4}-\d{2}-\d{2})`)
	insuredValuePattern = regexp.MustCompile(
		// The currency marker class deliberately excludes digits so a bare
		// "$1,000.00" keeps its leading digit in the captured amount.
		`(?i)(?:insured\s*value|sum\s*insured|limit)[:\-]?\s*(?:[$€£A-Za-z]{1,3})?\s*(?P<value>-?[0-9,]+(?:\.\d{2})?)`)
)

// RuleBased locates policy fields with deterministic regex heuristics. It
// runs fully offline and stands in for future model-backed extractors; any
// replacement only has to satisfy the orchestrator's Extractor interface.
type RuleBased struct {
	logger *slog.Logger
}

// NewRuleBased constructs the default rule-based extractor.
func NewRuleBased(logger *slog.Logger) *RuleBased {
	return &RuleBased{logger: logger}
}

// Extract pulls candidate fields out of raw document text. It is a total
// function over its input: matched substrings that fail normalization end up
// nil exactly like unmatched fields, and the returned error is always nil for
// this implementation.
func (e *RuleBased) Extract(ctx context.Context, text string) (ExtractedFields, error) {
	fields := ExtractedFields{}

	if raw, ok := firstMatch(policyNumberPattern, text); ok {
		fields.PolicyNumber = CleanPolicyNumber(raw)
	}
	if raw, ok := firstMatch(vesselNamePattern, text); ok {
		fields.VesselName = CleanVesselName(raw)
	}
	if raw, ok := firstMatch(startDatePattern, text); ok {
		fields.PolicyStartDate = ParseDate(raw)
	}
	if raw, ok := firstMatch(endDatePattern, text); ok {
		fields.PolicyEndDate = ParseDate(raw)
	}
	if raw, ok := firstMatch(insuredValuePattern, text); ok {
		fields.InsuredValue = ParseMoney(raw)
	}

	if fields == (ExtractedFields{}) {
		e.logger.DebugContext(ctx, "no fields extracted from document", "text_len", len(text))
	}
	return fields, nil
}

func firstMatch(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[re.SubexpIndex("value")], true
}
