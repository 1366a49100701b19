package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"marineval/internal/extraction"
	"marineval/internal/validation"
	"marineval/internal/validation/metrics"
	"marineval/internal/vessels"
)

//go:generate mockgen -source=service.go -destination=mocks/extractor_mock.go -package=mocks Extractor

// Extractor produces candidate fields from raw document text. Absence is a
// legitimate outcome for any field; only unexpected faults surface as errors.
type Extractor interface {
	Extract(ctx context.Context, text string) (extraction.ExtractedFields, error)
}

// ExtractionFailedMessage marks reports degraded by an extractor fault.
const ExtractionFailedMessage = "extraction encountered errors"

const (
	outcomeValid    = "valid"
	outcomeInvalid  = "invalid"
	outcomeDegraded = "degraded"
)

// Service orchestrates the pipeline: extractor output plus the vessel
// registry feed the rule checks to produce one report per call. The service
// holds no per-request state and is safe for concurrent use.
type Service struct {
	extractor Extractor
	registry  *vessels.Registry
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// New constructs the validation service.
func New(extractor Extractor, registry *vessels.Registry, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		extractor: extractor,
		registry:  registry,
		logger:    logger,
		metrics:   m,
	}
}

// ValidateDocument runs the full pipeline over the document text. It never
// fails: an extractor fault (error or panic) degrades to an all-absent report
// carrying a marker error instead of propagating to the caller.
func (s *Service) ValidateDocument(ctx context.Context, text string) validation.Report {
	start := time.Now()

	fields, err := s.extract(ctx, text)
	if err != nil {
		s.logger.ErrorContext(ctx, "extraction failed, returning degraded report",
			"error", err.Error(),
		)
		report := validation.BuildReport(extraction.ExtractedFields{}, s.registry)
		report.IsValid = false
		report.Errors = append(report.Errors, ExtractionFailedMessage)
		s.metrics.IncrementOutcome(outcomeDegraded)
		s.metrics.ObserveValidateLatency(time.Since(start))
		return report
	}
	s.countExtracted(fields)

	report := validation.BuildReport(fields, s.registry)
	if report.IsValid {
		s.metrics.IncrementOutcome(outcomeValid)
	} else {
		s.metrics.IncrementOutcome(outcomeInvalid)
	}
	s.metrics.ObserveValidateLatency(time.Since(start))
	return report
}

// extract shields the orchestration from a faulty extractor implementation:
// the extractor is pluggable, so a panic there must not take the request down.
func (s *Service) extract(ctx context.Context, text string) (fields extraction.ExtractedFields, err error) {
	defer func() {
		if r := recover(); r != nil {
			fields = extraction.ExtractedFields{}
			err = fmt.Errorf("extractor panic: %v", r)
		}
	}()
	return s.extractor.Extract(ctx, text)
}

func (s *Service) countExtracted(fields extraction.ExtractedFields) {
	if fields.PolicyNumber != nil {
		s.metrics.IncrementFieldExtracted("policy_number")
	}
	if fields.VesselName != nil {
		s.metrics.IncrementFieldExtracted("vessel_name")
	}
	if fields.PolicyStartDate != nil {
		s.metrics.IncrementFieldExtracted("policy_start_date")
	}
	if fields.PolicyEndDate != nil {
		s.metrics.IncrementFieldExtracted("policy_end_date")
	}
	if fields.InsuredValue != nil {
		s.metrics.IncrementFieldExtracted("insured_value")
	}
}
