package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"marineval/internal/extraction"
	"marineval/internal/vessels"
)

func datePtr(year int, month time.Month, day int) *extraction.Date {
	d := extraction.NewDate(year, month, day)
	return &d
}

func floatPtr(v float64) *float64 { return &v }

func strPtr(s string) *string { return &s }

type RulesSuite struct {
	suite.Suite
	registry *vessels.Registry
}

func (s *RulesSuite) SetupSuite() {
	s.registry = vessels.New([]string{"Sea Breeze", "Ocean Queen"})
}

func TestRulesSuite(t *testing.T) {
	suite.Run(t, new(RulesSuite))
}

func (s *RulesSuite) TestDateOrderOK() {
	s.Run("end after start passes", func() {
		s.True(DateOrderOK(datePtr(2024, 1, 1), datePtr(2024, 6, 30)))
	})

	s.Run("equal dates pass, ordering is inclusive", func() {
		s.True(DateOrderOK(datePtr(2024, 1, 1), datePtr(2024, 1, 1)))
	})

	s.Run("end before start fails", func() {
		s.False(DateOrderOK(datePtr(2024, 6, 1), datePtr(2024, 5, 1)))
	})

	s.Run("missing either date fails", func() {
		s.False(DateOrderOK(nil, datePtr(2024, 1, 1)))
		s.False(DateOrderOK(datePtr(2024, 1, 1), nil))
		s.False(DateOrderOK(nil, nil))
	})
}

func (s *RulesSuite) TestDateInRange() {
	s.True(DateInRange(datePtr(1900, 1, 1)))
	s.True(DateInRange(datePtr(2100, 12, 31)))
	s.False(DateInRange(datePtr(1899, 12, 31)))
	s.False(DateInRange(datePtr(2101, 1, 1)))
	s.False(DateInRange(nil))
}

func (s *RulesSuite) TestDurationOK() {
	s.Run("within fifty years passes", func() {
		s.True(DurationOK(datePtr(2024, 1, 1), datePtr(2073, 12, 1)))
	})

	s.Run("beyond fifty years fails", func() {
		s.False(DurationOK(datePtr(2024, 1, 1), datePtr(2100, 1, 1)))
	})

	s.Run("misordered dates fail regardless of span", func() {
		s.False(DurationOK(datePtr(2024, 6, 1), datePtr(2024, 5, 1)))
	})

	s.Run("missing either date fails", func() {
		s.False(DurationOK(nil, datePtr(2024, 1, 1)))
		s.False(DurationOK(datePtr(2024, 1, 1), nil))
	})
}

func (s *RulesSuite) TestInsuredValue() {
	s.True(InsuredValueOK(floatPtr(0.5)))
	s.False(InsuredValueOK(floatPtr(0)))
	s.False(InsuredValueOK(floatPtr(-10)))
	s.False(InsuredValueOK(nil))

	s.True(InsuredValueInRange(floatPtr(1.0)))
	s.True(InsuredValueInRange(floatPtr(1e15)))
	s.False(InsuredValueInRange(floatPtr(0.5)))
	s.False(InsuredValueInRange(floatPtr(2e15)))
	s.False(InsuredValueInRange(nil))
}

func (s *RulesSuite) TestPolicyNumberOK() {
	s.True(PolicyNumberOK(strPtr("POL-1")))
	s.False(PolicyNumberOK(strPtr("   ")))
	s.False(PolicyNumberOK(strPtr("")))
	s.False(PolicyNumberOK(nil))
}

func (s *RulesSuite) TestVesselAllowed() {
	s.Run("registered name matches case and whitespace insensitively", func() {
		s.True(VesselAllowed(strPtr("Sea Breeze"), s.registry))
		s.True(VesselAllowed(strPtr("sea    breeze"), s.registry))
		s.True(VesselAllowed(strPtr("SEA BREEZE"), s.registry))
	})

	s.Run("unregistered name fails", func() {
		s.False(VesselAllowed(strPtr("Unknown Vessel"), s.registry))
	})

	s.Run("missing or blank name fails", func() {
		s.False(VesselAllowed(nil, s.registry))
		s.False(VesselAllowed(strPtr("  "), s.registry))
	})

	s.Run("empty registry fails closed", func() {
		s.False(VesselAllowed(strPtr("Sea Breeze"), vessels.New(nil)))
	})
}
