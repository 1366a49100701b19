package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ParseSuite struct {
	suite.Suite
}

func TestParseSuite(t *testing.T) {
	suite.Run(t, new(ParseSuite))
}

func (s *ParseSuite) TestParseDate() {
	s.Run("accepts strict ISO dates", func() {
		d := ParseDate("2024-06-30")
		s.Require().NotNil(d)
		s.Equal("2024-06-30", d.String())
	})

	s.Run("strips surrounding whitespace and one layer of quotes", func() {
		for _, raw := range []string{"  2024-01-02  ", "'2024-01-02'", `"2024-01-02"`, ` "2024-01-02" `} {
			d := ParseDate(raw)
			s.Require().NotNil(d, "input %q", raw)
			s.Equal("2024-01-02", d.String())
		}
	})

	s.Run("rejects calendar-invalid dates matching the shape", func() {
		s.Nil(ParseDate("2024-02-31"))
		s.Nil(ParseDate("2024-13-01"))
		s.Nil(ParseDate("2023-02-29"))
	})

	s.Run("rejects anything that is not strict ISO", func() {
		for _, raw := range []string{"", "   ", "not-a-date", "30/06/2024", "2024-6-3", "2024-06-30T00:00:00Z", "''"} {
			s.Nil(ParseDate(raw), "input %q", raw)
		}
	})

	s.Run("mismatched quotes are not stripped", func() {
		s.Nil(ParseDate(`'2024-01-02"`))
	})
}

func (s *ParseSuite) TestParseMoney() {
	s.Run("plain and scientific notation parse directly", func() {
		s.Require().NotNil(ParseMoney("1000"))
		s.InDelta(1000.0, *ParseMoney("1000"), 0.0001)
		s.Require().NotNil(ParseMoney("1e3"))
		s.InDelta(1000.0, *ParseMoney("1e3"), 0.0001)
		s.Require().NotNil(ParseMoney("1.5"))
		s.InDelta(1.5, *ParseMoney("1.5"), 0.0001)
	})

	s.Run("currency symbols and thousands separators are stripped", func() {
		v := ParseMoney("$1,234,567.89")
		s.Require().NotNil(v)
		s.InDelta(1234567.89, *v, 0.0001)

		v = ParseMoney("€ 2,500.00")
		s.Require().NotNil(v)
		s.InDelta(2500.0, *v, 0.0001)
	})

	s.Run("multi-dot input keeps only the last dot as decimal separator", func() {
		v := ParseMoney("1.234.567")
		s.Require().NotNil(v)
		s.InDelta(1234.567, *v, 0.0001)
	})

	s.Run("commas are stripped before the dot collapse", func() {
		// "1.234.567,89" cleans to "1.234.56789"; the last dot then wins.
		v := ParseMoney("1.234.567,89")
		s.Require().NotNil(v)
		s.InDelta(1234.56789, *v, 0.0001)
	})

	s.Run("negative values are rejected", func() {
		s.Nil(ParseMoney("-100"))
		s.Nil(ParseMoney("$-1,000"))
	})

	s.Run("zero and below are rejected", func() {
		s.Nil(ParseMoney("0"))
		s.Nil(ParseMoney("0.00"))
	})

	s.Run("values beyond 1e15 are rejected", func() {
		s.Nil(ParseMoney("1e16"))
		s.Nil(ParseMoney("9999999999999999999"))
		s.NotNil(ParseMoney("1e15"))
	})

	s.Run("garbage degrades to absence, never an error", func() {
		for _, raw := range []string{"", "   ", ".", "$", "abc", "NaN", "+Inf", "..."} {
			s.Nil(ParseMoney(raw), "input %q", raw)
		}
	})
}

func (s *ParseSuite) TestCleanPolicyNumber() {
	s.Run("collapses whitespace runs", func() {
		n := CleanPolicyNumber("  POL   001 ")
		s.Require().NotNil(n)
		s.Equal("POL 001", *n)
	})

	s.Run("rejects empty and blank", func() {
		s.Nil(CleanPolicyNumber(""))
		s.Nil(CleanPolicyNumber("   \t "))
	})

	s.Run("rejects identifiers over 100 characters", func() {
		s.Nil(CleanPolicyNumber(strings.Repeat("A", 150)))
		s.NotNil(CleanPolicyNumber(strings.Repeat("A", 100)))
	})
}

func (s *ParseSuite) TestCleanVesselName() {
	s.Run("collapses whitespace runs", func() {
		n := CleanVesselName("Sea    Breeze")
		s.Require().NotNil(n)
		s.Equal("Sea Breeze", *n)
	})

	s.Run("rejects names without any alphanumeric rune", func() {
		s.Nil(CleanVesselName("@#$%^&*()"))
		s.Nil(CleanVesselName("..."))
	})

	s.Run("rejects names over 200 characters", func() {
		s.Nil(CleanVesselName(strings.Repeat("B", 201)))
		s.NotNil(CleanVesselName(strings.Repeat("B", 200)))
	})

	s.Run("rejects empty and blank", func() {
		s.Nil(CleanVesselName(""))
		s.Nil(CleanVesselName("  "))
	})
}
