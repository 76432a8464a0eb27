package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"llm-intake/internal/intake/models"
)

// PermitSuite tests the single permit-validity authority used by
// classification, room calculation and the refusal gate.
type PermitSuite struct {
	suite.Suite
	now time.Time
}

func TestPermitSuite(t *testing.T) {
	suite.Run(t, new(PermitSuite))
}

func (s *PermitSuite) SetupTest() {
	s.now = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
}

func (s *PermitSuite) TestPermitValid() {
	s.Run("swiss national is always valid", func() {
		m := models.Member{Nationality: models.Nationality{Swiss: true}}
		s.True(PermitValid(m, s.now))
	})

	s.Run("swiss national with garbage permit fields is still valid", func() {
		m := models.Member{
			Nationality: models.Nationality{Swiss: true},
			Permit:      &models.Permit{Type: models.PermitAutre, Expiration: "2000-01-01"},
		}
		s.True(PermitValid(m, s.now))
	})

	s.Run("non-swiss without permit is invalid", func() {
		m := models.Member{Nationality: models.Nationality{Country: "FR"}}
		s.False(PermitValid(m, s.now))
	})

	s.Run("unrecognized permit type is invalid", func() {
		m := models.Member{
			Nationality: models.Nationality{Country: "FR"},
			Permit:      &models.Permit{Type: models.PermitAutre},
		}
		s.False(PermitValid(m, s.now))
	})

	s.Run("permit C needs no expiration", func() {
		m := models.Member{
			Nationality: models.Nationality{Country: "IT"},
			Permit:      &models.Permit{Type: models.PermitC},
		}
		s.True(PermitValid(m, s.now))
	})

	s.Run("permit B without expiration is invalid", func() {
		m := models.Member{
			Nationality: models.Nationality{Country: "PT"},
			Permit:      &models.Permit{Type: models.PermitB},
		}
		s.False(PermitValid(m, s.now))
	})

	s.Run("permit F expired yesterday is invalid", func() {
		m := models.Member{
			Nationality: models.Nationality{Country: "ER"},
			Permit:      &models.Permit{Type: models.PermitF, Expiration: "2024-06-14"},
		}
		s.False(PermitValid(m, s.now))
	})

	s.Run("permit F expiring today is still valid", func() {
		m := models.Member{
			Nationality: models.Nationality{Country: "ER"},
			Permit:      &models.Permit{Type: models.PermitF, Expiration: "2024-06-15"},
		}
		s.True(PermitValid(m, s.now))
	})

	s.Run("permit B with future expiration is valid", func() {
		m := models.Member{
			Nationality: models.Nationality{Country: "PT"},
			Permit:      &models.Permit{Type: models.PermitB, Expiration: "2025-01-01"},
		}
		s.True(PermitValid(m, s.now))
	})
}
