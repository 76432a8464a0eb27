package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"llm-intake/internal/intake/models"
)

// RoomsSuite tests the household classification and the room-allowance
// scale, a direct encoding of municipal allocation policy.
type RoomsSuite struct {
	suite.Suite
	now time.Time
}

func TestRoomsSuite(t *testing.T) {
	suite.Run(t, new(RoomsSuite))
}

func (s *RoomsSuite) SetupTest() {
	s.now = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
}

func swissAdult(role models.Role, birth string) models.Member {
	return models.Member{
		Role:        role,
		BirthDate:   birth,
		Nationality: models.Nationality{Swiss: true},
	}
}

func swissChild(birth string) models.Member {
	return swissAdult(models.RoleChild, birth)
}

func (s *RoomsSuite) TestClassify() {
	s.Run("adult and child split at 18", func() {
		c := Classify([]models.Member{
			swissAdult(models.RolePrimaryTenant, "1990-01-01"),
			swissChild("2010-01-01"),
		}, s.now)
		s.Equal([]int{0}, c.Adults)
		s.Equal([]int{1}, c.Children)
	})

	s.Run("tenant without birth date counts as adult", func() {
		c := Classify([]models.Member{swissAdult(models.RolePrimaryTenant, "")}, s.now)
		s.Equal([]int{0}, c.Adults)
	})

	s.Run("permit-invalid member is excluded", func() {
		c := Classify([]models.Member{
			swissAdult(models.RolePrimaryTenant, "1990-01-01"),
			{Role: models.RoleOther, BirthDate: "1985-01-01", Nationality: models.Nationality{Country: "FR"}},
		}, s.now)
		s.Equal([]int{0}, c.Adults)
		s.Equal([]int{1}, c.ExcludedByPermit)
	})

	s.Run("unborn counts only with certificate", func() {
		certified := models.Member{Role: models.RoleUnborn, DueDate: "2024-12-01", PregnancyCert: true,
			Nationality: models.Nationality{Swiss: true}}
		uncertified := models.Member{Role: models.RoleUnborn, DueDate: "2024-12-01",
			Nationality: models.Nationality{Swiss: true}}
		c := Classify([]models.Member{certified, uncertified}, s.now)
		s.Equal([]int{0}, c.Children)
		s.Equal([]int{1}, c.ExcludedUnborn)
	})
}

func (s *RoomsSuite) TestMaxRoomsScale() {
	adult := func() models.Member { return swissAdult(models.RolePrimaryTenant, "1990-01-01") }
	co := func() models.Member { return swissAdult(models.RoleCoTenant, "1988-01-01") }
	child := func() models.Member { return swissChild("2015-01-01") }

	s.Run("one adult no children", func() {
		s.Equal(2.5, MaxRooms([]models.Member{adult()}, s.now))
	})

	s.Run("young solo tenant caps at 1.5", func() {
		s.Equal(1.5, MaxRooms([]models.Member{swissAdult(models.RolePrimaryTenant, "2002-01-01")}, s.now))
	})

	s.Run("one adult one child", func() {
		s.Equal(3.5, MaxRooms([]models.Member{adult(), child()}, s.now))
	})

	s.Run("one adult two children", func() {
		s.Equal(4.5, MaxRooms([]models.Member{adult(), child(), child()}, s.now))
	})

	s.Run("one adult three children", func() {
		s.Equal(5.5, MaxRooms([]models.Member{adult(), child(), child(), child()}, s.now))
	})

	s.Run("two adults no children", func() {
		s.Equal(3.5, MaxRooms([]models.Member{adult(), co()}, s.now))
	})

	s.Run("two adults one child", func() {
		s.Equal(3.5, MaxRooms([]models.Member{adult(), co(), child()}, s.now))
	})

	s.Run("two adults two children", func() {
		s.Equal(4.5, MaxRooms([]models.Member{adult(), co(), child(), child()}, s.now))
	})

	s.Run("two adults three children", func() {
		s.Equal(5.5, MaxRooms([]models.Member{adult(), co(), child(), child(), child()}, s.now))
	})

	s.Run("no adults falls back to default", func() {
		s.Equal(2.5, MaxRooms(nil, s.now))
	})
}

func (s *RoomsSuite) TestCustodyAdjustments() {
	adult := swissAdult(models.RolePrimaryTenant, "1990-01-01")

	visiting := func() models.Member {
		m := swissChild("2015-01-01")
		m.Custody = &models.Custody{Situation: models.CustodyVisitation}
		return m
	}
	shared := func() models.Member {
		m := swissChild("2015-01-01")
		m.Custody = &models.Custody{Situation: models.CustodyShared}
		return m
	}

	s.Run("single visitation child does not count", func() {
		s.Equal(2.5, MaxRooms([]models.Member{adult, visiting()}, s.now))
	})

	s.Run("two visitation children floor the count at one", func() {
		s.Equal(3.5, MaxRooms([]models.Member{adult, visiting(), visiting()}, s.now))
	})

	s.Run("shared custody child counts as resident", func() {
		s.Equal(3.5, MaxRooms([]models.Member{adult, shared()}, s.now))
	})

	s.Run("floor is not additive with resident children", func() {
		s.Equal(3.5, MaxRooms([]models.Member{adult, swissChild("2016-01-01"), visiting(), visiting()}, s.now))
	})
}

func (s *RoomsSuite) TestSoloMaleCustodyExclusion() {
	father := swissAdult(models.RolePrimaryTenant, "1990-01-01")
	father.Gender = models.GenderMale
	child := swissChild("2015-01-01")

	s.Run("undeclared custody excludes the child from the allowance", func() {
		s.Equal(2.5, MaxRooms([]models.Member{father, child}, s.now))
	})

	s.Run("custody without the ruling still excludes", func() {
		c := child
		c.Custody = &models.Custody{Situation: models.CustodyShared}
		s.Equal(2.5, MaxRooms([]models.Member{father, c}, s.now))
	})

	s.Run("documented custody counts the child", func() {
		c := child
		c.Custody = &models.Custody{Situation: models.CustodyShared, JudgmentProvided: true}
		s.Equal(3.5, MaxRooms([]models.Member{father, c}, s.now))
	})

	s.Run("rule does not apply to a female applicant", func() {
		mother := swissAdult(models.RolePrimaryTenant, "1990-01-01")
		mother.Gender = models.GenderFemale
		s.Equal(3.5, MaxRooms([]models.Member{mother, child}, s.now))
	})

	s.Run("rule does not apply with a co-tenant", func() {
		co := swissAdult(models.RoleCoTenant, "1988-01-01")
		co.Gender = models.GenderFemale
		s.Equal(3.5, MaxRooms([]models.Member{father, co, child}, s.now))
	})
}

func (s *RoomsSuite) TestSummarize() {
	snap := models.Snapshot{Members: []models.Member{
		swissAdult(models.RolePrimaryTenant, "2002-01-01"),
	}}
	sum := Summarize(snap, s.now)
	s.Equal(1, sum.Adults)
	s.Equal(0, sum.Children)
	s.Equal(1.5, sum.MaxRooms)
	s.True(sum.YoungSoloApplicant)
}
