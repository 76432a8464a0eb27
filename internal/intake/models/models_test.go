package models

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ModelsSuite struct {
	suite.Suite
}

func TestModelsSuite(t *testing.T) {
	suite.Run(t, new(ModelsSuite))
}

func (s *ModelsSuite) TestRole() {
	s.Run("tenant roles", func() {
		s.True(RolePrimaryTenant.IsTenant())
		s.True(RoleCoTenant.IsTenant())
		s.False(RoleChild.IsTenant())
		s.False(RoleUnborn.IsTenant())
	})

	s.Run("validity", func() {
		s.True(RoleOther.IsValid())
		s.False(Role("roommate").IsValid())
	})
}

func (s *ModelsSuite) TestPermitType() {
	s.Run("recognized categories", func() {
		s.True(PermitC.Recognized())
		s.True(PermitB.Recognized())
		s.True(PermitF.Recognized())
		s.False(PermitAutre.Recognized())
		s.False(PermitNone.Recognized())
	})

	s.Run("expiration requirements", func() {
		s.False(PermitC.RequiresExpiration())
		s.True(PermitB.RequiresExpiration())
		s.True(PermitF.RequiresExpiration())
	})
}

func (s *ModelsSuite) TestParseStep() {
	s.Run("known steps parse", func() {
		for _, step := range Steps {
			got, err := ParseStep(string(step))
			s.Require().NoError(err)
			s.Equal(step, got)
		}
	})

	s.Run("unknown step errors", func() {
		_, err := ParseStep("checkout")
		s.Error(err)
	})
}

func (s *ModelsSuite) TestFinanceSources() {
	s.Run("every listed source is valid", func() {
		for _, src := range FinanceSources {
			s.True(src.IsValid(), "source %s", src)
		}
	})

	s.Run("unknown source is invalid", func() {
		s.False(FinanceSource("lottery").IsValid())
	})

	s.Run("the closed list has seventeen sources", func() {
		s.Len(FinanceSources, 17)
	})
}

func (s *ModelsSuite) TestSnapshotHelpers() {
	snap := Snapshot{
		Members: []Member{
			{Role: RoleChild},
			{Role: RolePrimaryTenant},
			{Role: RoleCoTenant},
		},
		Finances: []FinanceEntry{
			{MemberIndex: 1, Source: SourceSalarie},
			{MemberIndex: 2, Source: SourceAVS},
			{MemberIndex: 1, Source: SourcePension},
		},
	}

	s.Run("tenant count", func() {
		s.Equal(2, snap.TenantCount())
	})

	s.Run("primary tenant index", func() {
		s.Equal(1, snap.PrimaryTenant())
		s.Equal(-1, Snapshot{}.PrimaryTenant())
	})

	s.Run("finances for member", func() {
		s.Len(snap.FinancesFor(1), 2)
		s.Len(snap.FinancesFor(2), 1)
		s.Empty(snap.FinancesFor(0))
	})
}

func (s *ModelsSuite) TestStepResultBlocking() {
	r := StepResult{Findings: []Finding{
		{Severity: SeverityBlocking, Message: "a"},
		{Severity: SeverityWarning, Message: "b"},
		{Severity: SeverityBlocking, Message: "c"},
	}}
	s.Len(r.Blocking(), 2)
}

func (s *ModelsSuite) TestCriticalResultRefused() {
	s.False(CriticalResult{}.Refused())
	s.True(CriticalResult{Refusals: []Refusal{{Code: "x"}}}.Refused())
}
