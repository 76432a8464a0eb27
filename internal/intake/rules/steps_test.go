package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"llm-intake/internal/intake/models"
)

// StepsSuite tests the per-step validators.
type StepsSuite struct {
	suite.Suite
	now time.Time
}

func TestStepsSuite(t *testing.T) {
	suite.Run(t, new(StepsSuite))
}

func (s *StepsSuite) SetupTest() {
	s.now = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
}

func (s *StepsSuite) messages(r models.StepResult) []string {
	var out []string
	for _, f := range r.Blocking() {
		out = append(out, f.Message)
	}
	return out
}

func completeMember(role models.Role) models.Member {
	return models.Member{
		Role:        role,
		Nom:         "Dupont",
		Prenom:      "Marie",
		Gender:      models.GenderFemale,
		BirthDate:   "1990-03-10",
		CivilStatus: models.StatusCelibataire,
		Nationality: models.Nationality{Swiss: true},
		Address:     &models.Address{Street: "Rue Centrale 12", Zip: "1003", Commune: "Lausanne"},
		IdentityDoc: true,
		Phone:       "+41 21 555 00 00",
		Email:       "marie.dupont@example.ch",
	}
}

func (s *StepsSuite) TestPreFilter() {
	s.Run("inscription without three years blocks", func() {
		r := ValidatePreFilter(models.Snapshot{Type: models.TypeInscription}, s.now)
		s.False(r.Valid)
	})

	s.Run("three years of residence passes", func() {
		r := ValidatePreFilter(models.Snapshot{
			Type:      models.TypeInscription,
			PreFilter: models.PreFiltering{HabiteLausanne3Ans: true},
		}, s.now)
		s.True(r.Valid)
	})

	s.Run("three years of work passes", func() {
		r := ValidatePreFilter(models.Snapshot{
			Type:      models.TypeInscription,
			PreFilter: models.PreFiltering{TravailleLausanne3Ans: true, ViaWork: true},
		}, s.now)
		s.True(r.Valid)
	})

	s.Run("other application types skip the gate", func() {
		r := ValidatePreFilter(models.Snapshot{Type: models.TypeControle}, s.now)
		s.True(r.Valid)
	})

	s.Run("test mode bypasses the gate", func() {
		r := ValidatePreFilter(models.Snapshot{
			Type: models.TypeInscription,
			Meta: models.Meta{TestMode: true},
		}, s.now)
		s.True(r.Valid)
	})
}

func (s *StepsSuite) TestHouseholdTenantInvariants() {
	s.Run("no primary tenant blocks", func() {
		snap := models.Snapshot{Members: []models.Member{completeMember(models.RoleOther)}}
		r := ValidateHousehold(snap, s.now)
		s.Contains(s.messages(r), MsgNoPrimaryTenant)
	})

	s.Run("three tenants block", func() {
		snap := models.Snapshot{Members: []models.Member{
			completeMember(models.RolePrimaryTenant),
			completeMember(models.RoleCoTenant),
			completeMember(models.RoleCoTenant),
		}}
		r := ValidateHousehold(snap, s.now)
		s.Contains(s.messages(r), MsgTooManyTenants)
	})

	s.Run("minor tenant without emancipation blocks", func() {
		m := completeMember(models.RolePrimaryTenant)
		m.BirthDate = "2008-01-01"
		r := ValidateHousehold(models.Snapshot{Members: []models.Member{m}}, s.now)
		s.Contains(s.messages(r), MsgMinorTenant)
	})

	s.Run("emancipated minor tenant passes the age rule", func() {
		m := completeMember(models.RolePrimaryTenant)
		m.BirthDate = "2008-01-01"
		m.Emancipated = true
		r := ValidateHousehold(models.Snapshot{Members: []models.Member{m}}, s.now)
		s.NotContains(s.messages(r), MsgMinorTenant)
	})

	s.Run("complete single tenant is valid", func() {
		snap := models.Snapshot{Members: []models.Member{completeMember(models.RolePrimaryTenant)}}
		r := ValidateHousehold(snap, s.now)
		s.True(r.Valid, "findings: %v", r.Findings)
	})
}

func (s *StepsSuite) TestHouseholdFieldRules() {
	s.Run("missing name and birth date block with field paths", func() {
		m := completeMember(models.RolePrimaryTenant)
		m.Nom = ""
		m.BirthDate = ""
		r := ValidateHousehold(models.Snapshot{Members: []models.Member{m}}, s.now)
		s.False(r.Valid)
		var fields []string
		for _, f := range r.Blocking() {
			fields = append(fields, f.Field)
		}
		s.Contains(fields, "members[0].nom")
		s.Contains(fields, "members[0].dateNaissance")
	})

	s.Run("foreign address needs city and country", func() {
		m := completeMember(models.RolePrimaryTenant)
		m.Address = &models.Address{Foreign: true, Street: "Main St 1"}
		r := ValidateHousehold(models.Snapshot{Members: []models.Member{m}}, s.now)
		s.False(r.Valid)
	})

	s.Run("expired tenant permit blocks outright", func() {
		m := completeMember(models.RolePrimaryTenant)
		m.Nationality = models.Nationality{Country: "FR"}
		m.Permit = &models.Permit{Type: models.PermitB, Expiration: "2024-06-01"}
		m.PermitDoc = true
		r := ValidateHousehold(models.Snapshot{Members: []models.Member{m}}, s.now)
		s.Contains(s.messages(r), MsgTenantPermitPast)
	})

	s.Run("expired permit on a non-tenant only excludes", func() {
		t := completeMember(models.RolePrimaryTenant)
		m := completeMember(models.RoleOther)
		m.Nationality = models.Nationality{Country: "FR"}
		m.Permit = &models.Permit{Type: models.PermitB, Expiration: "2024-06-01"}
		m.PermitDoc = true
		r := ValidateHousehold(models.Snapshot{Members: []models.Member{t, m}}, s.now)
		s.NotContains(s.messages(r), MsgTenantPermitPast)
	})

	s.Run("divorced adult without judgment blocks unless deferred", func() {
		m := completeMember(models.RolePrimaryTenant)
		m.CivilStatus = models.StatusDivorce
		r := ValidateHousehold(models.Snapshot{Members: []models.Member{m}}, s.now)
		s.False(r.Valid)

		m.JudgmentLater = true
		r = ValidateHousehold(models.Snapshot{Members: []models.Member{m}}, s.now)
		s.True(r.Valid, "findings: %v", r.Findings)
	})

	s.Run("married sole tenant needs spouse info and proof", func() {
		m := completeMember(models.RolePrimaryTenant)
		m.CivilStatus = models.StatusMarie
		r := ValidateHousehold(models.Snapshot{Members: []models.Member{m}}, s.now)
		s.False(r.Valid)

		m.Marriage = &models.MarriageInfo{SpouseLocation: "Genève", ProofProvided: true}
		r = ValidateHousehold(models.Snapshot{Members: []models.Member{m}}, s.now)
		s.True(r.Valid, "findings: %v", r.Findings)
	})

	s.Run("unborn child needs due date, certificate only warns", func() {
		t := completeMember(models.RolePrimaryTenant)
		unborn := models.Member{Role: models.RoleUnborn, Nom: "Dupont", Prenom: "Bébé",
			Nationality: models.Nationality{Swiss: true}}
		r := ValidateHousehold(models.Snapshot{Members: []models.Member{t, unborn}}, s.now)
		s.False(r.Valid)

		unborn.DueDate = "2024-12-01"
		r = ValidateHousehold(models.Snapshot{Members: []models.Member{t, unborn}}, s.now)
		s.True(r.Valid, "missing certificate must stay a warning")
		s.NotEmpty(r.Findings)
	})

	s.Run("household without phone or email blocks", func() {
		m := completeMember(models.RolePrimaryTenant)
		m.Phone = ""
		m.Email = ""
		r := ValidateHousehold(models.Snapshot{Members: []models.Member{m}}, s.now)
		s.False(r.Valid)
	})
}

func (s *StepsSuite) TestHousing() {
	s.Run("empty housing blocks on rooms and motifs", func() {
		r := ValidateHousing(models.Snapshot{}, s.now)
		s.False(r.Valid)
	})

	s.Run("complete housing passes", func() {
		r := ValidateHousing(models.Snapshot{Housing: models.Housing{
			Rooms: 2.5, Rent: 1200, Motifs: []string{"loyer_trop_eleve"},
		}}, s.now)
		s.True(r.Valid)
	})

	s.Run("motif autre requires free text", func() {
		r := ValidateHousing(models.Snapshot{Housing: models.Housing{
			Rooms: 2.5, Rent: 1200, Motifs: []string{"autre"},
		}}, s.now)
		s.False(r.Valid)
	})

	s.Run("zero rent is accepted", func() {
		r := ValidateHousing(models.Snapshot{Housing: models.Housing{
			Rooms: 1.5, Rent: 0, Motifs: []string{"logement_trop_petit"},
		}}, s.now)
		s.True(r.Valid)
	})
}

func (s *StepsSuite) TestFinances() {
	s.Run("adult without any source blocks", func() {
		snap := models.Snapshot{Members: []models.Member{completeMember(models.RolePrimaryTenant)}}
		r := ValidateFinances(snap, s.now)
		s.False(r.Valid)
	})

	s.Run("all adults sans revenu blocks with the policy message", func() {
		snap := models.Snapshot{
			Members: []models.Member{
				completeMember(models.RolePrimaryTenant),
				completeMember(models.RoleCoTenant),
			},
			Finances: []models.FinanceEntry{
				{MemberIndex: 0, Source: models.SourceSansRevenu},
				{MemberIndex: 1, Source: models.SourceSansRevenu},
			},
		}
		r := ValidateFinances(snap, s.now)
		s.Contains(s.messages(r), MsgAllAdultsNoIncome)
	})

	s.Run("one real source clears the no-income block", func() {
		snap := models.Snapshot{
			Members: []models.Member{
				completeMember(models.RolePrimaryTenant),
				completeMember(models.RoleCoTenant),
			},
			Finances: []models.FinanceEntry{
				{MemberIndex: 0, Source: models.SourceSansRevenu},
				{MemberIndex: 1, Source: models.SourceSalarie, DocsProvided: true},
			},
		}
		r := ValidateFinances(snap, s.now)
		s.NotContains(s.messages(r), MsgAllAdultsNoIncome)
		s.True(r.Valid, "findings: %v", r.Findings)
	})

	s.Run("undocumented entry blocks with the expected-document hint", func() {
		snap := models.Snapshot{
			Members:  []models.Member{completeMember(models.RolePrimaryTenant)},
			Finances: []models.FinanceEntry{{MemberIndex: 0, Source: models.SourceChomage}},
		}
		r := ValidateFinances(snap, s.now)
		s.False(r.Valid)
		s.Contains(s.messages(r)[0], "Décompte de chômage")
	})

	s.Run("employer-level document covers a salaried entry", func() {
		snap := models.Snapshot{
			Members: []models.Member{completeMember(models.RolePrimaryTenant)},
			Finances: []models.FinanceEntry{{
				MemberIndex: 0,
				Source:      models.SourceSalarie,
				Employers:   []models.Employer{{Name: "Migros", DocsProvided: true}},
			}},
		}
		r := ValidateFinances(snap, s.now)
		s.True(r.Valid, "findings: %v", r.Findings)
	})

	s.Run("deferred entry passes the step", func() {
		snap := models.Snapshot{
			Members:  []models.Member{completeMember(models.RolePrimaryTenant)},
			Finances: []models.FinanceEntry{{MemberIndex: 0, Source: models.SourceAVS, DocsLater: true}},
		}
		r := ValidateFinances(snap, s.now)
		s.True(r.Valid, "findings: %v", r.Findings)
	})

	s.Run("AI source requires a disability degree in range", func() {
		m := completeMember(models.RolePrimaryTenant)
		snap := models.Snapshot{
			Members:  []models.Member{m},
			Finances: []models.FinanceEntry{{MemberIndex: 0, Source: models.SourceAI, DocsProvided: true}},
		}
		r := ValidateFinances(snap, s.now)
		s.False(r.Valid)

		snap.Members[0].DisabilityDegree = 60
		r = ValidateFinances(snap, s.now)
		s.True(r.Valid, "findings: %v", r.Findings)
	})
}

func (s *StepsSuite) TestYouth() {
	youngTenant := completeMember(models.RolePrimaryTenant)
	youngTenant.BirthDate = "2003-02-01"

	s.Run("non-student applications skip the step", func() {
		r := ValidateYouth(models.Snapshot{Type: models.TypeInscription}, s.now)
		s.True(r.Valid)
	})

	s.Run("corel commune with formation passes", func() {
		snap := models.Snapshot{
			Type:    models.TypeEtudiant,
			Members: []models.Member{youngTenant},
			Youth: &models.Youth{
				FormationCommune: "ecublens",
				InFormation:      true,
				FormationDoc:     true,
			},
		}
		r := ValidateYouth(snap, s.now)
		s.True(r.Valid, "findings: %v", r.Findings)
	})

	s.Run("missing training location blocks on its field", func() {
		snap := models.Snapshot{
			Type:    models.TypeEtudiant,
			Members: []models.Member{youngTenant},
			Youth:   &models.Youth{InFormation: true, FormationDoc: true},
		}
		r := ValidateYouth(snap, s.now)
		s.Require().NotEmpty(r.Blocking())
		s.Equal("youth.communeFormation", r.Blocking()[0].Field)
	})

	s.Run("commune outside the list blocks", func() {
		snap := models.Snapshot{
			Type:    models.TypeEtudiant,
			Members: []models.Member{youngTenant},
			Youth:   &models.Youth{FormationCommune: "Montreux", InFormation: true, FormationDoc: true},
		}
		r := ValidateYouth(snap, s.now)
		s.False(r.Valid)
	})

	s.Run("open-access mode requires motive text and document", func() {
		snap := models.Snapshot{
			Type:    models.TypeEtudiant,
			Members: []models.Member{youngTenant},
			Youth:   &models.Youth{ToutPublic: true},
		}
		r := ValidateYouth(snap, s.now)
		s.Len(r.Blocking(), 2)

		snap.Youth.MotifText = "Rupture familiale attestée"
		snap.Youth.MotifDoc = true
		r = ValidateYouth(snap, s.now)
		s.True(r.Valid)
	})

	s.Run("tenant over 25 skips the step", func() {
		older := completeMember(models.RolePrimaryTenant)
		r := ValidateYouth(models.Snapshot{Type: models.TypeEtudiant, Members: []models.Member{older}}, s.now)
		s.True(r.Valid)
	})
}

func (s *StepsSuite) TestConsents() {
	base := models.Consents{Selfie: true, CertExactitude: true, AccesRDU: true}

	s.Run("all attestations present passes", func() {
		r := ValidateConsents(models.Snapshot{
			Members:  []models.Member{completeMember(models.RolePrimaryTenant)},
			Consents: base,
		}, s.now)
		s.True(r.Valid)
	})

	s.Run("missing selfie blocks", func() {
		c := base
		c.Selfie = false
		r := ValidateConsents(models.Snapshot{Consents: c}, s.now)
		s.False(r.Valid)
	})

	s.Run("two adults require the other-adults consent", func() {
		snap := models.Snapshot{
			Members: []models.Member{
				completeMember(models.RolePrimaryTenant),
				completeMember(models.RoleCoTenant),
			},
			Consents: base,
		}
		r := ValidateConsents(snap, s.now)
		s.False(r.Valid)

		snap.Consents.AccordAutresAdultes = true
		r = ValidateConsents(snap, s.now)
		s.True(r.Valid)
	})
}
