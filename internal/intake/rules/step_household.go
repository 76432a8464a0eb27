package rules

import (
	"fmt"
	"time"

	"llm-intake/internal/intake/models"
)

// Household-level blocking messages asserted by the step validator.
const (
	MsgNoPrimaryTenant  = "Un titulaire est obligatoire."
	MsgTooManyTenants   = "Maximum deux titulaires (titulaire + co-titulaire)."
	MsgMinorTenant      = "Preneur·euse < 18 ans sans document d'émancipation."
	MsgTenantPermitPast = "Permis du preneur·euse invalide."
)

// ValidateHousehold checks the member list: identity fields, addresses,
// permits, civil-status proofs, contact details and the tenant invariants.
func ValidateHousehold(s models.Snapshot, now time.Time) models.StepResult {
	var findings []models.Finding

	primaries := 0
	tenants := 0
	hasPhone := false
	hasEmail := false

	for i, m := range s.Members {
		path := func(field string) string { return fmt.Sprintf("members[%d].%s", i, field) }

		if m.Role == models.RolePrimaryTenant {
			primaries++
		}
		if m.Role.IsTenant() {
			tenants++
		}

		if m.Nom == "" {
			findings = append(findings, blocking("Le nom est obligatoire.", path("nom")))
		}
		if m.Prenom == "" {
			findings = append(findings, blocking("Le prénom est obligatoire.", path("prenom")))
		}

		if m.Role == models.RoleUnborn {
			if m.DueDate == "" {
				findings = append(findings, blocking("La date du terme prévu est obligatoire.", path("dateTermePrevu")))
			}
			if !m.PregnancyCert {
				findings = append(findings, warning("Certificat de grossesse (dès 13 semaines) manquant.", path("certGrossesse")))
			}
			continue
		}

		if m.Gender == "" {
			findings = append(findings, blocking("Le genre est obligatoire.", path("genre")))
		}
		if m.BirthDate == "" {
			findings = append(findings, blocking("La date de naissance est obligatoire.", path("dateNaissance")))
		} else if _, ok := ParseISODate(m.BirthDate); !ok {
			findings = append(findings, blocking("La date de naissance est invalide.", path("dateNaissance")))
		}

		findings = append(findings, validateAddress(m.Address, path)...)

		if !m.Nationality.Swiss && m.Nationality.Country == "" {
			findings = append(findings, blocking("La nationalité est obligatoire.", path("nationalite")))
		}
		findings = append(findings, validatePermit(m, now, path)...)

		if m.Role != models.RoleChild && !m.IdentityDoc {
			findings = append(findings, blocking("La pièce d'identité est obligatoire.", path("docIdentite")))
		}

		age := Age(m.BirthDate, now)
		isAdult := age >= adultAge || (age < 0 && m.Role.IsTenant())
		if isAdult {
			if m.Phone != "" {
				hasPhone = true
			}
			if m.Email != "" {
				hasEmail = true
			}
			findings = append(findings, validateCivilStatus(m, s, path)...)
		}

		if m.Role.IsTenant() && age >= 0 && age < adultAge && !m.Emancipated {
			findings = append(findings, blocking(MsgMinorTenant, path("dateNaissance")))
		}
	}

	switch {
	case primaries == 0:
		findings = append(findings, blocking(MsgNoPrimaryTenant, "members"))
	case tenants > 2:
		findings = append(findings, blocking(MsgTooManyTenants, "members"))
	}

	if len(s.Members) > 0 {
		if !hasPhone {
			findings = append(findings, blocking("Au moins un adulte doit indiquer un numéro de téléphone.", "members"))
		}
		if !hasEmail {
			findings = append(findings, blocking("Au moins un adulte doit indiquer une adresse e-mail.", "members"))
		}
	}

	return result(models.StepHousehold, findings)
}

func validateAddress(a *models.Address, path func(string) string) []models.Finding {
	var findings []models.Finding
	if a == nil {
		return append(findings, blocking("L'adresse est obligatoire.", path("adresse")))
	}
	if a.Street == "" {
		findings = append(findings, blocking("La rue et le numéro sont obligatoires.", path("adresse.rue")))
	}
	if a.Foreign {
		if a.City == "" {
			findings = append(findings, blocking("La localité est obligatoire.", path("adresse.localite")))
		}
		if a.Country == "" {
			findings = append(findings, blocking("Le pays est obligatoire.", path("adresse.pays")))
		}
		return findings
	}
	if a.Zip == "" {
		findings = append(findings, blocking("Le NPA est obligatoire.", path("adresse.npa")))
	}
	if a.Commune == "" {
		findings = append(findings, blocking("La commune est obligatoire.", path("adresse.commune")))
	}
	return findings
}

func validatePermit(m models.Member, now time.Time, path func(string) string) []models.Finding {
	if m.Nationality.Swiss {
		return nil
	}
	var findings []models.Finding
	if m.Permit == nil || m.Permit.Type == "" {
		return append(findings, blocking("Le type de permis est obligatoire.", path("permis.type")))
	}
	p := m.Permit
	if p.Type.RequiresExpiration() {
		switch {
		case p.Expiration == "":
			findings = append(findings, blocking("La date d'expiration du permis est obligatoire.", path("permis.expiration")))
		case IsPastDate(p.Expiration, now) && m.Role.IsTenant():
			// expired B/F on a lease holder blocks outright, for everyone
			// else it only excludes the member from the count
			findings = append(findings, blocking(MsgTenantPermitPast, path("permis.expiration")))
		}
	}
	if p.Type.Recognized() && !m.PermitDoc && !p.RenewalRequested {
		findings = append(findings, blocking("La copie du permis est obligatoire.", path("docPermis")))
	}
	return findings
}

func validateCivilStatus(m models.Member, s models.Snapshot, path func(string) string) []models.Finding {
	var findings []models.Finding
	if m.CivilStatus.RequiresJudgment() && !m.JudgmentDoc && !m.JudgmentLater {
		findings = append(findings, blocking("Le jugement ratifié est obligatoire (ou à fournir plus tard).", path("docJugement")))
	}
	if m.CivilStatus == models.StatusMarie && m.Role.IsTenant() && s.TenantCount() == 1 {
		if m.Marriage == nil || m.Marriage.SpouseLocation == "" {
			findings = append(findings, blocking("Veuillez indiquer où vit votre conjoint·e.", path("mariage.ouVitConjoint")))
		}
		if m.Marriage == nil || !m.Marriage.ProofProvided {
			findings = append(findings, blocking("L'acte de mariage ou une explication écrite est obligatoire.", path("mariage.preuveFournie")))
		}
	}
	return findings
}
