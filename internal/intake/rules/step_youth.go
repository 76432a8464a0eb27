package rules

import (
	"time"

	"llm-intake/internal/intake/models"
)

// ValidateYouth applies only to the student-conditions application type with
// a primary tenant aged 18 to 24. The step has two modes: the regional youth
// track with its closed commune list, and the open-access fallback which
// trades the matrix for a written motive with a third-party document.
func ValidateYouth(s models.Snapshot, now time.Time) models.StepResult {
	if s.Type != models.TypeEtudiant {
		return result(models.StepYouth, nil)
	}
	ti := s.PrimaryTenant()
	if ti >= 0 {
		age := Age(s.Members[ti].BirthDate, now)
		if age >= 0 && (age < adultAge || age >= youngTenantAge) {
			return result(models.StepYouth, nil)
		}
	}
	if s.Youth == nil {
		return result(models.StepYouth, []models.Finding{
			blocking("Les informations jeunes/étudiant·e·s sont obligatoires.", "youth"),
		})
	}

	var findings []models.Finding
	y := s.Youth

	if y.ToutPublic {
		if y.MotifText == "" {
			findings = append(findings, blocking("Veuillez décrire le motif impérieux.", "youth.motifTexte"))
		}
		if !y.MotifDoc {
			findings = append(findings, blocking("Un justificatif établi par un tiers est obligatoire.", "youth.motifDocument"))
		}
		return result(models.StepYouth, findings)
	}

	if y.FormationCommune == "" {
		findings = append(findings, blocking("Le lieu de formation est obligatoire.", "youth.communeFormation"))
	} else if !IsCorelCommune(y.FormationCommune) {
		findings = append(findings, blocking("Lieu de formation hors COREL : non éligible aux conditions étudiantes.", "youth.communeFormation"))
	}
	if !y.InFormation {
		findings = append(findings, blocking("Vous devez être en formation ou au bénéfice d'une bourse.", "youth.enFormation"))
	} else if !y.FormationDoc {
		findings = append(findings, blocking("L'attestation de formation est obligatoire.", "youth.docFormation"))
	}
	return result(models.StepYouth, findings)
}
