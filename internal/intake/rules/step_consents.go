package rules

import (
	"time"

	"llm-intake/internal/intake/models"
)

// ValidateConsents requires the selfie and the two attestations, plus the
// other-adults consent when the household counts more than one adult. The
// optional email routing never gates.
func ValidateConsents(s models.Snapshot, now time.Time) models.StepResult {
	var findings []models.Finding
	c := s.Consents
	if !c.Selfie {
		findings = append(findings, blocking("Le selfie est obligatoire.", "consents.selfie"))
	}
	if !c.CertExactitude {
		findings = append(findings, blocking("Vous devez certifier l'exactitude des informations.", "consents.certExactitude"))
	}
	if !c.AccesRDU {
		findings = append(findings, blocking("L'autorisation d'accès aux données RDU est obligatoire.", "consents.accesRDU"))
	}
	if len(Classify(s.Members, now).Adults) > 1 && !c.AccordAutresAdultes {
		findings = append(findings, blocking("L'accord des autres adultes du ménage est obligatoire.", "consents.accordAutresAdultes"))
	}
	return result(models.StepConsents, findings)
}
