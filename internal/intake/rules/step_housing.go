package rules

import (
	"time"

	"llm-intake/internal/intake/models"
)

// ValidateHousing checks the current-dwelling step: room count, rent and at
// least one motive for the request.
func ValidateHousing(s models.Snapshot, _ time.Time) models.StepResult {
	var findings []models.Finding
	h := s.Housing
	if h.Rooms <= 0 {
		findings = append(findings, blocking("Le nombre de pièces est obligatoire.", "housing.pieces"))
	}
	if h.Rent < 0 {
		findings = append(findings, blocking("Le loyer doit être un montant positif ou nul.", "housing.loyer"))
	}
	if len(h.Motifs) == 0 {
		findings = append(findings, blocking("Au moins un motif de la demande est obligatoire.", "housing.motifs"))
	}
	for _, motif := range h.Motifs {
		if motif == "autre" && h.MotifAutre == "" {
			findings = append(findings, blocking("Veuillez préciser le motif.", "housing.motifAutre"))
		}
	}
	return result(models.StepHousing, findings)
}
