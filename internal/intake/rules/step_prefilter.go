package rules

import (
	"time"

	"llm-intake/internal/intake/models"
)

// ValidatePreFilter gates first-time applications on the three-year
// residency-or-work requirement. Other application types skip the step.
func ValidatePreFilter(s models.Snapshot, _ time.Time) models.StepResult {
	if s.Type != models.TypeInscription || s.Meta.TestMode {
		return result(models.StepPreFilter, nil)
	}
	p := s.PreFilter
	if p.HabiteLausanne3Ans || p.TravailleLausanne3Ans {
		return result(models.StepPreFilter, nil)
	}
	findings := []models.Finding{
		blocking("Vous devez habiter ou travailler à Lausanne depuis au moins 3 ans.", "preFiltering"),
	}
	return result(models.StepPreFilter, findings)
}
