package rules

import (
	"time"

	"llm-intake/internal/intake/models"
)

// StepValidator computes the blocking findings for one wizard step. All
// validators are total: malformed input classifies as missing, never panics.
type StepValidator func(s models.Snapshot, now time.Time) models.StepResult

var stepValidators = map[models.Step]StepValidator{
	models.StepPreFilter: ValidatePreFilter,
	models.StepHousehold: ValidateHousehold,
	models.StepHousing:   ValidateHousing,
	models.StepFinances:  ValidateFinances,
	models.StepYouth:     ValidateYouth,
	models.StepConsents:  ValidateConsents,
}

// ValidateStep runs the validator for one step.
func ValidateStep(step models.Step, s models.Snapshot, now time.Time) models.StepResult {
	v, ok := stepValidators[step]
	if !ok {
		return models.StepResult{Step: step, Valid: true}
	}
	return v(s, now)
}

// ValidateAll runs every step validator in navigation order.
func ValidateAll(s models.Snapshot, now time.Time) []models.StepResult {
	out := make([]models.StepResult, 0, len(models.Steps))
	for _, step := range models.Steps {
		out = append(out, ValidateStep(step, s, now))
	}
	return out
}

func result(step models.Step, findings []models.Finding) models.StepResult {
	valid := true
	for _, f := range findings {
		if f.Severity == models.SeverityBlocking {
			valid = false
			break
		}
	}
	return models.StepResult{Step: step, Valid: valid, Findings: findings}
}

func blocking(msg, field string) models.Finding {
	return models.Finding{Severity: models.SeverityBlocking, Message: msg, Field: field}
}

func warning(msg, field string) models.Finding {
	return models.Finding{Severity: models.SeverityWarning, Message: msg, Field: field}
}
