package rules

import (
	"fmt"
	"time"

	"llm-intake/internal/intake/models"
)

// Refusal codes carried on the recap and the submission gate.
const (
	RefusalMinorTenant   = "minor_tenant"
	RefusalTenantPermit  = "tenant_permit_invalid"
	RefusalNoIncomeData  = "no_income_declared"
	RefusalAllSansRevenu = "all_adults_sans_revenu"
)

// RunCriticalValidations is the final pre-submission gate. Any refusal
// blocks submission. Field errors are reported alongside but do not gate.
func RunCriticalValidations(s models.Snapshot, now time.Time) models.CriticalResult {
	var out models.CriticalResult
	c := Classify(s.Members, now)

	if ti := s.PrimaryTenant(); ti >= 0 {
		t := s.Members[ti]
		if age := Age(t.BirthDate, now); age >= 0 && age < adultAge && !t.Emancipated {
			out.Refusals = append(out.Refusals, models.Refusal{
				Code: RefusalMinorTenant, Message: MsgMinorTenant,
			})
		}
		if !PermitValid(t, now) {
			out.Refusals = append(out.Refusals, models.Refusal{
				Code: RefusalTenantPermit, Message: MsgTenantPermitPast,
			})
		}
	}

	if len(c.Adults) > 0 {
		declared := false
		for _, i := range c.Adults {
			if len(s.FinancesFor(i)) > 0 {
				declared = true
				break
			}
		}
		switch {
		case !declared:
			out.Refusals = append(out.Refusals, models.Refusal{
				Code: RefusalNoIncomeData, Message: "Aucune source de revenu n'a été déclarée.",
			})
		case AllAdultsWithoutIncome(s, c):
			out.Refusals = append(out.Refusals, models.Refusal{
				Code: RefusalAllSansRevenu, Message: MsgAllAdultsNoIncome,
			})
		}
	}

	if out.Refused() {
		out.Suggestions = BuildRefusalSuggestions()
	}
	return out
}

// BuildRefusalSuggestions lists the alternative housing schemes surfaced to
// a refused applicant.
func BuildRefusalSuggestions() []models.Suggestion {
	return []models.Suggestion{
		{Code: "lla", Label: "Logements à loyer abordable (LLA)"},
		{Code: "le", Label: "Logements étudiants (LE)"},
		{Code: "ls", Label: "Logements pour seniors (LS)"},
		{Code: "loyer_libre", Label: "Marché du loyer libre"},
	}
}

// Summarize derives the head-count view and the room allowance.
func Summarize(s models.Snapshot, now time.Time) models.HouseholdSummary {
	c := Classify(s.Members, now)
	sum := models.HouseholdSummary{
		Adults:   len(c.Adults),
		Children: len(c.Children),
		MaxRooms: MaxRooms(s.Members, now),
	}
	for _, i := range c.Children {
		if s.Members[i].Role == models.RoleUnborn {
			sum.Unborn++
		}
	}
	sum.Total = sum.Adults + sum.Children
	sum.YoungSoloApplicant = sum.Adults == 1 && sum.Children == 0 &&
		youngSoloTenant(s.Members, c, now)
	return sum
}

// fieldError is reserved for malformed values reported on the recap without
// gating submission.
func fieldError(path, msg string) models.Finding {
	return models.Finding{Severity: models.SeverityWarning, Message: msg, Field: path}
}

// FieldErrors scans for out-of-range values. Reported on the recap, never
// gating.
func FieldErrors(s models.Snapshot) []models.Finding {
	var out []models.Finding
	for i, m := range s.Members {
		if m.DisabilityDegree != 0 && (m.DisabilityDegree < 1 || m.DisabilityDegree > 100) {
			out = append(out, fieldError(
				fmt.Sprintf("members[%d].degreInvalidite", i),
				"Le degré d'invalidité doit être compris entre 1 et 100."))
		}
	}
	if s.Housing.Rent < 0 {
		out = append(out, fieldError("housing.loyer", "Le loyer doit être un montant positif ou nul."))
	}
	return out
}

// CanSubmit reports whether the snapshot passes every gate: no refusal and
// no blocking finding or document anywhere.
func CanSubmit(s models.Snapshot, now time.Time) bool {
	if RunCriticalValidations(s, now).Refused() {
		return false
	}
	for _, r := range ValidateAll(s, now) {
		if !r.Valid {
			return false
		}
	}
	for _, d := range BuildMissingDocs(s, now).Missing {
		if d.Blocking {
			return false
		}
	}
	return true
}
