package rules

import (
	"time"

	"llm-intake/internal/intake/models"
	strutil "llm-intake/pkg/string"
)

// TaxationFor classifies whether an adult must supply a tax decision. The
// matrix follows the cantonal practice: only Swiss nationals and C permits
// produce the decision, when taxed outside the canton, optionally when
// taxed in the canton outside the city, and nothing when already taxed in
// Lausanne. Every other non-Swiss member is taxed at source and has
// nothing to produce.
func TaxationFor(m models.Member) (models.TaxationRequirement, string) {
	if !m.Nationality.Swiss {
		if m.Permit == nil || m.Permit.Type != models.PermitC {
			return models.TaxationNone, "Imposition à la source, aucune décision à fournir."
		}
	}
	if m.Address == nil || m.Address.Foreign {
		return models.TaxationRequired, "Dernière décision de taxation obligatoire."
	}
	commune := m.Address.Commune
	switch {
	case equalFold(commune, "Lausanne"):
		return models.TaxationNone, "Taxation lausannoise, accessible via le RDU."
	case inCantonVaud(m.Address):
		return models.TaxationOptional, "Décision de taxation vaudoise souhaitée si disponible."
	default:
		return models.TaxationRequired, "Dernière décision de taxation obligatoire."
	}
}

// TaxationLines computes the taxation requirement per classified adult.
func TaxationLines(s models.Snapshot, now time.Time) []models.TaxationLine {
	c := Classify(s.Members, now)
	out := make([]models.TaxationLine, 0, len(c.Adults))
	for _, i := range c.Adults {
		req, reason := TaxationFor(s.Members[i])
		out = append(out, models.TaxationLine{MemberIndex: i, Requirement: req, Reason: reason})
	}
	return out
}

// Vaud postal codes run 1000 to 1999, with a handful of exceptions the form
// does not need to distinguish.
func inCantonVaud(a *models.Address) bool {
	if a == nil || len(a.Zip) != 4 {
		return false
	}
	return a.Zip[0] == '1'
}

func equalFold(a, b string) bool {
	return strutil.FoldAccents(a) == strutil.FoldAccents(b)
}
