package rules

import (
	"fmt"
	"strings"
	"time"

	"llm-intake/internal/intake/models"
)

// MsgAllAdultsNoIncome blocks the finances step and later grounds a refusal.
const MsgAllAdultsNoIncome = "Tous les adultes sont sans revenu déclaré."

// ValidateFinances requires at least one income source per adult, refuses a
// household where every adult declares none, and checks supporting-document
// state per entry.
func ValidateFinances(s models.Snapshot, now time.Time) models.StepResult {
	var findings []models.Finding
	c := Classify(s.Members, now)

	if len(c.Adults) > 0 && AllAdultsWithoutIncome(s, c) {
		findings = append(findings, blocking(MsgAllAdultsNoIncome, "finances"))
	}

	for _, i := range c.Adults {
		if len(s.FinancesFor(i)) == 0 {
			findings = append(findings, blocking(
				fmt.Sprintf("Au moins une source de revenu est obligatoire pour %s.", memberName(s.Members[i], i)),
				fmt.Sprintf("finances[%d]", i)))
		}
	}

	for j, f := range s.Finances {
		if f.Source == models.SourceSansRevenu {
			continue
		}
		if entryDocumented(f) {
			continue
		}
		docs := RequiredDocs(f.Source, f.ViaWork || s.PreFilter.ViaWork)
		findings = append(findings, blocking(
			fmt.Sprintf("Justificatifs manquants pour %s (%s) : %s.",
				memberName(memberAt(s, f.MemberIndex), f.MemberIndex),
				SourceLabel[f.Source],
				strings.Join(docs, ", ")),
			fmt.Sprintf("finances[%d].docs", j)))
	}

	for j, f := range s.Finances {
		if f.Source == models.SourceAI {
			m := memberAt(s, f.MemberIndex)
			if m.DisabilityDegree < 1 || m.DisabilityDegree > 100 {
				findings = append(findings, blocking(
					"Le degré d'invalidité doit être compris entre 1 et 100.",
					fmt.Sprintf("finances[%d].degreInvalidite", j)))
			}
		}
	}

	return result(models.StepFinances, findings)
}

// AllAdultsWithoutIncome reports whether every classified adult's entry set
// reduces to exactly the no-income source.
func AllAdultsWithoutIncome(s models.Snapshot, c Classification) bool {
	for _, i := range c.Adults {
		entries := s.FinancesFor(i)
		if len(entries) == 0 {
			return false // undeclared, not declared-without-income
		}
		for _, f := range entries {
			if f.Source != models.SourceSansRevenu {
				return false
			}
		}
	}
	return len(c.Adults) > 0
}

// entryDocumented reports whether an entry carries a document, defers it, or
// for salaried entries is covered at employer level.
func entryDocumented(f models.FinanceEntry) bool {
	if f.DocsProvided || f.DocsLater {
		return true
	}
	if f.Source != models.SourceSalarie {
		return false
	}
	for _, e := range f.Employers {
		if e.DocsProvided || e.DocsLater {
			return true
		}
	}
	return false
}

func memberAt(s models.Snapshot, i int) models.Member {
	if i < 0 || i >= len(s.Members) {
		return models.Member{}
	}
	return s.Members[i]
}

func memberName(m models.Member, i int) string {
	name := strings.TrimSpace(m.Prenom + " " + m.Nom)
	if name == "" {
		return fmt.Sprintf("le membre %d", i+1)
	}
	return name
}
