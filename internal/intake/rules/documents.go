package rules

import (
	"fmt"
	"strings"
	"time"

	"llm-intake/internal/intake/models"
)

// permitNoticeWindow is the policy window for the near-expiry permit notice.
const permitNoticeWindow = 60 * 24 * time.Hour

const permitNoticeText = "Les permis B et F arrivant à échéance dans les 60 jours ou déjà échus " +
	"ne permettent pas de compter la personne dans le ménage tant que le renouvellement " +
	"n'a pas été présenté. Le dossier peut être déposé, mais le traitement tiendra compte " +
	"uniquement des permis valables."

// DocumentReport is the outcome of the missing-documents scan.
type DocumentReport struct {
	Missing  []models.MissingDoc
	Deferred []models.DeferredDoc
	Notice   models.PermitNotice
}

// BuildMissingDocs scans the snapshot for absent supporting documents,
// deferred items and the near-expiry permit notice.
func BuildMissingDocs(s models.Snapshot, now time.Time) DocumentReport {
	var r DocumentReport

	for i, m := range s.Members {
		name := memberName(m, i)

		if m.Role == models.RoleUnborn {
			if m.DueDate == "" {
				r.Missing = append(r.Missing, models.MissingDoc{
					Label: fmt.Sprintf("Date du terme prévu pour %s", name), MemberIndex: i, Blocking: true,
				})
			}
			if !m.PregnancyCert {
				r.Missing = append(r.Missing, models.MissingDoc{
					Label: fmt.Sprintf("Certificat de grossesse pour %s", name), MemberIndex: i,
				})
			}
			continue
		}

		if m.Role != models.RoleChild && !m.IdentityDoc {
			r.Missing = append(r.Missing, models.MissingDoc{
				Label: fmt.Sprintf("Pièce d'identité de %s", name), MemberIndex: i, Blocking: true,
			})
		}
		if p := m.Permit; p != nil && !m.Nationality.Swiss {
			if p.Type.Recognized() && !m.PermitDoc && !p.RenewalRequested {
				r.Missing = append(r.Missing, models.MissingDoc{
					Label: fmt.Sprintf("Copie du permis de %s", name), MemberIndex: i, Blocking: true,
				})
			}
		}
		if m.CivilStatus.RequiresJudgment() && !m.JudgmentDoc {
			if m.JudgmentLater {
				r.Deferred = append(r.Deferred, models.DeferredDoc{
					MemberIndex: i,
					Label:       fmt.Sprintf("Jugement ratifié de %s", name),
				})
			} else {
				r.Missing = append(r.Missing, models.MissingDoc{
					Label: fmt.Sprintf("Jugement ratifié de %s", name), MemberIndex: i, Blocking: true,
				})
			}
		}
		if m.CivilStatus == models.StatusMarie && m.Role.IsTenant() && s.TenantCount() == 1 {
			if m.Marriage == nil || !m.Marriage.ProofProvided {
				r.Missing = append(r.Missing, models.MissingDoc{
					Label: fmt.Sprintf("Acte de mariage ou explication écrite pour %s", name), MemberIndex: i, Blocking: true,
				})
			}
		}
	}

	r.Deferred = append(r.Deferred, deferredFinances(s)...)
	r.Missing = append(r.Missing, soloMaleCustodyGaps(s, now)...)
	r.Notice = permitNotice(s, now)
	return r
}

// deferredFinances collects "attach later" finance documents, one item per
// (member, source). An employer-level deferral never duplicates an entry
// whose main flag is already set.
func deferredFinances(s models.Snapshot) []models.DeferredDoc {
	seen := make(map[string]bool)
	var out []models.DeferredDoc
	for _, f := range s.Finances {
		if f.Source == models.SourceSansRevenu {
			continue
		}
		later := f.DocsLater
		if !later && !f.DocsProvided {
			for _, e := range f.Employers {
				if e.DocsLater {
					later = true
					break
				}
			}
		}
		if !later {
			continue
		}
		key := fmt.Sprintf("%d/%s", f.MemberIndex, f.Source)
		if seen[key] {
			continue
		}
		seen[key] = true
		docs := RequiredDocs(f.Source, f.ViaWork || s.PreFilter.ViaWork)
		out = append(out, models.DeferredDoc{
			MemberIndex: f.MemberIndex,
			Source:      f.Source,
			Label:       fmt.Sprintf("%s : %s", SourceLabel[f.Source], strings.Join(docs, ", ")),
		})
	}
	return out
}

// soloMaleCustodyGaps reports the children custodyExcludedChildren drops
// from the room allowance, so the recap explains why they do not count.
func soloMaleCustodyGaps(s models.Snapshot, now time.Time) []models.MissingDoc {
	excluded := custodyExcludedChildren(s.Members, Classify(s.Members, now))
	var out []models.MissingDoc
	for i, m := range s.Members {
		if !excluded[i] {
			continue
		}
		if m.Custody == nil {
			out = append(out, models.MissingDoc{
				Label:       fmt.Sprintf("Situation de garde à préciser pour %s", memberName(m, i)),
				MemberIndex: i,
			})
			continue
		}
		out = append(out, models.MissingDoc{
			Label:       fmt.Sprintf("Jugement de garde ou convention parentale pour %s", memberName(m, i)),
			MemberIndex: i,
		})
	}
	return out
}

// permitNotice builds the near-expiry warning: one line per non-Swiss member
// whose permit is unrecognized, missing its expiration, already expired or
// expiring within sixty days.
func permitNotice(s models.Snapshot, now time.Time) models.PermitNotice {
	var lines []string
	for i, m := range s.Members {
		if m.Nationality.Swiss {
			continue
		}
		name := memberName(m, i)
		switch {
		case m.Permit == nil || !m.Permit.Type.Recognized():
			lines = append(lines, fmt.Sprintf("%s : permis non reconnu pour l'octroi d'un logement.", name))
		case m.Permit.Type.RequiresExpiration() && m.Permit.Expiration == "":
			lines = append(lines, fmt.Sprintf("%s : date d'expiration du permis %s manquante.", name, m.Permit.Type))
		case m.Permit.Type.RequiresExpiration() && IsPastDate(m.Permit.Expiration, now):
			lines = append(lines, fmt.Sprintf("%s : permis %s échu le %s.", name, m.Permit.Type, m.Permit.Expiration))
		case m.Permit.Type.RequiresExpiration() && ExpiresWithin(m.Permit.Expiration, permitNoticeWindow, now):
			lines = append(lines, fmt.Sprintf("%s : permis %s arrive à échéance le %s.", name, m.Permit.Type, m.Permit.Expiration))
		}
	}
	if len(lines) == 0 {
		return models.PermitNotice{}
	}
	return models.PermitNotice{Notice: true, Lines: append([]string{permitNoticeText}, lines...)}
}
