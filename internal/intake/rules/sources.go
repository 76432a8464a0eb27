package rules

import "llm-intake/internal/intake/models"

// SourceLabel maps a finance source to its display label.
var SourceLabel = map[models.FinanceSource]string{
	models.SourceSalarie:       "Salarié·e",
	models.SourceIndependant:   "Indépendant·e",
	models.SourceApprentissage: "Apprentissage",
	models.SourceAI:            "Rente AI",
	models.SourceAVS:           "Rente AVS",
	models.SourcePilier2:       "Rente 2e pilier",
	models.SourceRentePont:     "Rente-pont",
	models.SourceChomage:       "Chômage",
	models.SourcePCFamille:     "PC Familles",
	models.SourcePC:            "Prestations complémentaires",
	models.SourceRI:            "Revenu d'insertion (RI)",
	models.SourceEVAM:          "EVAM",
	models.SourcePension:       "Pension alimentaire",
	models.SourceFormation:     "Revenu de formation",
	models.SourceBourse:        "Bourse d'études",
	models.SourceSansRevenu:    "Sans revenu",
	models.SourceAutres:        "Autres revenus",
}

// RequiredDocs returns the fixed supporting-document list expected for a
// source. viaWork adds the three-year salary certificates required on the
// employment-based eligibility path.
func RequiredDocs(source models.FinanceSource, viaWork bool) []string {
	switch source {
	case models.SourceSalarie:
		docs := []string{"Contrat de travail", "6 dernières fiches de salaire"}
		if viaWork {
			docs = append(docs, "Certificats de salaire des 3 dernières années")
		}
		return docs
	case models.SourceIndependant:
		docs := []string{"Dernière taxation fiscale", "Bilan et compte de résultat"}
		if viaWork {
			docs = append(docs, "Taxations fiscales des 3 dernières années")
		}
		return docs
	case models.SourceApprentissage:
		return []string{"Contrat d'apprentissage", "Dernière fiche de salaire"}
	case models.SourceAI:
		return []string{"Décision de rente AI", "Attestation du degré d'invalidité"}
	case models.SourceAVS:
		return []string{"Décision de rente AVS"}
	case models.SourcePilier2:
		return []string{"Attestation de rente du 2e pilier"}
	case models.SourceRentePont:
		return []string{"Décision de rente-pont"}
	case models.SourceChomage:
		return []string{"Décompte de chômage le plus récent"}
	case models.SourcePCFamille:
		return []string{"Décision PC Familles"}
	case models.SourcePC:
		return []string{"Décision de prestations complémentaires"}
	case models.SourceRI:
		return []string{"Dernier budget RI"}
	case models.SourceEVAM:
		return []string{"Attestation EVAM"}
	case models.SourcePension:
		return []string{"Jugement ou convention fixant la pension"}
	case models.SourceFormation:
		return []string{"Attestation de revenu de formation"}
	case models.SourceBourse:
		return []string{"Décision d'octroi de bourse"}
	case models.SourceAutres:
		return []string{"Justificatif du revenu déclaré"}
	}
	return nil
}
