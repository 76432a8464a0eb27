package models

import "fmt"

// ApplicationType is the kind of request the household is filing.
type ApplicationType string

const (
	TypeInscription    ApplicationType = "inscription"
	TypeControle       ApplicationType = "controle"
	TypeRenouvellement ApplicationType = "renouvellement"
	TypeMiseAJour      ApplicationType = "mise_a_jour"
	TypeEtudiant       ApplicationType = "conditions_etudiantes"
)

func (t ApplicationType) IsValid() bool {
	switch t {
	case TypeInscription, TypeControle, TypeRenouvellement, TypeMiseAJour, TypeEtudiant:
		return true
	}
	return false
}

// Role positions a member inside the household. Roles materially change which
// fields are required: an unborn child has a due date instead of a birth date,
// tenants carry the lease responsibility.
type Role string

const (
	RolePrimaryTenant Role = "titulaire"
	RoleCoTenant      Role = "co_titulaire"
	RoleChild         Role = "enfant"
	RoleOther         Role = "autre"
	RoleUnborn        Role = "enfant_a_naitre"
)

func (r Role) IsValid() bool {
	switch r {
	case RolePrimaryTenant, RoleCoTenant, RoleChild, RoleOther, RoleUnborn:
		return true
	}
	return false
}

// IsTenant reports whether the role carries lease responsibility.
func (r Role) IsTenant() bool {
	return r == RolePrimaryTenant || r == RoleCoTenant
}

// PermitType is the residency permit category of a non-Swiss member.
type PermitType string

const (
	PermitC    PermitType = "C"
	PermitB    PermitType = "B"
	PermitF    PermitType = "F"
	PermitNone PermitType = "aucun"
	PermitAutre PermitType = "autre"
)

// Recognized reports whether the permit category counts toward the household
// under the governing regulation. Anything outside C/B/F never counts.
func (p PermitType) Recognized() bool {
	return p == PermitC || p == PermitB || p == PermitF
}

// RequiresExpiration reports whether the permit category must carry a
// non-expired expiration date to be usable. C permits are open-ended.
func (p PermitType) RequiresExpiration() bool {
	return p == PermitB || p == PermitF
}

// CivilStatus of an adult member.
type CivilStatus string

const (
	StatusCelibataire        CivilStatus = "celibataire"
	StatusMarie              CivilStatus = "marie"
	StatusDivorce            CivilStatus = "divorce"
	StatusSepare             CivilStatus = "separe"
	StatusPartenariatDissous CivilStatus = "partenariat_dissous"
	StatusVeuf               CivilStatus = "veuf"
	StatusUnionLibre         CivilStatus = "union_libre"
)

// RequiresJudgment reports whether the status needs a ratified court judgment
// as supporting document.
func (c CivilStatus) RequiresJudgment() bool {
	return c == StatusDivorce || c == StatusSepare || c == StatusPartenariatDissous
}

// Gender as declared on the form.
type Gender string

const (
	GenderFemale Gender = "femme"
	GenderMale   Gender = "homme"
	GenderOther  Gender = "autre"
)

// CustodySituation marks how a child of a solo applicant lives in the
// household. Visitation children are not resident and do not count toward the
// base room scale.
type CustodySituation string

const (
	CustodyShared     CustodySituation = "garde_partagee"
	CustodyVisitation CustodySituation = "droit_de_visite"
)

// PensionDirection distinguishes alimony received from alimony paid.
type PensionDirection string

const (
	PensionReceived PensionDirection = "recue"
	PensionPaid     PensionDirection = "versee"
)

// FinanceSource is a closed enum of income source categories. No monetary
// amount is modelled, only the presence of a source and its supporting
// document state.
type FinanceSource string

const (
	SourceSalarie      FinanceSource = "salarie"
	SourceIndependant  FinanceSource = "independant"
	SourcePCFamille    FinanceSource = "pcfamille"
	SourceAI           FinanceSource = "ai"
	SourceAVS          FinanceSource = "avs"
	SourcePilier2      FinanceSource = "pilier2"
	SourcePC           FinanceSource = "pc"
	SourceRI           FinanceSource = "ri"
	SourceEVAM         FinanceSource = "evam"
	SourceChomage      FinanceSource = "chomage"
	SourcePension      FinanceSource = "pension"
	SourceFormation    FinanceSource = "formation"
	SourceBourse       FinanceSource = "bourse"
	SourceApprentissage FinanceSource = "apprentissage"
	SourceRentePont    FinanceSource = "rente_pont"
	SourceAutres       FinanceSource = "autres"
	SourceSansRevenu   FinanceSource = "sans_revenu"
)

// FinanceSources lists every valid source, in display order.
var FinanceSources = []FinanceSource{
	SourceSalarie, SourceIndependant, SourceApprentissage,
	SourceAI, SourceAVS, SourcePilier2, SourceRentePont, SourceChomage,
	SourcePCFamille, SourcePC, SourceRI, SourceEVAM,
	SourcePension,
	SourceFormation, SourceBourse,
	SourceSansRevenu, SourceAutres,
}

func (f FinanceSource) IsValid() bool {
	for _, s := range FinanceSources {
		if s == f {
			return true
		}
	}
	return false
}

// Step identifies one wizard step of the intake form.
type Step string

const (
	StepPreFilter Step = "prefilter"
	StepHousehold Step = "household"
	StepHousing   Step = "housing"
	StepFinances  Step = "finances"
	StepYouth     Step = "youth"
	StepConsents  Step = "consents"
)

// Steps lists every wizard step in navigation order.
var Steps = []Step{StepPreFilter, StepHousehold, StepHousing, StepFinances, StepYouth, StepConsents}

// ParseStep validates a raw step name coming from the URL.
func ParseStep(raw string) (Step, error) {
	for _, s := range Steps {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown step: %q", raw)
}

// TaxationRequirement classifies whether a tax decision document must be
// requested from the applicant.
type TaxationRequirement string

const (
	TaxationRequired TaxationRequirement = "required"
	TaxationOptional TaxationRequirement = "optional"
	TaxationNone     TaxationRequirement = "none"
)
