package models

// Snapshot is the full declared state of one application form. Steps may be
// partially filled; validators treat absent sections as empty, never as
// errors in earlier steps.
type Snapshot struct {
	Type      ApplicationType `json:"type" validate:"required"`
	PreFilter PreFiltering    `json:"preFiltering"`
	Members   []Member        `json:"members" validate:"dive"`
	Housing   Housing         `json:"housing"`
	Finances  []FinanceEntry  `json:"finances" validate:"dive"`
	Youth     *Youth          `json:"youth,omitempty"`
	Consents  Consents        `json:"consents"`
	Meta      Meta            `json:"meta"`
}

// TenantCount returns the number of lease-holding members.
func (s Snapshot) TenantCount() int {
	n := 0
	for _, m := range s.Members {
		if m.Role.IsTenant() {
			n++
		}
	}
	return n
}

// PrimaryTenant returns the index of the titulaire, or -1.
func (s Snapshot) PrimaryTenant() int {
	for i, m := range s.Members {
		if m.Role == RolePrimaryTenant {
			return i
		}
	}
	return -1
}

// FinancesFor returns the finance entries declared for one member.
func (s Snapshot) FinancesFor(memberIndex int) []FinanceEntry {
	var out []FinanceEntry
	for _, f := range s.Finances {
		if f.MemberIndex == memberIndex {
			out = append(out, f)
		}
	}
	return out
}

// PreFiltering holds the eligibility pre-screen answers collected before the
// form proper.
type PreFiltering struct {
	HabiteLausanne       bool `json:"habiteLausanne"`
	HabiteLausanne3Ans   bool `json:"habiteLausanne3Ans"`
	TravailleLausanne    bool `json:"travailleLausanne"`
	TravailleLausanne3Ans bool `json:"travailleLausanne3Ans"`
	// ViaWork marks that eligibility rests on employment in the city rather
	// than residence. It switches the supporting documents requested later.
	ViaWork bool `json:"flagViaWork"`
}

// Member is one person declared in the household.
type Member struct {
	Role        Role        `json:"role" validate:"required"`
	Nom         string      `json:"nom"`
	Prenom      string      `json:"prenom"`
	Gender      Gender      `json:"genre"`
	BirthDate   string      `json:"dateNaissance"` // ISO yyyy-mm-dd
	DueDate     string      `json:"dateTermePrevu,omitempty"`
	CivilStatus CivilStatus `json:"etatCivil"`
	Nationality Nationality `json:"nationalite"`
	Permit      *Permit     `json:"permis,omitempty"`
	Address     *Address    `json:"adresse,omitempty"`
	Marriage    *MarriageInfo `json:"mariage,omitempty"`
	Custody     *Custody    `json:"garde,omitempty"`
	Phone string `json:"telephone,omitempty"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	// Document presence flags. The engine only ever checks presence, the
	// files themselves live in the upload store.
	IdentityDoc   bool `json:"docIdentite,omitempty"`
	PermitDoc     bool `json:"docPermis,omitempty"`
	JudgmentDoc   bool `json:"docJugement,omitempty"`
	JudgmentLater bool `json:"docJugementPlusTard,omitempty"`
	// PregnancyCert marks the thirteen-week pregnancy certificate upload
	// for an unborn child.
	PregnancyCert bool `json:"certGrossesse,omitempty"`
	// Emancipated marks a minor tenant holding an emancipation judgment.
	Emancipated bool `json:"emancipe,omitempty"`
	// DisabilityDegree is the AI invalidity degree, 1..100, when an AI
	// income source is declared for this member.
	DisabilityDegree int `json:"degreInvalidite,omitempty"`
}

// Nationality of a member. Swiss nationals never carry a permit.
type Nationality struct {
	Swiss   bool   `json:"suisse"`
	Country string `json:"pays,omitempty"`
}

// Permit is the residency permit of a non-Swiss member.
type Permit struct {
	Type       PermitType `json:"type"`
	Expiration string     `json:"expiration,omitempty"` // ISO yyyy-mm-dd
	// RenewalRequested marks a permit whose renewal is underway, which
	// substitutes a renewal receipt for the card itself.
	RenewalRequested bool `json:"renouvellementDemande,omitempty"`
}

// Address is where a member lives when outside the future dwelling. Domestic
// and foreign variants share the struct, Foreign switches interpretation.
type Address struct {
	Foreign  bool   `json:"etranger,omitempty"`
	Street   string `json:"rue,omitempty"`
	Zip      string `json:"npa,omitempty"`
	City     string `json:"localite,omitempty"`
	Country  string `json:"pays,omitempty"`
	Commune  string `json:"commune,omitempty"`
}

// MarriageInfo is filled when a married or partnered tenant applies without
// the spouse listed as co-tenant.
type MarriageInfo struct {
	SpouseInHousehold bool   `json:"conjointDansMenage"`
	SpouseLocation    string `json:"ouVitConjoint,omitempty"`
	ProofProvided     bool   `json:"preuveFournie,omitempty"`
}

// Custody describes how a child of a separated applicant lives in the
// household.
type Custody struct {
	Situation CustodySituation `json:"situation"`
	// JudgmentProvided marks the custody ruling or parental agreement upload.
	JudgmentProvided bool `json:"jugementFourni,omitempty"`
}

// Housing is the current dwelling and the motive for the application.
type Housing struct {
	Rooms        float64  `json:"pieces"`
	Rent         int      `json:"loyer"`
	Charges      int      `json:"charges,omitempty"`
	LeaseHolder  bool     `json:"titulaireBail"`
	Motifs       []string `json:"motifs"`
	MotifAutre   string   `json:"motifAutre,omitempty"`
	NoticeGiven  bool     `json:"congeDonne,omitempty"`
	NoticeDoc    bool     `json:"docConge,omitempty"`
}

// FinanceEntry declares one income source for one member. Documents are
// tracked by presence flags, the files themselves live elsewhere.
type FinanceEntry struct {
	MemberIndex int           `json:"memberIndex"`
	Source      FinanceSource `json:"source" validate:"required"`
	// ViaWork mirrors the pre-filter flag at entry level: a salaried source
	// proven through a Lausanne employer needs the employer attestation.
	ViaWork bool `json:"viaFlagWork,omitempty"`
	// DocsProvided marks the source's primary supporting document.
	DocsProvided bool `json:"docsFournis,omitempty"`
	// DocsLater defers the primary document to after submission.
	DocsLater bool `json:"docsPlusTard,omitempty"`
	// EstimatedIncome is the declared monthly amount, informative only.
	EstimatedIncome int `json:"revenuEstime,omitempty"`
	Employers       []Employer `json:"employeurs,omitempty"`
	PensionDirection PensionDirection `json:"sensPension,omitempty"`
}

// Employer is one employment relationship under a salaried source.
type Employer struct {
	Name         string `json:"nom"`
	InLausanne   bool   `json:"aLausanne,omitempty"`
	DocsProvided bool   `json:"docsFournis,omitempty"`
	DocsLater    bool   `json:"docsPlusTard,omitempty"`
}

// Youth is the student/young-applicant section, present only for the
// conditions_etudiantes application type.
type Youth struct {
	// ToutPublic switches the youth building to its open-access mode, which
	// requires a written motive instead of the eligibility matrix.
	ToutPublic   bool   `json:"toutPublic,omitempty"`
	MotifText    string `json:"motifTexte,omitempty"`
	MotifDoc     bool   `json:"motifDocument,omitempty"`
	InFormation  bool   `json:"enFormation,omitempty"`
	FormationDoc bool   `json:"docFormation,omitempty"`
	// FormationCommune is the training location, matched against the COREL
	// list accent-insensitively.
	FormationCommune string `json:"communeFormation,omitempty"`
}

// Consents are the final-step attestations.
type Consents struct {
	Selfie            bool   `json:"selfie"`
	CertExactitude    bool   `json:"certExactitude"`
	AccesRDU          bool   `json:"accesRDU"`
	AccordAutresAdultes bool `json:"accordAutresAdultes,omitempty"`
	Email             string `json:"email,omitempty" validate:"omitempty,email"`
}

// Meta carries non-declarative request context.
type Meta struct {
	Locale string `json:"locale,omitempty"`
	// TestMode relaxes the pre-filter gate for demonstrations. It never
	// bypasses the refusal gate.
	TestMode bool `json:"testMode,omitempty"`
}
