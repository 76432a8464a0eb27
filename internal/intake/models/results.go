package models

import "time"

// Severity grades a validation finding. Blocking findings stop navigation
// past the step, warnings and infos surface without gating.
type Severity string

const (
	SeverityBlocking Severity = "blocking"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Finding is one validation message attached to a step.
type Finding struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	// Field is a dotted path into the snapshot, e.g. "members[2].nom".
	// Empty for household-level findings.
	Field string `json:"field,omitempty"`
}

// StepResult is the outcome of validating one step.
type StepResult struct {
	Step     Step      `json:"step"`
	Valid    bool      `json:"valid"`
	Findings []Finding `json:"findings,omitempty"`
}

// Blocking filters the blocking findings.
func (r StepResult) Blocking() []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == SeverityBlocking {
			out = append(out, f)
		}
	}
	return out
}

// HouseholdSummary is the derived head-count view of the declared household.
type HouseholdSummary struct {
	Adults       int     `json:"adults"`
	Children     int     `json:"children"`
	Unborn       int     `json:"unborn"`
	Total        int     `json:"total"`
	MaxRooms     float64 `json:"maxRooms"`
	// YoungSoloApplicant marks a single adult under 25 with no children,
	// which caps the room scale at 1.5.
	YoungSoloApplicant bool `json:"youngSoloApplicant,omitempty"`
}

// MissingDoc is one outstanding supporting document.
type MissingDoc struct {
	Label string `json:"label"`
	// MemberIndex is the member the document belongs to, -1 for
	// household-level documents.
	MemberIndex int `json:"memberIndex"`
	// Blocking documents prevent submission, deferred ones are accepted
	// after it.
	Blocking bool `json:"blocking"`
}

// DeferredDoc is a document the applicant chose to supply after submission.
// Deduplicated by member and source.
type DeferredDoc struct {
	MemberIndex int           `json:"memberIndex"`
	Source      FinanceSource `json:"source"`
	Label       string        `json:"label"`
}

// PermitNotice is the short-validity warning produced when a tenant permit
// expires within sixty days.
type PermitNotice struct {
	Notice bool     `json:"notice"`
	Lines  []string `json:"lines,omitempty"`
}

// Refusal is one ground on which the application is refused outright.
type Refusal struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Suggestion points a refused applicant at an alternative scheme.
type Suggestion struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// CriticalResult is the outcome of the pre-submission refusal gate.
type CriticalResult struct {
	Refusals    []Refusal    `json:"refusals,omitempty"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}

// Refused reports whether the gate blocks submission.
func (c CriticalResult) Refused() bool { return len(c.Refusals) > 0 }

// Recap is the full pre-submission review: step validations, household
// summary, taxation and document requirements, refusal gate.
type Recap struct {
	Steps     []StepResult        `json:"steps"`
	Household HouseholdSummary    `json:"household"`
	Taxation  []TaxationLine      `json:"taxation,omitempty"`
	Missing   []MissingDoc        `json:"missingDocs,omitempty"`
	Deferred  []DeferredDoc       `json:"deferredDocs,omitempty"`
	Permit    PermitNotice        `json:"permitNotice"`
	Critical  CriticalResult      `json:"critical"`
	// FieldErrors carry out-of-range values surfaced for correction. They
	// never gate submission.
	FieldErrors []Finding `json:"fieldErrors,omitempty"`
	CanSubmit   bool      `json:"canSubmit"`
}

// TaxationLine is the tax decision requirement for one adult member.
type TaxationLine struct {
	MemberIndex int                 `json:"memberIndex"`
	Requirement TaxationRequirement `json:"requirement"`
	Reason      string              `json:"reason,omitempty"`
}

// ClientInfo is the submitting client's environment, recorded on the receipt.
type ClientInfo struct {
	Browser  string `json:"browser,omitempty"`
	OS       string `json:"os,omitempty"`
	Mobile   bool   `json:"mobile,omitempty"`
	RemoteIP string `json:"remoteIp,omitempty"`
}

// Receipt confirms a successful submission.
type Receipt struct {
	Reference   string       `json:"reference"`
	SubmittedAt time.Time    `json:"submittedAt"`
	Deferred    []DeferredDoc `json:"deferredDocs,omitempty"`
	Client      ClientInfo   `json:"client,omitempty"`
}

// Application is one stored submission.
type Application struct {
	ID          string    `json:"id"`
	Reference   string    `json:"reference"`
	Snapshot    Snapshot  `json:"snapshot"`
	Recap       Recap     `json:"recap"`
	Receipt     Receipt   `json:"receipt"`
	SubmittedAt time.Time `json:"submittedAt"`
}
