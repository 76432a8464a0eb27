package rules

import (
	"time"

	"llm-intake/internal/intake/models"
)

// PermitValid is the single authority on whether a member's residency status
// lets them count toward the household. Every other rule that cares about
// permits goes through here.
func PermitValid(m models.Member, now time.Time) bool {
	if m.Nationality.Swiss {
		return true
	}
	if m.Permit == nil || !m.Permit.Type.Recognized() {
		return false
	}
	if m.Permit.Type.RequiresExpiration() {
		if m.Permit.Expiration == "" {
			return false
		}
		if IsPastDate(m.Permit.Expiration, now) {
			return false
		}
	}
	return true
}
