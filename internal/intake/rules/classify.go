package rules

import (
	"time"

	"llm-intake/internal/intake/models"
)

// adultAge is the dependency threshold for the room scale. The young-tenant
// bonus uses a separate cutoff, see youngTenantAge.
const adultAge = 18

// Classification partitions the declared members for room-allowance
// purposes. Indexes refer back to the snapshot's member slice.
type Classification struct {
	Adults           []int
	Children         []int
	ExcludedByPermit []int
	ExcludedUnborn   []int
}

// Classify partitions members into adults, dependent children and excluded
// members. Permit-invalid members and uncertified unborn children stay
// visible in the record but never count.
func Classify(members []models.Member, now time.Time) Classification {
	var c Classification
	for i, m := range members {
		if !m.Nationality.Swiss && !PermitValid(m, now) {
			c.ExcludedByPermit = append(c.ExcludedByPermit, i)
			continue
		}
		if m.Role == models.RoleUnborn {
			if m.PregnancyCert {
				c.Children = append(c.Children, i)
			} else {
				c.ExcludedUnborn = append(c.ExcludedUnborn, i)
			}
			continue
		}
		age := Age(m.BirthDate, now)
		switch {
		case age >= adultAge:
			c.Adults = append(c.Adults, i)
		case age < 0 && m.Role.IsTenant():
			// a tenant without a birth date is presumed of age
			c.Adults = append(c.Adults, i)
		case age < 0:
			// unknown birth date on a non-tenant counts nowhere; the
			// household validator reports the missing field
		default:
			c.Children = append(c.Children, i)
		}
	}
	return c
}
