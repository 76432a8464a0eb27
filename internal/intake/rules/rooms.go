package rules

import (
	"time"

	"llm-intake/internal/intake/models"
)

// youngTenantAge caps a solo tenant under this age at the smallest unit.
const youngTenantAge = 25

// defaultRooms applies to any household shape outside the allocation table.
const defaultRooms = 2.5

// MaxRooms maps the classified household to the maximum allowed room count
// on the municipal half-room scale. The table is policy, reproduce exactly.
func MaxRooms(members []models.Member, now time.Time) float64 {
	c := Classify(members, now)
	excluded := custodyExcludedChildren(members, c)

	adults := len(c.Adults)
	children := 0
	visitation := 0
	sharedCustody := false
	for _, i := range c.Children {
		if excluded[i] {
			continue
		}
		m := members[i]
		if m.Role == models.RoleChild && m.Custody != nil {
			switch m.Custody.Situation {
			case models.CustodyVisitation:
				visitation++
				continue // not resident, excluded from the base count
			case models.CustodyShared:
				sharedCustody = true
			}
		}
		children++
	}
	// Policy floor: two or more visitation children, or any shared-custody
	// child, count as one resident child. Not additive.
	if children == 0 && (visitation >= 2 || sharedCustody) {
		children = 1
	}

	switch adults {
	case 1:
		switch {
		case children == 0:
			if youngSoloTenant(members, c, now) {
				return 1.5
			}
			return defaultRooms
		case children == 1:
			return 3.5
		case children == 2:
			return 4.5
		default:
			return 5.5
		}
	case 2:
		switch {
		case children <= 1:
			return 3.5
		case children == 2:
			return 4.5
		default:
			return 5.5
		}
	}
	return defaultRooms
}

// custodyExcludedChildren flags children of a lone unmarried male tenant
// whose custody situation is undeclared or undocumented. They surface as
// warnings in the document scan and never count toward the room allowance
// until the ruling is provided.
func custodyExcludedChildren(members []models.Member, c Classification) map[int]bool {
	ti, tenants := -1, 0
	for i, m := range members {
		if m.Role == models.RolePrimaryTenant && ti < 0 {
			ti = i
		}
		if m.Role.IsTenant() {
			tenants++
		}
	}
	if ti < 0 || tenants != 1 || len(c.Adults) != 1 {
		return nil
	}
	t := members[ti]
	if t.Gender != models.GenderMale || t.CivilStatus == models.StatusMarie {
		return nil
	}
	var out map[int]bool
	for i, m := range members {
		if m.Role != models.RoleChild {
			continue
		}
		if m.Custody == nil || !m.Custody.JudgmentProvided {
			if out == nil {
				out = make(map[int]bool)
			}
			out[i] = true
		}
	}
	return out
}

func youngSoloTenant(members []models.Member, c Classification, now time.Time) bool {
	for _, i := range c.Adults {
		if members[i].Role != models.RolePrimaryTenant {
			continue
		}
		age := Age(members[i].BirthDate, now)
		return age >= 0 && age < youngTenantAge
	}
	return false
}
