package rules

import "time"

const isoDate = "2006-01-02"

// ParseISODate parses a yyyy-mm-dd string. Malformed input degrades to a
// zero time and false, never an error: callers treat it as missing.
func ParseISODate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(isoDate, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Age returns full years between the birth date and now, decremented by one
// when the birthday has not yet occurred this year. Returns -1 when the
// input is missing or malformed so callers can distinguish unknown from
// newborn.
func Age(birthDateISO string, now time.Time) int {
	birth, ok := ParseISODate(birthDateISO)
	if !ok {
		return -1
	}
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// IsPastDate reports whether the date, normalized to midnight, is strictly
// before today at midnight. Malformed input returns false.
func IsPastDate(dateISO string, now time.Time) bool {
	d, ok := ParseISODate(dateISO)
	if !ok {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return day.Before(today)
}

// ExpiresWithin reports whether the date falls within d of now, or has
// already passed. Malformed input returns false.
func ExpiresWithin(dateISO string, d time.Duration, now time.Time) bool {
	exp, ok := ParseISODate(dateISO)
	if !ok {
		return false
	}
	return !exp.After(now.Add(d))
}
