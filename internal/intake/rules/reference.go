package rules

import (
	"crypto/rand"
	"fmt"
	"time"
)

const referencePrefix = "LLM"

const refAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewReference produces a submission reference of the form
// LLM-YYYYMMDD-HHMMSS-XXXX where the suffix is random.
func NewReference(now time.Time) string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms, fall back to the
		// clock nanos rather than returning an error nobody can act on
		n := now.Nanosecond()
		for i := range buf {
			buf[i] = byte(n >> (i * 8))
		}
	}
	suffix := make([]byte, 4)
	for i, b := range buf {
		suffix[i] = refAlphabet[int(b)%len(refAlphabet)]
	}
	return fmt.Sprintf("%s-%s-%s-%s",
		referencePrefix,
		now.Format("20060102"),
		now.Format("150405"),
		suffix)
}
