package service

import (
	"crypto/rand"
	"fmt"
	"time"
)

// refAlphabet avoids 0/O and 1/I so reference numbers survive being
// read over the phone.
const refAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

const refSuffixLen = 5

// NewReferenceNumber builds a customer-facing tracking identifier such
// as TNC-20260831-7KQ4M. Uniqueness is enforced by the database; the
// random suffix makes collisions within a day vanishingly rare.
func NewReferenceNumber(prefix string, now time.Time) string {
	suffix := make([]byte, refSuffixLen)
	random := make([]byte, refSuffixLen)
	if _, err := rand.Read(random); err != nil {
		// crypto/rand only fails when the platform entropy source is
		// broken; fall back to the clock rather than panic on intake.
		nano := now.UnixNano()
		for i := range random {
			random[i] = byte(nano >> (8 * i))
		}
	}
	for i, b := range random {
		suffix[i] = refAlphabet[int(b)%len(refAlphabet)]
	}
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("20060102"), suffix)
}
