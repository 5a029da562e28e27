// Package daily picks the shared "word of the day".
//
// The pick is deterministic per UTC date and salt, so every process with
// the same answer list and salt agrees on the day's secret without any
// shared state.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns HMAC-SHA256(salt, DateKey(t)) mod n, or 0 when n <= 0.
func WordIndex(t time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(t)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}

// Picker selects the daily secret from an answer list.
type Picker struct {
	Salt string
	Now  func() time.Time
}

// Pick returns today's date key and secret. ok is false for an empty list.
func (p Picker) Pick(answers []string) (date, secret string, ok bool) {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	t := now()
	date = DateKey(t)
	if len(answers) == 0 {
		return date, "", false
	}
	return date, answers[WordIndex(t, p.Salt, len(answers))], true
}
