package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2024, 3, 2, 5, 0, 0, 0, loc) // 2024-03-01 19:00 UTC
	assert.Equal(t, "2024-03-01", DateKey(ts))
}

func TestWordIndexDeterministic(t *testing.T) {
	day := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	later := day.Add(10 * time.Hour)

	a := WordIndex(day, "salt", 500)
	assert.Equal(t, a, WordIndex(later, "salt", 500), "same UTC day, same index")
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 500)
	assert.Zero(t, WordIndex(day, "salt", 0))

	seen := map[int]bool{}
	for i := 0; i < 30; i++ {
		seen[WordIndex(day.AddDate(0, 0, i), "salt", 500)] = true
	}
	assert.Greater(t, len(seen), 20, "indexes spread across days")
}

func TestPicker(t *testing.T) {
	answers := []string{"crane", "slate", "worry", "toons"}
	fixed := func() time.Time { return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) }
	p := Picker{Salt: "s", Now: fixed}

	date, secret, ok := p.Pick(answers)
	assert.True(t, ok)
	assert.Equal(t, "2024-03-01", date)
	assert.Equal(t, answers[WordIndex(fixed(), "s", len(answers))], secret)

	_, _, ok = p.Pick(nil)
	assert.False(t, ok)
}
