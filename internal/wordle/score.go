// internal/wordle/score.go
//
// Scorer: maps (secret, guess) to a Mask using the two-pass reservation
// discipline of standard Wordle.
//
// Pass 1 reserves every exact-position match and removes it from the
// secret's letter budget. Pass 2 walks the remaining positions left to
// right and claims a Misplaced only while the letter still has budget.
// Surplus copies in the guess become Wrong.

package wordle

import "fmt"

// budget counts remaining occurrences per byte value.
// Words are fixed-width single-byte letters, so a flat table suffices.
type budget [256]int

func newBudget(word string) budget {
	var b budget
	for i := 0; i < len(word); i++ {
		b[word[i]]++
	}
	return b
}

// Compute scores guess against secret.
// Returns ErrInvalidInput if the two words differ in length.
func Compute(secret, guess string) (Mask, error) {
	if len(secret) != len(guess) {
		return nil, fmt.Errorf("compute: secret has %d letters, guess has %d: %w",
			len(secret), len(guess), ErrInvalidInput)
	}
	n := len(guess)
	mask := make(Mask, n)
	left := newBudget(secret)

	// Pass 1: exact matches claim their copy before anything else can.
	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			mask[i] = Correct
			left[guess[i]]--
		}
	}

	// Pass 2: misplaced letters consume whatever budget is left.
	for i := 0; i < n; i++ {
		if mask[i] == Correct {
			continue
		}
		if c := guess[i]; left[c] > 0 {
			mask[i] = Misplaced
			left[c]--
		} else {
			mask[i] = Wrong
		}
	}
	return mask, nil
}

// MustCompute is Compute for inputs already known to be the same length.
// It panics on ErrInvalidInput.
func MustCompute(secret, guess string) Mask {
	m, err := Compute(secret, guess)
	if err != nil {
		panic(err)
	}
	return m
}
