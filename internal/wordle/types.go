// internal/wordle/types.go
//
// Core type definitions for scoring and filtering.
// Defines:
//   - Correctness: per-letter result of a guess (correct/misplaced/wrong).
//   - Mask: the ordered per-position results for one guess.
//   - Guess: a scored word, immutable once built.
//   - History: the append-only guesses of one round.

package wordle

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// WordLength is the letter count used by the game (L).
// Scoring and filtering work for any length; callers fix L once per game.
const WordLength = 5

// ErrInvalidInput reports a length mismatch between secret, guess and mask.
// It is a caller contract violation, never a transient failure.
var ErrInvalidInput = errors.New("invalid input")

// Correctness represents the evaluation result for a single letter in a guess.
//   - Correct:   letter is at this position in the secret.
//   - Misplaced: letter is in the secret elsewhere and not yet claimed.
//   - Wrong:     letter is absent, or every copy is already claimed.
type Correctness uint8

const (
	Wrong Correctness = iota
	Misplaced
	Correct
)

func (c Correctness) String() string {
	switch c {
	case Correct:
		return "correct"
	case Misplaced:
		return "misplaced"
	case Wrong:
		return "wrong"
	}
	return fmt.Sprintf("correctness(%d)", uint8(c))
}

// Glyph is the one-character form used on the command line: G, Y or '.'.
func (c Correctness) Glyph() byte {
	switch c {
	case Correct:
		return 'G'
	case Misplaced:
		return 'Y'
	}
	return '.'
}

func (c Correctness) MarshalText() ([]byte, error) {
	if c > Correct {
		return nil, fmt.Errorf("wordle: unknown correctness %d", uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *Correctness) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "correct", "hit", "g":
		*c = Correct
	case "misplaced", "present", "y":
		*c = Misplaced
	case "wrong", "miss", ".", "x", "-":
		*c = Wrong
	default:
		return fmt.Errorf("wordle: unknown correctness %q: %w", b, ErrInvalidInput)
	}
	return nil
}

// Mask holds one Correctness per letter position of a guess.
type Mask []Correctness

// Solved reports whether every position is Correct.
func (m Mask) Solved() bool {
	if len(m) == 0 {
		return false
	}
	for _, c := range m {
		if c != Correct {
			return false
		}
	}
	return true
}

// String renders the mask in glyph form, e.g. "GGY..".
func (m Mask) String() string {
	b := make([]byte, len(m))
	for i, c := range m {
		b[i] = c.Glyph()
	}
	return string(b)
}

// Equal reports whether two masks hold the same classifications.
func (m Mask) Equal(o Mask) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if m[i] != o[i] {
			return false
		}
	}
	return true
}

// MarshalJSON keeps the wire form a plain array of strings even for a nil mask.
func (m Mask) MarshalJSON() ([]byte, error) {
	out := make([]Correctness, len(m))
	copy(out, m)
	return json.Marshal([]Correctness(out))
}

// UnmarshalJSON accepts either an array of strings or a glyph string ("GY..G").
func (m *Mask) UnmarshalJSON(b []byte) error {
	var glyphs string
	if err := json.Unmarshal(b, &glyphs); err == nil {
		parsed, err := ParseMask(glyphs)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	}
	var list []Correctness
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	*m = list
	return nil
}

// ParseMask reads a glyph string ("GY..G") into a Mask.
// Accepted glyphs are G/Y and '.', '-', 'x' for Wrong, case-insensitive.
func ParseMask(s string) (Mask, error) {
	m := make(Mask, 0, len(s))
	for i := 0; i < len(s); i++ {
		var c Correctness
		if err := c.UnmarshalText([]byte(s[i : i+1])); err != nil {
			return nil, fmt.Errorf("parse mask %q at %d: %w", s, i, err)
		}
		m = append(m, c)
	}
	return m, nil
}

// Guess pairs a word with the mask it scored against the secret.
type Guess struct {
	Word string `json:"word"`
	Mask Mask   `json:"mask"`
}

// NewGuess scores word against secret and returns the finished Guess.
func NewGuess(secret, word string) (Guess, error) {
	m, err := Compute(secret, word)
	if err != nil {
		return Guess{}, err
	}
	return Guess{Word: word, Mask: m}, nil
}

// History is the append-only list of guesses made during one round.
// The zero value is ready to use. Not safe for concurrent mutation.
type History struct {
	guesses []Guess
}

// Add appends g. Guesses are never rewritten once added.
func (h *History) Add(g Guess) { h.guesses = append(h.guesses, g) }

// Len returns the number of guesses made so far.
func (h *History) Len() int { return len(h.guesses) }

// Guesses returns a copy of the recorded guesses in submission order.
func (h *History) Guesses() []Guess {
	out := make([]Guess, len(h.guesses))
	copy(out, h.guesses)
	return out
}

// Last returns the most recent guess, if any.
func (h *History) Last() (Guess, bool) {
	if len(h.guesses) == 0 {
		return Guess{}, false
	}
	return h.guesses[len(h.guesses)-1], true
}

// Reset clears the history at the start of a new round.
func (h *History) Reset() { h.guesses = nil }
