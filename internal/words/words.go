// internal/words/words.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Load answer and allowed guess lists from configured files or fall back to the embedded defaults.
//   - Maintain sets for quick lookups (answers only, answers∪guesses).
//   - Supply RandomAnswer, IsAllowed, IsAnswer and Stats.
//   - Reload the lists in place when the files change (see watch.go).
//
// Load behavior:
//   1. answersPath and allowedPath both set: answers from the first, extra guesses from the second.
//   2. Only allowedPath set: that file is used for both answers and guesses.
//   3. Only answersPath set: the answers are also the only guesses.
//   4. Neither set: embedded assets/answers.txt and assets/allowed.txt.
//
// Constraints:
//   • Words must be wordle.WordLength letters a–z; anything else is dropped.
//   • Lists are normalized to lowercase.

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/robalobadob/wordle/apps/go-engine/assets"
	"github.com/robalobadob/wordle/apps/go-engine/internal/wordle"
)

// ErrEmpty is returned when loading leaves no answers to pick from.
var ErrEmpty = errors.New("words: answers list is empty")

// Dictionary holds the answer and allowed-guess lists.
// Safe for concurrent use; Reload swaps the lists atomically.
type Dictionary struct {
	answersPath string
	allowedPath string

	mu         sync.RWMutex
	answers    []string            // canonical answers
	allowed    []string            // answers ∪ guesses, sorted
	answersSet map[string]struct{} // answers only
	allowedSet map[string]struct{} // answers ∪ guesses
}

// Load builds a Dictionary from the given files (either may be empty).
func Load(answersPath, allowedPath string) (*Dictionary, error) {
	d := &Dictionary{answersPath: answersPath, allowedPath: allowedPath}
	if err := d.Reload(); err != nil {
		return nil, err
	}
	return d, nil
}

// FromLists builds a Dictionary directly from in-memory lists.
// Invalid words are dropped. Reload is a no-op for such dictionaries.
func FromLists(answers, allowed []string) (*Dictionary, error) {
	d := &Dictionary{}
	if err := d.set(Clean(answers), Clean(allowed)); err != nil {
		return nil, err
	}
	return d, nil
}

// Reload re-reads the configured lists and swaps them in.
// On error the previous lists stay in place.
func (d *Dictionary) Reload() error {
	var ansList, allowList []string
	var err error

	switch {
	case d.answersPath != "" && d.allowedPath != "":
		if ansList, err = readWordFile(d.answersPath); err != nil {
			return err
		}
		if allowList, err = readWordFile(d.allowedPath); err != nil {
			return err
		}

	case d.answersPath == "" && d.allowedPath != "":
		if allowList, err = readWordFile(d.allowedPath); err != nil {
			return err
		}
		ansList = allowList

	case d.answersPath != "":
		if ansList, err = readWordFile(d.answersPath); err != nil {
			return err
		}

	default:
		d.mu.RLock()
		loaded := d.answersSet != nil
		d.mu.RUnlock()
		if loaded {
			// In-memory or embedded lists never change.
			return nil
		}
		if ansList, err = assets.AnswersList(); err != nil {
			return err
		}
		if allowList, err = assets.AllowedList(); err != nil {
			return err
		}
		ansList, allowList = Clean(ansList), Clean(allowList)
	}
	return d.set(ansList, allowList)
}

func (d *Dictionary) set(ansList, allowList []string) error {
	if len(ansList) == 0 {
		return ErrEmpty
	}
	answersSet := toSet(ansList)

	// Every answer is also a valid guess.
	allowedSet := toSet(ansList)
	for _, w := range allowList {
		allowedSet[w] = struct{}{}
	}
	allowed := make([]string, 0, len(allowedSet))
	for w := range allowedSet {
		allowed = append(allowed, w)
	}
	sort.Strings(allowed)

	d.mu.Lock()
	d.answers = ansList
	d.answersSet = answersSet
	d.allowed = allowed
	d.allowedSet = allowedSet
	d.mu.Unlock()
	return nil
}

// Paths returns the files backing this dictionary, if any.
func (d *Dictionary) Paths() []string {
	var out []string
	for _, p := range []string{d.answersPath, d.allowedPath} {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// readWordFile loads one word per line from a file and keeps only valid words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	lines, err := assets.ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Clean(lines), nil
}

// Clean lowercases and trims each entry, keeping only valid words.
func Clean(list []string) []string {
	out := make([]string, 0, len(list))
	for _, line := range list {
		w := strings.TrimSpace(strings.ToLower(line))
		if Valid(w) {
			out = append(out, w)
		}
	}
	return out
}

// Valid reports whether w has the game's word length and only a–z letters.
func Valid(w string) bool {
	return len(w) == wordle.WordLength && isAlpha(w)
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// RandomAnswer returns a cryptographically random answer.
func (d *Dictionary) RandomAnswer() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(d.answers))))
	if err != nil {
		return d.answers[0]
	}
	return d.answers[nBig.Int64()]
}

// Answers returns the answer list. Callers must not modify it.
func (d *Dictionary) Answers() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.answers
}

// Allowed returns every valid guess in sorted order. Callers must not modify it.
func (d *Dictionary) Allowed() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.allowed
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func (d *Dictionary) IsAllowed(w string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (d *Dictionary) IsAnswer(w string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.answersSet[strings.ToLower(w)]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func (d *Dictionary) Stats() (answersCount int, allowedCount int) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.answers), len(d.allowedSet)
}
