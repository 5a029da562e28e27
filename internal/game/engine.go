// internal/game/engine.go
//
// Game engine for a single round.
// Responsibilities:
//   - Create rounds with default dimensions (6 guesses of 5 letters).
//   - Validate and apply guesses (length, alphabetic, allowed list).
//   - Score guesses with wordle.Compute and keep the append-only history.
//   - Narrow the candidate dictionary with wordle.Filter after every guess.
//   - Track state transitions: playing → won/lost.

package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/go-engine/internal/wordle"
)

const defaultMaxGuesses = 6

// Option customizes a Game at construction.
type Option func(*Game)

// WithMaxGuesses overrides the number of guesses per round.
func WithMaxGuesses(n int) Option {
	return func(g *Game) {
		if n > 0 {
			g.MaxGuesses = n
		}
	}
}

// WithAllowed installs a word-list check; rejected words return ErrNotAllowed.
func WithAllowed(fn func(string) bool) Option {
	return func(g *Game) { g.allowed = fn }
}

// WithCandidates turns on candidate tracking, starting from dict.
// dict is copied; the game never modifies the caller's slice.
func WithCandidates(dict []string) Option {
	return func(g *Game) { g.candidates = append([]string{}, dict...) }
}

// WithWorkers narrows candidates with n goroutines (see wordle.FilterParallel).
func WithWorkers(n int) Option {
	return func(g *Game) { g.workers = n }
}

// WithOwner ties the round to a player so its result reaches their record.
func WithOwner(playerID string) Option {
	return func(g *Game) { g.Owner = playerID }
}

// New constructs a round for secret. The word length is taken from secret.
func New(secret string, opts ...Option) *Game {
	secret = strings.ToLower(strings.TrimSpace(secret))
	g := &Game{
		ID:         uuid.NewString(),
		Secret:     secret,
		MaxGuesses: defaultMaxGuesses,
		Length:     len(secret),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ApplyGuess validates and scores word, mutating the game state.
// Returns the scored guess and the new state.
//
// Validation rules:
//   - Game must not be finished (ErrFinished).
//   - Word must be exactly g.Length letters a–z (wordle.ErrInvalidInput).
//   - Word must pass the allowed check, if one is installed (ErrNotAllowed).
//
// State transitions:
//   - All positions Correct → won.
//   - Otherwise, once MaxGuesses is reached → lost.
func (g *Game) ApplyGuess(ctx context.Context, word string) (wordle.Guess, State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.finished {
		return wordle.Guess{}, g.state(), ErrFinished
	}
	word = strings.ToLower(strings.TrimSpace(word))
	if len(word) != g.Length || !isAlpha(word) {
		return wordle.Guess{}, g.state(), fmt.Errorf("guess %q: want %d letters a-z: %w",
			word, g.Length, wordle.ErrInvalidInput)
	}
	if g.allowed != nil && !g.allowed(word) {
		return wordle.Guess{}, g.state(), fmt.Errorf("guess %q: %w", word, ErrNotAllowed)
	}

	guess, err := wordle.NewGuess(g.Secret, word)
	if err != nil {
		return wordle.Guess{}, g.state(), err
	}

	if g.candidates != nil {
		var next []string
		if g.workers > 1 {
			next, err = wordle.FilterParallel(ctx, guess.Word, guess.Mask, g.candidates, g.workers)
		} else {
			next, err = wordle.Filter(guess.Word, guess.Mask, g.candidates)
		}
		if err != nil {
			return wordle.Guess{}, g.state(), err
		}
		g.candidates = next
	}

	g.history.Add(guess)
	if guess.Mask.Solved() {
		g.finished, g.won = true, true
	} else if g.history.Len() >= g.MaxGuesses {
		g.finished = true
	}
	return guess, g.state(), nil
}

// State reports the current lifecycle state.
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state()
}

func (g *Game) state() State {
	if g.finished {
		if g.won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Guesses returns a copy of the guesses made so far.
func (g *Game) Guesses() []wordle.Guess {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.history.Guesses()
}

// Candidates returns a copy of the words still consistent with every guess,
// or nil when candidate tracking is off.
func (g *Game) Candidates() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.candidates == nil {
		return nil
	}
	return append([]string{}, g.candidates...)
}

// Remaining returns the candidate count, or -1 when tracking is off.
func (g *Game) Remaining() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.candidates == nil {
		return -1
	}
	return len(g.candidates)
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
