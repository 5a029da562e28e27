// internal/game/types.go
//
// Core type definitions for a round of play.
// Defines:
//   - State: coarse lifecycle of a round (playing/won/lost).
//   - Game: one round, its guess history and the surviving candidates.
//   - ScoreRecord: wins and losses kept by whoever runs the rounds.

package game

import (
	"errors"
	"sync"

	"github.com/robalobadob/wordle/apps/go-engine/internal/wordle"
)

// State is the coarse lifecycle of a round.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Done reports whether the round is over.
func (s State) Done() bool { return s == StateWon || s == StateLost }

var (
	// ErrFinished is returned when guessing after the round is over.
	ErrFinished = errors.New("game finished")
	// ErrNotAllowed is returned for well-formed words missing from the word list.
	ErrNotAllowed = errors.New("not in word list")
	// ErrNoCandidates is returned by a bot with nothing left to guess.
	ErrNoCandidates = errors.New("no candidates left")
)

// Game holds the state of a single round.
// Exported fields are fixed at construction; progress is read through methods.
type Game struct {
	ID         string // Unique game identifier (uuid).
	Secret     string // The solution word (always lowercase).
	MaxGuesses int    // Maximum number of guesses allowed (typically 6).
	Length     int    // Number of letters per word (typically 5).
	Owner      string // Player ID when started by a signed-in player.

	allowed func(string) bool // optional word-list check
	workers int               // >1 narrows candidates in parallel

	mu         sync.Mutex
	history    wordle.History
	candidates []string // nil when candidate tracking is off
	finished   bool
	won        bool
}

// ScoreRecord tallies completed rounds for one player.
// It belongs to the orchestrator, never to the scorer or a guesser.
type ScoreRecord struct {
	Wins       int `json:"wins"`
	Losses     int `json:"losses"`
	Streak     int `json:"streak"`
	BestStreak int `json:"bestStreak"`
}

// Record adds the outcome of one finished round.
func (r *ScoreRecord) Record(won bool) {
	if !won {
		r.Losses++
		r.Streak = 0
		return
	}
	r.Wins++
	r.Streak++
	if r.Streak > r.BestStreak {
		r.BestStreak = r.Streak
	}
}

// Played returns the number of recorded rounds.
func (r ScoreRecord) Played() int { return r.Wins + r.Losses }

// WinRate returns wins/played, or 0 before any round.
func (r ScoreRecord) WinRate() float64 {
	if r.Played() == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Played())
}
