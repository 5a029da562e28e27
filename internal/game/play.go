// internal/game/play.go
//
// Play loop: asks a Guesser for words until the round is won or lost,
// reporting every accepted or rejected attempt to the caller.

package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/robalobadob/wordle/apps/go-engine/internal/wordle"
)

// maxRejects bounds consecutive rejected guesses from one guesser.
const maxRejects = 64

// Turn reports one attempt to the caller of Play.
// Err is set, and Guess is empty, when the word was rejected.
type Turn struct {
	Number    int
	Guess     wordle.Guess
	State     State
	Remaining int
	Err       error
}

// Play asks guesser for words until g is finished. Rejected words
// (wrong length, not in the word list) are reported through onTurn and
// the guesser is asked again. onTurn may be nil.
func Play(ctx context.Context, g *Game, guesser Guesser, onTurn func(Turn)) (State, error) {
	if onTurn == nil {
		onTurn = func(Turn) {}
	}
	rejects := 0
	for {
		st := g.State()
		if st.Done() {
			return st, nil
		}
		word, err := guesser.NextGuess(ctx, g.Guesses())
		if err != nil {
			return st, err
		}

		guess, st, err := g.ApplyGuess(ctx, word)
		switch {
		case errors.Is(err, wordle.ErrInvalidInput), errors.Is(err, ErrNotAllowed):
			onTurn(Turn{Number: len(g.Guesses()) + 1, State: st, Remaining: g.Remaining(), Err: err})
			if rejects++; rejects >= maxRejects {
				return st, fmt.Errorf("guesser rejected %d times in a row: %w", rejects, err)
			}
			continue
		case err != nil:
			return st, err
		}
		rejects = 0
		onTurn(Turn{Number: len(g.Guesses()), Guess: guess, State: st, Remaining: g.Remaining()})
	}
}
