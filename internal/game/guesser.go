// internal/game/guesser.go
//
// Guessers supply the next word for a round.
// Implementations:
//   - HumanGuesser: reads one word per line from an io.Reader.
//   - BotGuesser: random pick among the words still consistent with the history.

package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/robalobadob/wordle/apps/go-engine/internal/wordle"
)

// Guesser produces the next guess word. Whoever sits behind it, human or
// program, the scorer and filter never know.
type Guesser interface {
	NextGuess(ctx context.Context, history []wordle.Guess) (string, error)
}

// Kind names a Guesser implementation for NewGuesser.
type Kind string

const (
	KindHuman Kind = "human"
	KindBot   Kind = "bot"
)

// NewGuesser builds a Guesser of the given kind. Humans read from in and
// are prompted on out; bots draw from dict.
func NewGuesser(kind Kind, in io.Reader, out io.Writer, dict []string) (Guesser, error) {
	switch kind {
	case KindHuman:
		return NewHumanGuesser(in, out), nil
	case KindBot:
		return NewBotGuesser(dict, time.Now().UnixNano()), nil
	}
	return nil, fmt.Errorf("unknown guesser kind %q", kind)
}

// HumanGuesser reads one word per line.
type HumanGuesser struct {
	sc     *bufio.Scanner
	out    io.Writer
	Prompt string
}

// NewHumanGuesser reads guesses from in; prompts go to out (may be nil).
func NewHumanGuesser(in io.Reader, out io.Writer) *HumanGuesser {
	return &HumanGuesser{sc: bufio.NewScanner(in), out: out, Prompt: "> "}
}

// NextGuess returns the next non-empty line. io.EOF means the player quit.
func (h *HumanGuesser) NextGuess(ctx context.Context, _ []wordle.Guess) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if h.out != nil {
			fmt.Fprint(h.out, h.Prompt)
		}
		if !h.sc.Scan() {
			if err := h.sc.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		if w := strings.TrimSpace(h.sc.Text()); w != "" {
			return w, nil
		}
	}
}

// BotGuesser guesses a random word still consistent with the evidence.
// It does no ranking; every surviving candidate is equally likely.
type BotGuesser struct {
	mu         sync.Mutex
	rng        *rand.Rand
	dict       []string
	candidates []string
	seen       int
}

// NewBotGuesser draws from dict using a seeded source.
func NewBotGuesser(dict []string, seed int64) *BotGuesser {
	b := &BotGuesser{rng: rand.New(rand.NewSource(seed))}
	b.Reset(dict)
	return b
}

// Reset starts a new round over dict.
func (b *BotGuesser) Reset(dict []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dict = append([]string{}, dict...)
	b.candidates = b.dict
	b.seen = 0
}

// NextGuess narrows the candidates by any guesses it has not yet seen and
// picks one at random. A shorter history than last time starts a new round.
func (b *BotGuesser) NextGuess(ctx context.Context, history []wordle.Guess) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(history) < b.seen {
		b.candidates, b.seen = b.dict, 0
	}
	for _, g := range history[b.seen:] {
		next, err := wordle.Filter(g.Word, g.Mask, b.candidates)
		if err != nil {
			return "", err
		}
		b.candidates = next
	}
	b.seen = len(history)

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(b.candidates) == 0 {
		return "", ErrNoCandidates
	}
	return b.candidates[b.rng.Intn(len(b.candidates))], nil
}

// Remaining returns how many candidates the bot still considers.
func (b *BotGuesser) Remaining() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.candidates)
}
