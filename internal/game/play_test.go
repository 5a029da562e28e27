package game

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-engine/internal/wordle"
)

func TestHumanGuesserReprompts(t *testing.T) {
	in := strings.NewReader("wor\n\nwords\nworry\n")
	var out bytes.Buffer
	h := NewHumanGuesser(in, &out)
	g := New("worry")

	var turns []Turn
	st, err := Play(context.Background(), g, h, func(tr Turn) { turns = append(turns, tr) })
	require.NoError(t, err)
	assert.Equal(t, StateWon, st)

	require.Len(t, turns, 3)
	assert.ErrorIs(t, turns[0].Err, wordle.ErrInvalidInput)
	assert.Equal(t, 1, turns[0].Number)
	assert.Equal(t, "words", turns[1].Guess.Word)
	assert.Equal(t, 1, turns[1].Number)
	assert.Equal(t, StateWon, turns[2].State)
	assert.Equal(t, 2, turns[2].Number)
	assert.Contains(t, out.String(), "> ")
}

func TestHumanGuesserEOF(t *testing.T) {
	h := NewHumanGuesser(strings.NewReader("words\n"), nil)
	st, err := Play(context.Background(), New("worry"), h, nil)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, StatePlaying, st)
}

func TestBotGuesserAlwaysWinsOnSmallDictionary(t *testing.T) {
	dict := []string{"toons", "barks", "worry", "words", "crane", "slate", "sally", "hello"}
	for i, secret := range dict {
		bot := NewBotGuesser(dict, int64(i))
		g := New(secret, WithMaxGuesses(len(dict)))
		st, err := Play(context.Background(), g, bot, nil)
		require.NoError(t, err)
		assert.Equal(t, StateWon, st, "secret %q", secret)
		assert.GreaterOrEqual(t, bot.Remaining(), 1)
	}
}

func TestBotGuesserResetsOnNewRound(t *testing.T) {
	dict := []string{"toons", "worry", "words"}
	bot := NewBotGuesser(dict, 1)
	ctx := context.Background()

	g1 := New("worry", WithMaxGuesses(5))
	_, err := Play(ctx, g1, bot, nil)
	require.NoError(t, err)

	// Empty history again: the bot must consider the whole dictionary.
	_, err = bot.NextGuess(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, bot.Remaining())
}

func TestBotGuesserNoCandidates(t *testing.T) {
	bot := NewBotGuesser([]string{"toons"}, 1)
	h := []wordle.Guess{{Word: "worry", Mask: wordle.MustCompute("words", "worry")}}
	_, err := bot.NextGuess(context.Background(), h)
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestNewGuesser(t *testing.T) {
	g, err := NewGuesser(KindHuman, strings.NewReader(""), nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &HumanGuesser{}, g)

	g, err = NewGuesser(KindBot, nil, nil, []string{"crane"})
	require.NoError(t, err)
	w, err := g.NextGuess(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "crane", w)

	_, err = NewGuesser("alien", nil, nil, nil)
	assert.Error(t, err)
}

type stubbornGuesser struct{}

func (stubbornGuesser) NextGuess(context.Context, []wordle.Guess) (string, error) { return "no", nil }

func TestPlayGivesUpOnEndlessRejects(t *testing.T) {
	_, err := Play(context.Background(), New("worry"), stubbornGuesser{}, nil)
	assert.ErrorIs(t, err, wordle.ErrInvalidInput)
}
