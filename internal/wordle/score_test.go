package wordle

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const (
	G = Correct
	Y = Misplaced
	X = Wrong
)

func TestCompute(t *testing.T) {
	cases := []struct {
		name   string
		secret string
		guess  string
		want   Mask
	}{
		{"identical", "crane", "crane", Mask{G, G, G, G, G}},
		{"disjoint", "crane", "multi", Mask{X, X, X, X, X}},
		{"exact matches reserved before misplaced", "aaedc", "aadce", Mask{G, G, Y, Y, Y}},
		{"swapped pairs", "abcde", "adcbe", Mask{G, Y, G, Y, G}},
		// Index 2 is an exact l match and is reserved first, leaving one l
		// for index 0 and none for index 1.
		{"excess copies are wrong", "sally", "lllrr", Mask{Y, X, G, X, X}},
		{"single copy claimed once", "abbey", "kebab", Mask{X, Y, G, Y, Y}},
		{"green wins over earlier yellow", "those", "geese", Mask{X, X, X, G, G}},
		{"unclaimed secret copies ignored", "eerie", "there", Mask{X, X, Y, Y, G}},
		{"scenario", "worry", "words", Mask{G, G, G, X, X}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Compute(tc.secret, tc.guess)
			require.NoError(t, err)
			assert.Equal(t, tc.want.String(), got.String())
		})
	}
}

func TestComputeLengthMismatch(t *testing.T) {
	_, err := Compute("crane", "cranes")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	assert.Panics(t, func() { MustCompute("abc", "ab") })
}

func TestComputeSelfIsSolved(t *testing.T) {
	for _, w := range randomWords(7, 200, "abcde") {
		m, err := Compute(w, w)
		require.NoError(t, err)
		assert.True(t, m.Solved(), "compute(%q, %q) = %s", w, w, m)
	}
}

func TestComputeOtherLengths(t *testing.T) {
	m, err := Compute("level", "lever")
	require.NoError(t, err)
	assert.Equal(t, "GGGG.", m.String())

	m, err = Compute("aab", "bba")
	require.NoError(t, err)
	assert.Equal(t, "Y.Y", m.String())
}

func TestMaskTextForms(t *testing.T) {
	m, err := ParseMask("gY.-x")
	require.NoError(t, err)
	assert.Equal(t, Mask{G, Y, X, X, X}, m)
	assert.Equal(t, "GY...", m.String())
	assert.False(t, m.Solved())
	assert.False(t, Mask{}.Solved())

	_, err = ParseMask("GQ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	b, err := Mask{G, Y, X}.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `["correct","misplaced","wrong"]`, string(b))

	b, err = Mask(nil).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestHistory(t *testing.T) {
	var h History
	_, ok := h.Last()
	assert.False(t, ok)

	g1, err := NewGuess("worry", "words")
	require.NoError(t, err)
	g2, err := NewGuess("worry", "worry")
	require.NoError(t, err)
	h.Add(g1)
	h.Add(g2)

	assert.Equal(t, 2, h.Len())
	last, ok := h.Last()
	require.True(t, ok)
	assert.True(t, last.Mask.Solved())

	got := h.Guesses()
	got[0].Word = "mutated"
	assert.Equal(t, "words", h.Guesses()[0].Word)

	h.Reset()
	assert.Zero(t, h.Len())

	_, err = NewGuess("worry", "word")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMaskUnmarshalJSON(t *testing.T) {
	var m Mask
	require.NoError(t, json.Unmarshal([]byte(`"GY.x-"`), &m))
	assert.Equal(t, Mask{G, Y, X, X, X}, m)

	require.NoError(t, json.Unmarshal([]byte(`["correct","present","miss"]`), &m))
	assert.Equal(t, Mask{G, Y, X}, m)

	assert.Error(t, json.Unmarshal([]byte(`"GZ"`), &m))
	assert.Error(t, json.Unmarshal([]byte(`["nope"]`), &m))
	assert.Error(t, json.Unmarshal([]byte(`42`), &m))
}
