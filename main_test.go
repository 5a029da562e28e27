package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("WORDLE_CONFIG", "")
	t.Setenv("FILTER_WORKERS", "2")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(testContext(t))
	return out.String(), err
}

func TestScoreCommand(t *testing.T) {
	// The exact l at index 2 is reserved before the misplaced pass.
	out, err := run(t, "", "score", "SALLY", "lllrr")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "Y.G.."), out)

	_, err = run(t, "", "score", "sally", "ll")
	assert.Error(t, err)
}

func TestFilterCommand(t *testing.T) {
	dict := filepath.Join(t.TempDir(), "dict.txt")
	require.NoError(t, os.WriteFile(dict, []byte("crane\nsully\nmoody\ntrace\n"), 0o644))

	out, err := run(t, "", "filter", "crane", ".....", "--dict", dict)
	require.NoError(t, err)
	assert.Equal(t, "sully\nmoody\n", out)

	out, err = run(t, "", "filter", "crane", "GGGGG", "--dict", dict)
	require.NoError(t, err)
	assert.Equal(t, "crane\n", out)

	_, err = run(t, "", "filter", "crane", "GG", "--dict", dict)
	assert.Error(t, err)
	_, err = run(t, "", "filter", "crane", "GGGGQ", "--dict", dict)
	assert.Error(t, err)
}

func TestStripDictCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "freq.txt")
	outPath := filepath.Join(dir, "out", "words.txt")
	require.NoError(t, os.WriteFile(in, []byte("crane 120\nsully 4\n"), 0o644))

	out, err := run(t, "", "strip-dict", in, outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 2 words")

	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "crane\nsully\n", string(b))
}

func TestPlayBot(t *testing.T) {
	out, err := run(t, "", "play", "--bot", "--rounds", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "round 2")
	assert.Contains(t, out, "played 2")
}

func TestPlayDailyHumanQuits(t *testing.T) {
	// "zz" is rejected, then input ends before the round is over.
	out, err := run(t, "zz\n", "play", "--daily")
	require.NoError(t, err)
	assert.Contains(t, out, "daily word for")
	assert.Contains(t, out, "enter a 5-letter word")
	assert.Contains(t, out, "played 0")
}

func TestPlayRejectsZeroRounds(t *testing.T) {
	_, err := run(t, "", "play", "--rounds", "0")
	assert.Error(t, err)
}

func TestPlayDailyIsOneRound(t *testing.T) {
	_, err := run(t, "", "play", "--daily", "--bot", "--rounds", "3")
	assert.ErrorContains(t, err, "--daily")

	out, err := run(t, "", "play", "--daily", "--bot", "--rounds", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "played 1")
}

// testContext returns a context canceled when the test finishes
// (equivalent of testing.T.Context, Go 1.24+).
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
