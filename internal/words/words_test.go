package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	body := ""
	for _, l := range lines {
		body += l + "\n"
	}
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadEmbedded(t *testing.T) {
	d, err := Load("", "")
	require.NoError(t, err)

	a, g := d.Stats()
	assert.Greater(t, a, 100)
	assert.Greater(t, g, a)
	for _, w := range []string{"worry", "words", "crane", "toons", "barks"} {
		assert.True(t, d.IsAnswer(w), w)
		assert.True(t, d.IsAllowed(w), w)
	}
	assert.True(t, d.IsAllowed("KEBAB"), "lookups are case-insensitive")
	assert.False(t, d.IsAnswer("kebab"))
	assert.False(t, d.IsAllowed("zzzzz"))
	assert.Contains(t, d.Answers(), d.RandomAnswer())
	assert.IsIncreasing(t, d.Allowed())
	assert.Empty(t, d.Paths())
	require.NoError(t, d.Reload())
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	ans := writeList(t, dir, "answers.txt", "# header", "Crane", " slate ", "toolong", "ab1cd", "")
	all := writeList(t, dir, "allowed.txt", "adieu", "roate")

	t.Run("both files", func(t *testing.T) {
		d, err := Load(ans, all)
		require.NoError(t, err)
		assert.Equal(t, []string{"crane", "slate"}, d.Answers())
		assert.Equal(t, []string{"adieu", "crane", "roate", "slate"}, d.Allowed())
		assert.Equal(t, []string{ans, all}, d.Paths())
	})

	t.Run("allowed only doubles as answers", func(t *testing.T) {
		d, err := Load("", all)
		require.NoError(t, err)
		assert.Equal(t, []string{"adieu", "roate"}, d.Answers())
		assert.True(t, d.IsAnswer("roate"))
	})

	t.Run("answers only", func(t *testing.T) {
		d, err := Load(ans, "")
		require.NoError(t, err)
		a, g := d.Stats()
		assert.Equal(t, 2, a)
		assert.Equal(t, 2, g)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.txt"), all)
		assert.Error(t, err)
	})

	t.Run("empty answers", func(t *testing.T) {
		empty := writeList(t, dir, "empty.txt", "# nothing here")
		_, err := Load(empty, all)
		assert.ErrorIs(t, err, ErrEmpty)
	})
}

func TestReloadKeepsPreviousOnError(t *testing.T) {
	dir := t.TempDir()
	ans := writeList(t, dir, "answers.txt", "crane")
	d, err := Load(ans, "")
	require.NoError(t, err)

	writeList(t, dir, "answers.txt", "crane", "slate")
	require.NoError(t, d.Reload())
	assert.Equal(t, []string{"crane", "slate"}, d.Answers())

	require.NoError(t, os.Remove(ans))
	assert.Error(t, d.Reload())
	assert.Equal(t, []string{"crane", "slate"}, d.Answers())
}

func TestFromLists(t *testing.T) {
	d, err := FromLists([]string{"WORRY", "toons", "bad"}, []string{"words"})
	require.NoError(t, err)
	assert.Equal(t, []string{"worry", "toons"}, d.Answers())
	assert.True(t, d.IsAllowed("words"))
	require.NoError(t, d.Reload())

	_, err = FromLists(nil, []string{"words"})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("crane"))
	assert.False(t, Valid("Crane"))
	assert.False(t, Valid("cran"))
	assert.False(t, Valid("cr4ne"))
	assert.False(t, Valid("cranes"))
}
