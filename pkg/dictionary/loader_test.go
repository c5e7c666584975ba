package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWordList(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0644))
	return path
}

func TestLoadTextFiltersAndNormalizes(t *testing.T) {
	path := writeWordList(t, "cat\nCAT\nat\nrate\nit's\n\ntear\n")

	d, err := Load(path, 3)
	require.NoError(t, err)

	// "at" is below the minimum, "it's" fails the letters-only check,
	// the case-variant duplicate collapses.
	assert.Equal(t, 3, d.Len())
	assert.True(t, d.Contains("CAT"))
	assert.True(t, d.Contains("RATE"))
	assert.True(t, d.Contains("TEAR"))
	assert.False(t, d.Contains("AT"))
	assert.Equal(t, path, d.Source())
}

func TestBinaryRoundTrip(t *testing.T) {
	src := New([]string{"CAT", "RATE", "TEAR"})
	path := filepath.Join(t.TempDir(), "words.bin")
	require.NoError(t, WriteBinary(src, path))

	format, err := DetectFileFormat(path)
	require.NoError(t, err)
	assert.Equal(t, FormatBinary, format)

	d, err := Load(path, 3)
	require.NoError(t, err)
	assert.Equal(t, src.Words(), d.Words())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), 3)
	assert.Error(t, err)
}

func TestLoadWithFallbackBuiltin(t *testing.T) {
	d := LoadWithFallback([]string{"/nonexistent/a.txt", "/nonexistent/b.txt"}, 3)

	require.NotNil(t, d)
	assert.Equal(t, "builtin", d.Source())
	assert.True(t, d.Contains("CAT"))
	assert.Greater(t, d.Len(), 0)
}

func TestLoadWithFallbackPrefersFirstUsable(t *testing.T) {
	path := writeWordList(t, "alpha\nbeta\n")

	d := LoadWithFallback([]string{"/nonexistent/a.txt", path}, 3)
	assert.Equal(t, path, d.Source())
	assert.True(t, d.Contains("ALPHA"))
}
