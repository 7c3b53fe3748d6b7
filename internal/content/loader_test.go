package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const unreadable = "could not open"

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadText(t *testing.T) {
	path := writeFile(t, "a.txt", []byte("hello\nworld\n"))
	l := NewLoader(NewChroma("nord"), 4, unreadable)

	b, err := l.Load(path)
	require.NoError(t, err)

	require.Equal(t, 2, b.Len())
	assert.Equal(t, "hello", b.Lines[0].Text())
	assert.Equal(t, "world", b.Lines[1].Text())
}

func TestLoadNormalisesLineEndingsAndTabs(t *testing.T) {
	path := writeFile(t, "notes", []byte("a\tb\r\n\tc\r\n"))
	l := NewLoader(NewChroma("nord"), 4, unreadable)

	b, err := l.Load(path)
	require.NoError(t, err)

	require.Equal(t, 2, b.Len())
	assert.Equal(t, "a   b", b.Lines[0].Text())
	assert.Equal(t, "    c", b.Lines[1].Text())
}

func TestLoadMissingFile(t *testing.T) {
	l := NewLoader(NewChroma("nord"), 4, unreadable)

	b, err := l.Load(filepath.Join(t.TempDir(), "gone.txt"))
	assert.Error(t, err)
	assert.Equal(t, Message(unreadable), b)
}

func TestLoadBinaryFile(t *testing.T) {
	path := writeFile(t, "blob.bin", []byte{0x89, 'P', 'N', 'G', 0x00, 0x01, 0xff})
	l := NewLoader(NewChroma("nord"), 4, unreadable)

	b, err := l.Load(path)
	assert.True(t, errors.Is(err, ErrNotText))
	assert.Equal(t, Message(unreadable), b)
}

func TestLoadBareCarriageReturns(t *testing.T) {
	path := writeFile(t, "old.py", []byte("a\rb\rc\n"))
	l := NewLoader(NewChroma("nord"), 4, unreadable)

	b, err := l.Load(path)
	require.NoError(t, err)

	require.Equal(t, 3, b.Len())
	assert.Equal(t, "a", b.Lines[0].Text())
	assert.Equal(t, "b", b.Lines[1].Text())
	assert.Equal(t, "c", b.Lines[2].Text())
}

func TestLoadPostScriptAsText(t *testing.T) {
	path := writeFile(t, "page.ps", []byte("%!PS-Adobe-3.0\nshowpage\n"))
	l := NewLoader(NewChroma("nord"), 4, unreadable)

	b, err := l.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, b.Len())
	assert.Equal(t, "showpage", b.Lines[1].Text())
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.txt", nil)
	l := NewLoader(NewChroma("nord"), 4, unreadable)

	b, err := l.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
}

func TestDecode(t *testing.T) {
	text, err := Decode([]byte("plain ascii\n"))
	require.NoError(t, err)
	assert.Equal(t, "plain ascii\n", text)

	_, err = Decode([]byte("こんにちは\n"))
	assert.NoError(t, err)

	_, err = Decode([]byte{0xff, 0xfe, 0xfd})
	assert.ErrorIs(t, err, ErrNotText)

	_, err = Decode(nil)
	assert.NoError(t, err)
}

func TestDecodeAcceptsTextThatSniffsAsOtherTypes(t *testing.T) {
	inputs := map[string]string{
		"postscript": "%!PS-Adobe-3.0\nshowpage\n",
		"xpm":        "/* XPM */\nstatic char *x[] = {\n\"1 1 1 1\",\n};\n",
		"nul byte":   "a\x00b\n",
		"escapes":    "\x1b[1mbold\x1b[0m\f\n",
	}
	for name, in := range inputs {
		text, err := Decode([]byte(in))
		require.NoError(t, err, name)
		assert.Equal(t, in, text, name)
	}
}

func TestExtension(t *testing.T) {
	tests := map[string]string{
		"/d/main.go":      "go",
		"/d/archive.tgz":  "tgz",
		"/d/a.tar.gz":     "gz",
		"/d/Makefile":     DefaultExtension,
		"/d/.bashrc":      DefaultExtension,
		"/d/.config.toml": "toml",
	}
	for path, want := range tests {
		assert.Equal(t, want, Extension(path), path)
	}
}

func TestExpandTabs(t *testing.T) {
	assert.Equal(t, "ab  c", expandTabs("ab\tc", 4))
	assert.Equal(t, "abcd    e", expandTabs("abcd\te", 4))
	assert.Equal(t, "  x\n  y", expandTabs("\tx\n\ty", 2))
	assert.Equal(t, "a\tb", expandTabs("a\tb", 0))
}
