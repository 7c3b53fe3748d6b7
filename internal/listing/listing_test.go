package listing

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTree(t *testing.T, dirs, files []string) string {
	t.Helper()
	root := t.TempDir()
	for _, d := range dirs {
		require.NoError(t, os.Mkdir(filepath.Join(root, d), 0o755))
	}
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, f), []byte(f), 0o644))
	}
	return root
}

func TestListPartitionsDirsAndFiles(t *testing.T) {
	root := makeTree(t, []string{"sub"}, []string{"a.txt"})

	entries, err := List(root, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"sub"}, entries.Dirs)
	assert.Equal(t, []string{"a.txt"}, entries.Files)
	assert.Equal(t, 2, entries.Total())
	assert.Empty(t, entries.Warnings)
}

func TestListEmptyDirectory(t *testing.T) {
	entries, err := List(t.TempDir(), Options{})
	require.NoError(t, err)

	assert.True(t, entries.IsEmpty())
	_, ok := entries.At(0)
	assert.False(t, ok)
}

func TestListKeepsEveryEntry(t *testing.T) {
	root := makeTree(t, []string{"b", "a", ".hidden"}, []string{"z.go", ".env", "m"})

	entries, err := List(root, Options{})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a", "b", ".hidden"}, entries.Dirs)
	assert.ElementsMatch(t, []string{"z.go", ".env", "m"}, entries.Files)
}

func TestListSortByName(t *testing.T) {
	root := makeTree(t, []string{"c", "a", "b"}, []string{"y", "x"})

	entries, err := List(root, Options{Sort: SortByName})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, entries.Dirs)
	assert.Equal(t, []string{"x", "y"}, entries.Files)
}

func TestListFollowsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := makeTree(t, []string{"real"}, nil)
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "link")))
	require.NoError(t, os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "dangling")))

	entries, err := List(root, Options{Sort: SortByName})
	require.NoError(t, err)

	assert.Equal(t, []string{"link", "real"}, entries.Dirs)
	assert.Equal(t, []string{"dangling"}, entries.Files)
}

func TestListMissingDirectory(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "missing"), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestListFileIsNotADirectory(t *testing.T) {
	root := makeTree(t, nil, []string{"a.txt"})

	_, err := List(filepath.Join(root, "a.txt"), Options{})
	assert.Error(t, err)
}

func TestEntriesAt(t *testing.T) {
	entries := Entries{Dirs: []string{"d1", "d2"}, Files: []string{"f1"}}

	name, ok := entries.At(1)
	assert.True(t, ok)
	assert.Equal(t, "d2", name)
	assert.True(t, entries.IsDir(1))

	name, ok = entries.At(2)
	assert.True(t, ok)
	assert.Equal(t, "f1", name)
	assert.False(t, entries.IsDir(2))

	_, ok = entries.At(3)
	assert.False(t, ok)
	_, ok = entries.At(-1)
	assert.False(t, ok)
}

func TestEntriesIndexOfDir(t *testing.T) {
	entries := Entries{Dirs: []string{"d1", "d2"}, Files: []string{"d3"}}

	assert.Equal(t, 1, entries.IndexOfDir("d2"))
	assert.Equal(t, -1, entries.IndexOfDir("d3"))
}

func TestEntryError(t *testing.T) {
	err := &EntryError{Dir: "/tmp", Name: "x", Err: fs.ErrNotExist}

	assert.Contains(t, err.Error(), filepath.Join("/tmp", "x"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var entryErr *EntryError
	assert.True(t, errors.As(error(err), &entryErr))
}
