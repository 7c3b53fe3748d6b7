// Package listing enumerates the immediate children of a directory,
// directories first, in the order the filesystem returns them.
package listing

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Sort order applied after enumeration.
type Sort int

const (
	// SortNone keeps the raw directory order.
	SortNone Sort = iota
	// SortByName orders each group by name.
	SortByName
)

// Options tunes List.
type Options struct {
	Sort Sort
	// SkipUnreadable records entries that cannot be resolved in
	// Entries.Warnings instead of failing the whole listing.
	SkipUnreadable bool
}

// Entries is the content of one directory: subdirectory names, then the
// names of everything else.
type Entries struct {
	Dirs     []string
	Files    []string
	Warnings []error
}

// EntryError reports a directory entry that could not be resolved.
type EntryError struct {
	Dir  string
	Name string
	Err  error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("cannot resolve %s: %v", filepath.Join(e.Dir, e.Name), e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// Total returns the number of entries across both groups.
func (e Entries) Total() int {
	return len(e.Dirs) + len(e.Files)
}

// IsEmpty reports whether the directory had no entries.
func (e Entries) IsEmpty() bool {
	return e.Total() == 0
}

// At returns the name at index i of the concatenation [Dirs, Files].
func (e Entries) At(i int) (string, bool) {
	switch {
	case i < 0 || i >= e.Total():
		return "", false
	case i < len(e.Dirs):
		return e.Dirs[i], true
	default:
		return e.Files[i-len(e.Dirs)], true
	}
}

// IsDir reports whether index i falls in the directory group.
func (e Entries) IsDir(i int) bool {
	return i >= 0 && i < len(e.Dirs)
}

// IndexOfDir returns the position of a subdirectory, or -1.
func (e Entries) IndexOfDir(name string) int {
	for i, d := range e.Dirs {
		if d == name {
			return i
		}
	}
	return -1
}

// List enumerates dir. Unless opts.SkipUnreadable is set, the first entry
// that cannot be resolved aborts the listing with an *EntryError.
func List(dir string, opts Options) (Entries, error) {
	f, err := os.Open(dir)
	if err != nil {
		return Entries{}, err
	}
	defer f.Close()

	// (*os.File).ReadDir keeps the directory order; os.ReadDir would sort.
	items, err := f.ReadDir(-1)
	if err != nil {
		return Entries{}, err
	}

	var entries Entries
	for _, item := range items {
		isDir, err := resolve(dir, item)
		if err != nil {
			entryErr := &EntryError{Dir: dir, Name: item.Name(), Err: err}
			if !opts.SkipUnreadable {
				return Entries{}, entryErr
			}
			entries.Warnings = append(entries.Warnings, entryErr)
			continue
		}
		if isDir {
			entries.Dirs = append(entries.Dirs, item.Name())
		} else {
			entries.Files = append(entries.Files, item.Name())
		}
	}

	if opts.Sort == SortByName {
		sort.Strings(entries.Dirs)
		sort.Strings(entries.Files)
	}
	return entries, nil
}

// resolve classifies an entry, following symlinks. A dangling link is a file.
func resolve(dir string, item fs.DirEntry) (bool, error) {
	info, err := item.Info()
	if err != nil {
		return false, err
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return info.IsDir(), nil
	}
	target, err := os.Stat(filepath.Join(dir, item.Name()))
	if err != nil {
		return false, nil
	}
	return target.IsDir(), nil
}
