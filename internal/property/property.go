// Package property takes metadata snapshots of filesystem paths and formats
// them for the property overlay.
package property

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// Zone is the fixed offset every timestamp is reported in.
var Zone = time.FixedZone("UTC+9", 9*60*60)

// DirectoryMIME is reported for directories instead of sniffing content.
const DirectoryMIME = "inode/directory"

// Timestamp is a time that may have failed to load.
type Timestamp struct {
	At  time.Time
	Err error
}

// Available reports whether the time could be read.
func (t Timestamp) Available() bool {
	return t.Err == nil
}

func available(t time.Time) Timestamp {
	return Timestamp{At: t.In(Zone)}
}

func unavailable(err error) Timestamp {
	if err == nil {
		err = errors.ErrUnsupported
	}
	return Timestamp{Err: err}
}

// Snapshot is the metadata of one path at the moment it was taken.
type Snapshot struct {
	Name       string
	Location   string
	Created    Timestamp
	Modified   Timestamp
	Accessed   Timestamp
	Size       int64
	Accessible bool
	MIME       string
}

// Take snapshots path. It fails only when the path has no metadata at all,
// e.g. it was removed underneath the browser; individual fields that cannot
// be read are recorded as unavailable.
func Take(path string) (*Snapshot, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	created, accessed := fileTimes(path, info)
	s := &Snapshot{
		Name:       filepath.Base(path),
		Location:   path,
		Created:    created,
		Modified:   available(info.ModTime()),
		Accessed:   accessed,
		Size:       info.Size(),
		Accessible: accessed.Available(),
	}

	switch {
	case info.IsDir():
		s.MIME = DirectoryMIME
	case info.Mode().IsRegular():
		if mt, err := mimetype.DetectFile(path); err == nil {
			s.MIME = mt.String()
		}
	}
	return s, nil
}
