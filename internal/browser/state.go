package browser

import (
	"github.com/zackbart/browse/internal/content"
	"github.com/zackbart/browse/internal/listing"
	"github.com/zackbart/browse/internal/property"
)

// ChromeRows is the number of terminal rows the renderer spends on bars and
// dividers around the content body.
const ChromeRows = 6

// Mode decides whether movement keys walk the entry list or scroll content.
type Mode int

const (
	Browsing Mode = iota
	Viewing
)

func (m Mode) String() string {
	if m == Viewing {
		return "viewing"
	}
	return "browsing"
}

// Offsets are the pan position in the content buffer. Both are never
// negative.
type Offsets struct {
	Vertical   int
	Horizontal int
}

// View is a read-only frame of the controller for the renderer. Slices are
// shared with the controller and must not be modified.
type View struct {
	Path           string
	OnFile         bool
	Entries        listing.Entries
	Selected       int
	Mode           Mode
	Overlay        bool
	Content        content.Buffer
	Gutter         bool
	Properties     *property.Snapshot
	Offsets        Offsets
	ViewportHeight int
	Limit          int
}

// Dir is the directory whose entries are listed.
func (v View) Dir() string {
	if v.OnFile {
		return parentOf(v.Path)
	}
	return v.Path
}
