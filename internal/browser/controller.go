// Package browser holds the navigation and view state of the file browser:
// where it is, what is selected, what is open and how far it is scrolled.
// It does no rendering and reads no keys.
package browser

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/zackbart/browse/internal/content"
	"github.com/zackbart/browse/internal/listing"
	"github.com/zackbart/browse/internal/property"
)

// ContentLoader reads a file into a displayable buffer. The buffer must be
// usable even when an error is returned.
type ContentLoader interface {
	Load(path string) (content.Buffer, error)
}

// Options configure a Controller.
type Options struct {
	Listing listing.Options
	Loader  ContentLoader
	Logger  logrus.FieldLogger
}

// Controller is the single owner of the browser state. It is not safe for
// concurrent use; the host loop calls it from one goroutine.
type Controller struct {
	opts Options
	log  logrus.FieldLogger

	path     string
	onFile   bool
	entries  listing.Entries
	selected int

	mode    Mode
	overlay bool
	offsets Offsets
	height  int

	content content.Buffer
	gutter  bool
	props   *property.Snapshot
}

// New starts a controller in start, which must be a listable directory.
func New(start string, opts Options) (*Controller, error) {
	if opts.Loader == nil {
		return nil, errors.New("browser: no content loader")
	}
	if opts.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Logger = l
	}

	abs, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", start, err)
	}

	c := &Controller{opts: opts, log: opts.Logger.WithField("component", "browser")}
	entries, err := c.list(abs)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", abs, err)
	}
	c.setDir(abs, entries)
	c.selected = firstIndex(entries)
	c.props = c.snapshot(abs)

	c.log.WithFields(logrus.Fields{"path": abs, "entries": entries.Total()}).Info("browser started")
	return c, nil
}

// SetViewportHeight records the terminal height in rows.
func (c *Controller) SetViewportHeight(h int) {
	c.height = max(0, h)
}

// Snapshot returns the current frame.
func (c *Controller) Snapshot() View {
	return View{
		Path:           c.path,
		OnFile:         c.onFile,
		Entries:        c.entries,
		Selected:       c.selected,
		Mode:           c.mode,
		Overlay:        c.overlay,
		Content:        c.content,
		Gutter:         c.gutter,
		Properties:     c.props,
		Offsets:        c.offsets,
		ViewportHeight: c.height,
		Limit:          c.limit(),
	}
}

// Handle performs the operation a resolves to in the current mode. The only
// error it returns is fatal: the browser has no listable directory left.
func (c *Controller) Handle(a Action) error {
	switch route(c.mode, c.overlay, a) {
	case opAdvance:
		c.Advance()
	case opRetreat:
		c.Retreat()
	case opPanForward:
		c.PanForward()
	case opPanBackward:
		c.PanBackward()
	case opToggleMode:
		c.ToggleMode()
	case opCommit:
		return c.Commit()
	case opDismiss:
		return c.Dismiss()
	case opToggleOverlay:
		c.ToggleOverlay()
	case opToggleGutter:
		c.ToggleGutter()
	case opJumpHome:
		c.JumpHome()
	case opJumpEnd:
		c.JumpEnd()
	}
	return nil
}

// ToggleMode switches between browsing and viewing. Selection and offsets
// are kept.
func (c *Controller) ToggleMode() {
	if c.mode == Browsing {
		c.mode = Viewing
	} else {
		c.mode = Browsing
	}
	c.log.WithField("mode", c.mode).Debug("mode changed")
}

// ToggleOverlay shows or hides the property overlay and rewinds the offsets.
func (c *Controller) ToggleOverlay() {
	c.overlay = !c.overlay
	c.offsets = Offsets{}
}

// ToggleGutter adds or removes line numbers on the open content.
func (c *Controller) ToggleGutter() {
	if c.gutter {
		c.content.RemoveGutter()
	} else {
		c.content.AddGutter()
	}
	c.gutter = !c.gutter
}

// limit is the largest vertical offset that still fills the body.
func (c *Controller) limit() int {
	visible := max(0, c.height-ChromeRows)
	return max(0, c.content.Len()-visible)
}

func (c *Controller) list(dir string) (listing.Entries, error) {
	entries, err := listing.List(dir, c.opts.Listing)
	if err != nil {
		return listing.Entries{}, err
	}
	for _, w := range entries.Warnings {
		c.log.WithError(w).WithField("dir", dir).Warn("entry skipped")
	}
	return entries, nil
}

func (c *Controller) setDir(dir string, entries listing.Entries) {
	c.path = dir
	c.onFile = false
	c.entries = entries
}

// clearContent empties the content pane and drops the gutter with it.
func (c *Controller) clearContent() {
	c.content = content.Buffer{}
	c.gutter = false
}

func (c *Controller) showError(err error) {
	c.content = content.Message(err.Error())
	c.gutter = false
}

func (c *Controller) snapshot(path string) *property.Snapshot {
	snap, err := property.Take(path)
	if err != nil {
		c.log.WithError(err).WithField("path", path).Warn("no properties")
		return nil
	}
	return snap
}

func firstIndex(entries listing.Entries) int {
	if entries.IsEmpty() {
		return -1
	}
	return 0
}

func parentOf(path string) string {
	return filepath.Dir(path)
}

func isRoot(path string) bool {
	return parentOf(path) == path
}
