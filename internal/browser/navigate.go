package browser

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Advance moves the selection down, wrapping at the end, or scrolls the
// content down while the last line is below the body. Ignored under the
// overlay.
func (c *Controller) Advance() {
	if c.overlay {
		return
	}
	switch c.mode {
	case Browsing:
		if n := c.entries.Total(); n > 0 {
			c.selected = (c.selected + 1) % n
		}
	case Viewing:
		if c.offsets.Vertical < c.limit() {
			c.offsets.Vertical++
		}
	}
}

// Retreat moves the selection up, wrapping at the start, or scrolls the
// content up to the first line. Ignored under the overlay.
func (c *Controller) Retreat() {
	if c.overlay {
		return
	}
	switch c.mode {
	case Browsing:
		if n := c.entries.Total(); n > 0 {
			c.selected = (c.selected - 1 + n) % n
		}
	case Viewing:
		if c.offsets.Vertical > 0 {
			c.offsets.Vertical--
		}
	}
}

// PanForward scrolls the content right. There is no right edge.
func (c *Controller) PanForward() {
	if c.overlay || c.mode != Viewing {
		return
	}
	c.offsets.Horizontal++
}

// PanBackward scrolls the content left, stopping at the first column.
func (c *Controller) PanBackward() {
	if c.overlay || c.mode != Viewing || c.offsets.Horizontal == 0 {
		return
	}
	c.offsets.Horizontal--
}

// JumpHome scrolls to the first line and column.
func (c *Controller) JumpHome() {
	if c.mode != Viewing {
		return
	}
	c.offsets = Offsets{}
}

// JumpEnd scrolls so the last line sits at the bottom of the body.
func (c *Controller) JumpEnd() {
	if c.mode != Viewing {
		return
	}
	c.offsets = Offsets{Vertical: c.limit()}
}

// Commit enters the selected directory or opens the selected file. An
// entry named like the current path is ignored. The returned error is fatal.
func (c *Controller) Commit() error {
	if c.mode != Browsing {
		return nil
	}
	name, ok := c.entries.At(c.selected)
	if !ok || name == filepath.Base(c.path) {
		return nil
	}

	dir := c.path
	if c.onFile {
		dir = parentOf(c.path)
	}
	target := filepath.Join(dir, name)
	c.offsets = Offsets{}

	if info, err := os.Stat(target); err == nil && info.IsDir() {
		return c.enter(dir, target, name)
	}
	c.open(target)
	return nil
}

func (c *Controller) enter(parent, target, name string) error {
	log := c.log.WithField("path", target)

	entries, err := c.list(target)
	if err == nil {
		c.setDir(target, entries)
		c.selected = firstIndex(entries)
		c.clearContent()
		log.WithField("entries", entries.Total()).Debug("entered directory")
		return nil
	}

	log.WithError(err).Warn("cannot enter directory")
	back, perr := c.list(parent)
	if perr != nil {
		return fmt.Errorf("list %s: %w", parent, perr)
	}
	c.setDir(parent, back)
	c.selected = back.IndexOfDir(name)
	if c.selected < 0 {
		c.selected = firstIndex(back)
	}
	c.showError(err)
	return nil
}

func (c *Controller) open(target string) {
	buf, err := c.opts.Loader.Load(target)
	if err != nil {
		c.log.WithError(err).WithField("path", target).Warn("cannot open file")
	}
	c.path = target
	c.onFile = true
	c.content = buf
	c.gutter = false
	c.props = c.snapshot(target)
	c.log.WithFields(logrus.Fields{"path": target, "lines": buf.Len()}).Debug("opened file")
}

// Dismiss closes the open file and moves to the parent of its directory,
// selecting the directory that was left. At the filesystem root it only
// relists. An unreadable parent leaves the browser where it was with the
// error as content.
func (c *Controller) Dismiss() error {
	if c.mode != Browsing {
		return nil
	}
	dir := c.path
	if c.onFile {
		dir = parentOf(c.path)
	}
	c.offsets = Offsets{}

	if isRoot(dir) {
		entries, err := c.list(dir)
		if err != nil {
			c.stay(dir, err)
			return nil
		}
		c.setDir(dir, entries)
		c.selected = firstIndex(entries)
		c.clearContent()
		return nil
	}

	departed := filepath.Base(dir)
	parent := parentOf(dir)
	entries, err := c.list(parent)
	if err != nil {
		c.stay(dir, err)
		return nil
	}
	c.setDir(parent, entries)
	c.selected = firstIndex(entries)
	if !isRoot(parent) {
		if i := entries.IndexOfDir(departed); i >= 0 {
			c.selected = i
		}
	}
	c.clearContent()
	c.log.WithField("path", parent).Debug("left directory")
	return nil
}

// stay keeps the browser in dir, whose entries are the current ones, and
// shows err.
func (c *Controller) stay(dir string, err error) {
	c.log.WithError(err).WithField("path", dir).Warn("cannot leave directory")
	c.path = dir
	c.onFile = false
	c.showError(err)
}
