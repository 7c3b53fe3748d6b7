package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// DefaultExtension is the highlighter hint for files without an extension.
const DefaultExtension = "txt"

// ErrNotText is returned for content that is not UTF-8 text.
var ErrNotText = errors.New("content is not UTF-8 text")

// Loader reads files into buffers.
type Loader struct {
	highlighter Highlighter
	tabWidth    int
	unreadable  string
}

// NewLoader returns a loader that colours through h, expands tabs to
// tabWidth columns (0 keeps them) and shows unreadable as the content of
// files that cannot be read.
func NewLoader(h Highlighter, tabWidth int, unreadable string) *Loader {
	return &Loader{highlighter: h, tabWidth: tabWidth, unreadable: unreadable}
}

// Load reads the whole file at path. The returned buffer is always fit for
// display: when err is non-nil it is the one-line unreadable message.
func (l *Loader) Load(path string) (Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Message(l.unreadable), err
	}

	text, err := Decode(data)
	if err != nil {
		return Message(l.unreadable), fmt.Errorf("%s: %w", path, err)
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = expandTabs(text, l.tabWidth)
	return l.highlighter.Highlight(text, Extension(path)), nil
}

// Decode accepts any valid UTF-8, whatever the content sniffs as.
func Decode(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrNotText
	}
	return string(data), nil
}

// Extension returns the highlighter hint for path: the extension without its
// dot, or DefaultExtension. A leading dot alone does not make an extension.
func Extension(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return DefaultExtension
	}
	return ext[1:]
}

func expandTabs(text string, width int) string {
	if width <= 0 || !strings.Contains(text, "\t") {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))
	col := 0
	for _, r := range text {
		switch r {
		case '\t':
			n := width - col%width
			sb.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n':
			sb.WriteRune(r)
			col = 0
		default:
			sb.WriteRune(r)
			col += runewidth.RuneWidth(r)
		}
	}
	return sb.String()
}
