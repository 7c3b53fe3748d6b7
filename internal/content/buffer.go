// Package content turns file bytes into the styled, line-oriented buffer the
// viewer displays.
package content

import "strings"

// Style is the presentation of one span. The zero value is unstyled text.
type Style struct {
	// Foreground is a colour the renderer understands, e.g. "#81a1c1".
	Foreground string
	Bold       bool
	Italic     bool
	Underline  bool
}

// IsZero reports whether s carries no styling.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Span is a run of text sharing one style.
type Span struct {
	Text  string
	Style Style
}

// Line is one display line. Every line built by this package holds at least
// one span.
type Line []Span

// Text returns the line without styling.
func (l Line) Text() string {
	var sb strings.Builder
	for _, s := range l {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Buffer is the displayed content of an opened file.
type Buffer struct {
	Lines []Line
	// GutterWidth is the digit count fixed by AddGutter, 0 when no gutter is
	// present.
	GutterWidth int
}

// Len returns the number of lines.
func (b Buffer) Len() int {
	return len(b.Lines)
}

// HasGutter reports whether line numbers are currently prepended.
func (b Buffer) HasGutter() bool {
	return b.GutterWidth > 0
}

// Plain splits text into unstyled lines.
func Plain(text string) Buffer {
	raw := splitLines(text)
	lines := make([]Line, len(raw))
	for i, r := range raw {
		lines[i] = Line{{Text: r}}
	}
	return Buffer{Lines: lines}
}

// Message is a one-line buffer, used for errors shown in place of content.
func Message(msg string) Buffer {
	return Buffer{Lines: []Line{{{Text: msg}}}}
}

// splitLines splits like a line iterator: a final newline does not start an
// extra empty line and empty text has no lines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
