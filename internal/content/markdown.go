package content

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders markdown files through glamour and hands every other
// extension to a fallback highlighter.
type Markdown struct {
	renderer *glamour.TermRenderer
	fallback Highlighter
}

// NewMarkdown wraps fallback. wrap is the column glamour reflows paragraphs at.
func NewMarkdown(wrap int, fallback Highlighter) (*Markdown, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
		glamour.WithPreservedNewLines(),
	)
	if err != nil {
		return nil, err
	}
	return &Markdown{renderer: r, fallback: fallback}, nil
}

// Highlight implements Highlighter. Rendered lines already carry ANSI
// styling, so each becomes a single unstyled span.
func (m *Markdown) Highlight(text, ext string) Buffer {
	if !isMarkdown(ext) {
		return m.fallback.Highlight(text, ext)
	}
	out, err := m.renderer.Render(text)
	if err != nil {
		return m.fallback.Highlight(text, ext)
	}
	return Plain(strings.Trim(out, "\n"))
}

func isMarkdown(ext string) bool {
	switch strings.ToLower(ext) {
	case "md", "markdown", "mdx":
		return true
	}
	return false
}
