package content

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighter colours text given a file-extension hint. Implementations never
// fail: unknown extensions and lexer errors yield plain lines.
type Highlighter interface {
	Highlight(text, ext string) Buffer
}

// Chroma highlights through chroma's lexer registry and one of its styles.
type Chroma struct {
	style *chroma.Style
}

// NewChroma uses the chroma style named theme; unknown names get chroma's
// fallback style.
func NewChroma(theme string) *Chroma {
	style := styles.Get(theme)
	if style == nil {
		style = styles.Fallback
	}
	return &Chroma{style: style}
}

// Highlight implements Highlighter.
func (c *Chroma) Highlight(text, ext string) Buffer {
	lexer := lexers.Match("file." + ext)
	if lexer == nil {
		return Plain(text)
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, text)
	if err != nil {
		return Plain(text)
	}

	// Lexers may append a newline; the plain split decides the line count.
	plain := splitLines(text)
	tokenLines := chroma.SplitTokensIntoLines(iterator.Tokens())

	lines := make([]Line, len(plain))
	for i := range plain {
		if i >= len(tokenLines) {
			lines[i] = Line{{Text: plain[i]}}
			continue
		}
		lines[i] = c.line(tokenLines[i])
	}
	return Buffer{Lines: lines}
}

func (c *Chroma) line(tokens []chroma.Token) Line {
	line := make(Line, 0, len(tokens))
	for _, tok := range tokens {
		text := strings.TrimRight(tok.Value, "\n")
		if text == "" {
			continue
		}
		line = append(line, Span{Text: text, Style: c.spanStyle(tok.Type)})
	}
	if len(line) == 0 {
		return Line{{}}
	}
	return line
}

// spanStyle keeps the foreground and font attributes; backgrounds would only
// colour the glyph cells, not the pane.
func (c *Chroma) spanStyle(t chroma.TokenType) Style {
	entry := c.style.Get(t)
	st := Style{
		Bold:      entry.Bold == chroma.Yes,
		Italic:    entry.Italic == chroma.Yes,
		Underline: entry.Underline == chroma.Yes,
	}
	if entry.Colour.IsSet() {
		st.Foreground = entry.Colour.String()
	}
	return st
}
