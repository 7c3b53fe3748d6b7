package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChromaHighlightsKnownExtension(t *testing.T) {
	src := "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n"

	b := NewChroma("nord").Highlight(src, "go")

	require.Equal(t, 5, b.Len())
	assert.Equal(t, "package main", b.Lines[0].Text())
	assert.Equal(t, "", b.Lines[1].Text())
	assert.Equal(t, "}", b.Lines[4].Text())

	styled := false
	for _, line := range b.Lines {
		for _, span := range line {
			if span.Style.Foreground != "" {
				styled = true
			}
		}
	}
	assert.True(t, styled, "expected at least one coloured span")
}

func TestChromaUnknownExtensionIsPlain(t *testing.T) {
	text := "just\nsome text\n"

	b := NewChroma("nord").Highlight(text, "no-such-extension")

	assert.Equal(t, Plain(text), b)
}

func TestChromaUnknownThemeFallsBack(t *testing.T) {
	b := NewChroma("definitely-not-a-theme").Highlight("x = 1\n", "py")

	require.Equal(t, 1, b.Len())
	assert.Equal(t, "x = 1", b.Lines[0].Text())
}

func TestChromaEveryLineHasASpan(t *testing.T) {
	b := NewChroma("nord").Highlight("a: 1\n\n\nb: 2", "yaml")

	require.Equal(t, 4, b.Len())
	for _, line := range b.Lines {
		assert.NotEmpty(t, line)
	}
}
