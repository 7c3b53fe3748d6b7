package content

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbered(n int) string {
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&sb, "line %d\n", i)
	}
	return sb.String()
}

func TestAddGutterTwelveLines(t *testing.T) {
	b := Plain(numbered(12))

	b.AddGutter()

	require.Equal(t, 12, b.Len())
	assert.Equal(t, 2, b.GutterWidth)
	assert.Equal(t, "01 |", b.Lines[0][0].Text)
	assert.Equal(t, "09 |", b.Lines[8][0].Text)
	assert.Equal(t, "12 |", b.Lines[11][0].Text)
	assert.Equal(t, "01 |line 1", b.Lines[0].Text())

	b.RemoveGutter()

	assert.Equal(t, "line 1", b.Lines[0].Text())
	assert.Equal(t, "line 12", b.Lines[11].Text())
	assert.False(t, b.HasGutter())
}

func TestGutterWidthFollowsLineCount(t *testing.T) {
	for _, tc := range []struct {
		lines int
		first string
	}{
		{1, "1 |"},
		{9, "1 |"},
		{10, "01 |"},
		{100, "001 |"},
	} {
		b := Plain(numbered(tc.lines))
		b.AddGutter()
		assert.Equal(t, tc.first, b.Lines[0][0].Text, "lines=%d", tc.lines)
	}
}

func TestGutterRoundTrip(t *testing.T) {
	buffers := map[string]Buffer{
		"plain":   Plain(numbered(37)),
		"blank":   Plain("\n\n\n"),
		"styled":  NewChroma("nord").Highlight("package main\n\nfunc main() {}\n", "go"),
		"message": Message("could not open"),
	}

	for name, b := range buffers {
		t.Run(name, func(t *testing.T) {
			original := Buffer{Lines: make([]Line, len(b.Lines))}
			for i, line := range b.Lines {
				original.Lines[i] = append(Line(nil), line...)
			}

			b.AddGutter()
			assert.True(t, b.HasGutter())
			b.RemoveGutter()

			assert.Equal(t, original, b)
		})
	}
}

func TestGutterOnEmptyBuffer(t *testing.T) {
	var b Buffer

	b.AddGutter()
	assert.Equal(t, 0, b.Len())
	assert.False(t, b.HasGutter())

	b.RemoveGutter()
	assert.Equal(t, 0, b.Len())
}
