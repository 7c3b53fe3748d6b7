package content

import (
	"fmt"
	"strconv"
)

// AddGutter prepends a zero-padded, 1-based line number span ("007 |") to
// every line. The digit count is derived from the line count now and kept
// until RemoveGutter.
//
// The line count must not change between AddGutter and RemoveGutter.
func (b *Buffer) AddGutter() {
	n := len(b.Lines)
	if n == 0 {
		return
	}
	width := len(strconv.Itoa(n))
	for i, line := range b.Lines {
		numbered := make(Line, 0, len(line)+1)
		numbered = append(numbered, Span{Text: fmt.Sprintf("%0*d |", width, i+1)})
		b.Lines[i] = append(numbered, line...)
	}
	b.GutterWidth = width
}

// RemoveGutter drops exactly the first span of every line if a gutter was
// added. It does not check that the span is a line number; see AddGutter for
// the precondition.
func (b *Buffer) RemoveGutter() {
	if !b.HasGutter() {
		return
	}
	for i, line := range b.Lines {
		if len(line) > 0 {
			b.Lines[i] = line[1:]
		}
	}
	b.GutterWidth = 0
}
