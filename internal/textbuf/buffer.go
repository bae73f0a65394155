// Package textbuf models a text buffer with one highlighted span and the
// rule for replacing it.
package textbuf

import (
	"strings"

	"widgetkit/internal/apperr"
)

// Span is a half-open rune range [Start, End).
type Span struct {
	Start int
	End   int
}

// Len returns the number of runes covered.
func (s Span) Len() int { return s.End - s.Start }

// Buffer is an editable rune buffer with an optional highlighted span.
type Buffer struct {
	text      []rune
	selection Span
	selected  bool
}

// New creates a buffer holding text with nothing highlighted.
func New(text string) *Buffer {
	return &Buffer{text: []rune(text)}
}

// Text returns the buffer contents.
func (b *Buffer) Text() string {
	return string(b.text)
}

// Len returns the buffer length in runes.
func (b *Buffer) Len() int {
	return len(b.text)
}

// Select highlights the runes between start and end. The bounds may be given
// in either order. An empty range clears the highlight.
func (b *Buffer) Select(start, end int) error {
	if start > end {
		start, end = end, start
	}
	if start < 0 || end > len(b.text) {
		return apperr.Invalid("select", "range %d-%d outside buffer of length %d", start, end, len(b.text))
	}
	if start == end {
		b.Unselect()
		return nil
	}
	b.selection = Span{Start: start, End: end}
	b.selected = true
	return nil
}

// Selection returns the highlighted span, if any.
func (b *Buffer) Selection() (Span, bool) {
	return b.selection, b.selected
}

// Unselect clears the highlight.
func (b *Buffer) Unselect() {
	b.selection = Span{}
	b.selected = false
}

// ReplaceSelection swaps the highlighted runes for replacement and clears the
// highlight. It returns the offset just past the inserted text.
func (b *Buffer) ReplaceSelection(replacement string) (int, error) {
	if !b.selected {
		return 0, apperr.NoSelectionFor("replace selection")
	}

	ins := []rune(replacement)
	out := make([]rune, 0, len(b.text)-b.selection.Len()+len(ins))
	out = append(out, b.text[:b.selection.Start]...)
	out = append(out, ins...)
	out = append(out, b.text[b.selection.End:]...)

	end := b.selection.Start + len(ins)
	b.text = out
	b.Unselect()
	return end, nil
}

// Offset converts a row/column cursor position into a rune offset into text.
// Rows are separated by '\n'. Out of range positions are clamped.
func Offset(text string, row, col int) int {
	lines := strings.Split(text, "\n")
	if row < 0 {
		return 0
	}
	if row >= len(lines) {
		return len([]rune(text))
	}

	off := 0
	for _, l := range lines[:row] {
		off += len([]rune(l)) + 1
	}
	lineLen := len([]rune(lines[row]))
	switch {
	case col < 0:
		col = 0
	case col > lineLen:
		col = lineLen
	}
	return off + col
}

// RowCol converts a rune offset into text back into a row/column position.
func RowCol(text string, offset int) (row, col int) {
	for i, r := range []rune(text) {
		if i >= offset {
			break
		}
		if r == '\n' {
			row++
			col = 0
			continue
		}
		col++
	}
	return row, col
}
