package textbuf

import (
	"errors"
	"testing"

	"widgetkit/internal/apperr"
)

func TestReplaceSelection(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		start, end int
		repl       string
		want       string
		wantEnd    int
	}{
		{"middle", "hello cruel world", 6, 11, "kind", "hello kind world", 10},
		{"prefix", "abcdef", 0, 3, "X", "Xdef", 1},
		{"suffix", "abcdef", 3, 6, "XYZW", "abcXYZW", 7},
		{"whole", "abc", 0, 3, "", "", 0},
		{"reversed bounds", "abcdef", 4, 2, "-", "ab-ef", 3},
		{"multibyte", "héllo wörld", 6, 11, "✓", "héllo ✓", 7},
		{"multiline", "one\ntwo\nthree", 4, 7, "2", "one\n2\nthree", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.text)
			if err := b.Select(tt.start, tt.end); err != nil {
				t.Fatalf("Select() error = %v", err)
			}

			end, err := b.ReplaceSelection(tt.repl)
			if err != nil {
				t.Fatalf("ReplaceSelection() error = %v", err)
			}
			if got := b.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
			if end != tt.wantEnd {
				t.Errorf("end offset = %d, want %d", end, tt.wantEnd)
			}
			if _, ok := b.Selection(); ok {
				t.Error("selection still set after replace")
			}
		})
	}
}

// Replacement leaves prefix + T + suffix for every possible highlight.
func TestReplaceSelectionPrefixSuffix(t *testing.T) {
	text := []rune("the quick brown fox")
	for start := 0; start < len(text); start++ {
		for end := start + 1; end <= len(text); end++ {
			b := New(string(text))
			if err := b.Select(start, end); err != nil {
				t.Fatalf("Select(%d, %d) error = %v", start, end, err)
			}
			if _, err := b.ReplaceSelection("T"); err != nil {
				t.Fatalf("ReplaceSelection() error = %v", err)
			}
			want := string(text[:start]) + "T" + string(text[end:])
			if got := b.Text(); got != want {
				t.Fatalf("Select(%d, %d): Text() = %q, want %q", start, end, got, want)
			}
		}
	}
}

func TestReplaceWithoutSelection(t *testing.T) {
	b := New("untouched")
	_, err := b.ReplaceSelection("x")
	if !errors.Is(err, apperr.ErrNoSelection) {
		t.Fatalf("ReplaceSelection() error = %v, want NoSelection", err)
	}
	if b.Text() != "untouched" {
		t.Errorf("buffer modified on error: %q", b.Text())
	}
}

func TestEmptySelectionIsNoSelection(t *testing.T) {
	b := New("abc")
	if err := b.Select(1, 1); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if _, ok := b.Selection(); ok {
		t.Error("empty range reported as a selection")
	}
}

func TestSelectOutOfRange(t *testing.T) {
	b := New("abc")
	for _, r := range [][2]int{{-1, 2}, {0, 4}, {5, 9}} {
		if err := b.Select(r[0], r[1]); !errors.Is(err, apperr.ErrInvalidInput) {
			t.Errorf("Select(%d, %d) error = %v, want InvalidInput", r[0], r[1], err)
		}
	}
}

func TestOffsetRowColRoundTrip(t *testing.T) {
	text := "first\nsecönd\n\nlast"
	tests := []struct {
		row, col, off int
	}{
		{0, 0, 0},
		{0, 5, 5},
		{1, 0, 6},
		{1, 3, 9},
		{2, 0, 13},
		{3, 4, 18},
	}
	for _, tt := range tests {
		if got := Offset(text, tt.row, tt.col); got != tt.off {
			t.Errorf("Offset(%d, %d) = %d, want %d", tt.row, tt.col, got, tt.off)
		}
		row, col := RowCol(text, tt.off)
		if row != tt.row || col != tt.col {
			t.Errorf("RowCol(%d) = %d, %d, want %d, %d", tt.off, row, col, tt.row, tt.col)
		}
	}
}

func TestOffsetClamps(t *testing.T) {
	text := "ab\ncd"
	if got := Offset(text, 0, 10); got != 2 {
		t.Errorf("Offset(0, 10) = %d, want 2", got)
	}
	if got := Offset(text, 9, 0); got != 5 {
		t.Errorf("Offset(9, 0) = %d, want 5", got)
	}
	if got := Offset(text, -1, 1); got != 0 {
		t.Errorf("Offset(-1, 1) = %d, want 0", got)
	}
}
