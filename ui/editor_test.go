package ui

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"widgetkit/internal/apperr"
	"widgetkit/internal/textbuf"
)

func newTestEditor(t *testing.T, text string) *Editor {
	t.Helper()
	test.NewApp()
	ed := NewEditor(text, nil)
	w := test.NewWindow(ed.Entry())
	w.Resize(NewEditorSize())
	t.Cleanup(w.Close)
	return ed
}

func TestEditorStartsWithText(t *testing.T) {
	ed := newTestEditor(t, "starter text")
	if ed.Text() != "starter text" {
		t.Errorf("Text() = %q, want starter text", ed.Text())
	}
}

func TestReplaceHighlightedWithoutSelection(t *testing.T) {
	ed := newTestEditor(t, "nothing selected")

	_, err := ed.ReplaceHighlighted("x")
	if !errors.Is(err, apperr.ErrNoSelection) {
		t.Fatalf("ReplaceHighlighted() error = %v, want NoSelection", err)
	}
	if ed.Text() != "nothing selected" {
		t.Errorf("Text() changed to %q", ed.Text())
	}
}

func TestReplaceHighlightedAll(t *testing.T) {
	ed := newTestEditor(t, "first row\nsecond row")
	ed.Entry().TypedShortcut(&fyne.ShortcutSelectAll{})

	span, err := ed.ReplaceHighlighted("replaced")
	if err != nil {
		t.Fatalf("ReplaceHighlighted() error = %v", err)
	}
	if ed.Text() != "replaced" {
		t.Errorf("Text() = %q, want replaced", ed.Text())
	}
	if want := (textbuf.Span{Start: 0, End: len("replaced")}); span != want {
		t.Errorf("span = %+v, want %+v", span, want)
	}
	if ed.Entry().CursorRow != 0 || ed.Entry().CursorColumn != len("replaced") {
		t.Errorf("cursor = %d:%d, want 0:%d", ed.Entry().CursorRow, ed.Entry().CursorColumn, len("replaced"))
	}
}

// shiftSelect moves the cursor by keys with shift held, the way a user
// extends a highlight from the keyboard.
func shiftSelect(e *widget.Entry, keys ...fyne.KeyName) {
	e.KeyDown(&fyne.KeyEvent{Name: desktop.KeyShiftLeft})
	for _, k := range keys {
		e.TypedKey(&fyne.KeyEvent{Name: k})
	}
	e.KeyUp(&fyne.KeyEvent{Name: desktop.KeyShiftLeft})
}

func TestReplaceHighlightedFollowsHighlightDirection(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		setup func(e *widget.Entry)
		start int
		end   int
		repl  string
	}{
		{
			name: "right to left with same text before cursor",
			text: "abab",
			setup: func(e *widget.Entry) {
				e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEnd})
				shiftSelect(e, fyne.KeyLeft, fyne.KeyLeft)
			},
			start: 2, end: 4, repl: "X",
		},
		{
			name: "left to right with same text after cursor",
			text: "abab",
			setup: func(e *widget.Entry) {
				e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyHome})
				shiftSelect(e, fyne.KeyRight, fyne.KeyRight)
			},
			start: 0, end: 2, repl: "X",
		},
		{
			name: "multibyte",
			text: "añb",
			setup: func(e *widget.Entry) {
				e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEnd})
				shiftSelect(e, fyne.KeyLeft, fyne.KeyLeft)
			},
			start: 1, end: 3, repl: "ü",
		},
		{
			name: "empty replacement deletes",
			text: "hello world",
			setup: func(e *widget.Entry) {
				e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEnd})
				shiftSelect(e, fyne.KeyLeft, fyne.KeyLeft, fyne.KeyLeft, fyne.KeyLeft, fyne.KeyLeft, fyne.KeyLeft)
			},
			start: 5, end: 11, repl: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed := newTestEditor(t, tt.text)
			tt.setup(ed.Entry())

			want := textbuf.New(tt.text)
			if err := want.Select(tt.start, tt.end); err != nil {
				t.Fatal(err)
			}
			if got, wantSel := ed.Entry().SelectedText(), string([]rune(tt.text)[tt.start:tt.end]); got != wantSel {
				t.Fatalf("SelectedText() = %q, want %q", got, wantSel)
			}
			if _, err := want.ReplaceSelection(tt.repl); err != nil {
				t.Fatal(err)
			}

			span, err := ed.ReplaceHighlighted(tt.repl)
			if err != nil {
				t.Fatalf("ReplaceHighlighted() error = %v", err)
			}
			if ed.Text() != want.Text() {
				t.Errorf("Text() = %q, want %q", ed.Text(), want.Text())
			}
			wantSpan := textbuf.Span{Start: tt.start, End: tt.start + len([]rune(tt.repl))}
			if span != wantSpan {
				t.Errorf("span = %+v, want %+v", span, wantSpan)
			}
			if ed.Entry().SelectedText() != "" {
				t.Errorf("highlight left behind: %q", ed.Entry().SelectedText())
			}
		})
	}
}

func TestEditorFinishedMenu(t *testing.T) {
	test.NewApp()

	finished := false
	ed := NewEditor("", func() { finished = true })
	menu := ed.MainMenu()

	if len(menu.Items) != 1 || menu.Items[0].Label != "File" {
		t.Fatalf("menu = %+v, want a single File menu", menu.Items)
	}
	items := menu.Items[0].Items
	if len(items) != 1 || items[0].Label != "Finished" {
		t.Fatalf("File menu items = %+v, want [Finished]", items)
	}

	items[0].Action()
	if !finished {
		t.Error("Finished did not call onFinished")
	}
}
