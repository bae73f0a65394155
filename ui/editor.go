package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"widgetkit/internal/apperr"
	"widgetkit/internal/textbuf"
)

// Editor is a word-wrapped multi-line text area with a one-item File menu.
type Editor struct {
	entry      *widget.Entry
	onFinished func()
}

// NewEditor creates an editor holding starter. onFinished runs when the user
// picks File > Finished.
func NewEditor(starter string, onFinished func()) *Editor {
	e := &Editor{onFinished: onFinished}
	e.entry = widget.NewMultiLineEntry()
	e.entry.Wrapping = fyne.TextWrapWord
	e.entry.SetText(starter)
	return e
}

// Entry returns the text widget.
func (e *Editor) Entry() *widget.Entry {
	return e.entry
}

// Text returns the current buffer contents.
func (e *Editor) Text() string {
	return e.entry.Text
}

// MainMenu returns the editor's menu bar.
func (e *Editor) MainMenu() *fyne.MainMenu {
	return fyne.NewMainMenu(
		fyne.NewMenu("File", fyne.NewMenuItem("Finished", e.finish)),
	)
}

func (e *Editor) finish() {
	if e.onFinished != nil {
		e.onFinished()
	}
}

// ReplaceHighlighted swaps the highlighted text for replacement and leaves
// the cursor at the end of the inserted text. It returns the span the
// replacement now occupies. When nothing is highlighted it returns a
// NoSelection error and leaves the buffer alone.
func (e *Editor) ReplaceHighlighted(replacement string) (textbuf.Span, error) {
	const op = "replace highlighted text"

	if e.entry.SelectedText() == "" {
		return textbuf.Span{}, apperr.NoSelectionFor(op)
	}

	// Cut leaves the cursor where the highlight began; paste inserts there.
	clip := &textClipboard{}
	e.entry.TypedShortcut(&fyne.ShortcutCut{Clipboard: clip})
	clip.SetContent(replacement)
	e.entry.TypedShortcut(&fyne.ShortcutPaste{Clipboard: clip})

	end := textbuf.Offset(e.entry.Text, e.entry.CursorRow, e.entry.CursorColumn)
	return textbuf.Span{Start: end - len([]rune(replacement)), End: end}, nil
}

// textClipboard is an in-memory fyne.Clipboard.
type textClipboard struct {
	content string
}

func (c *textClipboard) Content() string           { return c.content }
func (c *textClipboard) SetContent(content string) { c.content = content }

// RunSimpleEditor shows an editor titled title as the master window and
// blocks until File > Finished or the window closes. It returns the final text.
func RunSimpleEditor(a fyne.App, title, starter string) string {
	win := a.NewWindow(title)
	ed := NewEditor(starter, win.Close)
	win.SetMainMenu(ed.MainMenu())
	win.SetContent(ed.Entry())
	win.Resize(NewEditorSize())
	win.SetMaster()
	win.ShowAndRun()
	return ed.Text()
}

// ShowSimpleEditor opens an editor without blocking. onFinished receives the
// final text once the window closes.
func ShowSimpleEditor(a fyne.App, title, starter string, onFinished func(string)) fyne.Window {
	win := a.NewWindow(title)
	ed := NewEditor(starter, win.Close)
	win.SetMainMenu(ed.MainMenu())
	win.SetContent(ed.Entry())
	win.Resize(NewEditorSize())
	win.SetOnClosed(func() { onFinished(ed.Text()) })
	win.Show()
	return win
}
